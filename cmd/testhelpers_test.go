package cmd_test

import (
	"bytes"
	"context"

	"github.com/louiss0/cargo-build-delegator/cmd"
	"github.com/louiss0/cargo-build-delegator/manifest"
	"github.com/louiss0/cargo-build-delegator/mock"
)

// commandResult captures everything a test needs from one CLI invocation.
type commandResult struct {
	Stdout string
	Err    error
}

// newTestDependencies builds a cmd.Dependencies with safe test doubles: the
// real filesystem (tests work against t.TempDir fixtures), a mocked registry
// and a selector that selects nothing.
func newTestDependencies() cmd.Dependencies {
	selectorFactory, _ := mock.NewMockDependencyMultiSelectUIFactory(nil, nil)

	return cmd.Dependencies{
		FileSystem:                 manifest.RealFileSystem{},
		CratesRegistryService:      mock.NewMockCratesRegistryService(),
		NewDependencyMultiSelectUI: selectorFactory,
	}
}

// executeCommand runs a fresh root command with the given dependencies and
// arguments, capturing stdout. Stderr is swallowed so failing invocations
// don't pollute test output.
func executeCommand(deps cmd.Dependencies, args ...string) commandResult {
	root := cmd.NewRootCmd(deps)

	stdout := new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return commandResult{Stdout: stdout.String(), Err: err}
}
