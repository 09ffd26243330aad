package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louiss0/cargo-build-delegator/manifest"
	"github.com/louiss0/cargo-build-delegator/testhelper"
)

// Test builds run with GO_MODE "development", so list prints the plain
// comma-separated form instead of the table.

func TestListShowsEveryDependencyOnce(t *testing.T) {
	ctx := testhelper.NewManifestTestContext(t)
	path := ctx.CreateManifest(exampleManifest)

	result := executeCommand(newTestDependencies(), "list", "--manifest", path)

	require.NoError(t, result.Err)
	assert.Equal(t, "Here are the dependencies foo,bar,baz", result.Stdout)
}

func TestListEmptyManifestPrintsNotice(t *testing.T) {
	ctx := testhelper.NewManifestTestContext(t)
	path := ctx.CreateManifest("dependencies = {}\ndev-dependencies = {}\n")

	result := executeCommand(newTestDependencies(), "list", "--manifest", path)

	require.NoError(t, result.Err)
	assert.Contains(t, result.Stdout, "No dependencies found in")
	assert.Contains(t, result.Stdout, path)
}

func TestListMissingSectionFails(t *testing.T) {
	ctx := testhelper.NewManifestTestContext(t)
	path := ctx.CreateManifest("[dependencies]\nfoo = \"1.0\"\n")

	result := executeCommand(newTestDependencies(), "list", "--manifest", path)

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, manifest.ErrMissingSection)
}
