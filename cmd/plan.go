// Package cmd provides command-line interface implementations for the cargo build delegator.
package cmd

import (
	// standard library
	"fmt"

	// external
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/cargo-build-delegator/manifest"
)

// BUILD_COMMAND_PREFIX is the fixed template every emitted line starts with.
const BUILD_COMMAND_PREFIX = "cargo build -p "

const PICK_FLAG = "pick"

// NewPlanCmd creates a new Cobra command for the "plan" functionality.
// This is the core of the tool: it reads the resolved manifest and prints one
// 'cargo build -p <crate>' line for every entry in the [dependencies] and
// [dev-dependencies] tables, in declaration order. Bare 'cbd' runs the same
// logic; the subcommand exists so --pick has a home.
func NewPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print one cargo build command per declared dependency",
		Long: `Print a 'cargo build -p <crate>' command for every dependency declared in the
manifest's [dependencies] and [dev-dependencies] tables.

Lines for [dependencies] always come first, and within each table the order
matches the declaration order in the source file, so output is reproducible.

Examples:
  cbd plan                        # Commands for every declared dependency
  cbd plan --pick                 # Interactively choose which crates to include
  cbd plan -m backend/Cargo.toml  # Read a manifest somewhere else
`,
		Aliases: []string{"p"},
		RunE: func(cmd *cobra.Command, args []string) error {
			pick, err := cmd.Flags().GetBool(PICK_FLAG)
			if err != nil {
				return fmt.Errorf("failed to get pick flag: %w", err)
			}

			return emitBuildPlan(cmd, pick)
		},
	}

	cmd.Flags().BoolP(PICK_FLAG, "p", false, "Interactively select which dependencies to emit commands for")

	return cmd
}

// emitBuildPlan loads the resolved manifest and writes the build command lines
// to the command's stdout. It is shared between the root command and 'plan'.
func emitBuildPlan(cmd *cobra.Command, pick bool) error {
	fs := getFileSystemFromCommandContext(cmd)
	manifestPath := getManifestPathFromCommandContext(cmd)

	doc, err := manifest.Load(manifestPath, fs)
	if err != nil {
		return err
	}

	log.Debug("Loaded manifest", "path", doc.Path())

	if pick {
		return emitPickedBuildPlan(cmd, doc)
	}

	out := cmd.OutOrStdout()

	// A plain two-pass loop over the fixed section order. Output is not
	// buffered: when the second section is missing, lines from the first
	// pass have already been written.
	for _, section := range manifest.TargetSections {
		entries, err := doc.Section(section)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			fmt.Fprintf(out, "%s%s\n", BUILD_COMMAND_PREFIX, entry.Name)
		}
	}

	return nil
}

// emitPickedBuildPlan shows a multi-select of every declared dependency and
// emits commands only for the chosen ones, preserving manifest order.
func emitPickedBuildPlan(cmd *cobra.Command, doc *manifest.Document) error {
	names := make([]string, 0)

	// Both sections are checked before the UI runs, so a missing section
	// fails without half a prompt on screen
	for _, section := range manifest.TargetSections {
		entries, err := doc.Section(section)
		if err != nil {
			return err
		}

		names = append(names, lo.Map(entries, func(entry manifest.Entry, _ int) string {
			return entry.Name
		})...)
	}

	if len(names) == 0 {
		log.Warn("No dependencies declared in manifest", "path", doc.Path())
		return nil
	}

	newSelectUI := getDependencyMultiSelectUIFactoryFromCommandContext(cmd)

	selectUI := newSelectUI(names)

	if err := selectUI.Run(); err != nil {
		return err
	}

	selected := selectUI.Values()

	out := cmd.OutOrStdout()

	// Emission follows manifest order, not selection order
	for _, name := range names {
		if lo.Contains(selected, name) {
			fmt.Fprintf(out, "%s%s\n", BUILD_COMMAND_PREFIX, name)
		}
	}

	return nil
}
