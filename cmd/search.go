package cmd

import (
	// standard library
	"fmt"
	"strings"

	// external
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/cargo-build-delegator/custom_errors"
	"github.com/louiss0/cargo-build-delegator/services"
)

const SIZE_FLAG = "size"

// NewSearchCmd creates a new Cobra command for the "search" functionality.
// It queries the crates.io registry for crates matching a pattern and renders
// the results. Searching is read-only: nothing is installed, resolved, or
// written to the manifest.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <pattern>",
		Short: "Search crates.io for crates by name",
		Long: `Search the crates.io registry for crates matching the given pattern.

Examples:
  cbd search serde            # Search for crates named like "serde"
  cbd search tokio --size 25  # Show up to 25 results
`,
		Aliases: []string{"s"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return custom_errors.CreateInvalidArgumentErrorWithMessage(
					"requires exactly one argument representing the search pattern")
			}

			if strings.TrimSpace(args[0]) == "" {
				return custom_errors.CreateInvalidArgumentErrorWithMessage(
					"the search pattern cannot be empty or contain only whitespace")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := cmd.Flags().GetInt(SIZE_FLAG)
			if err != nil {
				return fmt.Errorf("failed to get size flag: %w", err)
			}

			registry := getCratesServiceFromCommandContext(cmd)

			crates, err := registry.SearchCrates(args[0], size)
			if err != nil {
				return err
			}

			if len(crates) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No crates found matching %s", args[0])
				return nil
			}

			goEnv := getGoEnvFromCommandContext(cmd)

			if goEnv.IsDevelopmentMode() {

				fmt.Fprintf(
					cmd.OutOrStdout(),
					"Here are the crates %s",
					strings.Join(
						lo.Map(crates, func(crate services.CrateInfo, _ int) string { return crate.Name }),
						",",
					),
				)
				return nil

			}

			log.Info("Search results:", "pattern", args[0])

			crateTableScaffold := table.New().
				Headers("name", "version", "description")

			lo.ForEach(crates, func(crate services.CrateInfo, index int) {

				crateTableScaffold.Rows([]string{crate.Name, crate.MaxVersion, crate.Description})

			})

			crateTable := lipgloss.NewStyle().Render(
				crateTableScaffold.Render(),
			)
			fmt.Println(crateTable)

			return nil
		},
	}

	cmd.Flags().IntP(SIZE_FLAG, "s", 10, "Maximum number of search results to show")

	return cmd
}
