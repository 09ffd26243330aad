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
	"github.com/louiss0/cargo-build-delegator/manifest"
)

// dependencyRow is one line of the list output.
type dependencyRow struct {
	Name    string
	Spec    string
	Section string
}

// NewListCmd creates a new Cobra command for the "list" functionality.
// It shows every dependency declared in the two target tables together with
// its version specifier and the table it came from. The specifiers are
// displayed as-is; cbd never interprets or validates them.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show declared dependencies with their version specifiers",
		Long: `List every dependency declared in the manifest's [dependencies] and
[dev-dependencies] tables, with the version specifier and owning table.

Examples:
  cbd list                        # List dependencies of ./Cargo.toml
  cbd list -m backend/Cargo.toml  # List dependencies of another manifest
`,
		Aliases: []string{"ls", "l"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := getFileSystemFromCommandContext(cmd)
			manifestPath := getManifestPathFromCommandContext(cmd)

			doc, err := manifest.Load(manifestPath, fs)
			if err != nil {
				return err
			}

			goEnv := getGoEnvFromCommandContext(cmd)

			rows := make([]dependencyRow, 0)

			for _, section := range manifest.TargetSections {
				entries, err := doc.Section(section)
				if err != nil {
					return err
				}

				rows = append(rows, lo.Map(entries, func(entry manifest.Entry, _ int) dependencyRow {
					return dependencyRow{
						Name:    entry.Name,
						Spec:    entry.SpecString(),
						Section: section,
					}
				})...)
			}

			if len(rows) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No dependencies found in %s", doc.Path())
				return nil
			}

			if goEnv.IsDevelopmentMode() {

				fmt.Fprintf(
					cmd.OutOrStdout(),
					"Here are the dependencies %s",
					strings.Join(
						lo.Map(rows, func(row dependencyRow, _ int) string { return row.Name }),
						",",
					),
				)
				return nil

			}

			log.Info("Declared dependencies:")

			depTableScaffold := table.New().
				Headers("name", "version", "section")

			lo.ForEach(rows, func(row dependencyRow, index int) {

				depTableScaffold.Rows([]string{row.Name, row.Spec, row.Section})

			})

			depTable := lipgloss.NewStyle().Render(
				depTableScaffold.Render(),
			)
			fmt.Println(depTable)

			return nil
		},
	}

	return cmd
}
