package cmd

import (
	// standard library
	"fmt"
	"sort"
	"strings"

	// external
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/cargo-build-delegator/custom_errors"
	"github.com/louiss0/cargo-build-delegator/shell_alias"
)

// CommandAliasMap maps canonical subcommand names to the shorthand functions
// generated by 'cbd integrate'.
var CommandAliasMap = map[string][]string{
	"plan":   {"cbp", "cbd-plan"},
	"list":   {"cbl", "cbd-list"},
	"search": {"cbs", "cbd-search"},
}

// NewIntegrateCmd creates the 'integrate' command, which prints shell alias
// functions (with completion wiring where the shell supports it) for the cbd
// subcommands.
func NewIntegrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrate <shell>",
		Short: "Generate shell alias functions for cbd subcommands",
		Long: `Generate alias functions for cbd subcommands, ready to source from your
shell configuration.

Supported shells: bash, zsh, fish, nushell, powershell

Examples:
  cbd integrate bash >> ~/.bashrc
  cbd integrate zsh  >> ~/.zshrc
  cbd integrate fish > ~/.config/fish/conf.d/cbd.fish
`,
		DisableFlagsInUseLine: true,
		Args: func(cmd *cobra.Command, args []string) error {
			supportedShells := []string{
				string(shell_alias.Bash),
				string(shell_alias.Zsh),
				string(shell_alias.Fish),
				string(shell_alias.Nushell),
				string(shell_alias.PowerShell),
			}

			sort.Strings(supportedShells)

			supportedShellList := strings.Join(supportedShells, ", ")

			if len(args) != 1 {
				return custom_errors.CreateInvalidArgumentErrorWithMessage(
					fmt.Sprintf("requires exactly one argument representing the shell. Supported shells are: %s", supportedShellList))
			}

			shell := args[0]

			idx := sort.SearchStrings(supportedShells, shell)
			if idx >= len(supportedShells) || supportedShells[idx] != shell {
				return custom_errors.CreateInvalidArgumentErrorWithMessage(
					fmt.Sprintf("unsupported shell: '%s'. Supported shells are: %s", shell, supportedShellList))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			generator := shell_alias.NewGenerator()

			var output string

			switch shell_alias.Shell(args[0]) {
			case shell_alias.Bash:
				output = generator.GenerateBash(CommandAliasMap)
			case shell_alias.Zsh:
				output = generator.GenerateZsh(CommandAliasMap)
			case shell_alias.Fish:
				output = generator.GenerateFish(CommandAliasMap)
			case shell_alias.Nushell:
				output = generator.GenerateNushell(CommandAliasMap)
			case shell_alias.PowerShell:
				output = generator.GeneratePowerShell(CommandAliasMap)
			}

			fmt.Fprint(cmd.OutOrStdout(), output)

			return nil
		},
	}

	return cmd
}
