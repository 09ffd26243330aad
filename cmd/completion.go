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
)

// supportedCompletionShells lists the shells cobra can generate completion
// scripts for.
var supportedCompletionShells = []string{"bash", "zsh", "fish", "powershell"}

// NewCompletionCmd creates the 'completion' command
func NewCompletionCmd() *cobra.Command {
	completionCmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cbd.

To install completion for your shell, run:

Bash:
		$ cbd completion bash > /etc/bash_completion.d/cbd

Zsh:
		# To load completions for each session, run:
		$ cbd completion zsh > "${fpath[1]}/_cbd"
		# You will need to start a new shell for this setup to take effect.

Fish:
		$ cbd completion fish > ~/.config/fish/completions/cbd.fish

PowerShell:
		PS> cbd completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true, // Don't show global flags for completion command itself
		Args: func(cmd *cobra.Command, args []string) error {
			supportedShells := append([]string{}, supportedCompletionShells...)

			// Sort for consistent output and efficient lookup
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
			out := cmd.OutOrStdout()

			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}

			return nil
		},
	}

	return completionCmd
}
