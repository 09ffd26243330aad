// Package shell_alias provides functionality for generating shell alias functions
// and completion wiring for cbd subcommands across different shell types.
package shell_alias

import (
	"fmt"
	"strings"
)

// Shell represents the supported shell types for alias generation.
type Shell string

// Supported shell types
const (
	Bash       Shell = "bash"
	Zsh        Shell = "zsh"
	Fish       Shell = "fish"
	Nushell    Shell = "nushell"
	PowerShell Shell = "powershell"
)

// Generator provides methods for generating shell alias functions with completion wiring.
type Generator interface {
	// GenerateBash generates bash alias functions and completion wiring.
	// Input: map[string][]string where keys are canonical subcommand names
	// and values are lists of shorthand names to generate functions for.
	GenerateBash(aliases map[string][]string) string

	// GenerateZsh generates zsh alias functions and completion wiring.
	GenerateZsh(aliases map[string][]string) string

	// GenerateFish generates fish alias functions and completion wiring.
	GenerateFish(aliases map[string][]string) string

	// GenerateNushell generates nushell alias functions.
	GenerateNushell(aliases map[string][]string) string

	// GeneratePowerShell generates PowerShell alias functions and completion wiring.
	GeneratePowerShell(aliases map[string][]string) string
}

// generator is the concrete implementation of the Generator interface.
type generator struct{}

// NewGenerator creates a new instance of the shell alias generator.
func NewGenerator() Generator {
	return &generator{}
}

// GenerateBash generates bash alias functions and completion wiring.
func (g *generator) GenerateBash(aliases map[string][]string) string {
	var result strings.Builder

	result.WriteString("# cbd shorthand aliases\n")

	// Guard clause so sourcing the file is a no-op when cbd is absent
	result.WriteString("command -v cbd > /dev/null || return 0\n\n")

	for subcommand, aliasNames := range aliases {
		for _, aliasName := range aliasNames {
			result.WriteString(fmt.Sprintf("function %s() { command cbd %s \"$@\"; }\n", aliasName, subcommand))
			result.WriteString(fmt.Sprintf("complete -F __start_cbd %s\n", aliasName))
			result.WriteString("\n")
		}
	}

	return result.String()
}

// GenerateZsh generates zsh alias functions and completion wiring.
func (g *generator) GenerateZsh(aliases map[string][]string) string {
	var result strings.Builder

	result.WriteString("# cbd shorthand aliases\n")
	result.WriteString("(( $+commands[cbd] )) || return\n\n")

	for subcommand, aliasNames := range aliases {
		for _, aliasName := range aliasNames {
			result.WriteString(fmt.Sprintf("%s() { cbd %s \"$@\"; }\n", aliasName, subcommand))
			result.WriteString(fmt.Sprintf("compdef _cbd %s\n", aliasName))
			result.WriteString("\n")
		}
	}

	return result.String()
}

// GenerateFish generates fish alias functions and completion wiring.
func (g *generator) GenerateFish(aliases map[string][]string) string {
	var result strings.Builder

	result.WriteString("# cbd shorthand aliases\n\n")

	for subcommand, aliasNames := range aliases {
		for _, aliasName := range aliasNames {
			result.WriteString(fmt.Sprintf("function %s\n", aliasName))
			result.WriteString(fmt.Sprintf("    cbd %s $argv\n", subcommand))
			result.WriteString("end\n")
			result.WriteString(fmt.Sprintf("complete -c %s -w cbd\n", aliasName))
			result.WriteString("\n")
		}
	}

	return result.String()
}

// GenerateNushell generates nushell alias functions.
func (g *generator) GenerateNushell(aliases map[string][]string) string {
	var result strings.Builder

	result.WriteString("# cbd shorthand aliases\n\n")

	for subcommand, aliasNames := range aliases {
		for _, aliasName := range aliasNames {
			result.WriteString(fmt.Sprintf("export extern \"%s\" [\n", aliasName))
			result.WriteString("    ...args: string\n")
			result.WriteString("]\n")
			result.WriteString(fmt.Sprintf("export def %s [...args] {\n", aliasName))
			result.WriteString(fmt.Sprintf("    cbd %s $args\n", subcommand))
			result.WriteString("}\n\n")
		}
	}

	return result.String()
}

// GeneratePowerShell generates PowerShell alias functions and completion wiring.
func (g *generator) GeneratePowerShell(aliases map[string][]string) string {
	var result strings.Builder

	result.WriteString("# cbd shorthand aliases\n\n")

	result.WriteString("if (-not (Get-Command cbd -ErrorAction SilentlyContinue)) {\n")
	result.WriteString("    return\n")
	result.WriteString("}\n\n")

	for subcommand, aliasNames := range aliases {
		for _, aliasName := range aliasNames {
			result.WriteString(fmt.Sprintf("function %s {\n", aliasName))
			result.WriteString(fmt.Sprintf("    cbd %s @args\n", subcommand))
			result.WriteString("}\n")
			result.WriteString(fmt.Sprintf("Register-ArgumentCompleter -CommandName '%s' -ScriptBlock {\n", aliasName))
			result.WriteString("    param($commandName, $parameterName, $wordToComplete, $commandAst, $fakeBoundParameters)\n")
			result.WriteString("    $completions = @()\n")
			result.WriteString("    return $completions\n")
			result.WriteString("}\n\n")
		}
	}

	return result.String()
}
