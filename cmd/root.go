/*
Copyright © 2025 Shelton Louis

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package cmd provides command-line interface implementations for the cargo build delegator.
package cmd

import (
	// standard library
	"context"
	"os"
	"path/filepath"

	// external
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/cargo-build-delegator/build_info"
	"github.com/louiss0/cargo-build-delegator/custom_flags"
	"github.com/louiss0/cargo-build-delegator/env"
	"github.com/louiss0/cargo-build-delegator/manifest"
	"github.com/louiss0/cargo-build-delegator/services"
)

// Constants for context keys and configuration
const (
	_GO_ENV              = "go_env"        // Used for storing GoEnv in context
	_FILE_SYSTEM         = "file_system"   // Key for the injected manifest.FileSystem
	_MANIFEST_PATH       = "manifest-path" // Resolved manifest path for the invocation
	_CRATES_SERVICE      = "crates_service"
	_DEP_MULTI_SELECT_UI = "dependency_multi_select_ui"
)

const (
	MANIFEST_FLAG = "manifest"
	_CWD_FLAG     = "cwd"
	_DEBUG_FLAG   = "debug"
)

// DependencyUIMultiSelector provides an interface for interactively selecting
// a subset of dependency names. It allows for mocking the UI in tests.
type DependencyUIMultiSelector interface {
	Values() []string
	Run() error
}

// Dependencies holds the external dependencies for testing and real execution
type Dependencies struct {
	FileSystem                 manifest.FileSystem
	CratesRegistryService      services.CratesRegistryService
	NewDependencyMultiSelectUI func(options []string) DependencyUIMultiSelector
}

// NewRootCmd creates a new root command with injectable dependencies.
func NewRootCmd(deps Dependencies) *cobra.Command {
	cwdFlag := custom_flags.NewFolderPathFlag(_CWD_FLAG)
	manifestFlag := custom_flags.NewFilePathFlag(MANIFEST_FLAG)

	cmd := &cobra.Command{
		Use:     "cbd",
		Version: build_info.CLI_VERSION.String(), // Default version or set via build process
		Short:   "Cargo Build Delegator - turn a Cargo.toml into per-crate build commands",
		Long: `Cargo Build Delegator (cbd) - reads a Cargo.toml manifest and prints one
'cargo build -p <crate>' command for every entry in its [dependencies] and
[dev-dependencies] tables, in the order they are declared.

The manifest is resolved from the --manifest flag, or defaults to the
Cargo.toml in the target working directory (--cwd or the process cwd).

Available commands:
		plan       - Print the build command for every declared dependency (default)
		list       - Show declared dependencies with their version specifiers
		search     - Search crates.io for crates by name
		completion - Generate shell completion scripts
		integrate  - Generate shell alias functions for cbd subcommands`,
		SilenceUsage: true,

		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			// Load .env file
			err := godotenv.Load()

			if err != nil && !os.IsNotExist(err) {
				log.Error(err.Error()) // Log error, but don't stop execution unless critical
			}

			goEnv := env.NewGoEnv()

			debug, err := c.Flags().GetBool(_DEBUG_FLAG)
			if err != nil {
				return err
			}

			if debug {
				log.SetLevel(log.DebugLevel)
			}

			// Determine the target directory from the cwd flag or use the
			// process working directory
			targetDir := cwdFlag.String()
			if targetDir == "" {
				cwd, err := deps.FileSystem.Getwd()
				if err != nil {
					return err
				}
				targetDir = cwd
			}

			// The manifest path is an explicit input: either the --manifest
			// flag, or the well-known filename inside the target directory.
			// Existence is not checked here; loading reports read failures so
			// the error taxonomy stays in one place.
			manifestPath := manifestFlag.String()
			if manifestPath == "" {
				manifestPath = filepath.Join(targetDir, manifest.FileName)
			}

			log.Debug("Resolved manifest path", "path", manifestPath)

			// Store dependencies and other derived values in the command context
			c_ctx := c.Context()

			lo.ForEach([][2]any{
				{_GO_ENV, goEnv},
				{_FILE_SYSTEM, deps.FileSystem},
				{_MANIFEST_PATH, manifestPath},
				{_CRATES_SERVICE, deps.CratesRegistryService},
				{_DEP_MULTI_SELECT_UI, deps.NewDependencyMultiSelectUI},
			}, func(item [2]any, index int) {
				c_ctx = context.WithValue(
					c_ctx,
					item[0],
					item[1],
				)
			})

			c.SetContext(c_ctx)
			return nil
		},

		// A bare invocation behaves exactly like `cbd plan`
		RunE: func(c *cobra.Command, args []string) error {
			return emitBuildPlan(c, false)
		},
	}

	// Add all subcommands
	cmd.AddCommand(NewPlanCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewCompletionCmd())
	cmd.AddCommand(NewIntegrateCmd())

	cmd.PersistentFlags().BoolP(_DEBUG_FLAG, "d", false, "Make commands run in debug mode")

	cmd.PersistentFlags().VarP(manifestFlag, MANIFEST_FLAG, "m", "Path to the Cargo.toml manifest to read")

	cmd.PersistentFlags().VarP(cwdFlag, _CWD_FLAG, "C", "Set the working directory for commands (must end with '/' unless it's just '/')")

	return cmd
}

// Global variable for the root command, initialized in init()
var rootCmd *cobra.Command

func init() {
	// Initialize the global rootCmd with real implementations of its dependencies
	rootCmd = NewRootCmd(
		Dependencies{
			FileSystem:                 manifest.RealFileSystem{},
			CratesRegistryService:      services.NewCratesRegistryService(),
			NewDependencyMultiSelectUI: newDependencyMultiSelectUI,
		},
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

// Helper functions to retrieve dependencies and other values from the command context.
// These functions are used by subcommands to get their required dependencies.

func getGoEnvFromCommandContext(cmd *cobra.Command) env.GoEnv {
	goEnv := cmd.Context().Value(_GO_ENV).(env.GoEnv)
	return goEnv
}

func getFileSystemFromCommandContext(cmd *cobra.Command) manifest.FileSystem {
	return cmd.Context().Value(_FILE_SYSTEM).(manifest.FileSystem)
}

func getManifestPathFromCommandContext(cmd *cobra.Command) string {
	return cmd.Context().Value(_MANIFEST_PATH).(string)
}

func getCratesServiceFromCommandContext(cmd *cobra.Command) services.CratesRegistryService {
	return cmd.Context().Value(_CRATES_SERVICE).(services.CratesRegistryService)
}

func getDependencyMultiSelectUIFactoryFromCommandContext(cmd *cobra.Command) func(options []string) DependencyUIMultiSelector {
	return cmd.Context().Value(_DEP_MULTI_SELECT_UI).(func(options []string) DependencyUIMultiSelector)
}
