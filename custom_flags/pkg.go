// Package custom_flags provides custom flag types for command-line argument parsing.
// It implements pflag.Value types that validate their input when set, so bad
// paths are rejected before any command logic runs.
package custom_flags

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"github.com/louiss0/cargo-build-delegator/build_info"
)

// isWindows returns true if running on Windows
func isWindows() bool {
	return runtime.GOOS == "windows"
}

// validateFilePath validates a file path according to the current platform
func validateFilePath(value string) bool {
	if isWindows() {
		return validateWindowsFilePath(value)
	}
	return validatePosixFilePath(value)
}

// validateFolderPath validates a folder path according to the current platform
func validateFolderPath(value string) bool {
	if isWindows() {
		return validateWindowsFolderPath(value)
	}
	return validatePosixFolderPath(value)
}

// validateWindowsFilePath validates Windows file paths.
// Accepts absolute, relative and UNC paths with either slash style; the path
// must end with a filename, not a separator.
func validateWindowsFilePath(value string) bool {
	windowsFilePathRegex := `^(?:(?:[a-zA-Z]:[/\\]|\\\\[^/\\:*?"<>|]+\\[^/\\:*?"<>|]+[/\\]|\.{1,2}[/\\])(?:[^/\\:*?"<>|]+[/\\])*|(?:[^/\\:*?"<>|]+[/\\])+)?[^/\\:*?"<>|]+$`
	match, _ := regexp.MatchString(windowsFilePathRegex, value)
	return match
}

// validateWindowsFolderPath validates Windows folder paths.
func validateWindowsFolderPath(value string) bool {
	// Reject paths whose last component looks like a file
	trimmed := strings.TrimRight(value, "/\\")
	if trimmed != "" {
		lastComponent := trimmed
		if lastSlash := strings.LastIndexAny(trimmed, "/\\"); lastSlash != -1 {
			lastComponent = trimmed[lastSlash+1:]
		}

		if strings.Contains(lastComponent, ".") && lastComponent != "." && lastComponent != ".." {
			return false
		}
	}

	windowsFolderPathRegex := `^(?:[a-zA-Z]:[/\\]?|\\\\[^/\\:*?"<>|]+\\[^/\\:*?"<>|]+[/\\]?|\.{1,2}[/\\]?|[^/\\:*?"<>|]+)(?:[/\\][^/\\:*?"<>|]+)*[/\\]?$`

	match, _ := regexp.MatchString(windowsFolderPathRegex, value)
	if !match {
		return false
	}

	// CI accepts anything the basic regex accepts
	if build_info.InCI() {
		return true
	}

	if value == "." || value == ".." {
		return true
	}

	if matched, _ := regexp.MatchString(`^[a-zA-Z]:$`, value); matched {
		return true
	}

	// Strict mode requires a trailing separator
	if !strings.HasSuffix(value, "/") && !strings.HasSuffix(value, "\\") {
		return false
	}

	return match
}

// validatePosixFilePath validates POSIX/UNIX file paths
func validatePosixFilePath(value string) bool {
	posixUnixFilePathRegex := `^(?:/?(?:[a-zA-Z0-9._-]+|\.{1,2})(?:/(?:[a-zA-Z0-9._-]+|\.{1,2}))*)?/?([a-zA-Z0-9._-]+)$`
	match, _ := regexp.MatchString(posixUnixFilePathRegex, value)
	return match
}

// validatePosixFolderPath validates POSIX/UNIX folder paths
func validatePosixFolderPath(value string) bool {
	// Strict mode (default): requires a trailing slash unless it's just "/"
	posixUnixFolderPathStrict := `^(?:/?(?:[a-zA-Z0-9._-]+|\.{1,2})(?:/(?:[a-zA-Z0-9._-]+|\.{1,2}))*/|\/)$`
	// CI-relaxed mode: accepts with or without trailing slash
	posixUnixFolderPathRelaxed := `^(?:/?(?:[a-zA-Z0-9._-]+|\.{1,2})(?:/(?:[a-zA-Z0-9._-]+|\.{1,2}))*/?|\/)$`

	regexToUse := posixUnixFolderPathStrict
	if build_info.InCI() {
		regexToUse = posixUnixFolderPathRelaxed
	}

	match, _ := regexp.MatchString(regexToUse, value)
	return match
}

// FilePathFlagInterface extends pflag.Value for file path flags
type FilePathFlagInterface interface {
	pflag.Value
	FlagName() string
}

// FolderPathFlagInterface extends pflag.Value for folder path flags
type FolderPathFlagInterface interface {
	pflag.Value
	FlagName() string
}

// filePathFlag represents a flag that must contain a valid file path
type filePathFlag struct {
	value    string
	flagName string
}

// NewFilePathFlag creates a new file path flag with the given flag name
func NewFilePathFlag(flagName string) FilePathFlagInterface {
	return &filePathFlag{flagName: flagName}
}

// String returns the flag's value as a string
func (p filePathFlag) String() string {
	return p.value
}

// Set validates and sets the flag's value, checking for valid file path format
func (p *filePathFlag) Set(value string) error {
	if len(value) == 0 || regexp.MustCompile(`^\s+$`).MatchString(value) {
		return fmt.Errorf("the %s flag cannot be empty or contain only whitespace", p.flagName)
	}

	if !validateFilePath(value) {
		return fmt.Errorf("the %s flag must be a valid file path: %s", p.flagName, value)
	}

	p.value = value
	return nil
}

// Type returns the flag's type as a string
func (p filePathFlag) Type() string {
	return "file-path"
}

// FlagName returns the name of the flag
func (p filePathFlag) FlagName() string {
	return p.flagName
}

// folderPathFlag represents a flag that must contain a valid folder path
type folderPathFlag struct {
	value    string
	flagName string
}

// NewFolderPathFlag creates a new folder path flag with the given flag name
func NewFolderPathFlag(flagName string) FolderPathFlagInterface {
	return &folderPathFlag{flagName: flagName}
}

// String returns the flag's value as a string
func (p folderPathFlag) String() string {
	return p.value
}

// Set validates and sets the flag's value, checking for valid folder path format
func (p *folderPathFlag) Set(value string) error {
	if len(value) == 0 || regexp.MustCompile(`^\s+$`).MatchString(value) {
		return fmt.Errorf("the %s flag cannot be empty or contain only whitespace", p.flagName)
	}

	if !validateFolderPath(value) {
		return fmt.Errorf("the %s flag must be a valid folder path: %s", p.flagName, value)
	}

	p.value = value
	return nil
}

// Type returns the flag's type as a string
func (p folderPathFlag) Type() string {
	return "folder-path"
}

// FlagName returns the name of the flag
func (p folderPathFlag) FlagName() string {
	return p.flagName
}
