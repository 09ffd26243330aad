package testhelper

import (
	"os"
	"path/filepath"
	"testing"
)

// ManifestTestContext provides a clean test environment for manifest-related tests
type ManifestTestContext struct {
	t           testing.TB
	tempDir     string
	originalCwd string
}

// NewManifestTestContext creates a new test context with automatic cleanup
func NewManifestTestContext(t testing.TB) *ManifestTestContext {
	ctx := &ManifestTestContext{t: t}

	originalCwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current working directory: %v", err)
	}
	ctx.originalCwd = originalCwd

	ctx.tempDir = t.TempDir()

	// Always restore the working directory, even when a test chdir'd away
	t.Cleanup(func() {
		if ctx.originalCwd != "" {
			if err := os.Chdir(ctx.originalCwd); err != nil {
				t.Logf("Warning: Failed to restore original working directory: %v", err)
			}
		}
	})

	return ctx
}

// TempDir returns the temporary directory path
func (ctx *ManifestTestContext) TempDir() string {
	return ctx.tempDir
}

// ChangeToTempDir changes the working directory to the temp directory
func (ctx *ManifestTestContext) ChangeToTempDir() {
	if err := os.Chdir(ctx.tempDir); err != nil {
		ctx.t.Fatalf("Failed to change to temp directory: %v", err)
	}
}

// CreateFile creates a file with the given name in the temp directory
func (ctx *ManifestTestContext) CreateFile(filename string, content []byte) string {
	path := filepath.Join(ctx.tempDir, filename)
	if err := os.WriteFile(path, content, 0644); err != nil {
		ctx.t.Fatalf("Failed to create file %s: %v", filename, err)
	}
	return path
}

// CreateManifest creates a Cargo.toml file in the temp directory
func (ctx *ManifestTestContext) CreateManifest(content string) string {
	return ctx.CreateFile("Cargo.toml", []byte(content))
}
