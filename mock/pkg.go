// Package mock provides mock implementations for testing the cargo-build-delegator.
package mock

import (
	// standard library
	"io/fs"
	"os"
	"time"

	// external
	"github.com/stretchr/testify/mock"

	// internal
	"github.com/louiss0/cargo-build-delegator/cmd"
	"github.com/louiss0/cargo-build-delegator/services"
)

// MockCratesRegistryService implements the services.CratesRegistryService
// interface for testing purposes. It uses testify/mock for expectations so no
// real network traffic happens during tests.
type MockCratesRegistryService struct {
	mock.Mock
}

// NewMockCratesRegistryService creates a new instance of MockCratesRegistryService
func NewMockCratesRegistryService() *MockCratesRegistryService {
	return &MockCratesRegistryService{}
}

// SearchCrates records the call and returns the configured results.
func (m *MockCratesRegistryService) SearchCrates(pattern string, size int) ([]services.CrateInfo, error) {
	args := m.Called(pattern, size)

	var crates []services.CrateInfo
	if args.Get(0) != nil {
		crates = args.Get(0).([]services.CrateInfo)
	}

	return crates, args.Error(1)
}

// MockDependencyMultiSelectUI implements cmd.DependencyUIMultiSelector for
// testing purposes. The selection it reports is configured up front instead of
// coming from an interactive prompt.
type MockDependencyMultiSelectUI struct {
	SelectedValues []string
	RunErr         error
	Options        []string
	RunCallCount   int
}

// NewMockDependencyMultiSelectUIFactory returns a factory compatible with
// cmd.Dependencies that records the options it was built with and reports the
// given selection.
func NewMockDependencyMultiSelectUIFactory(selected []string, runErr error) (func(options []string) cmd.DependencyUIMultiSelector, *MockDependencyMultiSelectUI) {
	ui := &MockDependencyMultiSelectUI{
		SelectedValues: selected,
		RunErr:         runErr,
	}

	return func(options []string) cmd.DependencyUIMultiSelector {
		ui.Options = options
		return ui
	}, ui
}

// Run records the invocation and returns the configured error.
func (ui *MockDependencyMultiSelectUI) Run() error {
	ui.RunCallCount++
	return ui.RunErr
}

// Values returns the configured selection.
func (ui *MockDependencyMultiSelectUI) Values() []string {
	return ui.SelectedValues
}

// MockFileSystem implements manifest.FileSystem backed by an in-memory map.
// Missing files report fs.ErrNotExist, mirroring the real filesystem.
type MockFileSystem struct {
	Files map[string][]byte
	Cwd   string
}

// NewMockFileSystem creates a MockFileSystem with no files and "/" as the
// working directory.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files: map[string][]byte{},
		Cwd:   "/",
	}
}

// AddFile registers a file with the given contents.
func (m *MockFileSystem) AddFile(name string, content []byte) {
	m.Files[name] = content
}

// ReadFile returns the registered contents or fs.ErrNotExist.
func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	content, ok := m.Files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return content, nil
}

// Stat returns a synthetic FileInfo for registered files or fs.ErrNotExist.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	content, ok := m.Files[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return fakeFileInfo{name: name, size: int64(len(content))}, nil
}

// Getwd returns the configured working directory.
func (m *MockFileSystem) Getwd() (string, error) {
	return m.Cwd, nil
}

// fakeFileInfo is the os.FileInfo returned by MockFileSystem.Stat.
type fakeFileInfo struct {
	name string
	size int64
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return f.size }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0644 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return false }
func (f fakeFileInfo) Sys() any           { return nil }
