// Package manifest loads Cargo.toml files and exposes their dependency
// sections as ordered lists of entries. Entry order always matches the
// declaration order in the source file so that generated output is
// reproducible across runs.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the well-known manifest filename looked up when no explicit
// manifest path is given.
const FileName = "Cargo.toml"

const (
	SectionDependencies    = "dependencies"
	SectionDevDependencies = "dev-dependencies"
)

// TargetSections lists the sections the translator consults, in the fixed
// order they are processed.
// ! Do not reorder: dependencies must always be emitted before dev-dependencies
var TargetSections = [2]string{SectionDependencies, SectionDevDependencies}

// ErrManifestRead is returned when the manifest file does not exist or
// cannot be read.
var ErrManifestRead = errors.New("manifest file cannot be read")

// ErrManifestParse is returned when the manifest contents are not valid TOML,
// or when a required section is present but is not a table.
var ErrManifestParse = errors.New("manifest is not valid TOML")

// ErrMissingSection is returned when a required top-level section is absent
// from the parsed manifest.
var ErrMissingSection = errors.New("required section is missing from manifest")

// FileSystem interface abstracts file system operations for testability.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	Stat(name string) (os.FileInfo, error)
	Getwd() (string, error)
}

// RealFileSystem is the production implementation of FileSystem.
type RealFileSystem struct{}

// ReadFile implements FileSystem using the real os.ReadFile.
func (r RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Stat implements FileSystem using the real os.Stat.
func (r RealFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Getwd implements FileSystem using the real os.Getwd.
func (r RealFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// Entry is a single dependency declaration: a crate name mapped to a version
// specifier. The specifier is carried as-is and never validated; it may be a
// plain version string or an inline table.
type Entry struct {
	Name string
	Spec any
}

// SpecString renders the version specifier for display. Plain strings are
// returned verbatim; inline tables are reduced to their "version" key when
// one exists. Anything else renders as an empty string.
func (e Entry) SpecString() string {
	switch spec := e.Spec.(type) {
	case string:
		return spec
	case map[string]any:
		if version, ok := spec["version"].(string); ok {
			return version
		}
	}

	return ""
}

// Document is a parsed manifest. It is created once by Load and read-only
// afterwards.
type Document struct {
	path   string
	meta   toml.MetaData
	tables map[string]any
}

// Load reads and parses the manifest at path using the injected FileSystem.
// Read failures wrap ErrManifestRead and parse failures wrap ErrManifestParse.
func Load(path string, fs FileSystem) (*Document, error) {
	data, err := fs.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestRead, path, err)
	}

	var tables map[string]any
	meta, err := toml.Decode(string(data), &tables)

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestParse, path, err)
	}

	return &Document{path: path, meta: meta, tables: tables}, nil
}

// Path returns the filesystem path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// HasSection reports whether the named top-level section was defined in the
// source file. An empty table still counts as defined.
func (d *Document) HasSection(name string) bool {
	return d.meta.IsDefined(name)
}

// Section returns the entries of the named top-level section in declaration
// order. A section that was never defined yields ErrMissingSection; a section
// defined as something other than a table yields ErrManifestParse.
func (d *Document) Section(name string) ([]Entry, error) {

	if !d.meta.IsDefined(name) {
		return nil, fmt.Errorf("%w: %s", ErrMissingSection, name)
	}

	table, ok := d.tables[name].(map[string]any)

	if !ok {
		return nil, fmt.Errorf("%w: %s is not a table", ErrManifestParse, name)
	}

	// MetaData.Keys reports every defined key in source order. Entries of this
	// section are exactly the two-part keys whose first part is the section
	// name; deeper keys belong to inline/sub tables of an entry.
	entries := make([]Entry, 0, len(table))
	seen := make(map[string]bool, len(table))

	for _, key := range d.meta.Keys() {
		if len(key) != 2 || key[0] != name || seen[key[1]] {
			continue
		}

		seen[key[1]] = true
		entries = append(entries, Entry{Name: key[1], Spec: table[key[1]]})
	}

	return entries, nil
}

// DetectManifestIn resolves the well-known manifest filename inside dir and
// verifies it exists. The returned path is dir joined with FileName.
func DetectManifestIn(dir string, fs FileSystem) (string, error) {
	path := filepath.Join(dir, FileName)

	if _, err := fs.Stat(path); err != nil {
		return "", fmt.Errorf("%w: no %s found in %s", ErrManifestRead, FileName, dir)
	}

	return path, nil
}
