package manifest_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louiss0/cargo-build-delegator/manifest"
	"github.com/louiss0/cargo-build-delegator/testhelper"
)

func loadManifest(t *testing.T, content string) *manifest.Document {
	t.Helper()

	ctx := testhelper.NewManifestTestContext(t)
	path := ctx.CreateManifest(content)

	doc, err := manifest.Load(path, manifest.RealFileSystem{})
	require.NoError(t, err)

	return doc
}

func sectionNames(t *testing.T, doc *manifest.Document, section string) []string {
	t.Helper()

	entries, err := doc.Section(section)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}

func TestSectionPreservesDeclarationOrder(t *testing.T) {
	doc := loadManifest(t, `
[dependencies]
serde = "1.0"
rand = "0.8"
libc = "0.2"

[dev-dependencies]
tempfile = "3.0"
quickcheck = "1.0"
`)

	assert.Equal(t, []string{"serde", "rand", "libc"}, sectionNames(t, doc, manifest.SectionDependencies))
	assert.Equal(t, []string{"tempfile", "quickcheck"}, sectionNames(t, doc, manifest.SectionDevDependencies))
}

func TestSectionPreservesOrderOfInlineTables(t *testing.T) {
	doc := loadManifest(t, `
dependencies = { foo = "1.0", bar = "2.0" }
dev-dependencies = { baz = "0.1" }
`)

	assert.Equal(t, []string{"foo", "bar"}, sectionNames(t, doc, manifest.SectionDependencies))
	assert.Equal(t, []string{"baz"}, sectionNames(t, doc, manifest.SectionDevDependencies))
}

func TestSectionCountsSubtableEntriesOnce(t *testing.T) {
	doc := loadManifest(t, `
[dependencies]
serde = { version = "1.0", features = ["derive"] }

[dependencies.tokio]
version = "1.35"
features = ["full"]

[dev-dependencies]
tempfile = "3.0"
`)

	entries, err := doc.Section(manifest.SectionDependencies)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "serde", entries[0].Name)
	assert.Equal(t, "1.0", entries[0].SpecString())
	assert.Equal(t, "tokio", entries[1].Name)
	assert.Equal(t, "1.35", entries[1].SpecString())
}

func TestSectionEmptyTablesYieldNoEntries(t *testing.T) {
	doc := loadManifest(t, `
dependencies = {}
dev-dependencies = {}
`)

	assert.Empty(t, sectionNames(t, doc, manifest.SectionDependencies))
	assert.Empty(t, sectionNames(t, doc, manifest.SectionDevDependencies))
	assert.True(t, doc.HasSection(manifest.SectionDependencies))
	assert.True(t, doc.HasSection(manifest.SectionDevDependencies))
}

func TestSectionMissingIsAnError(t *testing.T) {
	doc := loadManifest(t, `
[dependencies]
serde = "1.0"
`)

	_, err := doc.Section(manifest.SectionDevDependencies)

	require.Error(t, err)
	assert.ErrorIs(t, err, manifest.ErrMissingSection)
	assert.False(t, doc.HasSection(manifest.SectionDevDependencies))
}

func TestSectionDefinedAsNonTableIsAParseError(t *testing.T) {
	doc := loadManifest(t, `
dependencies = "oops"
dev-dependencies = {}
`)

	_, err := doc.Section(manifest.SectionDependencies)

	require.Error(t, err)
	assert.ErrorIs(t, err, manifest.ErrManifestParse)
}

func TestLoadFailsOnMalformedToml(t *testing.T) {
	ctx := testhelper.NewManifestTestContext(t)
	path := ctx.CreateManifest("[dependencies\nserde = \"1.0\"\n")

	doc, err := manifest.Load(path, manifest.RealFileSystem{})

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, manifest.ErrManifestParse)
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	ctx := testhelper.NewManifestTestContext(t)

	doc, err := manifest.Load(filepath.Join(ctx.TempDir(), manifest.FileName), manifest.RealFileSystem{})

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, manifest.ErrManifestRead)
}

func TestEntrySpecString(t *testing.T) {
	testCases := []struct {
		name     string
		entry    manifest.Entry
		expected string
	}{
		{"plain version string", manifest.Entry{Name: "serde", Spec: "1.0"}, "1.0"},
		{"inline table with version", manifest.Entry{Name: "tokio", Spec: map[string]any{"version": "1.35", "features": []any{"full"}}}, "1.35"},
		{"inline table without version", manifest.Entry{Name: "local", Spec: map[string]any{"path": "../local"}}, ""},
		{"unexpected value type", manifest.Entry{Name: "weird", Spec: int64(3)}, ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.entry.SpecString())
		})
	}
}

func TestDetectManifestIn(t *testing.T) {
	ctx := testhelper.NewManifestTestContext(t)
	ctx.CreateManifest("[dependencies]\n")

	path, err := manifest.DetectManifestIn(ctx.TempDir(), manifest.RealFileSystem{})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(ctx.TempDir(), manifest.FileName), path)
}

func TestDetectManifestInFailsWhenAbsent(t *testing.T) {
	ctx := testhelper.NewManifestTestContext(t)

	_, err := manifest.DetectManifestIn(ctx.TempDir(), manifest.RealFileSystem{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, manifest.ErrManifestRead))
}
