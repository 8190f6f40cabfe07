package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestExpandRef(t *testing.T) {
	tests := []struct {
		name     string
		template string
		ref      string
		expected string
	}{
		{
			name:     "bare name with latest omits suffix",
			template: "tspkg",
			ref:      "latest",
			expected: "skelhq/tspkg",
		},
		{
			name:     "bare name with empty ref omits suffix",
			template: "base",
			ref:      "",
			expected: "skelhq/base",
		},
		{
			name:     "bare name with pinned ref",
			template: "tspkg",
			ref:      "v2",
			expected: "skelhq/tspkg#v2",
		},
		{
			name:     "third-party path passes through",
			template: "someone/starter",
			ref:      "latest",
			expected: "someone/starter",
		},
		{
			name:     "third-party path ignores ref",
			template: "someone/starter",
			ref:      "v9",
			expected: "someone/starter",
		},
		{
			name:     "third-party path with its own pin",
			template: "someone/starter#next",
			ref:      "latest",
			expected: "someone/starter#next",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandRef(tt.template, tt.ref); got != tt.expected {
				t.Errorf("ExpandRef(%q, %q) = %q, want %q", tt.template, tt.ref, got, tt.expected)
			}
		})
	}
}

func TestSplitRef(t *testing.T) {
	url, rev := splitRef("skelhq/tspkg")
	assert.Equal(t, "https://github.com/skelhq/tspkg.git", url)
	assert.Empty(t, rev)

	url, rev = splitRef("someone/starter#v2")
	assert.Equal(t, "https://github.com/someone/starter.git", url)
	assert.Equal(t, "v2", rev)
}

func TestRevListed(t *testing.T) {
	refs := []*plumbing.Reference{
		plumbing.NewReferenceFromStrings("refs/heads/main", "0000000000000000000000000000000000000000"),
		plumbing.NewReferenceFromStrings("refs/tags/v2", "0000000000000000000000000000000000000000"),
	}

	assert.True(t, revListed(refs, ""), "head always exists")
	assert.True(t, revListed(refs, "main"), "branches are advertised")
	assert.True(t, revListed(refs, "v2"), "tags are advertised")
	assert.False(t, revListed(refs, "ghost"), "unknown rev must fail verification")
}

func TestRewriteManifest(t *testing.T) {
	t.Run("renames and drops private, keeping formatting", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "package.json")
		original := "{\n    \"name\": \"template-placeholder\",\n    \"private\": true,\n    \"version\": \"0.0.1\"\n}\n"
		require.NoError(t, os.WriteFile(path, []byte(original), 0644))

		require.NoError(t, RewriteManifest(path, "my-app"))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		doc := string(raw)

		assert.Equal(t, "my-app", gjson.Get(doc, "name").String())
		assert.False(t, gjson.Get(doc, "private").Exists())
		assert.Equal(t, "0.0.1", gjson.Get(doc, "version").String())
		// four-space indentation survived the edit
		assert.Contains(t, doc, "    \"version\"")
	})

	t.Run("missing package.json is not an error", func(t *testing.T) {
		assert.NoError(t, RewriteManifest(filepath.Join(t.TempDir(), "package.json"), "my-app"))
	})

	t.Run("invalid json is reported", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "package.json")
		require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))
		assert.Error(t, RewriteManifest(path, "my-app"))
	})
}

func TestFinalize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".changeset"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CHANGELOG.md"), []byte("# log"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".github", "FUNDING.yml"), []byte("github: x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# hi"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"x","private":true}`), 0644))

	require.NoError(t, Finalize(dir, "fresh-app"))

	assert.NoFileExists(t, filepath.Join(dir, "CHANGELOG.md"))
	assert.NoDirExists(t, filepath.Join(dir, ".changeset"))
	assert.NoFileExists(t, filepath.Join(dir, ".github", "FUNDING.yml"))
	assert.FileExists(t, filepath.Join(dir, "README.md"))

	raw, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, "fresh-app", gjson.Get(string(raw), "name").String())
	assert.False(t, gjson.Get(string(raw), "private").Exists())
}
