package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_FormatsBuiltinLocales(t *testing.T) {
	c, err := NewCatalog("en")
	require.NoError(t, err)

	assert.Equal(t, "Meters", c.Format("meters", "en"))
	assert.Equal(t, "Compteurs", c.Format("meters", "fr"))
	assert.Equal(t, "Medidores", c.Format("meters", "es"))
	assert.ElementsMatch(t, []string{"en", "fr", "es"}, c.Locales())
}

func TestCatalog_RegionalLocaleMatchesBase(t *testing.T) {
	c, err := NewCatalog("en")
	require.NoError(t, err)

	assert.Equal(t, "Groupes", c.Format("groups", "fr-CA"))
}

func TestCatalog_Fallbacks(t *testing.T) {
	c, err := NewCatalog("en")
	require.NoError(t, err)

	// Missing from fr, present in en.
	assert.Equal(t, "Failed to load readings", c.Format("load.failed", "fr"))
	// Unsupported locale resolves to the fallback.
	assert.Equal(t, "Meters", c.Format("meters", "ja"))
	// Unknown id is returned as-is.
	assert.Equal(t, "no.such.id", c.Format("no.such.id", "en"))
}

func TestCatalog_UnknownFallback(t *testing.T) {
	_, err := NewCatalog("xx")
	assert.Error(t, err)
}

func TestCatalog_MergeOverrides(t *testing.T) {
	c, err := NewCatalog("en")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(file, []byte("en:\n  meters: Submeters\nde:\n  meters: Zähler\n"), 0o644))
	require.NoError(t, c.Merge(file))

	assert.Equal(t, "Submeters", c.Format("meters", "en"))
	assert.Equal(t, "Zähler", c.Format("meters", "de-AT"))
	assert.Equal(t, "Groups", c.Format("groups", "de"))
}

func TestCatalog_MergeErrors(t *testing.T) {
	c, err := NewCatalog("en")
	require.NoError(t, err)

	assert.Error(t, c.Merge(filepath.Join(t.TempDir(), "missing.yml")))

	bad := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("en: [not, a, map]\n"), 0o644))
	assert.Error(t, c.Merge(bad))
}
