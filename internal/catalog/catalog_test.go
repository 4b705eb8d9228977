package catalog

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seeded struct{ r *rand.Rand }

func (s seeded) IntN(n int) int { return s.r.IntN(n) }

func newSeeded(seed uint64) seeded {
	return seeded{r: rand.New(rand.NewPCG(seed, seed))}
}

func TestDefaultCatalogHasAllFeatures(t *testing.T) {
	c := Default()
	for _, f := range []Feature{Excuse, Fortune, CalculatorComment, CalculatorApology} {
		assert.True(t, c.Has(f), "missing feature %s", f)
		assert.NotEmpty(t, c.Entries(f, "tr"), "no tr entries for %s", f)
		assert.NotEmpty(t, c.Entries(f, "en"), "no en entries for %s", f)
	}
}

func TestEntriesIncludeShared(t *testing.T) {
	c, err := Parse([]byte(`
features:
  excuse:
    tr: ["a", "b"]
    en: ["c"]
    shared: ["s"]
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "s"}, c.Entries(Excuse, "tr"))
	assert.Equal(t, []string{"c", "s"}, c.Entries(Excuse, "en"))
}

func TestEntriesFallBackToAnyLanguage(t *testing.T) {
	c, err := Parse([]byte(`
features:
  fortune:
    tr: ["yalnız türkçe"]
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"yalnız türkçe"}, c.Entries(Fortune, "en"))
}

func TestPickDeterministicWithSeed(t *testing.T) {
	c := Default()
	first, err := c.Pick(newSeeded(7), Excuse, "tr")
	require.NoError(t, err)
	second, err := c.Pick(newSeeded(7), Excuse, "tr")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, c.Entries(Excuse, "tr"), first)
}

func TestPickUnknownFeature(t *testing.T) {
	_, err := Default().Pick(newSeeded(1), Feature("nope"), "en")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFeature))
}

func TestParseRejectsEmptyFeature(t *testing.T) {
	_, err := Parse([]byte(`
features:
  excuse:
    tr: []
    en: [""]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "excuse")
}

func TestParseRejectsEmptyFile(t *testing.T) {
	_, err := Parse([]byte(`features: {}`))
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("features:\n  excuse:\n    en: [\"only one\"]\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Feature{Excuse}, c.Features())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadEmbedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.True(t, c.Has(Fortune))
}
