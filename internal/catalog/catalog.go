// Package catalog holds the static phrase lists served when live text
// generation is unavailable.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Feature identifies one phrase list.
type Feature string

// Catalog features.
const (
	Excuse            Feature = "excuse"
	Fortune           Feature = "fortune"
	CalculatorComment Feature = "calculator_comment"
	CalculatorApology Feature = "calculator_apology"
)

// SharedKey holds entries served regardless of the requested language.
const SharedKey = "shared"

//go:embed catalog.yaml
var defaultCatalog []byte

// ErrUnknownFeature is returned when a feature has no list.
var ErrUnknownFeature = errors.New("catalog: unknown feature")

// File is the on-disk shape of a catalog.
// Each feature maps a language tag (or "shared") to its entries.
type File struct {
	Features map[string]map[string][]string `yaml:"features"`
}

// Catalog is an immutable set of phrase lists. Safe for concurrent use.
type Catalog struct {
	entries map[Feature]map[string][]string
}

// Source is the random decision a Pick uses.
type Source interface {
	IntN(n int) int
}

// Load reads the catalog from path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded catalog. It panics if the embedded file is
// invalid, which is a build defect.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a YAML catalog. Every feature present must
// have at least one entry across its languages.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Features) == 0 {
		return nil, errors.New("catalog has no features")
	}

	c := &Catalog{entries: make(map[Feature]map[string][]string, len(f.Features))}
	for name, langs := range f.Features {
		total := 0
		byLang := make(map[string][]string, len(langs))
		for lang, list := range langs {
			kept := make([]string, 0, len(list))
			for _, e := range list {
				if e != "" {
					kept = append(kept, e)
				}
			}
			byLang[lang] = kept
			total += len(kept)
		}
		if total == 0 {
			return nil, fmt.Errorf("catalog feature %q has no entries", name)
		}
		c.entries[Feature(name)] = byLang
	}
	return c, nil
}

// Has reports whether the catalog carries a list for f.
func (c *Catalog) Has(f Feature) bool {
	if c == nil {
		return false
	}
	_, ok := c.entries[f]
	return ok
}

// Features returns the feature names in sorted order.
func (c *Catalog) Features() []Feature {
	out := make([]Feature, 0, len(c.entries))
	for f := range c.entries {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Entries returns the pool a pick draws from: the language's entries
// followed by the shared ones. When the language has none, every
// language's entries are used so a pick never comes back empty.
func (c *Catalog) Entries(f Feature, lang string) []string {
	if c == nil {
		return nil
	}
	byLang, ok := c.entries[f]
	if !ok {
		return nil
	}

	pool := append([]string(nil), byLang[lang]...)
	pool = append(pool, byLang[SharedKey]...)
	if len(pool) > 0 {
		return pool
	}

	langs := make([]string, 0, len(byLang))
	for l := range byLang {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	for _, l := range langs {
		pool = append(pool, byLang[l]...)
	}
	return pool
}

// Pick returns one entry of f chosen uniformly at random by src.
func (c *Catalog) Pick(src Source, f Feature, lang string) (string, error) {
	pool := c.Entries(f, lang)
	if len(pool) == 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownFeature, f)
	}
	return pool[src.IntN(len(pool))], nil
}
