package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/samber/lo"
)

// Catalog is the immutable set of valid words: an ordered slice for
// indexed selection plus a derived set for membership tests.
type Catalog struct {
	words []string
	set   map[string]struct{}
}

// fallbackWords is the built-in word list used when the external list
// is missing or unusable, so the service stays playable.
func fallbackWords() []string {
	return []string{"SAMPLE", "SIMPLE", "SERVER", "BUTTER", "BETTER"}
}

// LoadCatalog reads a JSON string array of words from path. Any failure
// falls back to the built-in list rather than crashing the service.
func LoadCatalog(path string) *Catalog {
	logInfo("Loading words from %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logWarn("Failed to read word list %s: %v, using built-in fallback", path, err)
		return NewCatalog(fallbackWords())
	}
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		logWarn("Failed to parse word list %s: %v, using built-in fallback", path, err)
		return NewCatalog(fallbackWords())
	}
	catalog := NewCatalog(words)
	if catalog.Len() == 0 {
		logWarn("Word list %s contained no usable words, using built-in fallback", path)
		return NewCatalog(fallbackWords())
	}
	logInfo("Successfully loaded %d words", catalog.Len())
	return catalog
}

// NewCatalog builds a catalog from raw words: trims, upper-cases,
// drops wrong-length entries and deduplicates while preserving order.
func NewCatalog(words []string) *Catalog {
	upper := lo.Map(words, func(w string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(w))
	})
	kept := lo.Filter(upper, func(w string, _ int) bool {
		if len(w) != WordLength {
			logWarn("Skipping word %q: not %d letters", w, WordLength)
			return false
		}
		return true
	})
	kept = lo.Uniq(kept)
	set := make(map[string]struct{}, len(kept))
	lo.ForEach(kept, func(w string, _ int) {
		set[w] = struct{}{}
	})
	return &Catalog{words: kept, set: set}
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int {
	return len(c.words)
}

// Contains reports whether word is in the catalog, case-insensitively.
func (c *Catalog) Contains(word string) bool {
	_, ok := c.set[strings.ToUpper(word)]
	return ok
}

// Pick returns the word at index, reduced into [0, Len). An empty
// catalog yields the sentinel so callers never have to branch.
func (c *Catalog) Pick(index int) string {
	if len(c.words) == 0 {
		return NoWordSentinel
	}
	if index < 0 {
		index = -index
	}
	return c.words[index%len(c.words)]
}
