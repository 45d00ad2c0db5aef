// Package index implements the inverted-index component: a term→tool
// posting list with field-aware term frequencies, document frequencies,
// and the TF-IDF-style weighting spec.md §4.3 pins.
package index

import (
	"math"
	"sync"
)

// Field identifies which ToolSpec field a posting came from.
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldKeywords    Field = "keywords"
	FieldAliases     Field = "aliases"
)

// fieldWeights are the fixed weights spec.md §4.3 pins so tests are
// deterministic. Implementations may expose them as configuration —
// see pkg/config, which does.
var fieldWeights = map[Field]float64{
	FieldName:        3.0,
	FieldAliases:     2.5,
	FieldKeywords:    2.0,
	FieldDescription: 1.0,
}

// FieldWeight returns the fixed weight for field, or 1.0 for an unknown one.
func FieldWeight(field Field) float64 {
	if w, ok := fieldWeights[field]; ok {
		return w
	}
	return 1.0
}

// LengthBonus rewards longer, more informative terms:
// 1 + 0.1 * max(0, len(term)-3).
func LengthBonus(term string) float64 {
	n := len(term) - 3
	if n < 0 {
		n = 0
	}
	return 1 + 0.1*float64(n)
}

// Index is the term → (tool, field, tf) posting store plus document
// frequencies needed for idf. Safe for concurrent readers; writers must
// hold the caller's serialization discipline (see suggest.Engine).
type Index struct {
	mu       sync.RWMutex
	postings map[string]map[string]map[Field]int // term -> toolID -> field -> tf
	docFreq  map[string]int
	tools    map[string]struct{}
	weights  map[Field]float64
}

// New creates an empty index using the fixed default field weights.
func New() *Index {
	return &Index{
		postings: make(map[string]map[string]map[Field]int),
		docFreq:  make(map[string]int),
		tools:    make(map[string]struct{}),
		weights:  fieldWeights,
	}
}

// NewWithWeights creates an empty index using an overridden set of field
// weights, e.g. loaded from configuration. A field absent from weights
// falls back to its fixed default.
func NewWithWeights(weights map[Field]float64) *Index {
	idx := New()
	if len(weights) > 0 {
		idx.weights = weights
	}
	return idx
}

// FieldWeight returns the weight this index uses for field, falling back
// to the fixed default (see the package-level FieldWeight) when the
// index was not given an override for it.
func (idx *Index) FieldWeight(field Field) float64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if w, ok := idx.weights[field]; ok {
		return w
	}
	return FieldWeight(field)
}

// N is the number of distinct tools currently indexed.
func (idx *Index) N() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.tools)
}

// DocFreq returns the number of distinct tools with a posting on term.
func (idx *Index) DocFreq(term string) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.docFreq[term]
}

// IDF computes ln((N+1)/(df+1)) + 1 — smoothed, always >= 1 for an
// unseen term.
func (idx *Index) IDF(term string) float64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	n := float64(len(idx.tools))
	df := float64(idx.docFreq[term])
	return math.Log((n+1)/(df+1)) + 1
}

// HasTool reports whether toolID currently has any postings.
func (idx *Index) HasTool(toolID string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	_, ok := idx.tools[toolID]
	return ok
}

// AddTool inserts postings for toolID from pre-tokenized terms grouped by
// field. Calling AddTool again for a toolID that is already indexed adds
// on top of the existing postings — callers should RemoveTool first when
// re-indexing a tool's fields.
func (idx *Index) AddTool(toolID string, termsByField map[Field][]string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.tools[toolID] = struct{}{}

	seenForDF := make(map[string]bool)
	for field, terms := range termsByField {
		counts := make(map[string]int, len(terms))
		for _, t := range terms {
			if t == "" {
				continue
			}
			counts[t]++
		}
		for term, tf := range counts {
			toolMap, ok := idx.postings[term]
			if !ok {
				toolMap = make(map[string]map[Field]int)
				idx.postings[term] = toolMap
			}
			fieldMap, ok := toolMap[toolID]
			if !ok {
				fieldMap = make(map[Field]int)
				toolMap[toolID] = fieldMap
			}
			fieldMap[field] += tf
			if !seenForDF[term] {
				idx.docFreq[term]++
				seenForDF[term] = true
			}
		}
	}
}

// RemoveTool deletes all postings for toolID and decrements affected
// document frequencies. This is O(vocabulary size) — acceptable per
// spec.md §4.7, which documents removal as O(catalog) and expected to be
// rare.
func (idx *Index) RemoveTool(toolID string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, ok := idx.tools[toolID]; !ok {
		return
	}
	delete(idx.tools, toolID)

	for term, toolMap := range idx.postings {
		if _, ok := toolMap[toolID]; !ok {
			continue
		}
		delete(toolMap, toolID)
		idx.docFreq[term]--
		if idx.docFreq[term] <= 0 {
			delete(idx.docFreq, term)
		}
		if len(toolMap) == 0 {
			delete(idx.postings, term)
		}
	}
}

// FieldCounts returns a copy of the per-field term frequencies for
// (term, toolID), or false if no such posting exists.
func (idx *Index) FieldCounts(term, toolID string) (map[Field]int, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	toolMap, ok := idx.postings[term]
	if !ok {
		return nil, false
	}
	fieldMap, ok := toolMap[toolID]
	if !ok {
		return nil, false
	}
	out := make(map[Field]int, len(fieldMap))
	for f, tf := range fieldMap {
		out[f] = tf
	}
	return out, true
}

// ToolsForTerm returns the tool ids with at least one posting on term.
func (idx *Index) ToolsForTerm(term string) []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	toolMap, ok := idx.postings[term]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(toolMap))
	for toolID := range toolMap {
		out = append(out, toolID)
	}
	return out
}
