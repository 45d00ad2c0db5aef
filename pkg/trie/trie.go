// Package trie implements the prefix-trie component: a character-keyed
// index over normalized terms supporting bounded prefix expansion for
// completing the last, possibly partial, token of a query.
package trie

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// DefaultPrefixLimit is the hard latency guard on prefix expansion size.
const DefaultPrefixLimit = 64

var errWalkLimitReached = errors.New("trie: walk limit reached")

// Trie is a prefix tree over normalized terms, backed by go-patricia's
// radix trie. Removal is a soft-delete: the term is unmarked as active but
// stays physically in the radix trie, matching spec.md's "not required to
// prune physical nodes" allowance.
type Trie struct {
	mu     sync.RWMutex
	radix  *patricia.Trie
	active map[string]struct{}
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{
		radix:  patricia.NewTrie(),
		active: make(map[string]struct{}),
	}
}

// Insert adds term to the trie. Idempotent: inserting an already-active
// term is a no-op.
func (t *Trie) Insert(term string) {
	if term == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.active[term]; ok {
		return
	}
	if t.radix.Get(patricia.Prefix(term)) == nil {
		t.radix.Insert(patricia.Prefix(term), true)
	}
	t.active[term] = struct{}{}
}

// Remove soft-deletes term: it stops being returned by PrefixTerms even
// though the underlying radix node is left in place.
func (t *Trie) Remove(term string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.active, term)
}

// Has reports whether term is currently active in the trie.
func (t *Trie) Has(term string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.active[term]
	return ok
}

// Len returns the number of currently active terms.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.active)
}

// PrefixTerms returns up to limit active terms starting with prefix, in
// depth-first order with each node's children visited in ascending byte
// order (go-patricia sorts them during the walk), so the result is
// ascending by character. limit<=0 falls back to DefaultPrefixLimit.
func (t *Trie) PrefixTerms(prefix string, limit int) []string {
	if prefix == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultPrefixLimit
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	var results []string
	err := t.radix.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		term := string(p)
		if _, ok := t.active[term]; !ok {
			return nil
		}
		results = append(results, term)
		if len(results) >= limit {
			return errWalkLimitReached
		}
		return nil
	})
	if err != nil && !errors.Is(err, errWalkLimitReached) {
		log.Errorf("trie: visiting subtree for prefix %q: %v", prefix, err)
	}
	return results
}
