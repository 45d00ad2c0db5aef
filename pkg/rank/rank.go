// Package rank implements the ranker component: turning a window of
// query tokens into per-tool scores via the inverted index and trie,
// then combining scores across windows for multi-intent queries.
package rank

import (
	"math"
	"sort"
	"strings"

	"github.com/kordata/toolserve/internal/segment"
	"github.com/kordata/toolserve/pkg/index"
	"github.com/kordata/toolserve/pkg/trie"
)

// Result is one tool's score and explanation for a single window, or,
// after Combine, for the whole query.
type Result struct {
	ToolID       string
	Score        float64
	MatchedTerms int
	Reason       string
}

type contribution struct {
	term   string
	fields []index.Field
	amount float64
}

// RankWindow scores every tool reachable from win's tokens against idx,
// expanding a trailing live prefix through tr, and drops tools scoring
// below minScore. prefixLimit<=0 uses trie.DefaultPrefixLimit.
func RankWindow(win segment.Window, idx *index.Index, tr *trie.Trie, minScore float64, prefixLimit int) []Result {
	complete := win.Tokens
	prefixToken := win.PrefixToken
	if win.HasPrefix {
		complete = win.Tokens[:len(win.Tokens)-1]
	}

	seen := make(map[string]bool, len(complete))
	type expandedTerm struct {
		term string
		damp float64
	}
	var expanded []expandedTerm
	for _, t := range complete {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		expanded = append(expanded, expandedTerm{term: t, damp: 1.0})
	}

	if win.HasPrefix && prefixToken != "" {
		limit := prefixLimit
		if limit <= 0 {
			limit = trie.DefaultPrefixLimit
		}
		for _, candidate := range tr.PrefixTerms(prefixToken, limit) {
			if seen[candidate] {
				continue
			}
			seen[candidate] = true
			damp := 1.0
			if len(candidate) > 0 {
				damp = math.Min(1.0, float64(len(prefixToken))/float64(len(candidate)))
			}
			expanded = append(expanded, expandedTerm{term: candidate, damp: damp})
		}
	}

	toolScore := make(map[string]float64)
	toolContribs := make(map[string][]contribution)

	for _, et := range expanded {
		toolIDs := idx.ToolsForTerm(et.term)
		if len(toolIDs) == 0 {
			continue
		}
		idf := idx.IDF(et.term)
		lengthBonus := index.LengthBonus(et.term) * et.damp

		for _, toolID := range toolIDs {
			counts, ok := idx.FieldCounts(et.term, toolID)
			if !ok {
				continue
			}
			var amount float64
			fields := make([]index.Field, 0, len(counts))
			for field, tf := range counts {
				amount += float64(tf) * idx.FieldWeight(field) * idf * lengthBonus
				fields = append(fields, field)
			}
			sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })

			toolScore[toolID] += amount
			toolContribs[toolID] = append(toolContribs[toolID], contribution{
				term: et.term, fields: fields, amount: amount,
			})
		}
	}

	results := make([]Result, 0, len(toolScore))
	for toolID, score := range toolScore {
		if score < minScore {
			continue
		}
		contribs := toolContribs[toolID]
		sort.SliceStable(contribs, func(i, j int) bool { return contribs[i].amount > contribs[j].amount })
		results = append(results, Result{
			ToolID:       toolID,
			Score:        score,
			MatchedTerms: len(contribs),
			Reason:       reasonString(contribs),
		})
	}

	sortResults(results)
	return results
}

func reasonString(contribs []contribution) string {
	parts := make([]string, 0, len(contribs))
	for _, c := range contribs {
		fieldStrs := make([]string, len(c.fields))
		for i, f := range c.fields {
			fieldStrs[i] = string(f)
		}
		parts = append(parts, c.term+": "+strings.Join(fieldStrs, ","))
	}
	return strings.Join(parts, "; ")
}

// sortResults applies spec's tie-break: score descending, then
// matched-term-count descending, then tool name ascending.
func sortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].MatchedTerms != results[j].MatchedTerms {
			return results[i].MatchedTerms > results[j].MatchedTerms
		}
		return results[i].ToolID < results[j].ToolID
	})
}

// Combine merges per-window results into one ranked list under
// strategy ("max" or "sum" — any other value behaves as "max"),
// concatenating reason clauses in window order and deduplicating
// adjacent identical clauses. The result is sorted and truncated to
// topK (topK<=0 disables truncation).
func Combine(windows [][]Result, strategy string, topK int) []Result {
	type acc struct {
		score        float64
		matchedTerms int
		reasonParts  []string
	}

	agg := make(map[string]*acc)
	var order []string

	for _, window := range windows {
		for _, r := range window {
			a, ok := agg[r.ToolID]
			if !ok {
				a = &acc{}
				agg[r.ToolID] = a
				order = append(order, r.ToolID)
			}
			if strategy == "sum" {
				a.score += r.Score
			} else {
				if r.Score > a.score {
					a.score = r.Score
				}
			}
			a.matchedTerms += r.MatchedTerms

			for _, clause := range strings.Split(r.Reason, "; ") {
				if clause == "" {
					continue
				}
				if n := len(a.reasonParts); n > 0 && a.reasonParts[n-1] == clause {
					continue
				}
				a.reasonParts = append(a.reasonParts, clause)
			}
		}
	}

	results := make([]Result, 0, len(order))
	for _, toolID := range order {
		a := agg[toolID]
		results = append(results, Result{
			ToolID:       toolID,
			Score:        a.score,
			MatchedTerms: a.matchedTerms,
			Reason:       strings.Join(a.reasonParts, "; "),
		})
	}

	sortResults(results)
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}
