package rank

import (
	"testing"

	"github.com/kordata/toolserve/internal/segment"
	"github.com/kordata/toolserve/pkg/index"
	"github.com/kordata/toolserve/pkg/trie"
)

func buildSampleIndex() (*index.Index, *trie.Trie) {
	idx := index.New()
	tr := trie.New()

	add := func(toolID string, fields map[index.Field][]string) {
		idx.AddTool(toolID, fields)
		for _, terms := range fields {
			for _, t := range terms {
				tr.Insert(t)
			}
		}
	}

	add("export_csv", map[index.Field][]string{
		index.FieldDescription: {"export", "data", "to", "csv", "format"},
		index.FieldKeywords:    {"export", "csv", "file", "download"},
	})
	add("send_email", map[index.Field][]string{
		index.FieldDescription: {"send", "email", "notifications"},
		index.FieldKeywords:    {"email", "send", "notify", "message"},
	})
	add("db_query", map[index.Field][]string{
		index.FieldDescription: {"query", "database", "records"},
		index.FieldKeywords:    {"database", "query", "search", "find", "select"},
	})
	return idx, tr
}

func topToolID(t *testing.T, results []Result) string {
	t.Helper()
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	return results[0].ToolID
}

func TestRankWindowExportCSV(t *testing.T) {
	idx, tr := buildSampleIndex()
	win := segment.Window{Tokens: []string{"export", "data", "to", "csv"}}
	results := RankWindow(win, idx, tr, 1.0, 64)
	if got := topToolID(t, results); got != "export_csv" {
		t.Errorf("top result = %q, want export_csv (results=%v)", got, results)
	}
}

func TestRankWindowSendEmail(t *testing.T) {
	idx, tr := buildSampleIndex()
	win := segment.Window{Tokens: []string{"send", "an", "email"}}
	results := RankWindow(win, idx, tr, 1.0, 64)
	if got := topToolID(t, results); got != "send_email" {
		t.Errorf("top result = %q, want send_email (results=%v)", got, results)
	}
}

func TestRankWindowQueryDatabase(t *testing.T) {
	idx, tr := buildSampleIndex()
	win := segment.Window{Tokens: []string{"query", "the", "database"}}
	results := RankWindow(win, idx, tr, 1.0, 64)
	if got := topToolID(t, results); got != "db_query" {
		t.Errorf("top result = %q, want db_query (results=%v)", got, results)
	}
}

func TestRankWindowPrefixExpansion(t *testing.T) {
	idx, tr := buildSampleIndex()
	win := segment.Window{Tokens: []string{"exp"}, HasPrefix: true, PrefixToken: "exp"}
	results := RankWindow(win, idx, tr, 0.5, 64)
	found := false
	for _, r := range results {
		if r.ToolID == "export_csv" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected export_csv reachable via prefix 'exp', got %v", results)
	}
}

func TestRankWindowMinScoreFiltersLowScoringTools(t *testing.T) {
	idx, tr := buildSampleIndex()
	win := segment.Window{Tokens: []string{"export", "data", "to", "csv"}}
	results := RankWindow(win, idx, tr, 1.0, 64)
	for _, r := range results {
		if r.ToolID == "send_email" || r.ToolID == "db_query" {
			t.Errorf("unrelated tool %q should have scored below min_score", r.ToolID)
		}
	}
}

func TestRankWindowReasonFormat(t *testing.T) {
	idx, tr := buildSampleIndex()
	win := segment.Window{Tokens: []string{"csv"}}
	results := RankWindow(win, idx, tr, 0.5, 64)
	top := topToolID(t, results)
	if top != "export_csv" {
		t.Fatalf("top = %q, want export_csv", top)
	}
	want := "csv: description,keywords"
	if results[0].Reason != want {
		t.Errorf("Reason = %q, want %q", results[0].Reason, want)
	}
}

func TestCombineMaxStrategy(t *testing.T) {
	windowA := []Result{{ToolID: "x", Score: 2.0, MatchedTerms: 1, Reason: "a: name"}}
	windowB := []Result{{ToolID: "x", Score: 5.0, MatchedTerms: 1, Reason: "b: name"}}
	combined := Combine([][]Result{windowA, windowB}, "max", 0)
	if len(combined) != 1 || combined[0].Score != 5.0 {
		t.Fatalf("Combine(max) = %v, want score 5.0", combined)
	}
}

func TestCombineSumStrategy(t *testing.T) {
	windowA := []Result{{ToolID: "x", Score: 2.0, MatchedTerms: 1, Reason: "a: name"}}
	windowB := []Result{{ToolID: "x", Score: 5.0, MatchedTerms: 1, Reason: "b: name"}}
	combined := Combine([][]Result{windowA, windowB}, "sum", 0)
	if len(combined) != 1 || combined[0].Score != 7.0 {
		t.Fatalf("Combine(sum) = %v, want score 7.0", combined)
	}
}

func TestCombineDedupesAdjacentReasonClauses(t *testing.T) {
	windowA := []Result{{ToolID: "x", Score: 2.0, MatchedTerms: 1, Reason: "export: keywords"}}
	windowB := []Result{{ToolID: "x", Score: 1.0, MatchedTerms: 1, Reason: "export: keywords"}}
	combined := Combine([][]Result{windowA, windowB}, "sum", 0)
	if combined[0].Reason != "export: keywords" {
		t.Errorf("Reason = %q, want deduplicated single clause", combined[0].Reason)
	}
}

func TestCombineTruncatesToTopK(t *testing.T) {
	window := []Result{
		{ToolID: "a", Score: 3.0, MatchedTerms: 1},
		{ToolID: "b", Score: 2.0, MatchedTerms: 1},
		{ToolID: "c", Score: 1.0, MatchedTerms: 1},
	}
	combined := Combine([][]Result{window}, "max", 2)
	if len(combined) != 2 {
		t.Fatalf("Combine with topK=2 returned %d results, want 2", len(combined))
	}
	if combined[0].ToolID != "a" || combined[1].ToolID != "b" {
		t.Errorf("unexpected order: %v", combined)
	}
}

func TestCombineTieBreakByNameAscending(t *testing.T) {
	window := []Result{
		{ToolID: "zeta", Score: 2.0, MatchedTerms: 1},
		{ToolID: "alpha", Score: 2.0, MatchedTerms: 1},
	}
	combined := Combine([][]Result{window}, "max", 0)
	if combined[0].ToolID != "alpha" || combined[1].ToolID != "zeta" {
		t.Errorf("tie-break order = %v, want alpha before zeta", combined)
	}
}
