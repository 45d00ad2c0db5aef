package trie

import "testing"

func TestInsertIdempotentAndPrefixTerms(t *testing.T) {
	tr := New()
	tr.Insert("export")
	tr.Insert("export")
	tr.Insert("expand")
	tr.Insert("csv")

	got := tr.PrefixTerms("exp", 64)
	if len(got) != 2 {
		t.Fatalf("PrefixTerms(exp) = %v, want 2 terms", got)
	}
	if tr.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tr.Len())
	}
}

func TestPrefixTermsAscendingOrder(t *testing.T) {
	tr := New()
	for _, w := range []string{"export", "exam", "exec", "extra"} {
		tr.Insert(w)
	}
	got := tr.PrefixTerms("ex", 64)
	want := []string{"exam", "exec", "export", "extra"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PrefixTerms order[%d] = %q, want %q (got %v)", i, got[i], want[i], got)
		}
	}
}

func TestPrefixTermsRespectsLimit(t *testing.T) {
	tr := New()
	for i := 0; i < 200; i++ {
		tr.Insert("tool" + string(rune('a'+i%26)) + string(rune('0'+i/26)))
	}
	if tr.Len() != 200 {
		t.Fatalf("Len() = %d, want 200", tr.Len())
	}

	got := tr.PrefixTerms("tool", 64)
	if len(got) != 64 {
		t.Fatalf("PrefixTerms(tool, 64) returned %d terms, want 64", len(got))
	}

	fromDefault := tr.PrefixTerms("tool", 0)
	if len(fromDefault) != DefaultPrefixLimit {
		t.Errorf("PrefixTerms(tool, 0) returned %d terms, want default %d", len(fromDefault), DefaultPrefixLimit)
	}
}

func TestPrefixTermsEmptyPrefix(t *testing.T) {
	tr := New()
	tr.Insert("export")
	if got := tr.PrefixTerms("", 64); got != nil {
		t.Errorf("PrefixTerms(\"\") should be nil, got %v", got)
	}
}

func TestRemoveSoftDeletes(t *testing.T) {
	tr := New()
	tr.Insert("export")
	tr.Remove("export")
	if tr.Has("export") {
		t.Error("expected export to be inactive after Remove")
	}
	if got := tr.PrefixTerms("exp", 64); len(got) != 0 {
		t.Errorf("PrefixTerms after remove = %v, want empty", got)
	}
	tr.Insert("export")
	if !tr.Has("export") {
		t.Error("expected export to be active again after re-insert")
	}
}
