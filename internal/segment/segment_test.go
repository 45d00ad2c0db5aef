package segment

import "testing"

func tokensEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSplitSingleIntentIgnoresSeparators(t *testing.T) {
	tokens := []string{"export", "and", "send", "email"}
	windows := Split(tokens, DefaultSeparators, 1, false)
	if len(windows) != 1 {
		t.Fatalf("got %d windows, want 1", len(windows))
	}
	if !tokensEqual(windows[0].Tokens, tokens) {
		t.Errorf("window tokens = %v, want %v", windows[0].Tokens, tokens)
	}
}

func TestSplitByDefaultSeparators(t *testing.T) {
	tokens := []string{"export", "data", "and", "send", "email"}
	windows := Split(tokens, DefaultSeparators, 3, false)
	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2: %v", len(windows), windows)
	}
	if !tokensEqual(windows[0].Tokens, []string{"export", "data"}) {
		t.Errorf("window[0] = %v", windows[0].Tokens)
	}
	if !tokensEqual(windows[1].Tokens, []string{"send", "email"}) {
		t.Errorf("window[1] = %v", windows[1].Tokens)
	}
}

func TestSplitExcessSeparatorsAbsorbedIntoPrecedingWindow(t *testing.T) {
	tokens := []string{"a", "and", "b", "and", "c", "and", "d"}
	windows := Split(tokens, DefaultSeparators, 2, false)
	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2: %v", len(windows), windows)
	}
	if !tokensEqual(windows[0].Tokens, []string{"a"}) {
		t.Errorf("window[0] = %v, want [a]", windows[0].Tokens)
	}
	if !tokensEqual(windows[1].Tokens, []string{"b", "c", "d"}) {
		t.Errorf("window[1] = %v, want [b c d]", windows[1].Tokens)
	}
}

func TestSplitPrefixMarkedOnFinalWindowOnly(t *testing.T) {
	tokens := []string{"export", "and", "se"}
	windows := Split(tokens, DefaultSeparators, 3, true)
	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}
	if windows[0].HasPrefix {
		t.Error("non-final window should not carry the live prefix flag")
	}
	if !windows[1].HasPrefix || windows[1].PrefixToken != "se" {
		t.Errorf("final window should carry prefix 'se', got HasPrefix=%v token=%q", windows[1].HasPrefix, windows[1].PrefixToken)
	}
}

func TestSplitEmptyTokens(t *testing.T) {
	if got := Split(nil, DefaultSeparators, 3, false); got != nil {
		t.Errorf("Split(nil) = %v, want nil", got)
	}
}

func TestSplitLeadingAndTrailingSeparatorsDropped(t *testing.T) {
	tokens := []string{"and", "export", "csv", "then"}
	windows := Split(tokens, DefaultSeparators, 3, false)
	if len(windows) != 1 {
		t.Fatalf("got %d windows, want 1: %v", len(windows), windows)
	}
	if !tokensEqual(windows[0].Tokens, []string{"export", "csv"}) {
		t.Errorf("window[0] = %v, want [export csv]", windows[0].Tokens)
	}
}
