package normalize

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Café Notícia", "cafe noticia"},
		{"  Export, CSV!!  ", "export csv"},
		{"", ""},
		{"ÁÉÍÓÚ", "aeiou"},
		{"a-b_c.d", "a b c d"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRawTokensDropsNoiseKeepsStopwords(t *testing.T) {
	got := RawTokens("export data and 123 a to csv")
	want := []string{"export", "data", "and", "a", "to", "csv"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RawTokens = %v, want %v", got, want)
	}
}

func TestRawTokensDropsSingleRepeatedCharacterRuns(t *testing.T) {
	got := RawTokens("export aaaa zzzzz csv")
	want := []string{"export", "csv"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RawTokens = %v, want %v", got, want)
	}

	// Shorter repeats (len < 4) are real short words, not noise.
	keep := RawTokens("aa to csv")
	wantKeep := []string{"aa", "to", "csv"}
	if !reflect.DeepEqual(keep, wantKeep) {
		t.Errorf("RawTokens = %v, want %v", keep, wantKeep)
	}
}

func TestFilterStopwordsKeepsLastRaw(t *testing.T) {
	tokens := []string{"send", "an", "email"}
	got := FilterStopwords(tokens, []string{"en"}, false)
	want := []string{"send", "email"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterStopwords = %v, want %v", got, want)
	}

	streaming := FilterStopwords([]string{"send", "an"}, []string{"en"}, true)
	wantStreaming := []string{"send", "an"}
	if !reflect.DeepEqual(streaming, wantStreaming) {
		t.Errorf("FilterStopwords(keepLastRaw) = %v, want %v", streaming, wantStreaming)
	}
}

func TestTokensEmptyAndStopwordOnly(t *testing.T) {
	if got := Tokens("", []string{"en"}); got != nil {
		t.Errorf("Tokens(\"\") = %v, want nil", got)
	}
	if got := Tokens("the a an", []string{"en"}); len(got) != 0 {
		t.Errorf("Tokens(stopword-only) = %v, want empty", got)
	}
}

func TestStopwordsDefaultLocales(t *testing.T) {
	sw := Stopwords(nil)
	for _, w := range []string{"the", "a", "de", "para"} {
		if _, ok := sw[w]; !ok {
			t.Errorf("expected %q in default stopwords", w)
		}
	}
}
