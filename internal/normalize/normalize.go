// Package normalize implements the tokenizer component: text normalization,
// tokenization, and locale-aware stopword filtering shared by the trie,
// inverted index, and intent segmenter.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics decomposes to NFD and drops the combining-mark runes,
// the standard golang.org/x/text transform chain for accent folding.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text, strips diacritics, and collapses any run of
// characters outside [a-z0-9] into a single space.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	folded, _, err := transform.String(stripDiacritics, lowered)
	if err != nil {
		folded = lowered
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastWasGap := true
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasGap = false
			continue
		}
		if !lastWasGap {
			b.WriteByte(' ')
			lastWasGap = true
		}
	}
	return strings.TrimSpace(b.String())
}

// RawTokens splits normalized text on whitespace and drops noise tokens
// (pure digits, lone non-letter characters, and one character repeated
// four or more times such as "aaaa"), but keeps stopwords and
// separator tokens intact so callers that need the original token
// sequence — the intent segmenter, in particular — can still find them.
func RawTokens(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	fields := strings.Fields(normalized)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if isNoise(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func isNoise(tok string) bool {
	if tok == "" {
		return true
	}
	allDigits := true
	for _, r := range tok {
		if r < '0' || r > '9' {
			allDigits = false
			break
		}
	}
	if allDigits {
		return true
	}
	if len(tok) == 1 {
		r := rune(tok[0])
		if r < 'a' || r > 'z' {
			return true
		}
	}
	if len(tok) >= 4 && isSingleRepeatedChar(tok) {
		return true
	}
	return false
}

// isSingleRepeatedChar reports whether tok consists of one character
// repeated throughout, e.g. "aaaa" or "zzzzz" — keystroke noise rather
// than a real word.
func isSingleRepeatedChar(tok string) bool {
	for i := 1; i < len(tok); i++ {
		if tok[i] != tok[0] {
			return false
		}
	}
	return true
}

// FilterStopwords drops stopwords for the given locales from tokens. When
// keepLastRaw is true, the final token is always kept regardless of whether
// it is a stopword — it may be a partial word from a live text buffer.
func FilterStopwords(tokens []string, locales []string, keepLastRaw bool) []string {
	if len(tokens) == 0 {
		return nil
	}
	sw := Stopwords(locales)
	lastIdx := len(tokens) - 1
	out := make([]string, 0, len(tokens))
	for i, t := range tokens {
		if keepLastRaw && i == lastIdx {
			out = append(out, t)
			continue
		}
		if _, isStop := sw[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Tokens is the convenience full pipeline: normalize, split, drop noise,
// and drop stopwords for the given locales. Used to index a tool's fields,
// where every token is complete.
func Tokens(text string, locales []string) []string {
	return FilterStopwords(RawTokens(text), locales, false)
}
