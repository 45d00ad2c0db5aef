package normalize

import "strings"

// enStopwords and ptStopwords are compact, documented stopword lists
// (~40 entries each). They are intentionally small — spec.md leaves the
// exact list to the implementation and requires only that it be published
// and stable, not exhaustive. Words that double as default intent
// separators ("and", "then", "e", "depois", ...) are deliberately left out
// so the segmenter can still find them in the raw token stream.
var enStopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "to": {}, "for": {}, "with": {},
	"is": {}, "are": {}, "in": {}, "on": {}, "of": {}, "at": {}, "as": {},
	"but": {}, "by": {}, "from": {}, "i": {}, "me": {}, "my": {}, "you": {},
	"your": {}, "it": {}, "its": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "be": {}, "been": {}, "was": {}, "were": {}, "will": {},
	"would": {}, "can": {}, "could": {}, "want": {}, "need": {}, "please": {},
	"like": {},
}

var ptStopwords = map[string]struct{}{
	"o": {}, "a": {}, "os": {}, "as": {}, "de": {}, "do": {}, "da": {},
	"das": {}, "dos": {}, "para": {}, "por": {}, "que": {}, "com": {},
	"em": {}, "eu": {}, "me": {}, "meu": {}, "minha": {}, "meus": {},
	"minhas": {}, "um": {}, "uma": {}, "uns": {}, "umas": {}, "no": {},
	"na": {}, "nos": {}, "nas": {}, "ao": {}, "aos": {}, "sao": {}, "ser": {},
	"esta": {}, "este": {}, "isso": {}, "isto": {}, "vou": {}, "quero": {},
	"preciso": {}, "gostaria": {}, "favor": {},
}

func normalizeLocale(locale string) string {
	if locale == "" {
		return ""
	}
	if idx := strings.IndexByte(locale, '-'); idx >= 0 {
		locale = locale[:idx]
	}
	return strings.ToLower(locale)
}

// Stopwords returns the union of stopword sets for the given locales.
// A nil/empty slice defaults to ["pt", "en"], matching the engine default.
func Stopwords(locales []string) map[string]struct{} {
	if len(locales) == 0 {
		locales = []string{"pt", "en"}
	}
	out := make(map[string]struct{})
	for _, loc := range locales {
		switch normalizeLocale(loc) {
		case "en":
			for w := range enStopwords {
				out[w] = struct{}{}
			}
		case "pt":
			for w := range ptStopwords {
				out[w] = struct{}{}
			}
		}
	}
	return out
}
