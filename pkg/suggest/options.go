package suggest

import "github.com/kordata/toolserve/pkg/index"

// Options are the construction parameters for an Engine, mirroring the
// public configuration surface: top_k, max_intents,
// intent_separator_tokens, combine_strategy, min_score, locales,
// field_weights.
//
// IntentSeparatorTokens is nil-sensitive: nil means "use the built-in
// defaults"; a non-nil slice (even an empty one) overrides them
// entirely. Locales is not: an empty/nil Locales falls back to
// ["pt","en"] the same way normalize.Stopwords does, since an engine
// with no stopword locale at all is a degenerate but not invalid
// configuration. FieldWeights is nil-sensitive the same way as
// IntentSeparatorTokens: nil means "use the fixed defaults"
// (name=3.0, aliases=2.5, keywords=2.0, description=1.0); a non-nil
// map overrides individual fields, falling back to the fixed default
// for any field it omits.
type Options struct {
	Tools                 []ToolSpec
	TopK                  int
	MaxIntents            int
	IntentSeparatorTokens []string
	CombineStrategy       string
	MinScore              float64
	Locales               []string
	PrefixLimit           int
	FieldWeights          map[index.Field]float64
}

// DefaultOptions returns the spec's documented defaults: top_k=5,
// max_intents=1, combine_strategy="max", min_score=1.0,
// locales=["pt","en"], default separators, default prefix limit. New
// does not inject these implicitly — callers that want the defaults
// start here and override only what they need.
func DefaultOptions() Options {
	return Options{
		TopK:            5,
		MaxIntents:      1,
		CombineStrategy: "max",
		MinScore:        1.0,
		Locales:         []string{"pt", "en"},
	}
}
