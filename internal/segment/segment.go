// Package segment implements the intent segmenter: splitting a raw token
// sequence into 1..N contiguous windows around separator tokens so a
// single buffer can be ranked against several independent intents.
package segment

// DefaultSeparators are the built-in English/Portuguese separator tokens
// used when the engine is not configured with an explicit list.
var DefaultSeparators = []string{
	"and", "then", "also", "or", "plus",
	"e", "depois", "tambem", "ou",
}

// Window is a contiguous run of tokens between separators (or buffer
// edges), along with whether its last token is a live prefix to be
// trie-expanded rather than matched exactly.
type Window struct {
	Tokens      []string
	HasPrefix   bool
	PrefixToken string
}

// Split partitions tokens into up to maxIntents windows around any token
// present in separators. Consecutive separators (and leading/trailing
// ones) are absorbed rather than producing empty windows. When
// maxIntents<=1, the whole sequence is returned as a single window
// regardless of separators — multi-intent splitting is opt-in.
//
// isPrefix marks the buffer's trailing token (if any) as a live prefix;
// only the window that ends at the very end of tokens can carry it.
func Split(tokens []string, separators []string, maxIntents int, isPrefix bool) []Window {
	if len(tokens) == 0 {
		return nil
	}
	if maxIntents <= 1 {
		return []Window{newWindow(tokens, isPrefix)}
	}

	sepSet := make(map[string]struct{}, len(separators))
	for _, s := range separators {
		sepSet[s] = struct{}{}
	}

	var runs [][]string
	var current []string
	for _, tok := range tokens {
		if _, isSep := sepSet[tok]; isSep {
			if len(current) > 0 {
				runs = append(runs, current)
				current = nil
			}
			continue
		}
		current = append(current, tok)
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	if len(runs) == 0 {
		return nil
	}

	// Keep the first maxIntents-1 runs as their own windows; absorb every
	// remaining run into the last window, preserving left-to-right order.
	kept := runs
	if len(runs) > maxIntents {
		kept = runs[:maxIntents-1]
		var tail []string
		for _, r := range runs[maxIntents-1:] {
			tail = append(tail, r...)
		}
		kept = append(kept, tail)
	}

	windows := make([]Window, len(kept))
	lastIdx := len(kept) - 1
	for i, run := range kept {
		windows[i] = newWindow(run, i == lastIdx && isPrefix)
	}
	return windows
}

func newWindow(tokens []string, isPrefix bool) Window {
	w := Window{Tokens: tokens}
	if isPrefix && len(tokens) > 0 {
		w.HasPrefix = true
		w.PrefixToken = tokens[len(tokens)-1]
	}
	return w
}
