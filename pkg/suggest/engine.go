package suggest

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/kordata/toolserve/internal/logger"
	"github.com/kordata/toolserve/internal/normalize"
	"github.com/kordata/toolserve/internal/segment"
	"github.com/kordata/toolserve/internal/session"
	"github.com/kordata/toolserve/pkg/index"
	"github.com/kordata/toolserve/pkg/rank"
	"github.com/kordata/toolserve/pkg/trie"
)

// Engine is the public orchestrator: it owns the catalog (inverted
// index + trie + tool records) and the session store, and routes
// Submit/Feed/Reset/AddTools/RemoveTool over them.
//
// Concurrency model: mu is a single reader/writer lock over the
// catalog. Submit/Feed take a read lock — many can run concurrently and
// each sees a consistent snapshot. AddTools/RemoveTool take a write
// lock and are serialized against readers and each other, matching the
// single-logical-writer, many-readers discipline.
type Engine struct {
	mu         sync.RWMutex
	idx        *index.Index
	tr         *trie.Trie
	tools      map[string]ToolSpec
	toolTerms  map[string][]string
	sessions   *session.Store
	opts       Options
	separators []string
	log        *log.Logger
}

// New constructs an Engine from opts, building the index over
// opts.Tools. Returns ErrConfigInvalid if a construction parameter
// violates an invariant.
func New(opts Options) (*Engine, error) {
	if opts.TopK < 1 {
		return nil, configError("top_k must be >= 1, got %d", opts.TopK)
	}
	if opts.MaxIntents < 1 {
		return nil, configError("max_intents must be >= 1, got %d", opts.MaxIntents)
	}
	if opts.MinScore < 0 {
		return nil, configError("min_score must be >= 0, got %v", opts.MinScore)
	}
	if opts.CombineStrategy != "max" && opts.CombineStrategy != "sum" {
		return nil, configError(`combine_strategy must be "max" or "sum", got %q`, opts.CombineStrategy)
	}

	seps := opts.IntentSeparatorTokens
	if seps == nil {
		seps = segment.DefaultSeparators
	}

	e := &Engine{
		idx:        index.NewWithWeights(opts.FieldWeights),
		tr:         trie.New(),
		tools:      make(map[string]ToolSpec, len(opts.Tools)),
		toolTerms:  make(map[string][]string, len(opts.Tools)),
		sessions:   session.New(),
		opts:       opts,
		separators: seps,
		log:        logger.Default("engine"),
	}

	for _, spec := range opts.Tools {
		if spec.Name == "" {
			return nil, configError("catalog contains a tool with an empty name")
		}
		if _, exists := e.tools[spec.Name]; exists {
			return nil, configError("catalog contains duplicate tool name %q", spec.Name)
		}
		e.indexToolLocked(spec)
		e.tools[spec.Name] = spec
	}

	return e, nil
}

// Submit replaces sid's buffer with text and runs the pipeline treating
// the whole buffer as finalized (no live prefix token).
func (e *Engine) Submit(text, sid string) []Suggestion {
	e.sessions.Replace(sid, text)
	return e.runPipeline(text, false)
}

// Feed appends delta to sid's buffer and runs the pipeline, treating
// the trailing non-whitespace run as a live prefix token unless delta
// ends in whitespace or a separator token.
func (e *Engine) Feed(delta, sid string) []Suggestion {
	buffer := e.sessions.Append(sid, delta)
	isPrefix := !e.endsAsSeparator(delta)
	return e.runPipeline(buffer, isPrefix)
}

// Reset removes sid's session entry. A no-op for an unknown session id.
func (e *Engine) Reset(sid string) {
	e.sessions.Remove(sid)
}

// AddTools inserts specs incrementally, without a full rebuild. Returns
// one error per input spec (nil for an accepted one); a duplicate name
// is reported as ErrDuplicateTool and does not affect the others.
func (e *Engine) AddTools(specs []ToolSpec) []error {
	e.mu.Lock()
	defer e.mu.Unlock()

	errs := make([]error, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			errs[i] = configError("tool name must not be empty")
			continue
		}
		if _, exists := e.tools[spec.Name]; exists {
			errs[i] = duplicateToolError(spec.Name)
			continue
		}
		e.indexToolLocked(spec)
		e.tools[spec.Name] = spec
	}
	return errs
}

// RemoveTool deletes all postings for name, decrementing doc_freq, and
// soft-removes from the trie any term whose doc_freq dropped to zero.
// Returns ErrUnknownTool if name is not in the catalog.
func (e *Engine) RemoveTool(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.tools[name]; !ok {
		return unknownToolError(name)
	}

	e.idx.RemoveTool(name)
	for _, term := range e.toolTerms[name] {
		if e.idx.DocFreq(term) == 0 {
			e.tr.Remove(term)
		}
	}
	delete(e.toolTerms, name)
	delete(e.tools, name)

	if e.idx.HasTool(name) {
		e.log.Errorf("invariant violation: %q still present in index after RemoveTool", name)
		return ErrInternal
	}
	return nil
}

// Stats reports catalog and session-store size for introspection and
// debugging — not part of the matching algorithm itself.
type Stats struct {
	ToolCount    int
	TermCount    int
	SessionCount int
}

// Stats returns a snapshot of catalog and session-store sizes.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Stats{
		ToolCount:    len(e.tools),
		TermCount:    e.tr.Len(),
		SessionCount: e.sessions.Len(),
	}
}

func (e *Engine) indexToolLocked(spec ToolSpec) {
	fields := map[index.Field][]string{
		index.FieldName:        normalize.Tokens(spec.Name, e.opts.Locales),
		index.FieldDescription: normalize.Tokens(spec.Description, e.opts.Locales),
	}
	if len(spec.Keywords) > 0 {
		fields[index.FieldKeywords] = normalize.Tokens(strings.Join(spec.Keywords, " "), e.opts.Locales)
	}
	if len(spec.Aliases) > 0 {
		fields[index.FieldAliases] = normalize.Tokens(strings.Join(spec.Aliases, " "), e.opts.Locales)
	}

	e.idx.AddTool(spec.Name, fields)

	seen := make(map[string]struct{})
	var terms []string
	for _, fieldTerms := range fields {
		for _, t := range fieldTerms {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			terms = append(terms, t)
			e.tr.Insert(t)
		}
	}
	e.toolTerms[spec.Name] = terms
}

// runPipeline is shared by Submit and Feed: tokenize, segment, rank
// each window, combine, and translate to Suggestions.
func (e *Engine) runPipeline(buffer string, isPrefix bool) []Suggestion {
	if utf8.RuneCountInString(strings.TrimSpace(buffer)) < 2 {
		return []Suggestion{}
	}

	raw := normalize.RawTokens(buffer)
	if len(raw) == 0 {
		return []Suggestion{}
	}

	tokens := normalize.FilterStopwords(raw, e.opts.Locales, isPrefix)
	if len(tokens) == 0 {
		return []Suggestion{}
	}

	windows := segment.Split(tokens, e.separators, e.opts.MaxIntents, isPrefix)
	if len(windows) == 0 {
		return []Suggestion{}
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	windowResults := make([][]rank.Result, len(windows))
	for i, w := range windows {
		windowResults[i] = rank.RankWindow(w, e.idx, e.tr, e.opts.MinScore, e.opts.PrefixLimit)
	}
	combined := rank.Combine(windowResults, e.opts.CombineStrategy, e.opts.TopK)
	return e.toSuggestionsLocked(combined)
}

func (e *Engine) toSuggestionsLocked(results []rank.Result) []Suggestion {
	out := make([]Suggestion, 0, len(results))
	for _, r := range results {
		tool, ok := e.tools[r.ToolID]
		if !ok {
			continue
		}
		var meta map[string]any
		if len(tool.Tags) > 0 {
			meta = map[string]any{"tags": tool.Tags}
		}
		out = append(out, Suggestion{
			ID:                tool.Name,
			Kind:              tool.Kind(),
			Score:             r.Score,
			Label:             tool.Name,
			Reason:            r.Reason,
			ArgumentsTemplate: tool.ArgsSchema,
			Metadata:          meta,
		})
	}
	return out
}

// endsAsSeparator reports whether delta ends in whitespace or in a
// complete separator token, per the Feed contract: either case means
// the trailing token is not a live prefix.
func (e *Engine) endsAsSeparator(delta string) bool {
	if delta == "" {
		return true
	}
	if trimmed := strings.TrimRightFunc(delta, unicode.IsSpace); trimmed != delta {
		return true
	}
	toks := normalize.RawTokens(delta)
	if len(toks) == 0 {
		return true
	}
	last := toks[len(toks)-1]
	for _, sep := range e.separators {
		if sep == last {
			return true
		}
	}
	return false
}
