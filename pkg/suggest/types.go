// Package suggest implements the suggestion engine: the public
// orchestrator that builds and maintains a tool catalog and routes
// submit/feed/reset/add_tools/remove_tool over the tokenizer, trie,
// inverted index, ranker, intent segmenter, and session store.
package suggest

// ToolSpec is the input record describing one tool available for
// suggestion. Name is both the catalog identifier and the default
// label; all other fields are optional.
type ToolSpec struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Keywords    []string       `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Aliases     []string       `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Tags        []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	ArgsSchema  any            `json:"args_schema,omitempty" yaml:"args_schema,omitempty"`
	Locales     []string       `json:"locales,omitempty" yaml:"locales,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// mcpPrefixes are the reserved name prefixes that mark a tool as "mcp"
// kind at output time only — a labeling convention, not an indexing rule.
var mcpPrefixes = []string{"db.", "api.", "mcp.", "filesystem."}

// Kind derives the output-only kind label from the tool's name.
func (t ToolSpec) Kind() string {
	for _, p := range mcpPrefixes {
		if len(t.Name) >= len(p) && t.Name[:len(p)] == p {
			return "mcp"
		}
	}
	return "tool"
}

// Suggestion is one ranked result returned by submit/feed.
type Suggestion struct {
	ID                string         `json:"id"`
	Kind              string         `json:"kind"`
	Score             float64        `json:"score"`
	Label             string         `json:"label"`
	Reason            string         `json:"reason"`
	ArgumentsTemplate any            `json:"arguments_template,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}
