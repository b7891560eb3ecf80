package earnings

import "strings"

// SnippetDelimiter separates fragments in search and Q&A snippets. The
// backend emits this exact sequence, so it is matched byte for byte.
const SnippetDelimiter = " ƒ?İ "

// SnippetFragments splits a snippet into its trimmed, non-empty fragments
// in input order.
func SnippetFragments(snippet string) []string {
	parts := strings.Split(snippet, SnippetDelimiter)
	fragments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fragments = append(fragments, p)
		}
	}
	return fragments
}
