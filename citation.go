package earnings

import (
	"regexp"
	"strings"
)

// CitationShortLen is the number of chunk ID characters shown in a badge.
const CitationShortLen = 5

// CitationSeparator joins the parts of a citation hover title.
const CitationSeparator = " • "

var (
	citationRe = regexp.MustCompile(`\[chunk_id=([0-9a-fA-F-]+)([^\]]*)\]`)
	speakerRe  = regexp.MustCompile(`chunk_speaker=([^,\]]+)`)
	paraRe     = regexp.MustCompile(`para_number=([^,\]]+)`)
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Citation is an inline chunk reference found in a generated answer, e.g.
// [chunk_id=3f2a9c1e-..., chunk_speaker=Jane Doe, para_number=7].
type Citation struct {
	ChunkID string `json:"chunkId"`
	Speaker string `json:"speaker,omitempty"`
	Para    string `json:"para,omitempty"`

	// Byte offsets of the whole token within the answer.
	Start int `json:"start"`
	End   int `json:"end"`
}

// Short returns the badge label: the first CitationShortLen characters of
// the chunk ID, or the whole ID when it is shorter.
func (c Citation) Short() string {
	return ShortID(c.ChunkID, CitationShortLen)
}

// Title returns the unescaped hover title of the citation.
// Missing speaker or paragraph parts are omitted.
func (c Citation) Title() string {
	parts := []string{"chunk_id=" + c.ChunkID}
	if c.Speaker != "" {
		parts = append(parts, "speaker="+c.Speaker)
	}
	if c.Para != "" {
		parts = append(parts, "para="+c.Para)
	}
	return strings.Join(parts, CitationSeparator)
}

// ParseCitations returns the citation tokens in answer, left to right and
// non-overlapping. Text that does not match the token grammar is ignored.
func ParseCitations(answer string) []Citation {
	locs := citationRe.FindAllStringSubmatchIndex(answer, -1)
	if len(locs) == 0 {
		return nil
	}

	citations := make([]Citation, 0, len(locs))
	for _, loc := range locs {
		rest := answer[loc[4]:loc[5]]
		c := Citation{
			ChunkID: answer[loc[2]:loc[3]],
			Start:   loc[0],
			End:     loc[1],
		}
		if m := speakerRe.FindStringSubmatch(rest); m != nil {
			c.Speaker = strings.TrimSpace(m[1])
		}
		if m := paraRe.FindStringSubmatch(rest); m != nil {
			c.Para = strings.TrimSpace(m[1])
		}
		citations = append(citations, c)
	}
	return citations
}

// RenderAnswer converts a generated answer into HTML-safe markup. Citation
// tokens become compact badges carrying a hover title, all other text is
// escaped and newlines become <br>. It never fails: malformed citation
// syntax is rendered as ordinary text.
func RenderAnswer(answer string) string {
	if answer == "" {
		return ""
	}

	var sb strings.Builder
	last := 0
	for _, c := range ParseCitations(answer) {
		sb.WriteString(renderText(answer[last:c.Start]))
		sb.WriteString(`<span class="citation" title="`)
		sb.WriteString(htmlEscaper.Replace(c.Title()))
		sb.WriteString(`">[`)
		sb.WriteString(htmlEscaper.Replace(c.Short()))
		sb.WriteString(`]</span>`)
		last = c.End
	}
	sb.WriteString(renderText(answer[last:]))

	return sb.String()
}

// EscapeHTML escapes the five HTML-significant characters.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func renderText(s string) string {
	return strings.ReplaceAll(htmlEscaper.Replace(s), "\n", "<br>")
}

// ShortID returns the first n characters of id.
func ShortID(id string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(id)
	if len(r) <= n {
		return id
	}
	return string(r[:n])
}
