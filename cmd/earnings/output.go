package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/earnings"
)

// Answer output formats.
const (
	FormatPretty   = "pretty"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatRaw      = "raw"
)

// formatAnswer renders a raw answer for the terminal in the given format.
func formatAnswer(deps *Dependencies, answer, format string) (string, error) {
	if format == FormatRaw {
		return answer, nil
	}

	html := earnings.RenderAnswer(answer)
	if format == FormatHTML || strings.TrimSpace(answer) == "" {
		return html, nil
	}

	md, err := deps.Converter.Convert(html)
	if err != nil {
		return "", err
	}
	if format == FormatMarkdown {
		return md, nil
	}
	return deps.Renderer.Render(md)
}

// printAnswer writes the formatted answer followed by its sources.
func printAnswer(deps *Dependencies, ans *earnings.Answer, format string, withSources bool) error {
	out, err := formatAnswer(deps, ans.Text, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, strings.TrimRight(out, "\n"))

	if withSources {
		printSources(deps, ans.Sources)
	}
	return nil
}

func printSources(deps *Dependencies, sources []earnings.Source) {
	if len(sources) == 0 {
		return
	}
	fmt.Fprintln(deps.Stdout, "\nSources:")
	for _, s := range sources {
		fmt.Fprintf(deps.Stdout, "  [%s] %s", earnings.ShortID(s.ChunkID, earnings.CitationShortLen), optionalString(s.Speaker))
		if s.ParagraphNum != nil {
			fmt.Fprintf(deps.Stdout, " ¶%d", *s.ParagraphNum)
		}
		fmt.Fprintf(deps.Stdout, "  score %.3f  transcript %s\n", s.Score, earnings.ShortID(s.TranscriptID, 8))
		for _, f := range s.Fragments() {
			fmt.Fprintf(deps.Stdout, "      … %s\n", f)
		}
	}
}

func optionalText(n *int) string {
	if n == nil {
		return "?"
	}
	return strconv.Itoa(*n)
}

func optionalString(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "unknown speaker"
	}
	return strings.TrimSpace(*s)
}
