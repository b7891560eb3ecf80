// Package fs provides file-based export of transcripts.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/earnings"
)

// Slug converts a company name into a lowercase directory name.
// Example: "Apple Inc." → apple-inc
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "unknown"
	}
	return s
}

// TranscriptPath returns the relative file path for a transcript.
// Example: Apple Inc. FY2024 Q3 → apple-inc/2024-q3.md
func TranscriptPath(t *earnings.Transcript) string {
	return filepath.Join(Slug(t.CompanyName), fmt.Sprintf("%d-q%d.md", t.FiscalYear, t.FiscalQuarter))
}

// FormatTranscript formats a transcript with YAML frontmatter.
func FormatTranscript(t *earnings.Transcript) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "company: %q\n", t.CompanyName)
	fmt.Fprintf(&b, "company_id: %q\n", t.CompanyID)
	fmt.Fprintf(&b, "transcript_id: %q\n", t.TranscriptID)
	fmt.Fprintf(&b, "fiscal_year: %d\n", t.FiscalYear)
	fmt.Fprintf(&b, "fiscal_quarter: %d\n", t.FiscalQuarter)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s FY%d Q%d\n\n", t.CompanyName, t.FiscalYear, t.FiscalQuarter)
	b.WriteString(strings.TrimSpace(t.Text))
	b.WriteString("\n")

	if len(t.OrgData.Freq) > 0 {
		fmt.Fprintf(&b, "\n## Organizations (%d unique)\n\n", t.OrgData.UniqueCount)
		b.WriteString("| Organization | Mentions |\n|---|---|\n")
		for _, o := range t.OrgData.Freq {
			fmt.Fprintf(&b, "| %s | %d |\n", strings.ReplaceAll(o.Name, "|", `\|`), o.Count)
		}
	}
	return b.String()
}

var _ earnings.TranscriptWriter = (*Writer)(nil)

// Writer writes transcripts as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteTranscript writes a transcript to disk and returns the file path.
// The file is written to a temporary name first and renamed into place.
func (w *Writer) WriteTranscript(ctx context.Context, t *earnings.Transcript) (string, error) {
	if t == nil || t.TranscriptID == "" {
		return "", earnings.Errorf(earnings.EINVALID, "Transcript id is missing.")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, TranscriptPath(t))
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".transcript-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(FormatTranscript(t)); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}

	return fullPath, nil
}
