package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/earnings"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Ingest    earnings.IngestService
	Search    earnings.SearchService
	Asker     earnings.Asker
	History   earnings.HistoryService
	Converter earnings.Converter
	Renderer  earnings.MarkdownRenderer
	Writer    earnings.TranscriptWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIURL  string        `name:"api-url" env:"EARNINGS_API_URL" default:"http://localhost:8000" help:"Backend base URL"`
	DB      string        `name:"db" env:"EARNINGS_DB" default:"${default_db}" help:"History database path"`
	Timeout time.Duration `env:"EARNINGS_TIMEOUT" default:"60s" help:"Backend request timeout"`
	Rate    float64       `env:"EARNINGS_RATE" default:"0" help:"Max backend requests per second (0 for no limit)"`
	Style   string        `env:"EARNINGS_STYLE" default:"dark" help:"Terminal style for pretty output (dark, light, dracula, notty)"`
	Width   int           `default:"80" help:"Word wrap width for pretty output"`
	Verbose bool          `short:"v" help:"Log backend calls and timings to stderr"`

	Ingest      IngestCmd      `cmd:"" help:"Fetch and index a transcript on the backend"`
	Transcripts TranscriptsCmd `cmd:"" help:"List stored transcripts for a company"`
	View        ViewCmd        `cmd:"" help:"Show or export full transcripts"`
	Search      SearchCmd      `cmd:"" help:"Full-text search across transcripts"`
	Ask         AskCmd         `cmd:"" help:"Ask a question about a company's earnings calls"`
	History     HistoryCmd     `cmd:"" help:"List, show or delete recorded questions"`
	Serve       ServeCmd       `cmd:"" help:"Serve the browser UI"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	Company      string `arg:"" help:"Company name or ticker"`
	Year         int    `short:"y" required:"" help:"Fiscal year"`
	Quarter      int    `short:"q" required:"" help:"Fiscal quarter (1-4)"`
	SecurityType string `default:"Common Stock" help:"Security type used for the company lookup"`
	Exchange     string `default:"US" help:"Exchange code used for the company lookup"`
}

// TranscriptsCmd is the "transcripts" subcommand.
type TranscriptsCmd struct {
	Company string `arg:"" help:"Company name"`
}

// ViewCmd is the "view" subcommand.
type ViewCmd struct {
	IDs         []string `arg:"" name:"id" help:"Transcript ids"`
	Out         string   `short:"o" type:"path" help:"Write transcripts as Markdown files under this directory"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query     string `arg:"" help:"Search query"`
	CompanyID string `help:"Restrict to a company id"`
	Year      int    `short:"y" help:"Restrict to a fiscal year"`
	Quarter   int    `short:"q" help:"Restrict to a fiscal quarter"`
	Limit     int    `short:"n" default:"20" help:"Maximum number of hits"`
	Offset    int    `help:"Number of hits to skip"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Company      string `arg:"" help:"Company name"`
	Question     string `arg:"" help:"Question to ask"`
	Year         int    `short:"y" help:"Restrict to a fiscal year"`
	Quarter      int    `short:"q" help:"Restrict to a fiscal quarter"`
	SecurityType string `default:"Common Stock" help:"Security type used for the company lookup"`
	Exchange     string `default:"US" help:"Exchange code used for the company lookup"`
	Format       string `short:"f" enum:"pretty,markdown,html,raw" default:"pretty" help:"Answer format (pretty, markdown, html, raw)"`
	NoSources    bool   `help:"Do not list sources"`
	NoSave       bool   `help:"Do not record the exchange in history"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Company string `help:"Only list questions about this company"`
	Limit   int    `short:"n" default:"20" help:"Maximum number of entries"`
	Offset  int    `help:"Number of entries to skip"`
	Show    string `help:"Show a recorded exchange by id"`
	Delete  string `help:"Delete a recorded exchange by id"`
	Force   bool   `help:"Confirm deletion"`
	Format  string `short:"f" enum:"pretty,markdown,html,raw" default:"pretty" help:"Answer format for --show"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `env:"EARNINGS_ADDR" default:"127.0.0.1:8080" help:"Listen address"`
}

// optional converts a zero flag value into an absent one.
func optional(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
