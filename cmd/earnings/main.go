package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/earnings"
	"github.com/fwojciec/earnings/fs"
	"github.com/fwojciec/earnings/glamour"
	"github.com/fwojciec/earnings/htmltomarkdown"
	earnhttp "github.com/fwojciec/earnings/http"
	earnslog "github.com/fwojciec/earnings/slog"
	"github.com/fwojciec/earnings/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := LoadEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// LoadEnv sets variables from the dotenv file at path. Variables already
// present in the environment are kept. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Main represents the program.
type Main struct {
	// SQLite database used by the history store.
	DB *sqlite.DB

	// Services for end-to-end testing. Nil services are built from flags.
	IngestService  earnings.IngestService
	SearchService  earnings.SearchService
	Asker          earnings.Asker
	HistoryService earnings.HistoryService
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("earnings"),
		kong.Description("Ingest, search and ask questions about earnings call transcripts."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"default_db": defaultDBPath()},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'earnings --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger

	client := earnhttp.NewClient(cli.APIURL,
		earnhttp.WithTimeout(cli.Timeout),
		earnhttp.WithRateLimit(cli.Rate),
		earnhttp.WithLogger(logger),
	)
	if m.IngestService == nil {
		m.IngestService = client
	}
	if m.SearchService == nil {
		m.SearchService = client
	}
	if m.Asker == nil {
		m.Asker = client
	}
	deps.Ingest = earnslog.NewLoggingIngestService(m.IngestService, logger)
	deps.Search = earnslog.NewLoggingSearchService(m.SearchService, logger)
	deps.Asker = earnslog.NewLoggingAsker(m.Asker, logger)

	if needsHistory(cmd, cli) {
		if m.HistoryService == nil {
			if err := m.openDB(cli.DB); err != nil {
				fmt.Fprintln(stderr, "Hint: Set EARNINGS_DB to use a different database path")
				return err
			}
			defer m.Close()
			m.HistoryService = sqlite.NewHistoryService(m.DB)
		}
		deps.History = earnslog.NewLoggingHistoryService(m.HistoryService, logger)
	}

	if cmd == "ask" || cmd == "history" {
		renderer, err := glamour.NewRenderer(cli.Style, cli.Width)
		if err != nil {
			return err
		}
		deps.Converter = htmltomarkdown.NewConverter()
		deps.Renderer = renderer
	}

	if cmd == "view" && cli.View.Out != "" {
		deps.Writer = fs.NewWriter(cli.View.Out)
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(path string) error {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return nil
}

func needsHistory(cmd string, cli *CLI) bool {
	switch cmd {
	case "history", "serve":
		return true
	case "ask":
		return !cli.Ask.NoSave
	}
	return false
}

// newLogger returns a text logger on w. Only warnings are shown unless
// verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "earnings.db"
	}
	return filepath.Join(home, ".earnings", "earnings.db")
}
