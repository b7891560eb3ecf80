package http

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/earnings"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server shuts down.
const ShutdownTimeout = 5 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"answer":    func(s string) template.HTML { return template.HTML(earnings.RenderAnswer(s)) },
	"fragments": earnings.SnippetFragments,
	"short":     func(id string) string { return earnings.ShortID(id, 8) },
	"optint":    optionalInt,
	"optstr":    optionalString,
}).ParseFS(templateFS, "templates/*.html"))

// Server serves the browser UI. Form submissions are validated locally and
// forwarded to the backend services; results and errors are rendered as HTML.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *http.ServeMux

	// Bind address for the server's listener.
	Addr string

	// Services used by the handlers.
	IngestService  earnings.IngestService
	SearchService  earnings.SearchService
	Asker          earnings.Asker
	HistoryService earnings.HistoryService // optional

	Logger *slog.Logger

	// Now returns the current time. Used for the default ingest year.
	Now func() time.Time
}

// NewServer returns a new instance of Server.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{},
		router: http.NewServeMux(),
		Logger: slog.New(slog.DiscardHandler),
		Now:    time.Now,
	}

	s.router.HandleFunc("GET /{$}", s.handleHome)
	s.router.HandleFunc("POST /ingest", s.handleIngest)
	s.router.HandleFunc("GET /transcripts", s.handleListTranscripts)
	s.router.HandleFunc("GET /transcripts/{id}", s.handleTranscript)
	s.router.HandleFunc("POST /search", s.handleSearch)
	s.router.HandleFunc("POST /ask", s.handleAsk)

	s.server.Handler = s.Handler()
	return s
}

// Handler returns the server's HTTP handler with request logging.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func(begin time.Time) {
			s.Logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(begin),
			)
		}(time.Now())
		s.router.ServeHTTP(rec, r)
	})
}

// Open begins listening on the bind address and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("http server stopped", "err", err)
		}
	}()

	return nil
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// render executes a named template, writing status first.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		s.Logger.Error("render template", "template", name, "err", err)
	}
}

// errorStatus maps an application error code to an HTTP status.
func errorStatus(err error) int {
	switch earnings.ErrorCode(err) {
	case earnings.EINVALID:
		return http.StatusBadRequest
	case earnings.ENOTFOUND:
		return http.StatusNotFound
	case earnings.ECONFLICT:
		return http.StatusConflict
	case earnings.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func optionalInt(n *int) string {
	if n == nil {
		return "—"
	}
	return strconv.Itoa(*n)
}

func optionalString(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}
