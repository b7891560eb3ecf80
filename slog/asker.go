package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/earnings"
)

var _ earnings.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging.
type LoggingAsker struct {
	next   earnings.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next earnings.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the operation.
// The question text is logged only at debug level.
func (a *LoggingAsker) Ask(ctx context.Context, req earnings.QuestionRequest) (ans *earnings.Answer, err error) {
	a.logger.Debug("ask question", "company", req.Company.CompanyNameQuery, "question", req.Question)
	defer func(begin time.Time) {
		citations, sources := 0, 0
		if ans != nil {
			citations = len(earnings.ParseCitations(ans.Text))
			sources = len(ans.Sources)
		}
		a.logger.Info("ask",
			"company", req.Company.CompanyNameQuery,
			"citations", citations,
			"sources", sources,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, req)
}
