// Package slog provides log/slog decorators for earnings services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/earnings"
)

var _ earnings.IngestService = (*LoggingIngestService)(nil)

// LoggingIngestService wraps an IngestService with logging.
type LoggingIngestService struct {
	next   earnings.IngestService
	logger *slog.Logger
}

// NewLoggingIngestService creates a new LoggingIngestService.
func NewLoggingIngestService(next earnings.IngestService, logger *slog.Logger) *LoggingIngestService {
	return &LoggingIngestService{next: next, logger: logger}
}

// Ingest delegates to the wrapped service and logs the operation.
func (s *LoggingIngestService) Ingest(ctx context.Context, req earnings.IngestRequest) (ing *earnings.Ingestion, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"company", req.CompanyNameQuery,
			"year", req.Year,
			"quarter", req.Quarter,
			"duration", time.Since(begin),
			"err", err,
		}
		if ing != nil {
			attrs = append(attrs, "transcript_id", ing.TranscriptID)
		}
		s.logger.Info("ingest", attrs...)
	}(time.Now())
	return s.next.Ingest(ctx, req)
}

// ListTranscripts delegates to the wrapped service and logs the operation.
func (s *LoggingIngestService) ListTranscripts(ctx context.Context, companyName string) (ct *earnings.CompanyTranscripts, err error) {
	defer func(begin time.Time) {
		count := 0
		if ct != nil {
			count = len(ct.Transcripts)
		}
		s.logger.Info("list transcripts",
			"company", companyName,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListTranscripts(ctx, companyName)
}

// FindTranscript delegates to the wrapped service and logs the operation.
func (s *LoggingIngestService) FindTranscript(ctx context.Context, id string) (t *earnings.Transcript, err error) {
	defer func(begin time.Time) {
		size := 0
		if t != nil {
			size = len(t.Text)
		}
		s.logger.Info("find transcript",
			"id", id,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTranscript(ctx, id)
}
