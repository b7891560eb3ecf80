package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/earnings"
)

var _ earnings.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with logging.
type LoggingSearchService struct {
	next   earnings.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next earnings.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) Search(ctx context.Context, req earnings.SearchRequest) (res *earnings.SearchResult, err error) {
	defer func(begin time.Time) {
		total, hits := 0, 0
		if res != nil {
			total, hits = res.Total, len(res.Hits)
		}
		s.logger.Info("search",
			"query", req.Query,
			"limit", req.Limit,
			"offset", req.Offset,
			"total", total,
			"hits", hits,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, req)
}
