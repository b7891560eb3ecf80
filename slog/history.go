package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/earnings"
)

var _ earnings.HistoryService = (*LoggingHistoryService)(nil)

// LoggingHistoryService wraps a HistoryService with debug logging.
type LoggingHistoryService struct {
	next   earnings.HistoryService
	logger *slog.Logger
}

// NewLoggingHistoryService creates a new LoggingHistoryService.
func NewLoggingHistoryService(next earnings.HistoryService, logger *slog.Logger) *LoggingHistoryService {
	return &LoggingHistoryService{next: next, logger: logger}
}

// CreateExchange delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) CreateExchange(ctx context.Context, e *earnings.Exchange) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create exchange",
			"id", e.ID,
			"company", e.CompanyName,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateExchange(ctx, e)
}

// FindExchangeByID delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) FindExchangeByID(ctx context.Context, id string) (e *earnings.Exchange, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find exchange",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindExchangeByID(ctx, id)
}

// FindExchanges delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) FindExchanges(ctx context.Context, filter earnings.ExchangeFilter) (exchanges []*earnings.Exchange, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find exchanges",
			"limit", filter.Limit,
			"offset", filter.Offset,
			"count", len(exchanges),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindExchanges(ctx, filter)
}

// DeleteExchange delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) DeleteExchange(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete exchange",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteExchange(ctx, id)
}
