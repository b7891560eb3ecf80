package mock

import (
	"context"

	"github.com/fwojciec/earnings"
)

var _ earnings.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of earnings.HistoryService.
type HistoryService struct {
	CreateExchangeFn   func(ctx context.Context, e *earnings.Exchange) error
	FindExchangeByIDFn func(ctx context.Context, id string) (*earnings.Exchange, error)
	FindExchangesFn    func(ctx context.Context, filter earnings.ExchangeFilter) ([]*earnings.Exchange, error)
	DeleteExchangeFn   func(ctx context.Context, id string) error
}

func (s *HistoryService) CreateExchange(ctx context.Context, e *earnings.Exchange) error {
	return s.CreateExchangeFn(ctx, e)
}

func (s *HistoryService) FindExchangeByID(ctx context.Context, id string) (*earnings.Exchange, error) {
	return s.FindExchangeByIDFn(ctx, id)
}

func (s *HistoryService) FindExchanges(ctx context.Context, filter earnings.ExchangeFilter) ([]*earnings.Exchange, error) {
	return s.FindExchangesFn(ctx, filter)
}

func (s *HistoryService) DeleteExchange(ctx context.Context, id string) error {
	return s.DeleteExchangeFn(ctx, id)
}
