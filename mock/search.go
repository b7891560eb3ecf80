package mock

import (
	"context"

	"github.com/fwojciec/earnings"
)

var _ earnings.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of earnings.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, req earnings.SearchRequest) (*earnings.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, req earnings.SearchRequest) (*earnings.SearchResult, error) {
	return s.SearchFn(ctx, req)
}
