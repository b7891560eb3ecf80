package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/earnings"
	"github.com/fwojciec/earnings/mock"
	earnslog "github.com/fwojciec/earnings/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearchService_Search(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.SearchService{
		SearchFn: func(ctx context.Context, req earnings.SearchRequest) (*earnings.SearchResult, error) {
			return &earnings.SearchResult{Total: 42, Hits: make([]earnings.SearchHit, 3)}, nil
		},
	}

	svc := earnslog.NewLoggingSearchService(inner, newLogger(&buf))
	res, err := svc.Search(context.Background(), earnings.SearchRequest{Query: "margins", Limit: 3})

	require.NoError(t, err)
	assert.Equal(t, 42, res.Total)
	output := buf.String()
	assert.Contains(t, output, "msg=search")
	assert.Contains(t, output, "query=margins")
	assert.Contains(t, output, "total=42")
	assert.Contains(t, output, "hits=3")
	assert.Contains(t, output, "err=<nil>")
}
