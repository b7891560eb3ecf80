package mock

import (
	"context"

	"github.com/fwojciec/earnings"
)

var _ earnings.IngestService = (*IngestService)(nil)

// IngestService is a mock implementation of earnings.IngestService.
type IngestService struct {
	IngestFn          func(ctx context.Context, req earnings.IngestRequest) (*earnings.Ingestion, error)
	ListTranscriptsFn func(ctx context.Context, companyName string) (*earnings.CompanyTranscripts, error)
	FindTranscriptFn  func(ctx context.Context, id string) (*earnings.Transcript, error)
}

func (s *IngestService) Ingest(ctx context.Context, req earnings.IngestRequest) (*earnings.Ingestion, error) {
	return s.IngestFn(ctx, req)
}

func (s *IngestService) ListTranscripts(ctx context.Context, companyName string) (*earnings.CompanyTranscripts, error) {
	return s.ListTranscriptsFn(ctx, companyName)
}

func (s *IngestService) FindTranscript(ctx context.Context, id string) (*earnings.Transcript, error) {
	return s.FindTranscriptFn(ctx, id)
}
