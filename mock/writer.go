package mock

import (
	"context"

	"github.com/fwojciec/earnings"
)

var _ earnings.TranscriptWriter = (*TranscriptWriter)(nil)

// TranscriptWriter is a mock implementation of earnings.TranscriptWriter.
type TranscriptWriter struct {
	WriteTranscriptFn func(ctx context.Context, t *earnings.Transcript) (string, error)
}

func (w *TranscriptWriter) WriteTranscript(ctx context.Context, t *earnings.Transcript) (string, error) {
	return w.WriteTranscriptFn(ctx, t)
}
