package mock

import (
	"context"

	"github.com/fwojciec/earnings"
)

var _ earnings.Asker = (*Asker)(nil)

// Asker is a mock implementation of earnings.Asker.
type Asker struct {
	AskFn func(ctx context.Context, req earnings.QuestionRequest) (*earnings.Answer, error)
}

func (a *Asker) Ask(ctx context.Context, req earnings.QuestionRequest) (*earnings.Answer, error) {
	return a.AskFn(ctx, req)
}
