package main_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/earnings"
	main "github.com/fwojciec/earnings/cmd/earnings"
	"github.com/fwojciec/earnings/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const citedAnswer = "Services revenue hit a record [chunk_id=abcdef12-3456, chunk_speaker=Tim Cook, para_number=4].\nMargins held."

func citedAsker() *mock.Asker {
	return &mock.Asker{
		AskFn: func(_ context.Context, _ earnings.QuestionRequest) (*earnings.Answer, error) {
			return &earnings.Answer{
				Text: citedAnswer,
				Sources: []earnings.Source{{
					TranscriptID: "0123456789abcdef",
					ChunkID:      "abcdef12-3456",
					Speaker:      strPtr("Tim Cook"),
					ParagraphNum: intPtr(4),
					Score:        0.91,
					Snippet:      "record services ƒ?İ all-time high",
				}},
			}, nil
		},
	}
}

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints raw answer", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Asker = citedAsker()

		cmd := &main.AskCmd{Company: "Apple", Question: "How did services do?", Format: main.FormatRaw, NoSources: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, citedAnswer+"\n", stdout.String())
	})

	t.Run("prints html with citation badges", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Asker = citedAsker()

		cmd := &main.AskCmd{Company: "Apple", Question: "q", Format: main.FormatHTML, NoSources: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, earnings.RenderAnswer(citedAnswer)+"\n", stdout.String())
	})

	t.Run("prints markdown and sources", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Asker = citedAsker()

		cmd := &main.AskCmd{Company: "Apple", Question: "q", Format: main.FormatMarkdown}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "Services revenue hit a record")
		assert.NotContains(t, out, "<span")
		assert.Contains(t, out, "Sources:")
		assert.Contains(t, out, "[abcde] Tim Cook ¶4  score 0.910  transcript 01234567")
		assert.Contains(t, out, "      … record services\n      … all-time high\n")
	})

	t.Run("prints pretty output through renderer", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Asker = citedAsker()
		deps.Renderer = &mock.MarkdownRenderer{
			RenderFn: func(md string) (string, error) {
				return "PRETTY(" + md + ")", nil
			},
		}

		cmd := &main.AskCmd{Company: "Apple", Question: "q", Format: main.FormatPretty, NoSources: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "PRETTY(Services revenue hit a record")
	})

	t.Run("passes optional period to asker", func(t *testing.T) {
		t.Parallel()

		var got earnings.QuestionRequest
		deps, _, _ := testDeps(t)
		deps.Asker = &mock.Asker{
			AskFn: func(_ context.Context, req earnings.QuestionRequest) (*earnings.Answer, error) {
				got = req
				return &earnings.Answer{}, nil
			},
		}

		cmd := &main.AskCmd{Company: "Apple", Question: " q ", Year: 2023, Format: main.FormatRaw}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "q", got.Question)
		require.NotNil(t, got.Company.Year)
		assert.Equal(t, 2023, *got.Company.Year)
		assert.Nil(t, got.Company.Quarter)
		assert.Equal(t, "Common Stock", got.Company.SecurityType)
	})

	t.Run("requires company name", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)
		deps.Asker = &mock.Asker{}

		err := (&main.AskCmd{Company: " ", Question: "q", Format: main.FormatRaw}).Run(deps)

		assert.Equal(t, earnings.EINVALID, earnings.ErrorCode(err))
		assert.Contains(t, stderr.String(), "Company name is required for Q&A in the current backend.")
	})

	t.Run("records exchange and notes earlier question", func(t *testing.T) {
		t.Parallel()

		var saved *earnings.Exchange
		var filter earnings.ExchangeFilter
		deps, _, stderr := testDeps(t)
		deps.Asker = citedAsker()
		deps.History = &mock.HistoryService{
			FindExchangesFn: func(_ context.Context, f earnings.ExchangeFilter) ([]*earnings.Exchange, error) {
				filter = f
				return []*earnings.Exchange{{ID: "ex-0", CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)}}, nil
			},
			CreateExchangeFn: func(_ context.Context, e *earnings.Exchange) error {
				e.ID = "ex-1"
				saved = e
				return nil
			},
		}

		cmd := &main.AskCmd{Company: "Apple", Question: "q", Format: main.FormatRaw}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, filter.Fingerprint)
		require.NotNil(t, saved)
		assert.Equal(t, citedAnswer, saved.Answer)
		assert.Len(t, saved.Sources, 1)
		assert.Contains(t, stderr.String(), "Asked before on 2024-05-01 12:00")
		assert.Contains(t, stderr.String(), "history --show ex-0")
		assert.Contains(t, stderr.String(), "Saved as ex-1")
	})

	t.Run("does not save with NoSave", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)
		deps.Asker = citedAsker()
		deps.History = &mock.HistoryService{}

		cmd := &main.AskCmd{Company: "Apple", Question: "q", Format: main.FormatRaw, NoSave: true}
		require.NoError(t, cmd.Run(deps))

		assert.Empty(t, stderr.String())
	})

	t.Run("warns when history save fails", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps(t)
		deps.Asker = citedAsker()
		deps.History = &mock.HistoryService{
			FindExchangesFn: func(_ context.Context, _ earnings.ExchangeFilter) ([]*earnings.Exchange, error) {
				return nil, errors.New("db locked")
			},
			CreateExchangeFn: func(_ context.Context, _ *earnings.Exchange) error {
				return earnings.Errorf(earnings.EINTERNAL, "disk full")
			},
		}

		cmd := &main.AskCmd{Company: "Apple", Question: "q", Format: main.FormatRaw, NoSources: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, citedAnswer+"\n", stdout.String())
		assert.Contains(t, stderr.String(), "warning: could not save to history: disk full")
	})

	t.Run("reports backend error", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps(t)
		deps.Asker = &mock.Asker{
			AskFn: func(_ context.Context, _ earnings.QuestionRequest) (*earnings.Answer, error) {
				return nil, earnings.Errorf(earnings.EUNAVAILABLE, "Backend unreachable: connection refused")
			},
		}

		err := (&main.AskCmd{Company: "Apple", Question: "q", Format: main.FormatRaw}).Run(deps)

		assert.Equal(t, earnings.EUNAVAILABLE, earnings.ErrorCode(err))
		assert.Contains(t, stderr.String(), "Backend unreachable")
		assert.Empty(t, stdout.String())
	})
}
