package main_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/earnings"
	main "github.com/fwojciec/earnings/cmd/earnings"
	"github.com/fwojciec/earnings/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transcriptService() *mock.IngestService {
	return &mock.IngestService{
		FindTranscriptFn: func(_ context.Context, id string) (*earnings.Transcript, error) {
			if id == "missing" {
				return nil, earnings.Errorf(earnings.ENOTFOUND, "Transcript not found")
			}
			return &earnings.Transcript{
				TranscriptID:  id,
				CompanyName:   "Apple",
				FiscalYear:    2024,
				FiscalQuarter: 1,
				Text:          "Text of " + id,
			}, nil
		},
	}
}

func TestViewCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints transcripts in argument order", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Ingest = transcriptService()

		cmd := &main.ViewCmd{IDs: []string{"t-1", "t-2", "t-3"}, Concurrency: 3}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "Apple FY2024 Q1  t-1")
		i1 := strings.Index(out, "Text of t-1")
		i2 := strings.Index(out, "Text of t-2")
		i3 := strings.Index(out, "Text of t-3")
		assert.True(t, i1 < i2 && i2 < i3, "transcripts should keep argument order")
	})

	t.Run("lists top organizations", func(t *testing.T) {
		t.Parallel()

		freq := make([]earnings.OrgFreq, 12)
		for i := range freq {
			freq[i] = earnings.OrgFreq{Name: fmt.Sprintf("Org%d", i), Count: 12 - i}
		}
		deps, stdout, _ := testDeps(t)
		deps.Ingest = &mock.IngestService{
			FindTranscriptFn: func(_ context.Context, id string) (*earnings.Transcript, error) {
				return &earnings.Transcript{TranscriptID: id, OrgData: earnings.Orgs{UniqueCount: 12, Freq: freq}}, nil
			},
		}

		cmd := &main.ViewCmd{IDs: []string{"t-1"}, Concurrency: 1}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "Organizations (12 unique):")
		assert.Contains(t, out, "Org9")
		assert.NotContains(t, out, "Org10")
		assert.Contains(t, out, "… 2 more")
	})

	t.Run("writes transcripts when a writer is configured", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var written []string
		deps, stdout, _ := testDeps(t)
		deps.Ingest = transcriptService()
		deps.Writer = &mock.TranscriptWriter{
			WriteTranscriptFn: func(_ context.Context, tr *earnings.Transcript) (string, error) {
				mu.Lock()
				defer mu.Unlock()
				written = append(written, tr.TranscriptID)
				return "out/" + tr.TranscriptID + ".md", nil
			},
		}

		cmd := &main.ViewCmd{IDs: []string{"t-1", "t-2"}, Concurrency: 2}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, []string{"t-1", "t-2"}, written)
		assert.Equal(t, "Wrote out/t-1.md\nWrote out/t-2.md\n", stdout.String())
	})

	t.Run("reports the failing id", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps(t)
		deps.Ingest = transcriptService()

		cmd := &main.ViewCmd{IDs: []string{"t-1", "missing"}, Concurrency: 1}
		err := cmd.Run(deps)

		assert.Equal(t, earnings.ENOTFOUND, earnings.ErrorCode(err))
		assert.Equal(t, "error: missing: Transcript not found\n", stderr.String())
		assert.Empty(t, stdout.String())
	})

	t.Run("returns the real failure over a cancellation", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)
		deps.Ingest = &mock.IngestService{
			FindTranscriptFn: func(ctx context.Context, id string) (*earnings.Transcript, error) {
				if id == "cancelled" {
					return nil, context.Canceled
				}
				<-ctx.Done()
				return nil, earnings.Errorf(earnings.ENOTFOUND, "Transcript not found")
			},
		}

		cmd := &main.ViewCmd{IDs: []string{"cancelled", "missing"}, Concurrency: 2}
		err := cmd.Run(deps)

		assert.NotErrorIs(t, err, context.Canceled)
		assert.Equal(t, earnings.ENOTFOUND, earnings.ErrorCode(err))
		assert.Equal(t, "error: missing: Transcript not found\n", stderr.String())
	})

	t.Run("requires an id", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)
		deps.Ingest = transcriptService()

		cmd := &main.ViewCmd{IDs: []string{" "}}
		err := cmd.Run(deps)

		assert.Equal(t, earnings.EINVALID, earnings.ErrorCode(err))
		assert.Contains(t, stderr.String(), "Transcript id is missing.")
	})
}
