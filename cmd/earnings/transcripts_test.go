package main_test

import (
	"context"
	"testing"

	"github.com/fwojciec/earnings"
	main "github.com/fwojciec/earnings/cmd/earnings"
	"github.com/fwojciec/earnings/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists transcripts", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Ingest = &mock.IngestService{
			ListTranscriptsFn: func(_ context.Context, company string) (*earnings.CompanyTranscripts, error) {
				assert.Equal(t, "Apple", company)
				return &earnings.CompanyTranscripts{
					CompanyID:   "c-1",
					CompanyName: "Apple Inc.",
					Transcripts: []earnings.TranscriptSummary{
						{TranscriptID: "t-1", FiscalYear: 2024, FiscalQuarter: 1},
						{TranscriptID: "t-2", FiscalYear: 2024, FiscalQuarter: 2},
					},
				}, nil
			},
		}

		cmd := &main.TranscriptsCmd{Company: " Apple "}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "Apple Inc.  c-1\n  FY2024 Q1  t-1\n  FY2024 Q2  t-2\n", stdout.String())
	})

	t.Run("hints when company has no transcripts", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Ingest = &mock.IngestService{
			ListTranscriptsFn: func(_ context.Context, company string) (*earnings.CompanyTranscripts, error) {
				return &earnings.CompanyTranscripts{CompanyName: "Apple"}, nil
			},
		}

		cmd := &main.TranscriptsCmd{Company: "Apple"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No transcripts found")
	})

	t.Run("requires company name", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)
		deps.Ingest = &mock.IngestService{}

		cmd := &main.TranscriptsCmd{Company: "   "}
		err := cmd.Run(deps)

		assert.Equal(t, earnings.EINVALID, earnings.ErrorCode(err))
		assert.Contains(t, stderr.String(), "Company name is required.")
	})
}
