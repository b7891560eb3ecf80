package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/earnings"
)

// Run executes the transcripts command.
func (c *TranscriptsCmd) Run(deps *Dependencies) error {
	company := strings.TrimSpace(c.Company)
	if company == "" {
		err := earnings.Errorf(earnings.EINVALID, "Company name is required.")
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}

	ct, err := deps.Ingest.ListTranscripts(deps.Ctx, company)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s  %s\n", ct.CompanyName, ct.CompanyID)
	if len(ct.Transcripts) == 0 {
		fmt.Fprintf(deps.Stdout, "No transcripts found. Use 'earnings ingest %q --year --quarter' to add one.\n", company)
		return nil
	}
	for _, t := range ct.Transcripts {
		fmt.Fprintf(deps.Stdout, "  FY%d Q%d  %s\n", t.FiscalYear, t.FiscalQuarter, t.TranscriptID)
	}
	return nil
}
