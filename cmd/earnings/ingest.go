package main

import (
	"fmt"

	"github.com/fwojciec/earnings"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	req := earnings.IngestRequest{
		CompanyNameQuery: c.Company,
		SecurityType:     c.SecurityType,
		ExchangeCode:     c.Exchange,
		Year:             c.Year,
		Quarter:          c.Quarter,
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}

	ing, err := deps.Ingest.Ingest(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Ingested %s", ing.CompanyName)
	if ing.Ticker != "" {
		fmt.Fprintf(deps.Stdout, " (%s)", ing.Ticker)
	}
	fmt.Fprintf(deps.Stdout, " FY%d Q%d\n", ing.FiscalYear, ing.FiscalQuarter)
	fmt.Fprintf(deps.Stdout, "  company_id:    %s\n", ing.CompanyID)
	fmt.Fprintf(deps.Stdout, "  transcript_id: %s\n", ing.TranscriptID)
	return nil
}
