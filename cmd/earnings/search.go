package main

import (
	"fmt"

	"github.com/fwojciec/earnings"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	req := earnings.SearchRequest{
		Query:         c.Query,
		Limit:         c.Limit,
		Offset:        c.Offset,
		CompanyID:     c.CompanyID,
		FiscalYear:    optional(c.Year),
		FiscalQuarter: optional(c.Quarter),
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}

	res, err := deps.Search.Search(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}

	if len(res.Hits) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", req.Query)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%d results (showing %d-%d)\n", res.Total, req.Offset+1, req.Offset+len(res.Hits))
	for i, hit := range res.Hits {
		fmt.Fprintf(deps.Stdout, "\n%d. %s  FY%s Q%s  rank %.3f\n",
			req.Offset+i+1, hit.TranscriptID, optionalText(hit.FiscalYear), optionalText(hit.FiscalQuarter), hit.Rank)
		for _, f := range hit.Fragments() {
			fmt.Fprintf(deps.Stdout, "   … %s\n", f)
		}
	}
	return nil
}
