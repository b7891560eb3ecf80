package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/earnings"
	"golang.org/x/sync/errgroup"
)

// maxOrgs is the number of organizations listed after a transcript.
const maxOrgs = 10

// Run executes the view command.
func (c *ViewCmd) Run(deps *Dependencies) error {
	ids := make([]string, 0, len(c.IDs))
	for _, id := range c.IDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		err := earnings.Errorf(earnings.EINVALID, "Transcript id is missing.")
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	transcripts := make([]*earnings.Transcript, len(ids))
	errs := make([]error, len(ids))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, id := range ids {
		g.Go(func() error {
			transcripts[i], errs[i] = deps.Ingest.FindTranscript(ctx, id)
			return errs[i]
		})
	}
	if err := g.Wait(); err != nil {
		i := firstFailure(errs)
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", ids[i], earnings.ErrorMessage(errs[i]))
		return errs[i]
	}

	if deps.Writer != nil {
		for _, t := range transcripts {
			path, err := deps.Writer.WriteTranscript(deps.Ctx, t)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
		}
		return nil
	}

	for i, t := range transcripts {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		printTranscript(deps, t)
	}
	return nil
}

// firstFailure returns the index of the first error that is not a
// cancellation caused by another failed fetch.
func firstFailure(errs []error) int {
	first := -1
	for i, err := range errs {
		if err == nil {
			continue
		}
		if first < 0 {
			first = i
		}
		if !errors.Is(err, context.Canceled) {
			return i
		}
	}
	return first
}

func printTranscript(deps *Dependencies, t *earnings.Transcript) {
	fmt.Fprintf(deps.Stdout, "%s FY%d Q%d  %s\n\n", t.CompanyName, t.FiscalYear, t.FiscalQuarter, t.TranscriptID)
	fmt.Fprintln(deps.Stdout, strings.TrimSpace(t.Text))

	if len(t.OrgData.Freq) == 0 {
		return
	}
	fmt.Fprintf(deps.Stdout, "\nOrganizations (%d unique):\n", t.OrgData.UniqueCount)
	for i, o := range t.OrgData.Freq {
		if i == maxOrgs {
			fmt.Fprintf(deps.Stdout, "  … %d more\n", len(t.OrgData.Freq)-maxOrgs)
			break
		}
		fmt.Fprintf(deps.Stdout, "  %4d  %s\n", o.Count, o.Name)
	}
}
