package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/earnings"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	switch {
	case c.Delete != "":
		return c.delete(deps)
	case c.Show != "":
		return c.show(deps)
	}

	filter := earnings.ExchangeFilter{Limit: c.Limit, Offset: c.Offset}
	if company := strings.TrimSpace(c.Company); company != "" {
		filter.CompanyName = &company
	}

	exchanges, err := deps.History.FindExchanges(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}

	if len(exchanges) == 0 {
		fmt.Fprintln(deps.Stdout, "No questions recorded yet. Use 'earnings ask' to ask one.")
		return nil
	}

	for _, e := range exchanges {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-12s %s  %s\n",
			e.ID,
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.CompanyName,
			period(e.Year, e.Quarter),
			e.Question,
		)
	}
	return nil
}

func (c *HistoryCmd) show(deps *Dependencies) error {
	e, err := deps.History.FindExchangeByID(deps.Ctx, c.Show)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Q: %s\n", e.Question)
	fmt.Fprintf(deps.Stdout, "   %s %s, asked %s\n\n", e.CompanyName, period(e.Year, e.Quarter),
		e.CreatedAt.Local().Format("2006-01-02 15:04"))

	ans := &earnings.Answer{Text: e.Answer, Sources: e.Sources}
	if err := printAnswer(deps, ans, c.Format, true); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}
	return nil
}

func (c *HistoryCmd) delete(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return earnings.Errorf(earnings.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.History.DeleteExchange(deps.Ctx, c.Delete); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted exchange %s\n", c.Delete)
	return nil
}

// period formats an optional fiscal year and quarter.
func period(year, quarter *int) string {
	switch {
	case year != nil && quarter != nil:
		return fmt.Sprintf("FY%d Q%d", *year, *quarter)
	case year != nil:
		return fmt.Sprintf("FY%d", *year)
	case quarter != nil:
		return fmt.Sprintf("Q%d", *quarter)
	}
	return "all periods"
}
