package main

import (
	"fmt"

	"github.com/fwojciec/earnings"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	req := earnings.QuestionRequest{
		Question: c.Question,
		Company: earnings.CompanyQuery{
			CompanyNameQuery: c.Company,
			SecurityType:     c.SecurityType,
			ExchangeCode:     c.Exchange,
			Year:             optional(c.Year),
			Quarter:          optional(c.Quarter),
		},
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}

	save := deps.History != nil && !c.NoSave
	if save {
		c.notePrevious(deps, req)
	}

	ans, err := deps.Asker.Ask(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}

	if err := printAnswer(deps, ans, c.Format, !c.NoSources); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", earnings.ErrorMessage(err))
		return err
	}

	if save {
		ex := earnings.NewExchange(req, ans)
		if err := deps.History.CreateExchange(deps.Ctx, ex); err != nil {
			// The answer was already printed; losing the history entry is not fatal.
			fmt.Fprintf(deps.Stderr, "warning: could not save to history: %s\n", earnings.ErrorMessage(err))
			return nil
		}
		fmt.Fprintf(deps.Stderr, "Saved as %s\n", ex.ID)
	}
	return nil
}

// notePrevious tells the user when the same question was asked before.
func (c *AskCmd) notePrevious(deps *Dependencies, req earnings.QuestionRequest) {
	fp := earnings.Fingerprint(req.Question, req.Company.CompanyNameQuery, req.Company.Year, req.Company.Quarter)
	prev, err := deps.History.FindExchanges(deps.Ctx, earnings.ExchangeFilter{Fingerprint: &fp, Limit: 1})
	if err != nil || len(prev) == 0 {
		return
	}
	fmt.Fprintf(deps.Stderr, "Asked before on %s (see 'earnings history --show %s')\n",
		prev[0].CreatedAt.Local().Format("2006-01-02 15:04"), prev[0].ID)
}
