package main

import (
	"fmt"

	earnhttp "github.com/fwojciec/earnings/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := earnhttp.NewServer()
	s.Addr = c.Addr
	s.IngestService = deps.Ingest
	s.SearchService = deps.Search
	s.Asker = deps.Asker
	s.HistoryService = deps.History
	if deps.Logger != nil {
		s.Logger = deps.Logger
	}

	if err := s.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: could not listen on %s: %v\n", c.Addr, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Serving on %s\n", s.URL())

	<-deps.Ctx.Done()
	return s.Close()
}
