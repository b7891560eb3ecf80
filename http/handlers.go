package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/fwojciec/earnings"
)

// homePage holds the state of every form on the home page so a submission
// can be re-rendered with its inputs, result and error.
type homePage struct {
	Ingest       ingestForm
	IngestResult *earnings.Ingestion
	IngestError  string

	List       listForm
	ListResult *earnings.CompanyTranscripts
	ListError  string

	Search       searchForm
	SearchResult *earnings.SearchResult
	SearchError  string

	Ask        askForm
	Answer     *earnings.Answer
	AskError   string
	ExchangeID string
}

type ingestForm struct {
	Company      string
	SecurityType string
	ExchangeCode string
	Year         string
	Quarter      string
}

type listForm struct {
	Company string
}

type searchForm struct {
	Query     string
	CompanyID string
	Year      string
	Quarter   string
	Limit     string
	Offset    string
}

type askForm struct {
	Question     string
	Company      string
	SecurityType string
	ExchangeCode string
	Year         string
	Quarter      string
}

type transcriptPage struct {
	ID         string
	Transcript *earnings.Transcript
	Error      string
}

func (s *Server) newHomePage() *homePage {
	return &homePage{
		Ingest: ingestForm{
			SecurityType: earnings.DefaultSecurityType,
			ExchangeCode: earnings.DefaultExchangeCode,
			Year:         strconv.Itoa(s.Now().Year()),
			Quarter:      "1",
		},
		Search: searchForm{
			Limit:  strconv.Itoa(earnings.DefaultSearchLimit),
			Offset: "0",
		},
		Ask: askForm{
			SecurityType: earnings.DefaultSecurityType,
			ExchangeCode: earnings.DefaultExchangeCode,
		},
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "home.html", s.newHomePage())
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	page := s.newHomePage()
	page.Ingest = ingestForm{
		Company:      r.PostFormValue("company_name_query"),
		SecurityType: r.PostFormValue("security_type"),
		ExchangeCode: r.PostFormValue("exchange_code"),
		Year:         r.PostFormValue("year"),
		Quarter:      r.PostFormValue("quarter"),
	}

	req := earnings.IngestRequest{
		CompanyNameQuery: page.Ingest.Company,
		SecurityType:     page.Ingest.SecurityType,
		ExchangeCode:     page.Ingest.ExchangeCode,
		Year:             atoi(page.Ingest.Year),
		Quarter:          atoi(page.Ingest.Quarter),
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		page.IngestError = earnings.ErrorMessage(err)
		s.render(w, errorStatus(err), "home.html", page)
		return
	}

	res, err := s.IngestService.Ingest(r.Context(), req)
	if err != nil {
		page.IngestError = earnings.ErrorMessage(err)
		s.render(w, errorStatus(err), "home.html", page)
		return
	}

	page.IngestResult = res
	s.render(w, http.StatusOK, "home.html", page)
}

func (s *Server) handleListTranscripts(w http.ResponseWriter, r *http.Request) {
	page := s.newHomePage()
	page.List.Company = r.URL.Query().Get("company")

	company := strings.TrimSpace(page.List.Company)
	if company == "" {
		page.ListError = "Company name is required."
		s.render(w, http.StatusBadRequest, "home.html", page)
		return
	}

	res, err := s.IngestService.ListTranscripts(r.Context(), company)
	if err != nil {
		page.ListError = earnings.ErrorMessage(err)
		s.render(w, errorStatus(err), "home.html", page)
		return
	}

	page.ListResult = res
	s.render(w, http.StatusOK, "home.html", page)
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	page := &transcriptPage{ID: strings.TrimSpace(r.PathValue("id"))}
	if page.ID == "" {
		page.Error = "Transcript id is missing."
		s.render(w, http.StatusBadRequest, "transcript.html", page)
		return
	}

	t, err := s.IngestService.FindTranscript(r.Context(), page.ID)
	if err != nil {
		page.Error = earnings.ErrorMessage(err)
		s.render(w, errorStatus(err), "transcript.html", page)
		return
	}

	page.Transcript = t
	s.render(w, http.StatusOK, "transcript.html", page)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	page := s.newHomePage()
	page.Search = searchForm{
		Query:     r.PostFormValue("query"),
		CompanyID: r.PostFormValue("company_id"),
		Year:      r.PostFormValue("fiscal_year"),
		Quarter:   r.PostFormValue("fiscal_quarter"),
		Limit:     r.PostFormValue("limit"),
		Offset:    r.PostFormValue("offset"),
	}

	req := earnings.SearchRequest{
		Query:         page.Search.Query,
		CompanyID:     page.Search.CompanyID,
		FiscalYear:    earnings.ParseOptionalInt(page.Search.Year),
		FiscalQuarter: earnings.ParseOptionalInt(page.Search.Quarter),
	}
	if n := earnings.ParseOptionalInt(page.Search.Limit); n != nil {
		req.Limit = *n
	}
	if n := earnings.ParseOptionalInt(page.Search.Offset); n != nil {
		req.Offset = *n
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		page.SearchError = earnings.ErrorMessage(err)
		s.render(w, errorStatus(err), "home.html", page)
		return
	}

	res, err := s.SearchService.Search(r.Context(), req)
	if err != nil {
		page.SearchError = earnings.ErrorMessage(err)
		s.render(w, errorStatus(err), "home.html", page)
		return
	}

	page.SearchResult = res
	s.render(w, http.StatusOK, "home.html", page)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	page := s.newHomePage()
	page.Ask = askForm{
		Question:     r.PostFormValue("question"),
		Company:      r.PostFormValue("company_name_query"),
		SecurityType: r.PostFormValue("security_type"),
		ExchangeCode: r.PostFormValue("exchange_code"),
		Year:         r.PostFormValue("year"),
		Quarter:      r.PostFormValue("quarter"),
	}

	req := earnings.QuestionRequest{
		Question: page.Ask.Question,
		Company: earnings.CompanyQuery{
			CompanyNameQuery: page.Ask.Company,
			SecurityType:     page.Ask.SecurityType,
			ExchangeCode:     page.Ask.ExchangeCode,
			Year:             earnings.ParseOptionalInt(page.Ask.Year),
			Quarter:          earnings.ParseOptionalInt(page.Ask.Quarter),
		},
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		page.AskError = earnings.ErrorMessage(err)
		s.render(w, errorStatus(err), "home.html", page)
		return
	}

	answer, err := s.Asker.Ask(r.Context(), req)
	if err != nil {
		page.AskError = earnings.ErrorMessage(err)
		s.render(w, errorStatus(err), "home.html", page)
		return
	}
	page.Answer = answer

	if s.HistoryService != nil {
		e := earnings.NewExchange(req, answer)
		if err := s.HistoryService.CreateExchange(r.Context(), e); err != nil {
			s.Logger.Error("record exchange", "err", err)
		} else {
			page.ExchangeID = e.ID
		}
	}

	s.render(w, http.StatusOK, "home.html", page)
}

// atoi parses a required numeric form field; invalid input yields zero so
// that validation reports it.
func atoi(s string) int {
	if n := earnings.ParseOptionalInt(s); n != nil {
		return *n
	}
	return 0
}
