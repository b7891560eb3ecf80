package earnings

import (
	"context"
	"strings"
)

// Defaults applied to blank company lookup fields.
const (
	DefaultSecurityType = "Common Stock"
	DefaultExchangeCode = "US"
)

// IngestRequest asks the backend to fetch and index one quarterly transcript.
type IngestRequest struct {
	CompanyNameQuery string `json:"company_name_query"`
	SecurityType     string `json:"security_type"`
	ExchangeCode     string `json:"exchange_code"`
	Year             int    `json:"year"`
	Quarter          int    `json:"quarter"`
}

// Normalize trims user input and fills in default lookup fields.
func (r *IngestRequest) Normalize() {
	r.CompanyNameQuery = strings.TrimSpace(r.CompanyNameQuery)
	r.SecurityType = orDefault(r.SecurityType, DefaultSecurityType)
	r.ExchangeCode = orDefault(r.ExchangeCode, DefaultExchangeCode)
}

// Validate returns an error if the request contains invalid fields.
func (r *IngestRequest) Validate() error {
	if strings.TrimSpace(r.CompanyNameQuery) == "" {
		return Errorf(EINVALID, "Company name is required.")
	}
	if r.Quarter < 1 || r.Quarter > 4 {
		return Errorf(EINVALID, "Quarter must be between 1 and 4.")
	}
	return nil
}

// Ingestion is the backend's record of an ingested transcript.
type Ingestion struct {
	CompanyID     string `json:"company_id"`
	CompanyName   string `json:"company_name"`
	Ticker        string `json:"ticker"`
	TranscriptID  string `json:"transcript_id"`
	FiscalYear    int    `json:"fiscal_year"`
	FiscalQuarter int    `json:"fiscal_quarter"`
}

// TranscriptSummary identifies one stored transcript of a company.
type TranscriptSummary struct {
	TranscriptID  string `json:"transcript_id"`
	FiscalYear    int    `json:"fiscal_year"`
	FiscalQuarter int    `json:"fiscal_quarter"`
}

// CompanyTranscripts lists the transcripts stored for a company.
type CompanyTranscripts struct {
	CompanyID   string              `json:"company_id"`
	CompanyName string              `json:"company_name"`
	Transcripts []TranscriptSummary `json:"company_transcripts"`
}

// OrgFreq is the number of mentions of an organization in a transcript.
type OrgFreq struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Orgs summarizes organizations mentioned in a transcript.
type Orgs struct {
	UniqueCount int       `json:"org_unique_count"`
	Freq        []OrgFreq `json:"org_freq"`
}

// Transcript is the full text of an earnings call.
type Transcript struct {
	TranscriptID  string `json:"transcript_id"`
	CompanyID     string `json:"company_id"`
	CompanyName   string `json:"company_name"`
	FiscalYear    int    `json:"fiscal_year"`
	FiscalQuarter int    `json:"fiscal_quarter"`
	Text          string `json:"transcript_text"`
	OrgData       Orgs   `json:"org_data"`
}

// IngestService represents a service for ingesting and reading transcripts.
type IngestService interface {
	// Ingest fetches and indexes a transcript on the backend.
	// Returns EINVALID if the request fails validation.
	Ingest(ctx context.Context, req IngestRequest) (*Ingestion, error)

	// ListTranscripts returns the transcripts stored for a company.
	// Returns ENOTFOUND if the company is unknown.
	ListTranscripts(ctx context.Context, companyName string) (*CompanyTranscripts, error)

	// FindTranscript retrieves a transcript by ID.
	// Returns ENOTFOUND if the transcript does not exist.
	FindTranscript(ctx context.Context, id string) (*Transcript, error)
}

// TranscriptWriter exports transcripts to storage.
type TranscriptWriter interface {
	WriteTranscript(ctx context.Context, t *Transcript) (path string, err error)
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
