package earnings

import (
	"context"
	"strings"
)

// CompanyQuery scopes a question to a company and optionally a quarter.
type CompanyQuery struct {
	CompanyNameQuery string `json:"company_name_query"`
	SecurityType     string `json:"security_type"`
	ExchangeCode     string `json:"exchange_code"`
	Year             *int   `json:"year,omitempty"`
	Quarter          *int   `json:"quarter,omitempty"`
}

// QuestionRequest is a natural language question about a company's calls.
type QuestionRequest struct {
	Question string       `json:"question"`
	Company  CompanyQuery `json:"company"`
}

// Normalize trims user input and fills in default lookup fields.
func (r *QuestionRequest) Normalize() {
	r.Question = strings.TrimSpace(r.Question)
	r.Company.CompanyNameQuery = strings.TrimSpace(r.Company.CompanyNameQuery)
	r.Company.SecurityType = orDefault(r.Company.SecurityType, DefaultSecurityType)
	r.Company.ExchangeCode = orDefault(r.Company.ExchangeCode, DefaultExchangeCode)
}

// Validate returns an error if the request contains invalid fields.
func (r *QuestionRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return Errorf(EINVALID, "Question is required.")
	}
	if strings.TrimSpace(r.Company.CompanyNameQuery) == "" {
		return Errorf(EINVALID, "Company name is required for Q&A in the current backend.")
	}
	if q := r.Company.Quarter; q != nil && (*q < 1 || *q > 4) {
		return Errorf(EINVALID, "Quarter must be between 1 and 4.")
	}
	return nil
}

// Source is a transcript chunk the answer was generated from.
type Source struct {
	CompanyID    string  `json:"company_id"`
	TranscriptID string  `json:"transcript_id"`
	ChunkID      string  `json:"chunk_id"`
	Speaker      *string `json:"speaker,omitempty"`
	ParagraphNum *int    `json:"paragraph_num,omitempty"`
	Score        float64 `json:"score"`
	Snippet      string  `json:"snippet"`
}

// Fragments returns the source's snippet split into fragments.
func (s Source) Fragments() []string {
	return SnippetFragments(s.Snippet)
}

// Answer is a generated answer with the chunks it cites.
type Answer struct {
	Text    string   `json:"answer"`
	Sources []Source `json:"sources"`
}

// Markup returns the answer rendered as HTML with citation badges.
func (a *Answer) Markup() string {
	return RenderAnswer(a.Text)
}

// Asker answers natural language questions over ingested transcripts.
type Asker interface {
	// Ask answers a question scoped to a company.
	// Returns EINVALID if the request fails validation.
	Ask(ctx context.Context, req QuestionRequest) (*Answer, error)
}
