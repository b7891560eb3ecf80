package earnings

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// DefaultSearchLimit is the number of hits returned when no limit is given.
const DefaultSearchLimit = 20

// SearchRequest is a full-text query over transcript content.
type SearchRequest struct {
	Query         string `json:"query"`
	Limit         int    `json:"limit"`
	Offset        int    `json:"offset"`
	CompanyID     string `json:"company_id,omitempty"`
	FiscalYear    *int   `json:"fiscal_year,omitempty"`
	FiscalQuarter *int   `json:"fiscal_quarter,omitempty"`
}

// Normalize trims user input and applies paging defaults.
func (r *SearchRequest) Normalize() {
	r.Query = strings.TrimSpace(r.Query)
	r.CompanyID = strings.TrimSpace(r.CompanyID)
	if r.Limit <= 0 {
		r.Limit = DefaultSearchLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
}

// Validate returns an error if the request contains invalid fields.
func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return Errorf(EINVALID, "Search query is required.")
	}
	if r.CompanyID != "" {
		if _, err := uuid.Parse(r.CompanyID); err != nil {
			return Errorf(EINVALID, "Company id must be a UUID.")
		}
	}
	return nil
}

// SearchHit is a transcript matching a search query.
type SearchHit struct {
	TranscriptID  string  `json:"transcript_id"`
	CompanyID     string  `json:"company_id"`
	FiscalYear    *int    `json:"fiscal_year,omitempty"`
	FiscalQuarter *int    `json:"fiscal_quarter,omitempty"`
	Rank          float64 `json:"rank"`
	Snippet       string  `json:"snippet"`
}

// Fragments returns the hit's snippet split into fragments.
func (h SearchHit) Fragments() []string {
	return SnippetFragments(h.Snippet)
}

// SearchResult is a page of search hits.
type SearchResult struct {
	Total int         `json:"total"`
	Hits  []SearchHit `json:"hits"`
}

// SearchService provides full-text search over transcripts.
type SearchService interface {
	// Search returns transcripts ordered by relevance to the query.
	// Returns EINVALID if the request fails validation.
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)
}
