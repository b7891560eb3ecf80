package earnings

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Exchange is a recorded question and the raw answer it received.
// Answers are stored unrendered; RenderAnswer runs on every display.
type Exchange struct {
	ID          string    `json:"id"`
	Question    string    `json:"question"`
	CompanyName string    `json:"companyName"`
	Year        *int      `json:"year,omitempty"`
	Quarter     *int      `json:"quarter,omitempty"`
	Answer      string    `json:"answer"`
	Sources     []Source  `json:"sources"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewExchange builds an exchange from a question and its answer.
func NewExchange(req QuestionRequest, answer *Answer) *Exchange {
	return &Exchange{
		Question:    req.Question,
		CompanyName: req.Company.CompanyNameQuery,
		Year:        req.Company.Year,
		Quarter:     req.Company.Quarter,
		Answer:      answer.Text,
		Sources:     answer.Sources,
	}
}

// Fingerprint identifies a question asked about a company period.
// Case and surrounding whitespace are ignored so repeated questions match.
func Fingerprint(question, company string, year, quarter *int) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(strings.TrimSpace(question)))
	b.WriteByte(0)
	b.WriteString(strings.ToLower(strings.TrimSpace(company)))
	b.WriteByte(0)
	if year != nil {
		b.WriteString(strconv.Itoa(*year))
	}
	b.WriteByte(0)
	if quarter != nil {
		b.WriteString(strconv.Itoa(*quarter))
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(b.String()))
}

// Validate returns an error if the exchange contains invalid fields.
func (e *Exchange) Validate() error {
	if e.Question == "" {
		return Errorf(EINVALID, "exchange question required")
	}
	if e.CompanyName == "" {
		return Errorf(EINVALID, "exchange company name required")
	}
	return nil
}

// HistoryService represents a service for managing recorded exchanges.
type HistoryService interface {
	// CreateExchange records a new exchange.
	CreateExchange(ctx context.Context, e *Exchange) error

	// FindExchangeByID retrieves an exchange by ID.
	// Returns ENOTFOUND if the exchange does not exist.
	FindExchangeByID(ctx context.Context, id string) (*Exchange, error)

	// FindExchanges retrieves exchanges matching the filter, newest first.
	FindExchanges(ctx context.Context, filter ExchangeFilter) ([]*Exchange, error)

	// DeleteExchange permanently removes an exchange.
	// Returns ENOTFOUND if the exchange does not exist.
	DeleteExchange(ctx context.Context, id string) error
}

// ExchangeFilter represents a filter for FindExchanges.
type ExchangeFilter struct {
	ID          *string `json:"id"`
	CompanyName *string `json:"companyName"`
	Fingerprint *string `json:"fingerprint"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
