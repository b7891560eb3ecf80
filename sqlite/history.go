package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/earnings"
	"github.com/google/uuid"
)

var _ earnings.HistoryService = (*HistoryService)(nil)

// HistoryService implements earnings.HistoryService using SQLite.
type HistoryService struct {
	db  *DB
	now func() time.Time
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db, now: time.Now}
}

// CreateExchange records a new exchange.
func (s *HistoryService) CreateExchange(ctx context.Context, e *earnings.Exchange) error {
	if err := e.Validate(); err != nil {
		return err
	}

	sources := e.Sources
	if sources == nil {
		sources = []earnings.Source{}
	}
	data, err := json.Marshal(sources)
	if err != nil {
		return fmt.Errorf("failed to encode sources: %w", err)
	}

	e.ID = uuid.New().String()
	e.Fingerprint = earnings.Fingerprint(e.Question, e.CompanyName, e.Year, e.Quarter)
	e.CreatedAt = s.now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO exchanges (id, question, company_name, year, quarter, answer, sources, fingerprint, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Question, e.CompanyName, nullInt(e.Year), nullInt(e.Quarter), e.Answer, string(data),
		e.Fingerprint, e.CreatedAt.Format(timeLayout))

	return err
}

// FindExchangeByID retrieves an exchange by ID.
func (s *HistoryService) FindExchangeByID(ctx context.Context, id string) (*earnings.Exchange, error) {
	exchanges, err := s.FindExchanges(ctx, earnings.ExchangeFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(exchanges) == 0 {
		return nil, earnings.Errorf(earnings.ENOTFOUND, "exchange not found")
	}
	return exchanges[0], nil
}

// FindExchanges retrieves exchanges matching the filter, newest first.
func (s *HistoryService) FindExchanges(ctx context.Context, filter earnings.ExchangeFilter) ([]*earnings.Exchange, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, question, company_name, year, quarter, answer, sources, fingerprint, created_at
		FROM exchanges WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CompanyName != nil {
		query.WriteString(" AND company_name = ? COLLATE NOCASE")
		args = append(args, *filter.CompanyName)
	}
	if filter.Fingerprint != nil {
		query.WriteString(" AND fingerprint = ?")
		args = append(args, *filter.Fingerprint)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exchanges []*earnings.Exchange
	for rows.Next() {
		e, err := scanExchange(rows)
		if err != nil {
			return nil, err
		}
		exchanges = append(exchanges, e)
	}

	return exchanges, rows.Err()
}

// DeleteExchange permanently removes an exchange.
func (s *HistoryService) DeleteExchange(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM exchanges WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return earnings.Errorf(earnings.ENOTFOUND, "exchange not found")
	}

	return nil
}

func scanExchange(rows *sql.Rows) (*earnings.Exchange, error) {
	var e earnings.Exchange
	var year, quarter sql.NullInt64
	var sources, createdAt string

	if err := rows.Scan(&e.ID, &e.Question, &e.CompanyName, &year, &quarter, &e.Answer, &sources,
		&e.Fingerprint, &createdAt); err != nil {
		return nil, err
	}

	e.Year = intPtr(year)
	e.Quarter = intPtr(quarter)

	if err := json.Unmarshal([]byte(sources), &e.Sources); err != nil {
		return nil, fmt.Errorf("failed to decode sources: %w", err)
	}

	var err error
	e.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &e, nil
}
