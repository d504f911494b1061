package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"service-storefront/internal"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// RateHistoryStorage keeps every reconciled rate. Rows are never updated.
type RateHistoryStorage struct {
	pgpool *pgxpool.Pool
}

func NewRateHistoryStorage(pgpool *pgxpool.Pool) *RateHistoryStorage {
	return &RateHistoryStorage{pgpool: pgpool}
}

func (s *RateHistoryStorage) AppendRates(ctx context.Context, quotes []internal.RateQuote) error {
	if len(quotes) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, q := range quotes {
		if !q.Currency.IsForeign() {
			return fmt.Errorf("cannot store rate for %q", q.Currency)
		}
		if !q.RateToBase.IsPositive() {
			return fmt.Errorf("non-positive rate %s for %s", q.RateToBase, q.Currency)
		}

		batch.Queue(`
insert into exchange_rate (quote_ccy, rate_to_base, source, fetched_at)
values ($1, $2::numeric, $3, $4);
`, q.Currency.String(), q.RateToBase.String(), string(q.Source), q.FetchedAt.UTC())
	}

	tx, err := s.pgpool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert exchange_rate: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// RecentRates returns up to limit live rows, newest first.
func (s *RateHistoryStorage) RecentRates(ctx context.Context, limit int) ([]internal.RateQuote, error) {
	if limit <= 0 {
		limit = internal.DefaultColdStartLimit
	}

	rows, err := s.pgpool.Query(ctx, `
select quote_ccy, rate_to_base::text, source, fetched_at
from exchange_rate
where is_deleted = false
order by fetched_at desc
limit $1;
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent rates: %w", err)
	}
	defer rows.Close()

	var out []internal.RateQuote
	for rows.Next() {
		var ccyRaw, rateText, source string
		var fetchedAt time.Time

		if err := rows.Scan(&ccyRaw, &rateText, &source, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		ccy, err := internal.NewCurrencyCode(strings.TrimSpace(ccyRaw))
		if err != nil {
			return nil, fmt.Errorf("bad quote_ccy from db %q: %w", ccyRaw, err)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(rateText))
		if err != nil {
			return nil, fmt.Errorf("parse rate %s=%q: %w", ccy, rateText, err)
		}

		out = append(out, internal.RateQuote{
			Currency:   ccy,
			RateToBase: rate,
			FetchedAt:  fetchedAt,
			Source:     internal.RateSource(source),
		})
	}
	return out, rows.Err()
}
