package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// APIKeyStorage looks up operator keys by their HMAC hash. A key past its
// expires_at counts as inactive.
type APIKeyStorage struct {
	pgpool *pgxpool.Pool
}

func NewAPIKeyStorage(pgpool *pgxpool.Pool) *APIKeyStorage {
	return &APIKeyStorage{pgpool: pgpool}
}

func (s *APIKeyStorage) GetStatusByHash(ctx context.Context, keyHash string) (bool, bool, error) {
	keyHash = strings.ToLower(strings.TrimSpace(keyHash))
	if keyHash == "" {
		return false, false, nil
	}

	var active bool
	err := s.pgpool.QueryRow(ctx, `
select is_active and (expires_at is null or expires_at > now())
from api_keys
where key_hash = $1;
`, keyHash).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("select api key status: %w", err)
	}

	return true, active, nil
}
