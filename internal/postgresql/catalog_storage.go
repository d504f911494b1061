package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"service-storefront/internal"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogStorage reads stores and products owned by the merchant side.
// Soft-deleted and inactive rows are never returned.
type CatalogStorage struct {
	pgpool *pgxpool.Pool
}

func NewCatalogStorage(pgpool *pgxpool.Pool) *CatalogStorage {
	return &CatalogStorage{pgpool: pgpool}
}

func (c *CatalogStorage) GetActiveStoreBySlug(ctx context.Context, slug string) (internal.Store, error) {
	var st internal.Store
	var theme []byte

	err := c.pgpool.QueryRow(ctx, `
select id, slug, name, description, logo_url, theme_json
from stores
where slug = $1 and is_deleted = false and is_active = true;
`, strings.TrimSpace(slug)).Scan(&st.ID, &st.Slug, &st.Name, &st.Description, &st.LogoURL, &theme)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internal.Store{}, internal.ErrNotFound
		}
		return internal.Store{}, fmt.Errorf("select store: %w", err)
	}

	if len(theme) > 0 {
		st.ThemeJSON = theme
	}
	return st, nil
}

func (c *CatalogStorage) ListActiveProducts(ctx context.Context, storeID uuid.UUID, f internal.ProductFilter) ([]internal.Product, int, error) {
	var pattern *string
	if q := strings.TrimSpace(f.Query); q != "" {
		p := "%" + escapeLike(q) + "%"
		pattern = &p
	}

	var total int
	err := c.pgpool.QueryRow(ctx, `
select count(*)
from products
where store_id = $1 and is_deleted = false and is_active = true
  and ($2::text is null or name ilike $2);
`, storeID, pattern).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	rows, err := c.pgpool.Query(ctx, `
select id, name, description, image_url, stock_qty, price_amount::text, price_currency
from products
where store_id = $1 and is_deleted = false and is_active = true
  and ($2::text is null or name ilike $2)
order by created_at desc
limit $3 offset $4;
`, storeID, pattern, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	out := make([]internal.Product, 0, f.Limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (c *CatalogStorage) GetActiveProduct(ctx context.Context, storeID, productID uuid.UUID) (internal.Product, error) {
	row := c.pgpool.QueryRow(ctx, `
select id, name, description, image_url, stock_qty, price_amount::text, price_currency
from products
where id = $1 and store_id = $2 and is_deleted = false and is_active = true;
`, productID, storeID)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internal.Product{}, internal.ErrNotFound
		}
		return internal.Product{}, err
	}
	return p, nil
}

func scanProduct(row pgx.Row) (internal.Product, error) {
	var p internal.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.StockQty, &p.PriceAmount, &p.PriceCurrency); err != nil {
		return internal.Product{}, fmt.Errorf("scan product: %w", err)
	}
	p.PriceCurrency = strings.TrimSpace(p.PriceCurrency)
	return p, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
