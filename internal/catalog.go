package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 12
	maxPageLimit     = 50

	// keeps (page-1)*limit inside int
	maxPage = math.MaxInt / maxPageLimit
)

type Store struct {
	ID          uuid.UUID       `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	LogoURL     *string         `json:"logoUrl"`
	ThemeJSON   json.RawMessage `json:"theme_json"`
}

// Product is a catalog row as stored. PriceAmount keeps the numeric text
// from the database.
type Product struct {
	ID            uuid.UUID
	Name          string
	Description   *string
	ImageURL      *string
	StockQty      int
	PriceAmount   string
	PriceCurrency string
}

type ProductFilter struct {
	Query  string
	Limit  int
	Offset int
}

type CatalogStorage interface {
	GetActiveStoreBySlug(ctx context.Context, slug string) (Store, error)
	ListActiveProducts(ctx context.Context, storeID uuid.UUID, f ProductFilter) ([]Product, int, error)
	GetActiveProduct(ctx context.Context, storeID, productID uuid.UUID) (Product, error)
}

type Price struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type ProductView struct {
	ID            uuid.UUID           `json:"id"`
	Name          string              `json:"name"`
	Description   *string             `json:"description"`
	ImageURL      *string             `json:"imageUrl"`
	Stock         int                 `json:"stock"`
	OriginalPrice Price               `json:"original_price"`
	PriceUAH      decimal.NullDecimal `json:"price_uah"`
}

type PageMeta struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
	Query      string `json:"q"`
}

type ProductPage struct {
	Items []ProductView `json:"items"`
	Meta  PageMeta      `json:"meta"`
}

// Storefront serves the public, read-only side of the catalog with prices
// converted to the base currency.
type Storefront struct {
	storage   CatalogStorage
	converter *PriceConverter
}

func NewStorefront(storage CatalogStorage, converter *PriceConverter) *Storefront {
	return &Storefront{storage: storage, converter: converter}
}

func (s *Storefront) GetStore(ctx context.Context, slug string) (Store, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Store{}, BizError("slug_required", "store slug is required")
	}

	st, err := s.storage.GetActiveStoreBySlug(ctx, slug)
	if err != nil {
		return Store{}, storeErr(err, slug)
	}
	return st, nil
}

// ListProducts clamps paging: page >= 1, limit in [1, 50]. A zero limit
// means the default of 12.
func (s *Storefront) ListProducts(ctx context.Context, slug, q string, page, limit int) (ProductPage, error) {
	st, err := s.GetStore(ctx, slug)
	if err != nil {
		return ProductPage{}, err
	}

	page = min(max(1, page), maxPage)
	if limit == 0 {
		limit = defaultPageLimit
	}
	limit = min(max(1, limit), maxPageLimit)
	q = strings.TrimSpace(q)

	rows, total, err := s.storage.ListActiveProducts(ctx, st.ID, ProductFilter{
		Query:  q,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return ProductPage{}, fmt.Errorf("list products of %s: %w", slug, err)
	}

	items := make([]ProductView, 0, len(rows))
	for _, p := range rows {
		items = append(items, s.view(p))
	}

	return ProductPage{
		Items: items,
		Meta: PageMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: max(1, (total+limit-1)/limit),
			Query:      q,
		},
	}, nil
}

func (s *Storefront) GetProduct(ctx context.Context, slug, productID string) (ProductView, error) {
	st, err := s.GetStore(ctx, slug)
	if err != nil {
		return ProductView{}, err
	}

	id, err := uuid.Parse(strings.TrimSpace(productID))
	if err != nil {
		return ProductView{}, BizError("product_not_found", "product not found")
	}

	p, err := s.storage.GetActiveProduct(ctx, st.ID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ProductView{}, BizError("product_not_found", "product not found")
		}
		return ProductView{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return s.view(p), nil
}

func (s *Storefront) view(p Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Stock:       p.StockQty,
		OriginalPrice: Price{
			Amount:   p.PriceAmount,
			Currency: p.PriceCurrency,
		},
		PriceUAH: s.converter.ConvertNull(p.PriceAmount, p.PriceCurrency),
	}
}

func storeErr(err error, slug string) error {
	if errors.Is(err, ErrNotFound) {
		return BizError("store_not_found", "store not found")
	}
	return fmt.Errorf("get store %q: %w", slug, err)
}
