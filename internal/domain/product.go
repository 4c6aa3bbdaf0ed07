package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUpstreamUnavailable = errors.New("upstream product API unavailable")
	ErrUpstreamMalformed   = errors.New("upstream product API returned malformed data")
	ErrInvalidSortField    = errors.New("invalid sort field")
	ErrInvalidSortOrder    = errors.New("invalid sort order")
	ErrInvalidPagination   = errors.New("invalid pagination parameters")
)

const (
	DefaultSortField = "id"
	DefaultPageSize  = 10
)

// Product holds the fields used for search and sort. A product decoded from
// the upstream keeps its original JSON and is re-encoded from it unchanged.
type Product struct {
	ID                   int      `json:"id"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Category             string   `json:"category"`
	Price                float64  `json:"price"`
	DiscountPercentage   float64  `json:"discountPercentage"`
	Rating               float64  `json:"rating"`
	Stock                int      `json:"stock"`
	Tags                 []string `json:"tags"`
	Brand                string   `json:"brand,omitempty"`
	SKU                  string   `json:"sku,omitempty"`
	Weight               float64  `json:"weight"`
	AvailabilityStatus   string   `json:"availabilityStatus,omitempty"`
	MinimumOrderQuantity int      `json:"minimumOrderQuantity"`
	Thumbnail            string   `json:"thumbnail,omitempty"`
	Images               []string `json:"images"`

	raw json.RawMessage
}

type productFields Product

func (p *Product) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var fields productFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*p = Product(fields)
	p.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	if p.raw != nil {
		return p.raw, nil
	}
	return json.Marshal(productFields(p))
}

// ProductEnvelope matches the upstream response body. Total, Skip and Limit
// describe the upstream's own paging and are not used for filtering.
type ProductEnvelope struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ParseSortOrder accepts asc/ascending and desc/descending in any case.
// An empty string means ascending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	default:
		return "", fmt.Errorf("%w: %q (use asc or desc)", ErrInvalidSortOrder, s)
	}
}

// ValidatePage reports whether a 1-indexed page request is usable.
func ValidatePage(pageNumber, pageSize int) error {
	if pageNumber < 1 {
		return fmt.Errorf("%w: page number must be at least 1, got %d", ErrInvalidPagination, pageNumber)
	}
	if pageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidPagination, pageSize)
	}
	return nil
}

type ProductUseCase interface {
	ListProducts(ctx context.Context) ([]Product, error)
	SearchByTitle(ctx context.Context, title string) ([]Product, error)
	SearchByBrand(ctx context.Context, brand string) ([]Product, error)
	SortProducts(ctx context.Context, field string, order SortOrder) ([]Product, error)
	PagedProducts(ctx context.Context, pageNumber, pageSize int) ([]Product, error)
}
