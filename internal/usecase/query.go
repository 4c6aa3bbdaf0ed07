package usecase

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"products_api/internal/domain"
)

type productCompare func(a, b domain.Product) int

func byInt(key func(domain.Product) int) productCompare {
	return func(a, b domain.Product) int { return cmp.Compare(key(a), key(b)) }
}

func byFloat(key func(domain.Product) float64) productCompare {
	return func(a, b domain.Product) int { return cmp.Compare(key(a), key(b)) }
}

func byString(key func(domain.Product) string) productCompare {
	return func(a, b domain.Product) int { return strings.Compare(key(a), key(b)) }
}

// sortFields is keyed by lowercased field name.
var sortFields = map[string]productCompare{
	"id":                   byInt(func(p domain.Product) int { return p.ID }),
	"title":                byString(func(p domain.Product) string { return p.Title }),
	"description":          byString(func(p domain.Product) string { return p.Description }),
	"category":             byString(func(p domain.Product) string { return p.Category }),
	"brand":                byString(func(p domain.Product) string { return p.Brand }),
	"sku":                  byString(func(p domain.Product) string { return p.SKU }),
	"availabilitystatus":   byString(func(p domain.Product) string { return p.AvailabilityStatus }),
	"price":                byFloat(func(p domain.Product) float64 { return p.Price }),
	"discountpercentage":   byFloat(func(p domain.Product) float64 { return p.DiscountPercentage }),
	"rating":               byFloat(func(p domain.Product) float64 { return p.Rating }),
	"weight":               byFloat(func(p domain.Product) float64 { return p.Weight }),
	"stock":                byInt(func(p domain.Product) int { return p.Stock }),
	"minimumorderquantity": byInt(func(p domain.Product) int { return p.MinimumOrderQuantity }),
}

// SearchByTitle keeps products whose title contains query, ignoring case.
func SearchByTitle(products []domain.Product, query string) []domain.Product {
	needle := strings.ToLower(query)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			out = append(out, p)
		}
	}
	return out
}

// SearchByBrand keeps products whose brand equals brand, ignoring case.
// Products without a brand never match.
func SearchByBrand(products []domain.Product, brand string) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.Brand != "" && strings.EqualFold(p.Brand, brand) {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts returns a stably sorted copy of products. An empty field sorts by id.
func SortProducts(products []domain.Product, field string, order domain.SortOrder) ([]domain.Product, error) {
	if field == "" {
		field = domain.DefaultSortField
	}
	compare, ok := sortFields[strings.ToLower(field)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (accepted: %s)", domain.ErrInvalidSortField, field, strings.Join(SortFields(), ", "))
	}

	switch order {
	case "", domain.SortAscending:
	case domain.SortDescending:
		asc := compare
		compare = func(a, b domain.Product) int { return asc(b, a) }
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSortOrder, order)
	}

	sorted := slices.Clone(products)
	if sorted == nil {
		sorted = []domain.Product{}
	}
	slices.SortStableFunc(sorted, compare)
	return sorted, nil
}

// Paginate returns the 1-indexed page of pageSize items. Invalid input and
// pages past the end yield an empty slice.
func Paginate(products []domain.Product, pageNumber, pageSize int) []domain.Product {
	if domain.ValidatePage(pageNumber, pageSize) != nil {
		return []domain.Product{}
	}
	pages := len(products) / pageSize
	if len(products)%pageSize != 0 {
		pages++
	}
	if pageNumber > pages {
		return []domain.Product{}
	}
	start := (pageNumber - 1) * pageSize
	end := min(start+pageSize, len(products))
	return slices.Clone(products[start:end])
}

// SortFields lists the accepted sort field names.
func SortFields() []string {
	fields := make([]string, 0, len(sortFields))
	for name := range sortFields {
		fields = append(fields, name)
	}
	slices.Sort(fields)
	return fields
}
