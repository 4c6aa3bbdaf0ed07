package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortOrder(t *testing.T) {
	cases := map[string]SortOrder{
		"":           SortAscending,
		"asc":        SortAscending,
		"ASC":        SortAscending,
		"Ascending":  SortAscending,
		"desc":       SortDescending,
		"DESCENDING": SortDescending,
		" desc ":     SortDescending,
	}
	for in, want := range cases {
		got, err := ParseSortOrder(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSortOrder("sideways")
	assert.ErrorIs(t, err, ErrInvalidSortOrder)
}

func TestValidatePage(t *testing.T) {
	assert.NoError(t, ValidatePage(1, 1))
	assert.NoError(t, ValidatePage(100, 50))
	assert.ErrorIs(t, ValidatePage(0, 10), ErrInvalidPagination)
	assert.ErrorIs(t, ValidatePage(-3, 10), ErrInvalidPagination)
	assert.ErrorIs(t, ValidatePage(1, 0), ErrInvalidPagination)
	assert.ErrorIs(t, ValidatePage(1, -1), ErrInvalidPagination)
}

func TestProductKeepsUpstreamJSON(t *testing.T) {
	upstream := `{"id":1,"title":"Box","brand":"Acme","weight":0,"tags":[],"minimumOrderQuantity":0,` +
		`"dimensions":{"width":1.5},"warrantyInformation":"1 year","reviews":[{"rating":5}],"meta":{"barcode":"123"}}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(upstream), &p))
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Box", p.Title)
	assert.Equal(t, "Acme", p.Brand)

	out, err := json.Marshal([]Product{p})
	require.NoError(t, err)
	assert.JSONEq(t, "["+upstream+"]", string(out))
	assert.NotContains(t, string(out), "description")
}

func TestProductWithoutUpstreamJSON(t *testing.T) {
	out, err := json.Marshal(Product{ID: 7, Title: "Lamp"})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, float64(7), got["id"])
	assert.Equal(t, "Lamp", got["title"])
	assert.Contains(t, got, "weight")
	assert.NotContains(t, got, "brand")
}
