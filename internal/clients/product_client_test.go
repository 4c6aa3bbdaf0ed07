package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"products_api/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func upstream(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAllDecodesEnvelope(t *testing.T) {
	srv := upstream(t, http.StatusOK, `{
		"products": [
			{"id": 1, "title": "Apple Phone", "brand": "Apple", "price": 999.5, "tags": ["phone"]},
			{"id": 2, "title": "Samsung Phone", "brand": "Samsung", "stock": 7}
		],
		"total": 2, "skip": 0, "limit": 30
	}`)

	client := NewProductHTTPClient(srv.URL, time.Second, quietLogger())
	products, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Apple Phone", products[0].Title)
	assert.Equal(t, 999.5, products[0].Price)
	assert.Equal(t, []string{"phone"}, products[0].Tags)
	assert.Equal(t, "Samsung", products[1].Brand)
	assert.Equal(t, 7, products[1].Stock)
}

func TestFetchAllNullProductsIsEmpty(t *testing.T) {
	srv := upstream(t, http.StatusOK, `{"products": null, "total": 0}`)

	products, err := NewProductHTTPClient(srv.URL, time.Second, quietLogger()).FetchAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestFetchAllNon2xxIsUnavailable(t *testing.T) {
	for _, status := range []int{http.StatusInternalServerError, http.StatusNotFound, http.StatusServiceUnavailable} {
		srv := upstream(t, status, `{"message":"boom"}`)

		products, err := NewProductHTTPClient(srv.URL, time.Second, quietLogger()).FetchAll(context.Background())
		assert.Nil(t, products)
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable, "status %d", status)
	}
}

func TestFetchAllMalformedJSON(t *testing.T) {
	srv := upstream(t, http.StatusOK, `{"products": [`)

	_, err := NewProductHTTPClient(srv.URL, time.Second, quietLogger()).FetchAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamMalformed)
	assert.NotErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestFetchAllNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewProductHTTPClient(url, time.Second, quietLogger()).FetchAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestFetchAllHonoursContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewProductHTTPClient(srv.URL, 5*time.Second, quietLogger()).FetchAll(ctx)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
