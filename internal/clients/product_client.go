package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"products_api/internal/domain"

	"github.com/sirupsen/logrus"
)

const maxErrorBodyLog = 4 << 10

type ProductAPIClient interface {
	FetchAll(ctx context.Context) ([]domain.Product, error)
}

type productHTTPClient struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

func NewProductHTTPClient(url string, timeout time.Duration, logger *logrus.Logger) ProductAPIClient {
	return &productHTTPClient{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

func (c *productHTTPClient) FetchAll(ctx context.Context) ([]domain.Product, error) {
	c.log.Debugf("ProductClient: Requesting product catalog from URL: %s", c.url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		c.log.Errorf("ProductClient: Failed to create catalog request: %v", err)
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("ProductClient: Failed to execute catalog request: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLog))
		c.log.Warnf("ProductClient: Catalog request failed with status %d. Response body: %s", resp.StatusCode, string(bodyBytes))
		return nil, fmt.Errorf("%w: upstream returned status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var envelope domain.ProductEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.log.Errorf("ProductClient: Failed to decode catalog response: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamMalformed, err)
	}
	if envelope.Products == nil {
		envelope.Products = []domain.Product{}
	}

	c.log.WithFields(logrus.Fields{
		"count": len(envelope.Products),
		"total": envelope.Total,
		"skip":  envelope.Skip,
		"limit": envelope.Limit,
	}).Debug("ProductClient: Catalog fetched")

	return envelope.Products, nil
}
