package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"salesboard/internal/model"
)

// Source supplies the seed dataset: a JSON array of sale records.
type Source interface {
	Fetch(ctx context.Context) ([]model.SaleRecord, error)
}

// HTTPSource fetches the dataset with a plain GET against a fixed URL.
type HTTPSource struct {
	client *http.Client
	url    string
}

// NewHTTPSource builds an HTTPSource with an otel-instrumented transport.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		url: url,
	}
}

var _ Source = (*HTTPSource)(nil)

func (s *HTTPSource) Fetch(ctx context.Context) ([]model.SaleRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build seed request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch seed data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch seed data: unexpected status %d", resp.StatusCode)
	}

	var records []model.SaleRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	return records, nil
}
