package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

// Provider calls the ExchangeRate API over HTTP and hands back the decoded
// payload. Rate extraction is the caller's concern.
type Provider struct {
	urlTemplate string
	apiKey      string
	client      *http.Client
}

func NewProvider(urlTemplate, apiKey string, timeout time.Duration) *Provider {
	return &Provider{
		urlTemplate: urlTemplate,
		apiKey:      apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *Provider) FetchRates(ctx context.Context, currencyCode string) (map[string]any, error) {
	url := fmt.Sprintf(p.urlTemplate, p.apiKey, currencyCode)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrExternalAPI, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request for %s failed: %v", domain.ErrExternalAPI, currencyCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: API returned status %d for %s", domain.ErrExternalAPI, resp.StatusCode, currencyCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", domain.ErrExternalAPI, err)
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response for %s: %v", domain.ErrExternalAPI, currencyCode, err)
	}

	return payload, nil
}
