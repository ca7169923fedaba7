package exchangerate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

func newTestProvider(serverURL string) *Provider {
	return NewProvider(serverURL+"/v6/%s/latest/%s", "test-key", 2*time.Second)
}

func TestFetchRatesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v6/test-key/latest/USD" {
			t.Errorf("unexpected request path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"success","conversion_rates":{"UAH":39.5,"EUR":0.92}}`))
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	payload, err := provider.FetchRates(context.Background(), "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rates, ok := payload["conversion_rates"].(map[string]any)
	if !ok {
		t.Fatalf("conversion_rates missing or malformed: %+v", payload)
	}
	if rates["UAH"] != 39.5 {
		t.Fatalf("expected UAH rate 39.5, got %v", rates["UAH"])
	}
}

func TestFetchRatesNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	if _, err := provider.FetchRates(context.Background(), "USD"); !errors.Is(err, domain.ErrExternalAPI) {
		t.Fatalf("expected ErrExternalAPI, got %v", err)
	}
}

func TestFetchRatesMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	if _, err := provider.FetchRates(context.Background(), "USD"); !errors.Is(err, domain.ErrExternalAPI) {
		t.Fatalf("expected ErrExternalAPI, got %v", err)
	}
}

func TestFetchRatesTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	provider := newTestProvider(server.URL)
	if _, err := provider.FetchRates(context.Background(), "USD"); !errors.Is(err, domain.ErrExternalAPI) {
		t.Fatalf("expected ErrExternalAPI, got %v", err)
	}
}
