package brain

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"github.com/greghughespdx/brain-mcp-server/internal/logging"
)

func testClient(baseURL string) *Client {
	return NewClient(baseURL, 5*time.Second, logging.New(logr.Discard()))
}

func TestCreateEntry_SendsPayloadAndResolvesWrappedShape(t *testing.T) {
	var received map[string]any
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/brain/entries" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"entry": {"id": "abc-123", "status": "inbox"}}`))
	}))
	defer upstream.Close()

	result, err := testClient(upstream.URL).CreateEntry(context.Background(),
		EntryPayload("Remember to check oil pressure", "", "", "", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(received) != 2 || received["text"] != "Remember to check oil pressure" || received["source"] != "mcp-client" {
		t.Fatalf("unexpected upstream payload: %v", received)
	}
	if result.ID != "abc-123" || result.Status != "inbox" {
		t.Fatalf("wrapped shape not resolved: %+v", result)
	}
}

func TestCreateEntry_ResolvesTopLevelShape(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "xyz-789", "status": "inbox"}`))
	}))
	defer upstream.Close()

	result, err := testClient(upstream.URL).CreateEntry(context.Background(), EntryPayload("t", "", "", "", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID != "xyz-789" || result.Status != "inbox" {
		t.Fatalf("top-level shape not resolved: %+v", result)
	}
}

func TestDo_APIErrorCarriesStatusAndBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "db locked", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	_, err := testClient(upstream.URL).Search(context.Background(), "oil")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != 500 {
		t.Fatalf("unexpected status %d", apiErr.Status)
	}
	for _, want := range []string{"500", "db locked"} {
		if !strings.Contains(apiErr.Error(), want) {
			t.Fatalf("error %q should mention %q", apiErr.Error(), want)
		}
	}
}

func TestDo_TransportError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	_, err := testClient(upstream.URL).Search(context.Background(), "oil")
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
}

func TestDo_UnsupportedMethod(t *testing.T) {
	_, err := testClient("http://127.0.0.1:0").Do(context.Background(), "PATCH", "/brain/entries", nil, nil)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
}

func TestSearch_SendsQueryParam(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "oil pressure" {
			t.Errorf("unexpected query %q", got)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	res, err := testClient(upstream.URL).Search(context.Background(), "oil pressure")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsArray() {
		t.Fatalf("expected array result, got %v", res.Type)
	}
}

func TestGetEntry_EscapesID(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/brain/entries/abc 123" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id": "abc 123"}`))
	}))
	defer upstream.Close()

	res, err := testClient(upstream.URL).GetEntry(context.Background(), "abc 123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Get("id").String() != "abc 123" {
		t.Fatalf("unexpected entry %v", res.Raw)
	}
}
