package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoJSON_SendsAPIKeyAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/v1/echo" || r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL + "/", APIKey: "secret"}, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.DoJSON(context.Background(), http.MethodPost, "v1/echo", map[string]string{"a": "b"}, &out); err != nil {
		t.Fatalf("DoJSON error: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected ok=true")
	}
}

func TestDoJSON_ErrorsAreTyped(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad-json" {
			_, _ = w.Write([]byte(`not json`))
			return
		}
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL}, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var out map[string]any
	err = c.DoJSON(context.Background(), http.MethodGet, "/fail", nil, &out)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected HTTPError 502, got %v", err)
	}

	err = c.DoJSON(context.Background(), http.MethodGet, "/bad-json", nil, &out)
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}, nil); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := New(Config{BaseURL: "not a url"}, nil); err == nil {
		t.Fatalf("expected invalid url error")
	}
}
