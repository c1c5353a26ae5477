package translatehttp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"med-reconciliation/internal/platform/httpclient"
	"med-reconciliation/internal/ports/translation"
)

func TestTranslate_RoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/translate" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req translation.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Language != "es" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		resp := translation.Response{Labels: map[string]string{"title": "MediVision"}}
		for _, m := range req.Medications {
			m.Instructions = "con comida"
			resp.Medications = append(resp.Medications, m)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	hc, err := httpclient.New(httpclient.Config{BaseURL: ts.URL}, nil)
	if err != nil {
		t.Fatalf("httpclient: %v", err)
	}
	c := New(hc)

	out, err := c.Translate(context.Background(), translation.Request{
		Language:    "es",
		Medications: []translation.Medication{{ID: "m1", Name: "Metformin", Instructions: "with food"}},
	})
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if len(out.Medications) != 1 || out.Medications[0].ID != "m1" || out.Medications[0].Instructions != "con comida" {
		t.Fatalf("unexpected response %#v", out)
	}
}

func TestTranslate_UpstreamErrorIsReturned(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	hc, _ := httpclient.New(httpclient.Config{BaseURL: ts.URL}, nil)
	_, err := New(hc).Translate(context.Background(), translation.Request{Language: "fr"})

	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected HTTPError 503, got %v", err)
	}
}
