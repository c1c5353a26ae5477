package ocrhttp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"med-reconciliation/internal/domain/reconcile"
	"med-reconciliation/internal/platform/httpclient"
	"med-reconciliation/internal/ports/extraction"
)

func newClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	hc, err := httpclient.New(httpclient.Config{BaseURL: ts.URL, APIKey: "k"}, nil)
	if err != nil {
		t.Fatalf("httpclient: %v", err)
	}
	return New(hc)
}

func TestExtract_SendsBase64AndDecodes(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/extract" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req extractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Images) != 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		raw, err := base64.StdEncoding.DecodeString(req.Images[0].Data)
		if err != nil || string(raw) != "jpeg-bytes" || req.Images[0].MimeType != "image/jpeg" || req.Images[0].Source != "HOSPITAL" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"medications":[{"id":"m1","name":"Lisinopril","dosage":"10mg","frequency":"once daily","source":"HOSPITAL"}]}`))
	})

	resp, err := c.Extract(context.Background(), []extraction.Image{{Data: []byte("jpeg-bytes"), MimeType: "image/jpeg", Source: "HOSPITAL"}})
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(resp.Medications) != 1 || resp.Medications[0].Name != "Lisinopril" {
		t.Fatalf("unexpected response %#v", resp)
	}
}

func TestExtract_FailuresWrapExtractionFailed(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"upstream 500": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "down", http.StatusInternalServerError)
		},
		"malformed json": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"medications": [`))
		},
		"no medications list": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"warnings": []}`))
		},
	}
	for name, h := range cases {
		c := newClient(t, h)
		_, err := c.Extract(context.Background(), []extraction.Image{{Data: []byte("x")}})
		if !errors.Is(err, reconcile.ErrExtractionFailed) {
			t.Fatalf("%s: expected ErrExtractionFailed, got %v", name, err)
		}
	}

	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {})
	if _, err := c.Extract(context.Background(), nil); !errors.Is(err, reconcile.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed without images, got %v", err)
	}
}
