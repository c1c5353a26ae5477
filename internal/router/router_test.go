package router_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"med-reconciliation/internal/ports/extraction"
	"med-reconciliation/internal/router"
)

type fakeExtractor struct {
	fail  bool
	calls int
}

func (f *fakeExtractor) Extract(ctx context.Context, images []extraction.Image) (extraction.Response, error) {
	f.calls++
	if f.fail {
		return extraction.Response{}, errors.New("ocr unavailable")
	}
	return extraction.Response{Medications: []extraction.Medication{
		{ID: "h1", Name: "Lipitor", Dosage: "20mg", Frequency: "once daily", Source: "HOME"},
		{ID: "d1", Name: "Atorvastatin", Dosage: "20mg", Frequency: "once daily", Source: "HOSPITAL"},
		{ID: "d2", Name: "Metformin", Dosage: "500mg", Frequency: "BID", Source: "HOSPITAL"},
		{ID: "h2", Name: "Warfarin", Dosage: "5mg", Frequency: "once daily", Source: "HOME"},
		{ID: "h3", Name: "Advil", Dosage: "200mg", Frequency: "as needed", Source: "HOME"},
	}}, nil
}

type sessionBody struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Result struct {
		Medications []struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Dosage string `json:"dosage"`
		} `json:"medications"`
		Schedule map[string][]string `json:"schedule"`
		Warnings []struct {
			Description string `json:"description"`
		} `json:"warnings"`
	} `json:"result"`
}

func TestHTTP_EndToEnd_AnalyzeReviewApprove(t *testing.T) {
	ex := &fakeExtractor{}
	ts := httptest.NewServer(router.NewRouter(router.Options{Extractor: ex}))
	defer ts.Close()

	const patient = "patient-1"

	// 1) health
	{
		st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
		if st != http.StatusOK || string(body) != "ok" {
			t.Fatalf("unexpected health %d %q", st, body)
		}
	}

	// 2) sin sesión todavía
	{
		st, _ := doReq(t, ts.URL, "GET", "/patients/"+patient+"/session", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 before analysis, got %d", st)
		}
	}

	// 3) análisis -> DRAFT
	var sess sessionBody
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patient+"/analysis", "", analyzePayload())
		if st != http.StatusCreated {
			t.Fatalf("expected 201 analysis, got %d body=%s", st, body)
		}
		mustDecode(t, body, &sess)
	}
	if sess.Status != "DRAFT" || len(sess.Result.Medications) != 4 {
		t.Fatalf("unexpected session %+v", sess)
	}
	if len(sess.Result.Schedule["evening"]) != 1 || sess.Result.Schedule["evening"][0] != "d2" {
		t.Fatalf("expected metformin in evening, got %#v", sess.Result.Schedule)
	}
	if !hasWarning(sess, "Interaction between Warfarin and Advil") {
		t.Fatalf("expected warfarin/advil interaction, got %+v", sess.Result.Warnings)
	}

	// 4) editar en DRAFT no se permite
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/patients/"+patient+"/session/medications/d2", "", map[string]any{
			"field": "dosage", "value": "1000mg",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 editing a draft, got %d", st)
		}
	}

	// 5) iniciar revisión, editar y mover
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patient+"/session/review", "dr-house", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 start review, got %d body=%s", st, body)
		}
	}
	{
		st, body := doReq(t, ts.URL, "PATCH", "/patients/"+patient+"/session/medications/d2", "dr-house", map[string]any{
			"field": "dosage", "value": "1000mg",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 edit, got %d body=%s", st, body)
		}
		var s sessionBody
		mustDecode(t, body, &s)
		if dosageOf(s, "d2") != "1000mg" {
			t.Fatalf("edit not applied: %+v", s.Result.Medications)
		}
	}
	{
		st, body := doReq(t, ts.URL, "PATCH", "/patients/"+patient+"/session/medications/d2", "dr-house", map[string]any{
			"field": "color", "value": "blue",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown field, got %d body=%s", st, body)
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patient+"/session/moves", "dr-house", map[string]any{
			"medication_id": "d1", "from": "morning", "to": "bedtime",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 move, got %d body=%s", st, body)
		}
		var s sessionBody
		mustDecode(t, body, &s)
		if !contains(s.Result.Schedule["bedtime"], "d1") || contains(s.Result.Schedule["morning"], "d1") {
			t.Fatalf("move not applied: %#v", s.Result.Schedule)
		}
	}

	// 6) aprobar
	var recordID string
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patient+"/session/approve", "dr-house", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 approve, got %d body=%s", st, body)
		}
		var rec struct {
			ID           string `json:"id"`
			ScheduleName string `json:"scheduleName"`
			ApprovedBy   string `json:"approvedBy"`
		}
		mustDecode(t, body, &rec)
		if rec.ScheduleName != "Schedule 1" || rec.ApprovedBy != "dr-house" || rec.ID == "" {
			t.Fatalf("unexpected record %+v", rec)
		}
		recordID = rec.ID
	}

	// 7) aprobado es terminal
	{
		st, _ := doReq(t, ts.URL, "POST", "/patients/"+patient+"/session/review", "", nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 after approval, got %d", st)
		}
	}

	// 8) historial y reporte
	{
		st, body := doReq(t, ts.URL, "GET", "/history?patient_id="+patient, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history, got %d", st)
		}
		var list struct {
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
		}
		mustDecode(t, body, &list)
		if len(list.Items) != 1 || list.Items[0].ID != recordID {
			t.Fatalf("unexpected history %+v", list)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/history/"+recordID+"/report?format=html", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), "Metformin") {
			t.Fatalf("expected html report, got %d", st)
		}
	}

	// 9) revisión: nuevo DRAFT, el registro no cambia
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patient+"/session/revise", "", map[string]any{
			"history_id": recordID,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 revise, got %d body=%s", st, body)
		}
		var s sessionBody
		mustDecode(t, body, &s)
		if s.Status != "DRAFT" || dosageOf(s, "d2") != "1000mg" {
			t.Fatalf("unexpected revised session %+v", s)
		}
	}
}

func TestHTTP_ExtractionFailureThenRetry(t *testing.T) {
	ex := &fakeExtractor{fail: true}
	ts := httptest.NewServer(router.NewRouter(router.Options{Extractor: ex}))
	defer ts.Close()

	{
		st, _ := doReq(t, ts.URL, "POST", "/patients/p2/analysis/retry", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 retry without upload, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/patients/p2/analysis", "", analyzePayload())
		if st != http.StatusBadGateway {
			t.Fatalf("expected 502 on extraction failure, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/patients/p2/session", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("failed analysis must not create a session, got %d", st)
		}
	}

	ex.fail = false
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/p2/analysis/retry", "", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 retry, got %d body=%s", st, body)
		}
	}
	if ex.calls != 2 {
		t.Fatalf("expected 2 extraction calls, got %d", ex.calls)
	}
}

func TestHTTP_AnalyzeRejectsBadPayload(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Extractor: &fakeExtractor{}}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/patients/p3/analysis", "", map[string]any{
		"images": []map[string]any{{"mime_type": "image/png", "data": "%%%"}},
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad base64, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/patients/p3/analysis", "", map[string]any{"images": []any{}})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without images, got %d", st)
	}
}

// ---------------- helpers ----------------

func analyzePayload() map[string]any {
	return map[string]any{
		"patient_name": "Jane Doe",
		"images": []map[string]any{
			{"mime_type": "image/jpeg", "data": base64.StdEncoding.EncodeToString([]byte("discharge-page"))},
			{"mime_type": "image/jpeg", "data": base64.StdEncoding.EncodeToString([]byte("bottle"))},
		},
	}
}

func hasWarning(s sessionBody, prefix string) bool {
	for _, w := range s.Result.Warnings {
		if strings.HasPrefix(w.Description, prefix) {
			return true
		}
	}
	return false
}

func dosageOf(s sessionBody, id string) string {
	for _, m := range s.Result.Medications {
		if m.ID == id {
			return m.Dosage
		}
	}
	return ""
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func mustDecode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode: %v body=%s", err, body)
	}
}

func doReq(t *testing.T, baseURL, method, path, reviewer string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if reviewer != "" {
		req.Header.Set("X-Reviewer-ID", reviewer)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}
