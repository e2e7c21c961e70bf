package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ganttgrid/ganttgrid/pkg/cache"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(log.New(io.Discard), cache.NewMemory())
}

const researchBody = `{
  "format": "svg",
  "tasks": [
    {"description": "Research", "start": "2021-01-06", "end": "2021-01-12", "duration": 5}
  ]
}`

func postChart(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/chart", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestChartSVG(t *testing.T) {
	s := newTestServer(t)
	rec := postChart(t, s, researchBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %s", ct)
	}
	if !strings.Contains(rec.Body.String(), ">Research</text>") {
		t.Error("artifact does not contain the task label")
	}
}

func TestChartDefaultsToSVG(t *testing.T) {
	s := newTestServer(t)
	body := strings.Replace(researchBody, `"format": "svg",`, "", 1)
	rec := postChart(t, s, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %s", ct)
	}
}

func TestChartCached(t *testing.T) {
	s := newTestServer(t)

	first := postChart(t, s, researchBody)
	second := postChart(t, s, researchBody)

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("status = %d, %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached artifact differs from the rendered one")
	}
}

func TestChartBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{
			name: "malformed json",
			body: `{`,
			code: "SCHEMA_ERROR",
		},
		{
			name: "no tasks",
			body: `{"tasks": []}`,
			code: "SCHEMA_ERROR",
		},
		{
			name: "missing date",
			body: `{"tasks": [{"description": "X", "start": "2021-01-06"}]}`,
			code: "SCHEMA_ERROR",
		},
		{
			name: "bad weekend name",
			body: `{"tasks": [{"description": "X", "start": "2021-01-06", "end": "2021-01-07", "duration": 1}],
			        "options": {"weekend": ["caturday"]}}`,
			code: "INVALID_POLICY",
		},
		{
			name: "unknown format",
			body: `{"format": "xlsx", "tasks": [{"description": "X", "start": "2021-01-06", "end": "2021-01-07", "duration": 1}]}`,
			code: "INVALID_FORMAT",
		},
		{
			name: "start on excluded weekend",
			body: `{"tasks": [{"description": "X", "start": "2021-01-09", "end": "2021-01-12", "duration": 2}]}`,
			code: "DATE_OFF_AXIS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			rec := postChart(t, s, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", rec.Code, rec.Body.String())
			}
			var resp struct {
				Code string `json:"code"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid error body: %v", err)
			}
			if resp.Code != tt.code {
				t.Errorf("code = %s, want %s", resp.Code, tt.code)
			}
		})
	}
}

func TestChartTextFormat(t *testing.T) {
	s := newTestServer(t)
	body := strings.Replace(researchBody, `"format": "svg"`, `"format": "text"`, 1)
	rec := postChart(t, s, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Research") {
		t.Error("text artifact missing label")
	}
}
