package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/grc-lab/riskreport/pkg/controller/http"
	"github.com/grc-lab/riskreport/pkg/domain/model"
	"github.com/grc-lab/riskreport/pkg/repository/memory"
	"github.com/grc-lab/riskreport/pkg/usecase"
)

func newTestServer() *httpctrl.Server {
	return httpctrl.New(usecase.New(memory.New()))
}

func doJSON(t *testing.T, srv *httpctrl.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func createTestReport(t *testing.T, srv *httpctrl.Server) *model.Report {
	t.Helper()

	rec := doJSON(t, srv, http.MethodPost, "/api/reports", map[string]any{
		"title":            "Q1 Audit",
		"type":             "risk-assessment",
		"organizationData": map[string]any{"name": "Acme"},
		"reportData":       map[string]any{"period": "Q1 2026"},
	})
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var report model.Report
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report)).Required()
	return &report
}

func TestCreateReportEndpoint(t *testing.T) {
	srv := newTestServer()
	report := createTestReport(t, srv)

	gt.Value(t, report.Title).Equal("Q1 Audit")
	gt.Value(t, report.Status.String()).Equal("draft")
	gt.Number(t, report.ID).Greater(int64(0))
}

func TestCreateReportValidationError(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/api/reports", map[string]any{
		"type":             "risk-assessment",
		"organizationData": map[string]any{"name": "Acme"},
	})
	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestGetReportEndpoint(t *testing.T) {
	srv := newTestServer()
	report := createTestReport(t, srv)

	rec := doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/reports/%d", report.ID), nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	rec = doJSON(t, srv, http.MethodGet, "/api/reports/999", nil)
	gt.Value(t, rec.Code).Equal(http.StatusNotFound)
}

func TestUpdateReportEndpoint(t *testing.T) {
	srv := newTestServer()
	report := createTestReport(t, srv)

	rec := doJSON(t, srv, http.MethodPatch, fmt.Sprintf("/api/reports/%d", report.ID), map[string]any{
		"status": "completed",
	})
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var updated model.Report
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated)).Required()
	gt.Value(t, updated.Status.String()).Equal("completed")
	gt.Value(t, updated.Title).Equal("Q1 Audit")
}

func TestListReportsScopedByHeader(t *testing.T) {
	srv := newTestServer()
	createTestReport(t, srv)

	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	req.Header.Set("X-User-ID", "someone-else")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)
	var reports []*model.Report
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports)).Required()
	gt.Array(t, reports).Length(0)
}

func TestRiskItemEndpoints(t *testing.T) {
	srv := newTestServer()
	report := createTestReport(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/risk-items", map[string]any{
		"reportId":   report.ID,
		"name":       "Phishing",
		"category":   "cybersecurity",
		"likelihood": 4,
		"impact":     4,
	})
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var item model.RiskItem
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item)).Required()
	gt.Value(t, item.RiskLevel.String()).Equal("high")

	t.Run("client riskLevel is ignored", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/risk-items", map[string]any{
			"reportId":   report.ID,
			"name":       "Typo",
			"category":   "operational",
			"likelihood": 1,
			"impact":     1,
			"riskLevel":  "critical",
		})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var created model.RiskItem
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created)).Required()
		gt.Value(t, created.RiskLevel.String()).Equal("very-low")
	})

	t.Run("list by report", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/reports/%d/risk-items", report.ID), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var items []*model.RiskItem
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items)).Required()
		gt.Array(t, items).Length(2)
		gt.Value(t, items[0].Name).Equal("Phishing")
	})

	t.Run("orphan creation rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/risk-items", map[string]any{
			"reportId":   999,
			"name":       "Orphan",
			"category":   "operational",
			"likelihood": 1,
			"impact":     1,
		})
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("update recomputes level", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPatch, fmt.Sprintf("/api/risk-items/%d", item.ID), map[string]any{
			"likelihood": 5,
			"impact":     5,
		})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var updated model.RiskItem
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated)).Required()
		gt.Value(t, updated.RiskLevel.String()).Equal("critical")
	})

	t.Run("delete then repeat", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/risk-items/%d", item.ID), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		rec = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/risk-items/%d", item.ID), nil)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestExportEndpoint(t *testing.T) {
	srv := newTestServer()
	report := createTestReport(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/risk-items", map[string]any{
		"reportId":   report.ID,
		"name":       "Breach",
		"category":   "cybersecurity",
		"likelihood": 5,
		"impact":     5,
	})
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	rec = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/reports/%d/export", report.ID), nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var doc struct {
		Cover struct {
			Title string `json:"title"`
		} `json:"cover"`
		Recommendations struct {
			Critical []string `json:"critical"`
		} `json:"recommendations"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc)).Required()
	gt.Value(t, doc.Cover.Title).Equal("Q1 Audit")
	gt.Array(t, doc.Recommendations.Critical).Length(1)

	rec = doJSON(t, srv, http.MethodGet, "/api/reports/999/export", nil)
	gt.Value(t, rec.Code).Equal(http.StatusNotFound)
}

func TestTemplatesEndpoint(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodGet, "/api/templates", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Templates  []map[string]string `json:"templates"`
		Categories []map[string]string `json:"categories"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Array(t, resp.Templates).Length(5)
	gt.Array(t, resp.Categories).Length(6)
	gt.Value(t, resp.Templates[0]["id"]).Equal("risk-assessment")
}
