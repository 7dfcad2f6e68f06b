package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/grc-lab/riskreport/pkg/domain/model"
	"github.com/grc-lab/riskreport/pkg/domain/types"
	"github.com/grc-lab/riskreport/pkg/usecase"
)

// userID resolves the caller identity. There is no authentication layer;
// the header just scopes report listings per caller.
func userID(r *http.Request) types.UserID {
	return types.UserID(r.Header.Get("X-User-ID")).Normalize()
}

type createReportRequest struct {
	Title        string              `json:"title"`
	Type         types.ReportType    `json:"type"`
	Organization model.Organization  `json:"organizationData"`
	Details      model.ReportDetails `json:"reportData"`
	Status       types.ReportStatus  `json:"status"`
}

func (s *Server) createReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(usecase.ErrInvalidInput, "malformed request body"))
		return
	}

	created, err := s.uc.Report.CreateReport(r.Context(), userID(r), &usecase.CreateReportInput{
		Title:        req.Title,
		Type:         req.Type,
		Organization: req.Organization,
		Details:      req.Details,
		Status:       req.Status,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, created)
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	report, err := s.uc.Report.GetReport(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, report)
}

func (s *Server) listReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.uc.Report.ListReports(r.Context(), userID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, reports)
}

func (s *Server) updateReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var patch model.ReportPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, r, goerr.Wrap(usecase.ErrInvalidInput, "malformed request body"))
		return
	}

	updated, err := s.uc.Report.UpdateReport(r.Context(), id, &patch)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) exportReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	doc, err := s.uc.Export.BuildExport(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, doc)
}
