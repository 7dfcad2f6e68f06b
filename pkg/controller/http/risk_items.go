package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/grc-lab/riskreport/pkg/domain/model"
	"github.com/grc-lab/riskreport/pkg/domain/types"
	"github.com/grc-lab/riskreport/pkg/usecase"
)

// createRiskItemRequest accepts the matrix form payload. A riskLevel
// field sent by a client is ignored; the level is derived server-side.
type createRiskItemRequest struct {
	ReportID    int64                `json:"reportId"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Category    types.RiskCategory   `json:"category"`
	Likelihood  types.Likelihood     `json:"likelihood"`
	Impact      types.Impact         `json:"impact"`
	Mitigation  string               `json:"mitigation"`
	Status      types.RiskItemStatus `json:"status"`
}

func (s *Server) createRiskItem(w http.ResponseWriter, r *http.Request) {
	var req createRiskItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(usecase.ErrInvalidInput, "malformed request body"))
		return
	}

	created, err := s.uc.RiskItem.CreateRiskItem(r.Context(), &usecase.CreateRiskItemInput{
		ReportID:    req.ReportID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Likelihood:  req.Likelihood,
		Impact:      req.Impact,
		Mitigation:  req.Mitigation,
		Status:      req.Status,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, created)
}

func (s *Server) listRiskItems(w http.ResponseWriter, r *http.Request) {
	reportID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	items, err := s.uc.RiskItem.ListRiskItems(r.Context(), reportID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, items)
}

func (s *Server) updateRiskItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var patch model.RiskItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, r, goerr.Wrap(usecase.ErrInvalidInput, "malformed request body"))
		return
	}

	updated, err := s.uc.RiskItem.UpdateRiskItem(r.Context(), id, &patch)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteRiskItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	deleted, err := s.uc.RiskItem.DeleteRiskItem(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !deleted {
		respondError(w, r, goerr.Wrap(usecase.ErrRiskItemNotFound, "risk item not found", goerr.V("id", id)))
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]string{"message": "Risk item deleted"})
}
