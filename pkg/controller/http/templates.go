package http

import (
	"net/http"
)

type templateResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) listTemplates(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Templates  []templateResponse `json:"templates"`
		Categories []categoryResponse `json:"categories"`
	}{
		Templates:  make([]templateResponse, len(s.appCfg.Templates)),
		Categories: make([]categoryResponse, len(s.appCfg.Categories)),
	}

	for i, tpl := range s.appCfg.Templates {
		resp.Templates[i] = templateResponse{
			ID:          tpl.ID,
			Name:        tpl.Name,
			Description: tpl.Description,
			Type:        tpl.Type.String(),
		}
	}
	for i, cat := range s.appCfg.Categories {
		resp.Categories[i] = categoryResponse{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
		}
	}

	respondJSON(w, r, http.StatusOK, resp)
}
