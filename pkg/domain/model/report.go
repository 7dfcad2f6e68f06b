package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/grc-lab/riskreport/pkg/domain/types"
)

// ReportDetails holds the period metadata captured in the wizard
type ReportDetails struct {
	Period string `json:"period" firestore:"period"`
}

// Report binds organization data, period metadata and a set of risk items
// (referenced by ReportID) into one exportable document.
type Report struct {
	ID           int64              `json:"id" firestore:"id"`
	UserID       types.UserID       `json:"userId" firestore:"user_id"`
	Title        string             `json:"title" firestore:"title"`
	Type         types.ReportType   `json:"type" firestore:"type"`
	Organization Organization       `json:"organizationData" firestore:"organization"`
	Details      ReportDetails      `json:"reportData" firestore:"details"`
	Status       types.ReportStatus `json:"status" firestore:"status"`
	CreatedAt    time.Time          `json:"createdAt" firestore:"created_at"`
	UpdatedAt    time.Time          `json:"updatedAt" firestore:"updated_at"`
}

// Validate checks required fields and enum values of the report
func (r *Report) Validate() error {
	if r.Title == "" {
		return goerr.New("report title is required")
	}
	if !r.Type.IsValid() {
		return goerr.New("invalid report type", goerr.V("type", r.Type))
	}
	if err := r.Organization.Validate(); err != nil {
		return goerr.Wrap(err, "invalid organization data")
	}
	if !r.Status.Normalize().IsValid() {
		return goerr.New("invalid report status", goerr.V("status", r.Status))
	}
	return nil
}

// ReportPatch is a partial update of a report. Nil fields are left
// untouched; the repository refreshes UpdatedAt on every apply.
type ReportPatch struct {
	Title        *string             `json:"title"`
	Type         *types.ReportType   `json:"type"`
	Organization *Organization       `json:"organizationData"`
	Details      *ReportDetails      `json:"reportData"`
	Status       *types.ReportStatus `json:"status"`
}

// Apply merges the patch into the report
func (p *ReportPatch) Apply(r *Report) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Organization != nil {
		r.Organization = *p.Organization
	}
	if p.Details != nil {
		r.Details = *p.Details
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}

// Validate checks that every set field of the patch carries a valid value
func (p *ReportPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return goerr.New("report title cannot be empty")
	}
	if p.Type != nil && !p.Type.IsValid() {
		return goerr.New("invalid report type", goerr.V("type", *p.Type))
	}
	if p.Organization != nil {
		if err := p.Organization.Validate(); err != nil {
			return goerr.Wrap(err, "invalid organization data")
		}
	}
	if p.Status != nil && !p.Status.IsValid() {
		return goerr.New("invalid report status", goerr.V("status", *p.Status))
	}
	return nil
}
