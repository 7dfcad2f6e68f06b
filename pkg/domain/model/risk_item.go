package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/grc-lab/riskreport/pkg/domain/types"
)

// RiskItem is a single identified risk belonging to a report. RiskLevel is
// a cached derived value: it must always equal
// types.CalculateRiskLevel(Likelihood, Impact) and is recomputed by the
// use case layer whenever either input changes.
type RiskItem struct {
	ID          int64                `json:"id" firestore:"id"`
	ReportID    int64                `json:"reportId" firestore:"report_id"`
	Name        string               `json:"name" firestore:"name"`
	Description string               `json:"description,omitempty" firestore:"description"`
	Category    types.RiskCategory   `json:"category" firestore:"category"`
	Likelihood  types.Likelihood     `json:"likelihood" firestore:"likelihood"`
	Impact      types.Impact         `json:"impact" firestore:"impact"`
	RiskLevel   types.RiskLevel      `json:"riskLevel" firestore:"risk_level"`
	Mitigation  string               `json:"mitigation,omitempty" firestore:"mitigation"`
	Status      types.RiskItemStatus `json:"status" firestore:"status"`
}

// Recalculate refreshes the derived risk level from the current
// likelihood/impact pair.
func (r *RiskItem) Recalculate() {
	r.RiskLevel = types.CalculateRiskLevel(r.Likelihood, r.Impact)
}

// Validate checks required fields, rating ranges and the derived-level
// consistency of the risk item.
func (r *RiskItem) Validate() error {
	if r.ReportID == 0 {
		return goerr.New("risk item report ID is required")
	}
	if r.Name == "" {
		return goerr.New("risk item name is required")
	}
	if !r.Category.IsValid() {
		return goerr.New("invalid risk category", goerr.V("category", r.Category))
	}
	if err := r.Likelihood.Validate(); err != nil {
		return err
	}
	if err := r.Impact.Validate(); err != nil {
		return err
	}
	if !r.Status.Normalize().IsValid() {
		return goerr.New("invalid risk item status", goerr.V("status", r.Status))
	}
	if r.RiskLevel != types.CalculateRiskLevel(r.Likelihood, r.Impact) {
		return goerr.New("risk level is inconsistent with likelihood and impact",
			goerr.V("riskLevel", r.RiskLevel),
			goerr.V("likelihood", int(r.Likelihood)),
			goerr.V("impact", int(r.Impact)))
	}
	return nil
}

// RiskItemPatch is a partial update of a risk item. There is deliberately
// no RiskLevel field: the level follows likelihood/impact and is never
// editable on its own.
type RiskItemPatch struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Category    *types.RiskCategory   `json:"category"`
	Likelihood  *types.Likelihood     `json:"likelihood"`
	Impact      *types.Impact         `json:"impact"`
	Mitigation  *string               `json:"mitigation"`
	Status      *types.RiskItemStatus `json:"status"`
}

// Apply merges the patch into the risk item and refreshes the derived
// level when likelihood or impact changed.
func (p *RiskItemPatch) Apply(r *RiskItem) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Likelihood != nil {
		r.Likelihood = *p.Likelihood
	}
	if p.Impact != nil {
		r.Impact = *p.Impact
	}
	if p.Mitigation != nil {
		r.Mitigation = *p.Mitigation
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Likelihood != nil || p.Impact != nil {
		r.Recalculate()
	}
}

// Validate checks that every set field of the patch carries a valid value
func (p *RiskItemPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return goerr.New("risk item name cannot be empty")
	}
	if p.Category != nil && !p.Category.IsValid() {
		return goerr.New("invalid risk category", goerr.V("category", *p.Category))
	}
	if p.Likelihood != nil {
		if err := p.Likelihood.Validate(); err != nil {
			return err
		}
	}
	if p.Impact != nil {
		if err := p.Impact.Validate(); err != nil {
			return err
		}
	}
	if p.Status != nil && !p.Status.IsValid() {
		return goerr.New("invalid risk item status", goerr.V("status", *p.Status))
	}
	return nil
}
