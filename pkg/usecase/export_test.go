package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/grc-lab/riskreport/pkg/domain/types"
	"github.com/grc-lab/riskreport/pkg/usecase"
)

func TestBuildExport(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()
	report := mustCreateReport(t, uc)

	if _, err := uc.RiskItem.CreateRiskItem(ctx, createRiskItemInput(report.ID)); err != nil {
		t.Fatalf("failed to create risk item: %v", err)
	}

	doc, err := uc.Export.BuildExport(ctx, report.ID)
	if err != nil {
		t.Fatalf("failed to build export: %v", err)
	}

	if doc.Cover.Title != "Q1 Audit" {
		t.Errorf("Cover.Title = %q", doc.Cover.Title)
	}
	if doc.Summary.Stats.Total != 1 {
		t.Errorf("Total = %d, want 1", doc.Summary.Stats.Total)
	}
	if doc.Summary.Stats.ByLevel[types.RiskLevelHigh] != 1 {
		t.Errorf("high count = %d, want 1", doc.Summary.Stats.ByLevel[types.RiskLevelHigh])
	}
	if len(doc.Recommendations.Critical) != 0 {
		t.Errorf("expected no critical recommendations, got %v", doc.Recommendations.Critical)
	}
	if len(doc.Recommendations.High) != 1 || doc.Recommendations.High[0] != "Plan mitigation for Phishing" {
		t.Errorf("High recommendations = %v", doc.Recommendations.High)
	}
}

func TestBuildExportEmptyReport(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()
	report := mustCreateReport(t, uc)

	doc, err := uc.Export.BuildExport(ctx, report.ID)
	if err != nil {
		t.Fatalf("failed to build export: %v", err)
	}

	if doc.Summary.Stats.Total != 0 {
		t.Errorf("Total = %d, want 0", doc.Summary.Stats.Total)
	}
	if len(doc.Matrix.Rows) != 5 {
		t.Errorf("expected dense matrix with 5 rows, got %d", len(doc.Matrix.Rows))
	}
}

func TestBuildExportUnknownReport(t *testing.T) {
	uc := newUseCases()

	_, err := uc.Export.BuildExport(context.Background(), 404)
	if !errors.Is(err, usecase.ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound, got %v", err)
	}
}
