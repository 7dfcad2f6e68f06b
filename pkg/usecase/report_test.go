package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grc-lab/riskreport/pkg/domain/model"
	"github.com/grc-lab/riskreport/pkg/domain/types"
	"github.com/grc-lab/riskreport/pkg/repository/memory"
	"github.com/grc-lab/riskreport/pkg/usecase"
)

func newUseCases() *usecase.UseCases {
	return usecase.New(memory.New())
}

func createReportInput() *usecase.CreateReportInput {
	return &usecase.CreateReportInput{
		Title: "Q1 Audit",
		Type:  types.ReportTypeRiskAssessment,
		Organization: model.Organization{
			Name: "Acme",
		},
		Details: model.ReportDetails{Period: "Q1 2026"},
	}
}

func TestCreateReport(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()

	created, err := uc.Report.CreateReport(ctx, "default", createReportInput())
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected assigned ID")
	}
	if created.Status != types.ReportStatusDraft {
		t.Errorf("Status = %v, want draft", created.Status)
	}
	if created.UserID != "default" {
		t.Errorf("UserID = %v", created.UserID)
	}
}

func TestCreateReportValidation(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()

	t.Run("missing title", func(t *testing.T) {
		input := createReportInput()
		input.Title = ""
		_, err := uc.Report.CreateReport(ctx, "default", input)
		if !errors.Is(err, usecase.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		input := createReportInput()
		input.Type = "threat-model"
		_, err := uc.Report.CreateReport(ctx, "default", input)
		if !errors.Is(err, usecase.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("malformed organization email", func(t *testing.T) {
		input := createReportInput()
		input.Organization.Email = "nope"
		_, err := uc.Report.CreateReport(ctx, "default", input)
		if !errors.Is(err, usecase.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestGetReportNotFound(t *testing.T) {
	uc := newUseCases()

	_, err := uc.Report.GetReport(context.Background(), 42)
	if !errors.Is(err, usecase.ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound, got %v", err)
	}
}

func TestUpdateReport(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()

	created, err := uc.Report.CreateReport(ctx, "default", createReportInput())
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	t.Run("empty patch is idempotent except UpdatedAt", func(t *testing.T) {
		time.Sleep(10 * time.Millisecond)

		updated, err := uc.Report.UpdateReport(ctx, created.ID, &model.ReportPatch{})
		if err != nil {
			t.Fatalf("failed to update report: %v", err)
		}
		if updated.Title != created.Title || updated.Status != created.Status {
			t.Error("empty patch changed fields")
		}
		if !updated.UpdatedAt.After(created.UpdatedAt) {
			t.Error("UpdatedAt did not advance")
		}
	})

	t.Run("invalid patch rejected", func(t *testing.T) {
		empty := ""
		_, err := uc.Report.UpdateReport(ctx, created.ID, &model.ReportPatch{Title: &empty})
		if !errors.Is(err, usecase.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown ID", func(t *testing.T) {
		title := "X"
		_, err := uc.Report.UpdateReport(ctx, 9999, &model.ReportPatch{Title: &title})
		if !errors.Is(err, usecase.ErrReportNotFound) {
			t.Errorf("expected ErrReportNotFound, got %v", err)
		}
	})
}

func TestListReportsScopedToUser(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()

	if _, err := uc.Report.CreateReport(ctx, "alice", createReportInput()); err != nil {
		t.Fatalf("failed to create report: %v", err)
	}
	if _, err := uc.Report.CreateReport(ctx, "bob", createReportInput()); err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	reports, err := uc.Report.ListReports(ctx, "alice")
	if err != nil {
		t.Fatalf("failed to list reports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report for alice, got %d", len(reports))
	}
	if reports[0].UserID != "alice" {
		t.Errorf("UserID = %v", reports[0].UserID)
	}
}
