package types_test

import (
	"testing"

	"github.com/grc-lab/riskreport/pkg/domain/types"
)

func TestReportStatus(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, s := range types.AllReportStatuses() {
			if !s.IsValid() {
				t.Errorf("status %v should be valid", s)
			}
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		if types.ReportStatus("archived").IsValid() {
			t.Error("archived should not be a valid report status")
		}
	})

	t.Run("empty normalizes to draft", func(t *testing.T) {
		if got := types.ReportStatus("").Normalize(); got != types.ReportStatusDraft {
			t.Errorf("Normalize() = %v, want draft", got)
		}
	})
}

func TestRiskItemStatus(t *testing.T) {
	t.Run("empty normalizes to open", func(t *testing.T) {
		if got := types.RiskItemStatus("").Normalize(); got != types.RiskItemStatusOpen {
			t.Errorf("Normalize() = %v, want open", got)
		}
	})

	t.Run("parse rejects unknown", func(t *testing.T) {
		if _, err := types.ParseRiskItemStatus("closed"); err == nil {
			t.Error("expected error for unknown risk item status")
		}
	})
}

func TestReportType(t *testing.T) {
	if len(types.AllReportTypes()) != 5 {
		t.Fatalf("expected 5 report types, got %d", len(types.AllReportTypes()))
	}

	got, err := types.ParseReportType("risk-assessment")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != types.ReportTypeRiskAssessment {
		t.Errorf("ParseReportType = %v", got)
	}

	if _, err := types.ParseReportType("threat-model"); err == nil {
		t.Error("expected error for unknown report type")
	}
}

func TestRiskCategory(t *testing.T) {
	for _, c := range types.AllRiskCategories() {
		if !c.IsValid() {
			t.Errorf("category %v should be valid", c)
		}
		if c.Label() == "" {
			t.Errorf("category %v has no label", c)
		}
	}

	if types.RiskCategory("environmental").IsValid() {
		t.Error("environmental should not be a valid category")
	}
}

func TestOrgEnums(t *testing.T) {
	if !types.OrgSizeStartup.IsValid() {
		t.Error("startup should be a valid org size")
	}
	if types.OrgSize("enterprise").IsValid() {
		t.Error("enterprise should not be a valid org size")
	}

	if _, err := types.ParseFramework("pci-dss"); err == nil {
		t.Error("expected error for unknown framework")
	}
	if !types.FrameworkISO27001.IsValid() {
		t.Error("iso27001 should be a valid framework")
	}
}

func TestUserID(t *testing.T) {
	if got := types.UserID("").Normalize(); got != types.DefaultUserID {
		t.Errorf("Normalize() = %v, want %v", got, types.DefaultUserID)
	}
	if got := types.UserID("alice").Normalize(); got != "alice" {
		t.Errorf("Normalize() = %v, want alice", got)
	}
}
