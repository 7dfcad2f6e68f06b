package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/grc-lab/riskreport/pkg/domain/interfaces"
	"github.com/grc-lab/riskreport/pkg/domain/model"
	"github.com/grc-lab/riskreport/pkg/domain/types"
	"github.com/grc-lab/riskreport/pkg/repository/firestore"
	"github.com/grc-lab/riskreport/pkg/repository/memory"
)

const testUser = types.UserID("default")

func newReport(title string) *model.Report {
	return &model.Report{
		UserID: testUser,
		Title:  title,
		Type:   types.ReportTypeRiskAssessment,
		Organization: model.Organization{
			Name: "Acme Corp",
			City: "Springfield",
		},
		Details: model.ReportDetails{Period: "Q1 2026"},
	}
}

func runReportRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns monotonic IDs and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Reports().Create(ctx, newReport("First Audit"))
		if err != nil {
			t.Fatalf("failed to create report: %v", err)
		}
		second, err := repo.Reports().Create(ctx, newReport("Second Audit"))
		if err != nil {
			t.Fatalf("failed to create report: %v", err)
		}

		if second.ID <= first.ID {
			t.Errorf("expected second ID (%d) above first (%d)", second.ID, first.ID)
		}
		if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
			t.Error("expected non-zero timestamps")
		}
		if !first.CreatedAt.Equal(first.UpdatedAt) {
			t.Errorf("expected CreatedAt == UpdatedAt on creation, got %v and %v",
				first.CreatedAt, first.UpdatedAt)
		}
	})

	t.Run("Create defaults status to draft", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Reports().Create(ctx, newReport("No Status"))
		if err != nil {
			t.Fatalf("failed to create report: %v", err)
		}
		if created.Status != types.ReportStatusDraft {
			t.Errorf("Status = %v, want draft", created.Status)
		}
	})

	t.Run("Get retrieves created report", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Reports().Create(ctx, newReport("Roundtrip"))
		if err != nil {
			t.Fatalf("failed to create report: %v", err)
		}

		retrieved, err := repo.Reports().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get report: %v", err)
		}
		if retrieved.Title != "Roundtrip" {
			t.Errorf("Title = %q", retrieved.Title)
		}
		if retrieved.Organization.Name != "Acme Corp" {
			t.Errorf("Organization.Name = %q", retrieved.Organization.Name)
		}
		if retrieved.Details.Period != "Q1 2026" {
			t.Errorf("Details.Period = %q", retrieved.Details.Period)
		}
	})

	t.Run("Get returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Reports().Get(ctx, 99999999)
		if err == nil {
			t.Fatal("expected error for unknown report")
		}
		if !errors.Is(err, memory.ErrNotFound) && !errors.Is(err, firestore.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Update merges patch and refreshes UpdatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Reports().Create(ctx, newReport("Before"))
		if err != nil {
			t.Fatalf("failed to create report: %v", err)
		}

		time.Sleep(10 * time.Millisecond)

		title := "After"
		status := types.ReportStatusCompleted
		updated, err := repo.Reports().Update(ctx, created.ID, &model.ReportPatch{
			Title:  &title,
			Status: &status,
		})
		if err != nil {
			t.Fatalf("failed to update report: %v", err)
		}

		if updated.Title != "After" {
			t.Errorf("Title = %q, want After", updated.Title)
		}
		if updated.Status != types.ReportStatusCompleted {
			t.Errorf("Status = %v, want completed", updated.Status)
		}
		if updated.Organization.Name != "Acme Corp" {
			t.Errorf("unpatched field changed: %q", updated.Organization.Name)
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Error("CreatedAt must not change on update")
		}
		if !updated.UpdatedAt.After(created.UpdatedAt) {
			t.Errorf("UpdatedAt did not advance: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
		}
	})

	t.Run("Update with empty patch only advances UpdatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Reports().Create(ctx, newReport("Idempotent"))
		if err != nil {
			t.Fatalf("failed to create report: %v", err)
		}

		time.Sleep(10 * time.Millisecond)

		updated, err := repo.Reports().Update(ctx, created.ID, &model.ReportPatch{})
		if err != nil {
			t.Fatalf("failed to update report: %v", err)
		}

		if updated.Title != created.Title ||
			updated.Type != created.Type ||
			updated.Status != created.Status ||
			updated.Organization != created.Organization ||
			updated.Details != created.Details {
			t.Error("empty patch changed report fields")
		}
		if !updated.UpdatedAt.After(created.UpdatedAt) {
			t.Error("UpdatedAt did not advance on empty patch")
		}
	})

	t.Run("Update returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		title := "X"
		_, err := repo.Reports().Update(ctx, 99999999, &model.ReportPatch{Title: &title})
		if err == nil {
			t.Fatal("expected error for unknown report")
		}
		if !errors.Is(err, memory.ErrNotFound) && !errors.Is(err, firestore.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List returns reports of the user in insertion order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, title := range []string{"One", "Two", "Three"} {
			if _, err := repo.Reports().Create(ctx, newReport(title)); err != nil {
				t.Fatalf("failed to create report: %v", err)
			}
		}
		other := newReport("Foreign")
		other.UserID = "someone-else"
		if _, err := repo.Reports().Create(ctx, other); err != nil {
			t.Fatalf("failed to create report: %v", err)
		}

		reports, err := repo.Reports().List(ctx, testUser)
		if err != nil {
			t.Fatalf("failed to list reports: %v", err)
		}

		if len(reports) != 3 {
			t.Fatalf("expected 3 reports, got %d", len(reports))
		}
		titles := []string{reports[0].Title, reports[1].Title, reports[2].Title}
		want := []string{"One", "Two", "Three"}
		for i := range want {
			if titles[i] != want[i] {
				t.Errorf("reports[%d].Title = %q, want %q", i, titles[i], want[i])
			}
		}
	})
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	if err != nil {
		t.Fatalf("failed to create firestore repository: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close firestore repository: %v", err)
		}
	})
	return repo
}

func TestMemoryReportRepository(t *testing.T) {
	runReportRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreReportRepository(t *testing.T) {
	runReportRepositoryTest(t, newFirestoreRepository)
}
