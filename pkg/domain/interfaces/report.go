package interfaces

import (
	"context"

	"github.com/grc-lab/riskreport/pkg/domain/model"
	"github.com/grc-lab/riskreport/pkg/domain/types"
)

type ReportRepository interface {
	// Create creates a new report with the next auto-generated ID and
	// sets CreatedAt/UpdatedAt. IDs are never reused within a process.
	Create(ctx context.Context, report *model.Report) (*model.Report, error)

	// Get retrieves a report by ID
	Get(ctx context.Context, id int64) (*model.Report, error)

	// List retrieves the reports of a user in insertion order
	List(ctx context.Context, userID types.UserID) ([]*model.Report, error)

	// Update merges the patch into an existing report and refreshes
	// UpdatedAt. An empty patch still advances UpdatedAt.
	Update(ctx context.Context, id int64, patch *model.ReportPatch) (*model.Report, error)
}
