package interfaces

import (
	"context"

	"github.com/grc-lab/riskreport/pkg/domain/model"
)

type RiskItemRepository interface {
	// Create creates a new risk item with the next auto-generated ID.
	// Item IDs are globally scoped, not per-report.
	Create(ctx context.Context, item *model.RiskItem) (*model.RiskItem, error)

	// Get retrieves a risk item by ID
	Get(ctx context.Context, id int64) (*model.RiskItem, error)

	// ListByReport retrieves the risk items of a report in insertion order
	ListByReport(ctx context.Context, reportID int64) ([]*model.RiskItem, error)

	// Update merges the patch into an existing risk item
	Update(ctx context.Context, id int64, patch *model.RiskItemPatch) (*model.RiskItem, error)

	// Delete deletes a risk item by ID. It reports whether a record was
	// removed; deleting an absent ID is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}
