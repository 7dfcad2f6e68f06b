package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/grc-lab/riskreport/pkg/domain/interfaces"
	"github.com/grc-lab/riskreport/pkg/domain/model"
	"github.com/grc-lab/riskreport/pkg/domain/types"
)

type RiskItemUseCase struct {
	repo interfaces.Repository
}

func NewRiskItemUseCase(repo interfaces.Repository) *RiskItemUseCase {
	return &RiskItemUseCase{
		repo: repo,
	}
}

// CreateRiskItemInput carries the matrix form data for a new risk item.
// It has no risk level field: the level is always derived from the
// likelihood/impact pair here.
type CreateRiskItemInput struct {
	ReportID    int64
	Name        string
	Description string
	Category    types.RiskCategory
	Likelihood  types.Likelihood
	Impact      types.Impact
	Mitigation  string
	Status      types.RiskItemStatus
}

func (uc *RiskItemUseCase) CreateRiskItem(ctx context.Context, input *CreateRiskItemInput) (*model.RiskItem, error) {
	item := &model.RiskItem{
		ReportID:    input.ReportID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Likelihood:  input.Likelihood,
		Impact:      input.Impact,
		Mitigation:  input.Mitigation,
		Status:      input.Status.Normalize(),
	}
	item.Recalculate()

	if err := item.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, err.Error())
	}

	// Orphan items are rejected: the referenced report must exist
	if _, err := uc.repo.Reports().Get(ctx, input.ReportID); err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrReportNotFound, "risk item references unknown report",
				goerr.V("reportID", input.ReportID))
		}
		return nil, goerr.Wrap(err, "failed to check report", goerr.V("reportID", input.ReportID))
	}

	created, err := uc.repo.RiskItems().Create(ctx, item)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create risk item")
	}

	return created, nil
}

func (uc *RiskItemUseCase) ListRiskItems(ctx context.Context, reportID int64) ([]*model.RiskItem, error) {
	items, err := uc.repo.RiskItems().ListByReport(ctx, reportID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risk items", goerr.V("reportID", reportID))
	}
	return items, nil
}

func (uc *RiskItemUseCase) UpdateRiskItem(ctx context.Context, id int64, patch *model.RiskItemPatch) (*model.RiskItem, error) {
	if err := patch.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, err.Error())
	}

	updated, err := uc.repo.RiskItems().Update(ctx, id, patch)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrRiskItemNotFound, "risk item not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to update risk item", goerr.V("id", id))
	}

	return updated, nil
}

func (uc *RiskItemUseCase) DeleteRiskItem(ctx context.Context, id int64) (bool, error) {
	deleted, err := uc.repo.RiskItems().Delete(ctx, id)
	if err != nil {
		return false, goerr.Wrap(err, "failed to delete risk item", goerr.V("id", id))
	}
	return deleted, nil
}
