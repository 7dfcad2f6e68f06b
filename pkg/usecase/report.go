package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/grc-lab/riskreport/pkg/domain/interfaces"
	"github.com/grc-lab/riskreport/pkg/domain/model"
	"github.com/grc-lab/riskreport/pkg/domain/types"
)

type ReportUseCase struct {
	repo interfaces.Repository
}

func NewReportUseCase(repo interfaces.Repository) *ReportUseCase {
	return &ReportUseCase{
		repo: repo,
	}
}

// CreateReportInput carries the wizard data for a new report
type CreateReportInput struct {
	Title        string
	Type         types.ReportType
	Organization model.Organization
	Details      model.ReportDetails
	Status       types.ReportStatus
}

func (uc *ReportUseCase) CreateReport(ctx context.Context, userID types.UserID, input *CreateReportInput) (*model.Report, error) {
	report := &model.Report{
		UserID:       userID.Normalize(),
		Title:        input.Title,
		Type:         input.Type,
		Organization: input.Organization,
		Details:      input.Details,
		Status:       input.Status.Normalize(),
	}

	if err := report.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, err.Error())
	}

	created, err := uc.repo.Reports().Create(ctx, report)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create report")
	}

	return created, nil
}

func (uc *ReportUseCase) GetReport(ctx context.Context, id int64) (*model.Report, error) {
	report, err := uc.repo.Reports().Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrReportNotFound, "report not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get report", goerr.V("id", id))
	}
	return report, nil
}

func (uc *ReportUseCase) ListReports(ctx context.Context, userID types.UserID) ([]*model.Report, error) {
	reports, err := uc.repo.Reports().List(ctx, userID.Normalize())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reports")
	}
	return reports, nil
}

func (uc *ReportUseCase) UpdateReport(ctx context.Context, id int64, patch *model.ReportPatch) (*model.Report, error) {
	if err := patch.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, err.Error())
	}

	updated, err := uc.repo.Reports().Update(ctx, id, patch)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrReportNotFound, "report not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to update report", goerr.V("id", id))
	}

	return updated, nil
}
