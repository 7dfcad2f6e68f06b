package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/grc-lab/riskreport/pkg/domain/interfaces"
	"github.com/grc-lab/riskreport/pkg/service/export"
)

type ExportUseCase struct {
	repo interfaces.Repository
}

func NewExportUseCase(repo interfaces.Repository) *ExportUseCase {
	return &ExportUseCase{
		repo: repo,
	}
}

// BuildExport loads a report with its risk items and assembles the
// renderer-agnostic export document.
func (uc *ExportUseCase) BuildExport(ctx context.Context, reportID int64) (*export.Document, error) {
	report, err := uc.repo.Reports().Get(ctx, reportID)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrReportNotFound, "report not found", goerr.V("id", reportID))
		}
		return nil, goerr.Wrap(err, "failed to get report", goerr.V("id", reportID))
	}

	items, err := uc.repo.RiskItems().ListByReport(ctx, reportID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risk items", goerr.V("reportID", reportID))
	}

	return export.Build(report, items), nil
}
