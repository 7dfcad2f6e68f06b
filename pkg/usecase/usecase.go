package usecase

import (
	"github.com/grc-lab/riskreport/pkg/domain/interfaces"
)

// UseCases is the single mutation path of the system: all invariants
// (validation, derived risk level, referential checks) are enforced here
// before anything reaches the repository.
type UseCases struct {
	repo interfaces.Repository

	Report   *ReportUseCase
	RiskItem *RiskItemUseCase
	Export   *ExportUseCase
}

func New(repo interfaces.Repository) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	uc.Report = NewReportUseCase(repo)
	uc.RiskItem = NewRiskItemUseCase(repo)
	uc.Export = NewExportUseCase(repo)

	return uc
}
