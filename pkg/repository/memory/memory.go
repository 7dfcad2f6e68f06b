package memory

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/grc-lab/riskreport/pkg/domain/interfaces"
)

// ErrNotFound is returned when a referenced record does not exist
var ErrNotFound = goerr.New("record not found")

// Memory is an in-memory repository for development and tests
type Memory struct {
	reports   *reportRepository
	riskItems *riskItemRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		reports:   newReportRepository(),
		riskItems: newRiskItemRepository(),
	}
}

func (m *Memory) Reports() interfaces.ReportRepository {
	return m.reports
}

func (m *Memory) RiskItems() interfaces.RiskItemRepository {
	return m.riskItems
}

func (m *Memory) Close() error {
	return nil
}
