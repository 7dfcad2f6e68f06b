package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/grc-lab/riskreport/pkg/domain/model"
	"github.com/grc-lab/riskreport/pkg/domain/types"
)

type reportRepository struct {
	mu      sync.RWMutex
	reports map[int64]*model.Report
	nextID  int64
}

func newReportRepository() *reportRepository {
	return &reportRepository{
		reports: make(map[int64]*model.Report),
		nextID:  1,
	}
}

func copyReport(r *model.Report) *model.Report {
	copied := *r
	return &copied
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyReport(report)
	created.ID = r.nextID
	created.Status = created.Status.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.reports[created.ID] = created
	return copyReport(created), nil
}

func (r *reportRepository) Get(ctx context.Context, id int64) (*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.reports[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "report not found", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	return copyReport(report), nil
}

func (r *reportRepository) List(ctx context.Context, userID types.UserID) ([]*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := make([]*model.Report, 0, len(r.reports))
	for _, report := range r.reports {
		if report.UserID != userID {
			continue
		}
		reports = append(reports, copyReport(report))
	}

	// IDs are assigned monotonically, so ID order is insertion order
	sort.Slice(reports, func(i, j int) bool { return reports[i].ID < reports[j].ID })

	return reports, nil
}

func (r *reportRepository) Update(ctx context.Context, id int64, patch *model.ReportPatch) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.reports[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "report not found", goerr.V("id", id))
	}

	updated := copyReport(existing)
	patch.Apply(updated)
	updated.UpdatedAt = time.Now().UTC()

	r.reports[id] = updated
	return copyReport(updated), nil
}
