package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/grc-lab/riskreport/pkg/domain/model"
)

type riskItemRepository struct {
	mu     sync.RWMutex
	items  map[int64]*model.RiskItem
	nextID int64
}

func newRiskItemRepository() *riskItemRepository {
	return &riskItemRepository{
		items:  make(map[int64]*model.RiskItem),
		nextID: 1,
	}
}

func copyRiskItem(item *model.RiskItem) *model.RiskItem {
	copied := *item
	return &copied
}

func (r *riskItemRepository) Create(ctx context.Context, item *model.RiskItem) (*model.RiskItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyRiskItem(item)
	created.ID = r.nextID
	created.Status = created.Status.Normalize()
	r.nextID++

	r.items[created.ID] = created
	return copyRiskItem(created), nil
}

func (r *riskItemRepository) Get(ctx context.Context, id int64) (*model.RiskItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk item not found", goerr.V("id", id))
	}

	return copyRiskItem(item), nil
}

func (r *riskItemRepository) ListByReport(ctx context.Context, reportID int64) ([]*model.RiskItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.RiskItem, 0)
	for _, item := range r.items {
		if item.ReportID != reportID {
			continue
		}
		items = append(items, copyRiskItem(item))
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items, nil
}

func (r *riskItemRepository) Update(ctx context.Context, id int64, patch *model.RiskItemPatch) (*model.RiskItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk item not found", goerr.V("id", id))
	}

	updated := copyRiskItem(existing)
	patch.Apply(updated)

	r.items[id] = updated
	return copyRiskItem(updated), nil
}

func (r *riskItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return false, nil
	}

	delete(r.items, id)
	return true, nil
}
