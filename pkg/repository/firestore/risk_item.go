package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/grc-lab/riskreport/pkg/domain/model"
)

type riskItemRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRiskItemRepository(client *firestore.Client) *riskItemRepository {
	return &riskItemRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *riskItemRepository) riskItemsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_risk_items"
	}
	return "risk_items"
}

func (r *riskItemRepository) counterCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func (r *riskItemRepository) getNextID(ctx context.Context) (int64, error) {
	return nextCounterValue(ctx, r.client, r.counterCollection(), "risk_item_counter")
}

func (r *riskItemRepository) Create(ctx context.Context, item *model.RiskItem) (*model.RiskItem, error) {
	id, err := r.getNextID(ctx)
	if err != nil {
		return nil, err
	}

	created := *item
	created.ID = id
	created.Status = created.Status.Normalize()

	docRef := r.client.Collection(r.riskItemsCollection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create risk item", goerr.V("id", id))
	}

	return &created, nil
}

func (r *riskItemRepository) Get(ctx context.Context, id int64) (*model.RiskItem, error) {
	docRef := r.client.Collection(r.riskItemsCollection()).Doc(fmt.Sprintf("%d", id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "risk item not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get risk item", goerr.V("id", id))
	}

	var item model.RiskItem
	if err := doc.DataTo(&item); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal risk item", goerr.V("id", id))
	}

	return &item, nil
}

func (r *riskItemRepository) ListByReport(ctx context.Context, reportID int64) ([]*model.RiskItem, error) {
	iter := r.client.Collection(r.riskItemsCollection()).
		Where("report_id", "==", reportID).
		OrderBy("id", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	items := make([]*model.RiskItem, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate risk items", goerr.V("reportID", reportID))
		}

		var item model.RiskItem
		if err := doc.DataTo(&item); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal risk item")
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *riskItemRepository) Update(ctx context.Context, id int64, patch *model.RiskItemPatch) (*model.RiskItem, error) {
	docRef := r.client.Collection(r.riskItemsCollection()).Doc(fmt.Sprintf("%d", id))

	var updated model.RiskItem
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(ErrNotFound, "risk item not found", goerr.V("id", id))
			}
			return goerr.Wrap(err, "failed to get risk item", goerr.V("id", id))
		}

		if err := doc.DataTo(&updated); err != nil {
			return goerr.Wrap(err, "failed to unmarshal risk item", goerr.V("id", id))
		}

		patch.Apply(&updated)

		return tx.Set(docRef, &updated)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *riskItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	docRef := r.client.Collection(r.riskItemsCollection()).Doc(fmt.Sprintf("%d", id))

	var deleted bool
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		deleted = false

		if _, err := tx.Get(docRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return nil
			}
			return goerr.Wrap(err, "failed to get risk item", goerr.V("id", id))
		}

		if err := tx.Delete(docRef); err != nil {
			return goerr.Wrap(err, "failed to delete risk item", goerr.V("id", id))
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}
