package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/grc-lab/riskreport/pkg/domain/model"
	"github.com/grc-lab/riskreport/pkg/domain/types"
)

type reportRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newReportRepository(client *firestore.Client) *reportRepository {
	return &reportRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *reportRepository) reportsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_reports"
	}
	return "reports"
}

func (r *reportRepository) counterCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func (r *reportRepository) getNextID(ctx context.Context) (int64, error) {
	return nextCounterValue(ctx, r.client, r.counterCollection(), "report_counter")
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) (*model.Report, error) {
	id, err := r.getNextID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *report
	created.ID = id
	created.Status = created.Status.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	docRef := r.client.Collection(r.reportsCollection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create report", goerr.V("id", id))
	}

	return &created, nil
}

func (r *reportRepository) Get(ctx context.Context, id int64) (*model.Report, error) {
	docRef := r.client.Collection(r.reportsCollection()).Doc(fmt.Sprintf("%d", id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "report not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get report", goerr.V("id", id))
	}

	var report model.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal report", goerr.V("id", id))
	}

	return &report, nil
}

func (r *reportRepository) List(ctx context.Context, userID types.UserID) ([]*model.Report, error) {
	iter := r.client.Collection(r.reportsCollection()).
		Where("user_id", "==", string(userID)).
		OrderBy("id", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	reports := make([]*model.Report, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate reports")
		}

		var report model.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal report")
		}
		reports = append(reports, &report)
	}

	return reports, nil
}

func (r *reportRepository) Update(ctx context.Context, id int64, patch *model.ReportPatch) (*model.Report, error) {
	docRef := r.client.Collection(r.reportsCollection()).Doc(fmt.Sprintf("%d", id))

	var updated model.Report
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(ErrNotFound, "report not found", goerr.V("id", id))
			}
			return goerr.Wrap(err, "failed to get report", goerr.V("id", id))
		}

		if err := doc.DataTo(&updated); err != nil {
			return goerr.Wrap(err, "failed to unmarshal report", goerr.V("id", id))
		}

		patch.Apply(&updated)
		updated.UpdatedAt = time.Now().UTC()

		return tx.Set(docRef, &updated)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
