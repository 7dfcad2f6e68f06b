package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/grc-lab/riskreport/pkg/domain/interfaces"
)

// ErrNotFound is returned when a referenced record does not exist
var ErrNotFound = goerr.New("record not found")

type Firestore struct {
	client    *firestore.Client
	reports   *reportRepository
	riskItems *riskItemRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, used to isolate test runs
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.reports.collectionPrefix = prefix
		f.riskItems.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:    client,
		reports:   newReportRepository(client),
		riskItems: newRiskItemRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Reports() interfaces.ReportRepository {
	return f.reports
}

func (f *Firestore) RiskItems() interfaces.RiskItemRepository {
	return f.riskItems
}

func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}
