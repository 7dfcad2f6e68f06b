package usecase

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/grc-lab/riskreport/pkg/repository/firestore"
	"github.com/grc-lab/riskreport/pkg/repository/memory"
)

// Sentinel errors for the use case layer
var (
	// Not found errors
	ErrReportNotFound   = goerr.New("report not found")
	ErrRiskItemNotFound = goerr.New("risk item not found")

	// Validation errors wrap this so the boundary can map them to a
	// client error instead of an internal failure
	ErrInvalidInput = goerr.New("invalid input")
)

// isNotFound reports whether err is a repository not-found result,
// regardless of the configured backend.
func isNotFound(err error) bool {
	return errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound)
}
