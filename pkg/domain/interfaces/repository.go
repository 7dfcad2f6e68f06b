package interfaces

// Repository defines the interface for data persistence. Callers never
// depend on a concrete backend; the in-memory adapter serves development
// and tests, the Firestore adapter serves production.
type Repository interface {
	Reports() ReportRepository
	RiskItems() RiskItemRepository

	// Close releases backend resources
	Close() error
}
