package types

import "fmt"

// ReportStatus represents the lifecycle state of a report
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusCompleted ReportStatus = "completed"
)

// AllReportStatuses returns all valid report statuses
func AllReportStatuses() []ReportStatus {
	return []ReportStatus{
		ReportStatusDraft,
		ReportStatusCompleted,
	}
}

// IsValid checks if the report status is valid
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusDraft,
		ReportStatusCompleted:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as ReportStatusDraft
func (s ReportStatus) Normalize() ReportStatus {
	if s == "" {
		return ReportStatusDraft
	}
	return s
}

// String returns the string representation of the report status
func (s ReportStatus) String() string {
	return string(s)
}

// ParseReportStatus parses a string into a ReportStatus
func ParseReportStatus(s string) (ReportStatus, error) {
	status := ReportStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid report status: %s", s)
	}
	return status, nil
}
