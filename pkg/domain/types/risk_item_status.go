package types

import "fmt"

// RiskItemStatus represents the treatment state of a risk item
type RiskItemStatus string

const (
	RiskItemStatusOpen      RiskItemStatus = "open"
	RiskItemStatusMitigated RiskItemStatus = "mitigated"
	RiskItemStatusAccepted  RiskItemStatus = "accepted"
)

// AllRiskItemStatuses returns all valid risk item statuses
func AllRiskItemStatuses() []RiskItemStatus {
	return []RiskItemStatus{
		RiskItemStatusOpen,
		RiskItemStatusMitigated,
		RiskItemStatusAccepted,
	}
}

// IsValid checks if the risk item status is valid
func (s RiskItemStatus) IsValid() bool {
	switch s {
	case RiskItemStatusOpen,
		RiskItemStatusMitigated,
		RiskItemStatusAccepted:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as RiskItemStatusOpen
func (s RiskItemStatus) Normalize() RiskItemStatus {
	if s == "" {
		return RiskItemStatusOpen
	}
	return s
}

// String returns the string representation of the risk item status
func (s RiskItemStatus) String() string {
	return string(s)
}

// ParseRiskItemStatus parses a string into a RiskItemStatus
func ParseRiskItemStatus(s string) (RiskItemStatus, error) {
	status := RiskItemStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid risk item status: %s", s)
	}
	return status, nil
}
