package types

import "fmt"

// RiskLevel represents a derived severity category of a risk item
type RiskLevel string

const (
	RiskLevelVeryLow  RiskLevel = "very-low"
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// AllRiskLevels returns all risk levels in ascending severity order
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{
		RiskLevelVeryLow,
		RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
		RiskLevelCritical,
	}
}

// IsValid checks if the risk level is valid
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelVeryLow,
		RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
		RiskLevelCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk level
func (l RiskLevel) String() string {
	return string(l)
}

// Label returns the human-readable display label of the risk level
func (l RiskLevel) Label() string {
	switch l {
	case RiskLevelVeryLow:
		return "Very Low"
	case RiskLevelLow:
		return "Low"
	case RiskLevelMedium:
		return "Medium"
	case RiskLevelHigh:
		return "High"
	case RiskLevelCritical:
		return "Critical"
	default:
		return string(l)
	}
}

// Color returns the presentation color of the risk level
func (l RiskLevel) Color() string {
	switch l {
	case RiskLevelVeryLow:
		return "#16a34a"
	case RiskLevelLow:
		return "#65a30d"
	case RiskLevelMedium:
		return "#ca8a04"
	case RiskLevelHigh:
		return "#ea580c"
	case RiskLevelCritical:
		return "#dc2626"
	default:
		return ""
	}
}

// Severity returns the ordering rank of the risk level (1 is lowest)
func (l RiskLevel) Severity() int {
	switch l {
	case RiskLevelVeryLow:
		return 1
	case RiskLevelLow:
		return 2
	case RiskLevelMedium:
		return 3
	case RiskLevelHigh:
		return 4
	case RiskLevelCritical:
		return 5
	default:
		return 0
	}
}

// ParseRiskLevel parses a string into a RiskLevel
func ParseRiskLevel(s string) (RiskLevel, error) {
	level := RiskLevel(s)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid risk level: %s", s)
	}
	return level, nil
}

// CalculateRiskLevel maps a likelihood/impact pair to its risk level.
// The score is the product of both values over the range [1,25] with
// fixed breakpoints. Inputs must be validated before calling.
func CalculateRiskLevel(likelihood Likelihood, impact Impact) RiskLevel {
	score := int(likelihood) * int(impact)

	switch {
	case score <= 4:
		return RiskLevelVeryLow
	case score <= 8:
		return RiskLevelLow
	case score <= 12:
		return RiskLevelMedium
	case score <= 16:
		return RiskLevelHigh
	default:
		return RiskLevelCritical
	}
}
