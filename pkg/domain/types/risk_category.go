package types

import "fmt"

// RiskCategory represents the classification of a risk item
type RiskCategory string

const (
	RiskCategoryCybersecurity RiskCategory = "cybersecurity"
	RiskCategoryOperational   RiskCategory = "operational"
	RiskCategoryFinancial     RiskCategory = "financial"
	RiskCategoryCompliance    RiskCategory = "compliance"
	RiskCategoryStrategic     RiskCategory = "strategic"
	RiskCategoryReputational  RiskCategory = "reputational"
)

// AllRiskCategories returns all valid risk categories
func AllRiskCategories() []RiskCategory {
	return []RiskCategory{
		RiskCategoryCybersecurity,
		RiskCategoryOperational,
		RiskCategoryFinancial,
		RiskCategoryCompliance,
		RiskCategoryStrategic,
		RiskCategoryReputational,
	}
}

// IsValid checks if the risk category is valid
func (c RiskCategory) IsValid() bool {
	switch c {
	case RiskCategoryCybersecurity,
		RiskCategoryOperational,
		RiskCategoryFinancial,
		RiskCategoryCompliance,
		RiskCategoryStrategic,
		RiskCategoryReputational:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk category
func (c RiskCategory) String() string {
	return string(c)
}

// Label returns the human-readable display label of the risk category
func (c RiskCategory) Label() string {
	switch c {
	case RiskCategoryCybersecurity:
		return "Cybersecurity"
	case RiskCategoryOperational:
		return "Operational"
	case RiskCategoryFinancial:
		return "Financial"
	case RiskCategoryCompliance:
		return "Compliance"
	case RiskCategoryStrategic:
		return "Strategic"
	case RiskCategoryReputational:
		return "Reputational"
	default:
		return string(c)
	}
}

// ParseRiskCategory parses a string into a RiskCategory
func ParseRiskCategory(s string) (RiskCategory, error) {
	category := RiskCategory(s)
	if !category.IsValid() {
		return "", fmt.Errorf("invalid risk category: %s", s)
	}
	return category, nil
}
