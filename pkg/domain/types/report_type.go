package types

import "fmt"

// ReportType identifies the report template a report is built from
type ReportType string

const (
	ReportTypeRiskAssessment   ReportType = "risk-assessment"
	ReportTypePolicyCompliance ReportType = "policy-compliance"
	ReportTypeIncidentReport   ReportType = "incident-report"
	ReportTypeBusinessImpact   ReportType = "business-impact"
	ReportTypeVendorRisk       ReportType = "vendor-risk"
)

// AllReportTypes returns all valid report types
func AllReportTypes() []ReportType {
	return []ReportType{
		ReportTypeRiskAssessment,
		ReportTypePolicyCompliance,
		ReportTypeIncidentReport,
		ReportTypeBusinessImpact,
		ReportTypeVendorRisk,
	}
}

// IsValid checks if the report type is valid
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeRiskAssessment,
		ReportTypePolicyCompliance,
		ReportTypeIncidentReport,
		ReportTypeBusinessImpact,
		ReportTypeVendorRisk:
		return true
	default:
		return false
	}
}

// String returns the string representation of the report type
func (t ReportType) String() string {
	return string(t)
}

// ParseReportType parses a string into a ReportType
func ParseReportType(s string) (ReportType, error) {
	reportType := ReportType(s)
	if !reportType.IsValid() {
		return "", fmt.Errorf("invalid report type: %s", s)
	}
	return reportType, nil
}
