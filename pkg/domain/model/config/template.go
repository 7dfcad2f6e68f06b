package config

import "github.com/grc-lab/riskreport/pkg/domain/types"

// Template describes a report template shown by the wizard
type Template struct {
	ID          string
	Name        string
	Description string
	Type        types.ReportType
}

// Category carries display metadata for a risk category
type Category struct {
	ID          string
	Name        string
	Description string
}

// AppConfig holds the template and category registry of the service
type AppConfig struct {
	Templates  []Template
	Categories []Category
}

// DefaultAppConfig returns the built-in registry used when no
// configuration file is supplied.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Templates: []Template{
			{
				ID:          "risk-assessment",
				Name:        "Risk Assessment Report",
				Description: "Comprehensive evaluation of organizational risks and controls",
				Type:        types.ReportTypeRiskAssessment,
			},
			{
				ID:          "policy-compliance",
				Name:        "Policy Compliance Gap Analysis",
				Description: "Analysis of compliance gaps against regulatory frameworks",
				Type:        types.ReportTypePolicyCompliance,
			},
			{
				ID:          "incident-report",
				Name:        "Incident Report",
				Description: "Documentation and analysis of security incidents",
				Type:        types.ReportTypeIncidentReport,
			},
			{
				ID:          "business-impact",
				Name:        "Business Impact Analysis",
				Description: "Assessment of potential business disruptions and recovery strategies",
				Type:        types.ReportTypeBusinessImpact,
			},
			{
				ID:          "vendor-risk",
				Name:        "Vendor Risk Assessment",
				Description: "Evaluation of third-party vendor security and compliance",
				Type:        types.ReportTypeVendorRisk,
			},
		},
		Categories: []Category{
			{ID: "cybersecurity", Name: "Cybersecurity", Description: "Threats to systems, networks and data"},
			{ID: "operational", Name: "Operational", Description: "Disruptions to business processes"},
			{ID: "financial", Name: "Financial", Description: "Exposure to monetary loss"},
			{ID: "compliance", Name: "Compliance", Description: "Regulatory and contractual obligations"},
			{ID: "strategic", Name: "Strategic", Description: "Risks to long-term objectives"},
			{ID: "reputational", Name: "Reputational", Description: "Damage to public trust"},
		},
	}
}
