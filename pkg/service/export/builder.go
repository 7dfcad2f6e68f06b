package export

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/grc-lab/riskreport/pkg/domain/model"
	"github.com/grc-lab/riskreport/pkg/domain/types"
	"github.com/grc-lab/riskreport/pkg/service/assessment"
)

const coverFooter = "Confidential & Proprietary"

var standingRecommendations = []string{
	"Conduct quarterly risk assessments",
	"Update risk register as new threats emerge",
	"Review and test incident response procedures",
}

// Build assembles the export document for a report and its risk items.
// It performs no I/O and no layout math; items appear in the order they
// are supplied.
func Build(report *model.Report, items []*model.RiskItem) *Document {
	summary := assessment.Summarize(items)
	prioritized := assessment.Prioritize(items)
	now := time.Now().UTC()

	return &Document{
		GenerationID:    uuid.NewString(),
		GeneratedAt:     now,
		Cover:           buildCover(report, now),
		Summary:         buildSummary(summary),
		Matrix:          buildMatrix(summary),
		Details:         buildDetails(items),
		Recommendations: buildRecommendations(prioritized),
	}
}

func buildCover(report *model.Report, generatedAt time.Time) CoverSection {
	org := report.Organization

	var addressLines []string
	if org.Address != "" {
		addressLines = append(addressLines, org.Address)
	}
	if org.City != "" && org.State != "" {
		line := fmt.Sprintf("%s, %s", org.City, org.State)
		if org.Zip != "" {
			line += " " + org.Zip
		}
		addressLines = append(addressLines, line)
	}

	return CoverSection{
		Title:        report.Title,
		Organization: org.Name,
		AddressLines: addressLines,
		Period:       report.Details.Period,
		GeneratedAt:  generatedAt,
		Footer:       coverFooter,
	}
}

func buildSummary(summary *assessment.Summary) SummarySection {
	section := SummarySection{
		Intro: []string{
			"This report presents a comprehensive risk assessment of the organization's",
			"cybersecurity posture and compliance status.",
		},
		Stats: summary,
	}

	if summary.ByLevel[types.RiskLevelCritical] > 0 {
		section.Narrative = []string{
			"Immediate attention is required for critical risk items to ensure",
			"organizational security and compliance.",
		}
	} else {
		section.Narrative = []string{
			"No critical risks identified. Focus on high and medium risks",
			"for continued improvement.",
		}
	}

	return section
}

func buildMatrix(summary *assessment.Summary) MatrixSection {
	rows := make([]MatrixRow, 0, 5)
	for _, level := range types.AllRiskLevels() {
		rows = append(rows, MatrixRow{
			Level: level,
			Label: level.Label(),
			Count: summary.ByLevel[level],
		})
	}
	return MatrixSection{Rows: rows}
}

func buildDetails(items []*model.RiskItem) DetailsSection {
	entries := make([]DetailEntry, 0, len(items))
	for i, item := range items {
		entries = append(entries, DetailEntry{
			Index:       i + 1,
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category.Label(),
			Level:       item.RiskLevel.Label(),
			Likelihood:  item.Likelihood.Int(),
			Impact:      item.Impact.Int(),
			Mitigation:  item.Mitigation,
		})
	}
	return DetailsSection{Items: entries}
}

func buildRecommendations(prioritized *assessment.Prioritized) RecommendationsSection {
	section := RecommendationsSection{
		Standing: standingRecommendations,
	}

	for _, item := range prioritized.Critical {
		section.Critical = append(section.Critical,
			fmt.Sprintf("Address %s immediately", item.Name))
	}
	for _, item := range prioritized.High {
		section.High = append(section.High,
			fmt.Sprintf("Plan mitigation for %s", item.Name))
	}

	return section
}
