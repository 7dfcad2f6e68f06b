package export

import (
	"time"

	"github.com/grc-lab/riskreport/pkg/domain/types"
	"github.com/grc-lab/riskreport/pkg/service/assessment"
)

// Document is the renderer-agnostic content of an exported report. The
// section order is fixed: cover, executive summary, matrix breakdown,
// risk details, recommendations. A renderer turns it into PDF or HTML;
// it never needs anything beyond what is here.
type Document struct {
	GenerationID string    `json:"generationId"`
	GeneratedAt  time.Time `json:"generatedAt"`

	Cover           CoverSection           `json:"cover"`
	Summary         SummarySection         `json:"summary"`
	Matrix          MatrixSection          `json:"matrix"`
	Details         DetailsSection         `json:"details"`
	Recommendations RecommendationsSection `json:"recommendations"`
}

// CoverSection carries the title page content. GeneratedAt repeats the
// envelope timestamp so a renderer can draw the title page from this
// section alone.
type CoverSection struct {
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	AddressLines []string  `json:"addressLines,omitempty"`
	Period       string    `json:"period,omitempty"`
	GeneratedAt  time.Time `json:"generatedAt"`
	Footer       string    `json:"footer"`
}

// SummarySection carries the executive summary: counts plus a narrative
// that differs depending on whether critical risks are present.
type SummarySection struct {
	Intro     []string            `json:"intro"`
	Stats     *assessment.Summary `json:"stats"`
	Narrative []string            `json:"narrative"`
}

// MatrixSection is the five-level count table in ascending severity order
type MatrixSection struct {
	Rows []MatrixRow `json:"rows"`
}

type MatrixRow struct {
	Level types.RiskLevel `json:"level"`
	Label string          `json:"label"`
	Count int             `json:"count"`
}

// DetailsSection lists every risk item in the order it was supplied
type DetailsSection struct {
	Items []DetailEntry `json:"items"`
}

type DetailEntry struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Likelihood  int    `json:"likelihood"`
	Impact      int    `json:"impact"`
	Mitigation  string `json:"mitigation,omitempty"`
}

// RecommendationsSection orders actions by urgency: critical lines first,
// then high lines, then the standing recommendations. Empty groups are
// omitted entirely.
type RecommendationsSection struct {
	Critical []string `json:"critical,omitempty"`
	High     []string `json:"high,omitempty"`
	Standing []string `json:"standing"`
}
