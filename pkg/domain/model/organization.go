package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/grc-lab/riskreport/pkg/domain/types"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Organization holds the company profile embedded in a report. It has no
// standalone identity; it is stored denormalized inside the report and
// replaced as a whole when the profile is edited.
type Organization struct {
	Name      string          `json:"name" firestore:"name"`
	Industry  string          `json:"industry,omitempty" firestore:"industry"`
	Contact   string          `json:"contact,omitempty" firestore:"contact"`
	Email     string          `json:"email,omitempty" firestore:"email"`
	Address   string          `json:"address,omitempty" firestore:"address"`
	City      string          `json:"city,omitempty" firestore:"city"`
	State     string          `json:"state,omitempty" firestore:"state"`
	Zip       string          `json:"zip,omitempty" firestore:"zip"`
	Size      types.OrgSize   `json:"size,omitempty" firestore:"size"`
	Framework types.Framework `json:"framework,omitempty" firestore:"framework"`
	LogoURL   string          `json:"logoUrl,omitempty" firestore:"logo_url"`
}

// Validate checks required fields and enum values of the organization
func (o *Organization) Validate() error {
	if o.Name == "" {
		return goerr.New("organization name is required")
	}
	if o.Email != "" && !emailPattern.MatchString(o.Email) {
		return goerr.New("organization email is malformed", goerr.V("email", o.Email))
	}
	if o.Size != "" && !o.Size.IsValid() {
		return goerr.New("invalid organization size", goerr.V("size", o.Size))
	}
	if o.Framework != "" && !o.Framework.IsValid() {
		return goerr.New("invalid compliance framework", goerr.V("framework", o.Framework))
	}
	return nil
}
