package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Impact represents the consequence rating of a risk item on a 1-5 scale
type Impact int

// Validate checks if the Impact is within the allowed range
func (i Impact) Validate() error {
	if i < 1 || i > 5 {
		return goerr.New("impact must be between 1 and 5", goerr.V("impact", int(i)))
	}
	return nil
}

// Int returns the raw integer value of the Impact
func (i Impact) Int() int {
	return int(i)
}
