package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Likelihood represents the probability rating of a risk item on a 1-5 scale
type Likelihood int

// Validate checks if the Likelihood is within the allowed range
func (l Likelihood) Validate() error {
	if l < 1 || l > 5 {
		return goerr.New("likelihood must be between 1 and 5", goerr.V("likelihood", int(l)))
	}
	return nil
}

// Int returns the raw integer value of the Likelihood
func (l Likelihood) Int() int {
	return int(l)
}
