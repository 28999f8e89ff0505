// Package search implements the restaurant search pipeline: criteria
// validation, query building, response formatting, and outcome
// classification.
package search

// Criteria is the genre/price/distance filter triple submitted by a user.
// Zero values mean "unconstrained" for the numeric filters.
type Criteria struct {
	Genre           string
	PriceCeilingYen int
	RadiusMeters    int
}

// HasFilter reports whether at least one filter is set.
func (c Criteria) HasFilter() bool {
	return c.Genre != "" || c.PriceCeilingYen > 0 || c.RadiusMeters > 0
}

// Candidate is a single venue surviving formatting and distance filtering.
type Candidate struct {
	StoreID        string  `json:"store_id"`
	Name           string  `json:"name"`
	Rating         float64 `json:"rating"`
	RatingCount    int     `json:"rating_count"`
	DistanceMeters int     `json:"distance_meters"`
	Vicinity       string  `json:"vicinity"`
}

// Status is the closed set of search outcomes.
type Status string

const (
	// StatusOK means the provider answered and at least one candidate survived.
	StatusOK Status = "OK"
	// StatusNoMatch means the provider answered but nothing survived filtering.
	StatusNoMatch Status = "NO_MATCH"
	// StatusError means the provider call failed or returned a malformed payload.
	StatusError Status = "ERROR"
	// StatusInvalidInput means the criteria carried no filter at all.
	StatusInvalidInput Status = "INVALID_INPUT"
)

// Envelope is the uniform result returned for every search call.
type Envelope struct {
	Status     Status      `json:"status"`
	Message    string      `json:"message"`
	Candidates []Candidate `json:"candidates"`
}
