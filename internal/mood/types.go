// Package mood turns the four-question quiz into a diagnosis code and
// resolves the seeded store recommendations for it.
package mood

// Answers carries the raw quiz answers. Each field is "1" when the user
// picked the affirmative option; anything else counts as "0".
type Answers struct {
	Mood1 string `json:"mood1"`
	Mood2 string `json:"mood2"`
	Mood3 string `json:"mood3"`
	Mood4 string `json:"mood4"`
}

// RecommendedStore is one seeded store matched by a diagnosis code.
type RecommendedStore struct {
	StoreID  string `json:"store_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	URL      string `json:"url"`
}

// Recommendation is the quiz outcome returned to the caller.
type Recommendation struct {
	Code   string             `json:"code"`
	Stores []RecommendedStore `json:"stores"`
}
