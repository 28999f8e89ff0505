package search

const noMatchMessage = "検索条件に合う店舗が見つかりませんでした。"

// Classify folds the formatting outcome into one of OK, NO_MATCH, or ERROR.
// The three states are mutually exclusive and exhaustive.
func Classify(candidates []Candidate, isSuccess bool, providerErrorMessage string) (Status, string) {
	if !isSuccess {
		return StatusError, providerErrorMessage
	}
	if len(candidates) == 0 {
		return StatusNoMatch, noMatchMessage
	}
	return StatusOK, ""
}
