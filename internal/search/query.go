package search

import (
	"fmt"
	"strings"
)

const (
	lunchToken         = "ランチ"
	priceCeilingCapYen = 5000
	priceCapToken      = "5000円以上"
)

// BuildQuery renders the free-text query sent to the provider. Token order
// is genre, the lunch token, then the price token.
func BuildQuery(c Criteria) string {
	tokens := make([]string, 0, 3)
	if c.Genre != "" {
		tokens = append(tokens, c.Genre)
	}
	tokens = append(tokens, lunchToken)
	if c.PriceCeilingYen > 0 {
		if c.PriceCeilingYen >= priceCeilingCapYen {
			tokens = append(tokens, priceCapToken)
		} else {
			tokens = append(tokens, fmt.Sprintf("~%d円", c.PriceCeilingYen))
		}
	}
	return strings.Join(tokens, " ")
}
