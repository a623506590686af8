package prompt

import (
	"regexp"
	"strings"
)

// Currency-tagged price tokens the generator might emit: "2,999 ₪",
// "2999 ILS", '2999 ש"ח'. The number group is captured for substitution.
var pricedTokenRe = regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d+)?)\s*(₪|ILS|ils|ש"ח|ש״ח|שח|שקלים|שקל)`)

// EnsurePrice guards against the generator misquoting the recommended price.
// If the exact price string appears anywhere in the response it is trusted;
// otherwise the first currency-tagged number gets rewritten to the real
// price. A response with no price token at all passes through unchanged,
// silence is not a hallucination.
func EnsurePrice(response string, price float64) string {
	want := FormatPrice(price)
	if strings.Contains(response, want) {
		return response
	}

	loc := pricedTokenRe.FindStringSubmatchIndex(response)
	if loc == nil {
		return response
	}

	// Replace only the numeric part, keep whatever currency tag was used.
	return response[:loc[2]] + want + response[loc[3]:]
}
