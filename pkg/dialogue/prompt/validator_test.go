package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsurePriceCorrectQuoteUntouched(t *testing.T) {
	resp := "המחשב עולה 2999 ₪ והוא מצוין"
	assert.Equal(t, resp, EnsurePrice(resp, 2999))
}

func TestEnsurePriceRewritesWrongQuote(t *testing.T) {
	resp := "המחשב עולה רק 2500 ₪ והוא מצוין"
	fixed := EnsurePrice(resp, 2999)
	assert.Equal(t, "המחשב עולה רק 2999 ₪ והוא מצוין", fixed)
}

func TestEnsurePriceRewritesCommaSeparated(t *testing.T) {
	resp := `המחיר הוא 3,500 ש"ח בלבד`
	fixed := EnsurePrice(resp, 2999)
	assert.Equal(t, `המחיר הוא 2999 ש"ח בלבד`, fixed)
}

func TestEnsurePriceOnlyFirstTokenRewritten(t *testing.T) {
	resp := "המחשב עולה 2500 ₪ והעכבר עוד 150 ₪"
	fixed := EnsurePrice(resp, 2999)
	assert.Equal(t, "המחשב עולה 2999 ₪ והעכבר עוד 150 ₪", fixed)
}

func TestEnsurePriceNoTokenPassesThrough(t *testing.T) {
	resp := "זה מחשב מצוין לסטודנטים"
	assert.Equal(t, resp, EnsurePrice(resp, 2999))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "2999", FormatPrice(2999))
	assert.Equal(t, "2999.5", FormatPrice(2999.5))
}
