package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fieldNames(card CardInput) []string {
	fieldErrors := validateCard(card)
	names := make([]string, len(fieldErrors))
	for i, fe := range fieldErrors {
		names[i] = fe.Field
	}
	return names
}

func TestValidateCard_AcceptsVisaAndMastercard(t *testing.T) {
	numbers := []string{
		"4111111111111111",    // Visa, 16 digits
		"4222222222222",       // Visa, 13 digits
		"5105105105105100",    // MasterCard 5-series
		"2221000000000009",    // MasterCard 2-series lower bound
		"2720990000000007",    // MasterCard 2-series upper bound
	}
	for _, number := range numbers {
		card := validCard()
		card.Number = number
		assert.Empty(t, validateCard(card), "number %s should be accepted", number)
	}
}

func TestValidateCard_RejectsUnknownNetworks(t *testing.T) {
	numbers := []string{
		"378282246310005",  // Amex
		"6011111111111117", // Discover
		"1234567890123456",
		"",
	}
	for _, number := range numbers {
		card := validCard()
		card.Number = number
		assert.Contains(t, fieldNames(card), "number", "number %q should be rejected", number)
	}
}

func TestValidateCard_ExpiryBounds(t *testing.T) {
	tests := []struct {
		name  string
		month string
		year  string
		field string
	}{
		{"month zero", "0", "28", "expMonth"},
		{"month thirteen", "13", "28", "expMonth"},
		{"month not numeric", "ab", "28", "expMonth"},
		{"year below minimum", "12", "23", "expYear"},
		{"year not numeric", "12", "xx", "expYear"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			card.ExpMonth = tt.month
			card.ExpYear = tt.year
			assert.Contains(t, fieldNames(card), tt.field)
		})
	}
}

func TestValidateCard_CVCAndHolder(t *testing.T) {
	card := validCard()
	card.CVC = "12"
	assert.Contains(t, fieldNames(card), "cvc")

	card = validCard()
	card.CVC = "12345"
	assert.Contains(t, fieldNames(card), "cvc")

	card = validCard()
	card.Holder = "Ana"
	assert.Contains(t, fieldNames(card), "cardHolder")

	card = validCard()
	card.Holder = "    a    "
	assert.Contains(t, fieldNames(card), "cardHolder")
}

func TestValidateCard_InstallmentsEnumerated(t *testing.T) {
	for _, ok := range []int{1, 3, 6} {
		card := validCard()
		card.Installments = ok
		assert.Empty(t, validateCard(card), "installments %d should be accepted", ok)
	}
	for _, bad := range []int{0, 2, 12, -1} {
		card := validCard()
		card.Installments = bad
		assert.Contains(t, fieldNames(card), "installments", "installments %d should be rejected", bad)
	}
}

func TestValidateCard_CollectsAllViolations(t *testing.T) {
	fieldErrors := validateCard(CardInput{})
	assert.Len(t, fieldErrors, 6)
}
