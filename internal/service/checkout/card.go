package checkout

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cute-storefront/internal/domain"
)

// CardInput is the raw card form as submitted. Admission checks here are
// local only; passing them does not guarantee gateway acceptance.
type CardInput struct {
	Number       string
	ExpMonth     string
	ExpYear      string
	CVC          string
	Holder       string
	Installments int
}

var (
	visaPattern        = regexp.MustCompile(`^4\d{12,18}$`)
	mastercardPattern  = regexp.MustCompile(`^5[1-5]\d{14}$`)
	mastercard2Pattern = regexp.MustCompile(`^2(2[2-9][1-9]|2[3-9]\d|[3-6]\d{2}|7[01]\d|720)\d{12}$`)
	cvcPattern         = regexp.MustCompile(`^\d{3,4}$`)
)

// minExpYear is the two-digit floor for the expiry year.
const minExpYear = 24

const minHolderLen = 5

// installmentOptions is the fixed set offered at checkout.
var installmentOptions = map[int]bool{1: true, 3: true, 6: true}

// CardValidationError reports local card form violations per field.
type CardValidationError struct {
	Fields []domain.FieldError
}

func (e *CardValidationError) Error() string {
	return fmt.Sprintf("card validation failed on %d field(s)", len(e.Fields))
}

func validCardNumber(number string) bool {
	return visaPattern.MatchString(number) ||
		mastercardPattern.MatchString(number) ||
		mastercard2Pattern.MatchString(number)
}

func validateCard(card CardInput) []domain.FieldError {
	var fieldErrors []domain.FieldError

	if !validCardNumber(card.Number) {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "number", Error: "Debe ser una tarjeta Visa o MasterCard válida",
		})
	}

	if month, err := strconv.Atoi(card.ExpMonth); err != nil || month < 1 || month > 12 {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "expMonth", Error: "Mes inválido"})
	}

	if year, err := strconv.Atoi(card.ExpYear); err != nil || year < minExpYear {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "expYear", Error: fmt.Sprintf("Año inválido (mínimo %d)", minExpYear),
		})
	}

	if !cvcPattern.MatchString(card.CVC) {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "cvc", Error: "Debe ser de 3 o 4 dígitos"})
	}

	if len(strings.TrimSpace(card.Holder)) < minHolderLen {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "cardHolder", Error: fmt.Sprintf("Debe tener al menos %d caracteres", minHolderLen),
		})
	}

	if !installmentOptions[card.Installments] {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "installments", Error: "Selecciona el número de cuotas"})
	}

	return fieldErrors
}
