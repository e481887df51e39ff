package domain_transfer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	AmountScale         = 2
	AmountMaxDigits     = 18
	AmountMaxWholeDigit = AmountMaxDigits - AmountScale
	InfoMaxLength       = 255
)

var (
	MinAmount = decimal.RequireFromString("1.00")

	maxAmountExclusive = decimal.New(1, AmountMaxWholeDigit)
)

// ParseAmount reads a decimal amount and applies the common amount rules.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, Reject(FieldAmount, ErrMissingField, "This field is required.")
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, Reject(FieldAmount, ErrInvalidAmount, "A valid number is required.")
	}

	if err := ValidateAmount(d); err != nil {
		return decimal.Zero, err
	}

	return d, nil
}

// ValidateAmount enforces the minimum of 1.00, two fractional digits and
// sixteen whole digits.
func ValidateAmount(d decimal.Decimal) error {
	if d.Exponent() < -AmountScale {
		return Reject(FieldAmount, ErrInvalidAmount,
			fmt.Sprintf("Ensure that there are no more than %d decimal places.", AmountScale))
	}

	if d.LessThan(MinAmount) {
		return Reject(FieldAmount, ErrInvalidAmount,
			fmt.Sprintf("Ensure this value is greater than or equal to %s.", MinAmount.StringFixed(AmountScale)))
	}

	if !d.LessThan(maxAmountExclusive) {
		return Reject(FieldAmount, ErrInvalidAmount,
			fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", AmountMaxWholeDigit))
	}

	return nil
}

func ValidateInfo(info string) error {
	if strings.TrimSpace(info) == "" {
		return Reject(FieldInfo, ErrMissingField, "This field may not be blank.")
	}

	if utf8.RuneCountInString(info) > InfoMaxLength {
		return Reject(FieldInfo, ErrInvalidInfo,
			fmt.Sprintf("Ensure this field has no more than %d characters.", InfoMaxLength))
	}

	return nil
}

// ValidateCommon runs the kind-independent checks on amount and info.
func ValidateCommon(amount decimal.Decimal, info string) error {
	return Merge(ValidateAmount(amount), ValidateInfo(info))
}
