package validation

import (
	"fmt"
	"francoggm/payment-gateway/internal/models"
	"strings"
	"time"
	"unicode/utf8"
)

var supportedCurrencies = map[string]struct{}{
	"GBP": {},
	"EUR": {},
	"HUF": {},
}

// check returns a failure message, or an empty string when the value passes.
type check func(req models.PaymentRequest, now time.Time) string

// fieldRules runs its checks in order and stops at the first failure.
// Dependents only run once every check of the parent passed.
type fieldRules struct {
	field      string
	checks     []check
	dependents []fieldRules
}

type Validator struct {
	now   func() time.Time
	rules []fieldRules
}

type Option func(*Validator)

// WithClock replaces the clock used by the expiry date rule.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		now: time.Now,
		rules: []fieldRules{
			{
				field: "card_number",
				checks: []check{
					notEmptyString("Card Number", func(r models.PaymentRequest) string { return r.CardNumber }),
					lengthBetween("Card Number", 14, 19, func(r models.PaymentRequest) string { return r.CardNumber }),
					digitsOnly("Card number must only contain numeric characters", func(r models.PaymentRequest) string { return r.CardNumber }),
				},
			},
			{
				field: "expiry_month",
				checks: []check{
					notZero("Expiry Month", func(r models.PaymentRequest) int64 { return int64(r.ExpiryMonth) }),
					inclusiveBetween("Expiry Month", 1, 12, func(r models.PaymentRequest) int { return r.ExpiryMonth }),
				},
				dependents: []fieldRules{
					{
						field: "expiry_year",
						checks: []check{
							notZero("Expiry Year", func(r models.PaymentRequest) int64 { return int64(r.ExpiryYear) }),
							expiryInFuture,
						},
					},
				},
			},
			{
				field: "currency",
				checks: []check{
					notEmptyString("Currency", func(r models.PaymentRequest) string { return r.Currency }),
					supportedCurrency,
				},
			},
			{
				field: "amount",
				checks: []check{
					notZero("Amount", func(r models.PaymentRequest) int64 { return r.Amount }),
				},
			},
			{
				field: "cvv",
				checks: []check{
					notEmptyString("Cvv", func(r models.PaymentRequest) string { return r.CVV }),
					lengthBetween("Cvv", 3, 4, func(r models.PaymentRequest) string { return r.CVV }),
					digitsOnly("CVV must only contain numeric characters", func(r models.PaymentRequest) string { return r.CVV }),
				},
			},
		},
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Validate returns every field failure for the request. An empty result means it is valid.
func (v *Validator) Validate(req models.PaymentRequest) []FieldError {
	now := v.now()

	var failures []FieldError
	for _, rules := range v.rules {
		failures = rules.evaluate(req, now, failures)
	}

	return failures
}

// Check is Validate wrapped into an *Error, nil when the request is valid.
func (v *Validator) Check(req models.PaymentRequest) error {
	if failures := v.Validate(req); len(failures) > 0 {
		return &Error{Fields: failures}
	}

	return nil
}

func (f fieldRules) evaluate(req models.PaymentRequest, now time.Time, failures []FieldError) []FieldError {
	for _, c := range f.checks {
		if msg := c(req, now); msg != "" {
			return append(failures, FieldError{Field: f.field, Message: msg})
		}
	}

	for _, dependent := range f.dependents {
		failures = dependent.evaluate(req, now, failures)
	}

	return failures
}

func notEmptyString(name string, value func(models.PaymentRequest) string) check {
	return func(req models.PaymentRequest, _ time.Time) string {
		if strings.TrimSpace(value(req)) == "" {
			return fmt.Sprintf("'%s' must not be empty.", name)
		}
		return ""
	}
}

func notZero(name string, value func(models.PaymentRequest) int64) check {
	return func(req models.PaymentRequest, _ time.Time) string {
		if value(req) == 0 {
			return fmt.Sprintf("'%s' must not be empty.", name)
		}
		return ""
	}
}

func lengthBetween(name string, lo, hi int, value func(models.PaymentRequest) string) check {
	return func(req models.PaymentRequest, _ time.Time) string {
		n := utf8.RuneCountInString(value(req))
		if n < lo || n > hi {
			return fmt.Sprintf("'%s' must be between %d and %d characters. You entered %d characters.", name, lo, hi, n)
		}
		return ""
	}
}

func inclusiveBetween(name string, from, to int, value func(models.PaymentRequest) int) check {
	return func(req models.PaymentRequest, _ time.Time) string {
		if v := value(req); v < from || v > to {
			return fmt.Sprintf("'%s' must be between %d and %d. You entered %d.", name, from, to, v)
		}
		return ""
	}
}

func digitsOnly(msg string, value func(models.PaymentRequest) string) check {
	return func(req models.PaymentRequest, _ time.Time) string {
		if !IsDigits(value(req)) {
			return msg
		}
		return ""
	}
}

// expiryInFuture compares the first day of the expiry month with now, so a
// card expiring in the current month is already rejected.
func expiryInFuture(req models.PaymentRequest, now time.Time) string {
	expiry := time.Date(req.ExpiryYear, time.Month(req.ExpiryMonth), 1, 0, 0, 0, 0, now.Location())
	if !expiry.After(now) {
		return "Payment date must be in the future"
	}
	return ""
}

func supportedCurrency(req models.PaymentRequest, _ time.Time) string {
	if _, ok := supportedCurrencies[req.Currency]; !ok {
		return "Currency must be GBP, EUR or HUF"
	}
	return ""
}

// IsDigits reports whether s is made only of ASCII digits.
func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
