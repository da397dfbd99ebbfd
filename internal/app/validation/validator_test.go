package validation

import (
	"francoggm/payment-gateway/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestValidator() *Validator {
	return NewValidator(WithClock(func() time.Time { return fixedNow }))
}

func validRequest() models.PaymentRequest {
	return models.PaymentRequest{
		CardNumber:  "2222405343248877",
		ExpiryMonth: 4,
		ExpiryYear:  2026,
		Currency:    "GBP",
		Amount:      100,
		CVV:         "123",
	}
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	v := newTestValidator()

	require.Empty(t, v.Validate(validRequest()))
	require.NoError(t, v.Check(validRequest()))
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.PaymentRequest)
		field   string
		message string
	}{
		{
			name:    "empty card number",
			mutate:  func(r *models.PaymentRequest) { r.CardNumber = "" },
			field:   "card_number",
			message: "'Card Number' must not be empty.",
		},
		{
			name:    "card number too short",
			mutate:  func(r *models.PaymentRequest) { r.CardNumber = "1234567890123" },
			field:   "card_number",
			message: "'Card Number' must be between 14 and 19 characters. You entered 13 characters.",
		},
		{
			name:    "card number too long",
			mutate:  func(r *models.PaymentRequest) { r.CardNumber = "12345678901234567890" },
			field:   "card_number",
			message: "'Card Number' must be between 14 and 19 characters. You entered 20 characters.",
		},
		{
			name:    "card number with letters",
			mutate:  func(r *models.PaymentRequest) { r.CardNumber = "2222405343248a77" },
			field:   "card_number",
			message: "Card number must only contain numeric characters",
		},
		{
			name:    "missing expiry month",
			mutate:  func(r *models.PaymentRequest) { r.ExpiryMonth = 0 },
			field:   "expiry_month",
			message: "'Expiry Month' must not be empty.",
		},
		{
			name:    "expiry month out of range",
			mutate:  func(r *models.PaymentRequest) { r.ExpiryMonth = 13 },
			field:   "expiry_month",
			message: "'Expiry Month' must be between 1 and 12. You entered 13.",
		},
		{
			name:    "missing expiry year",
			mutate:  func(r *models.PaymentRequest) { r.ExpiryYear = 0 },
			field:   "expiry_year",
			message: "'Expiry Year' must not be empty.",
		},
		{
			name:    "expiry in the past",
			mutate:  func(r *models.PaymentRequest) { r.ExpiryMonth, r.ExpiryYear = 1, 2024 },
			field:   "expiry_year",
			message: "Payment date must be in the future",
		},
		{
			name:    "expiry in the current month",
			mutate:  func(r *models.PaymentRequest) { r.ExpiryMonth, r.ExpiryYear = 6, 2025 },
			field:   "expiry_year",
			message: "Payment date must be in the future",
		},
		{
			name:    "empty currency",
			mutate:  func(r *models.PaymentRequest) { r.Currency = "" },
			field:   "currency",
			message: "'Currency' must not be empty.",
		},
		{
			name:    "unsupported currency",
			mutate:  func(r *models.PaymentRequest) { r.Currency = "USD" },
			field:   "currency",
			message: "Currency must be GBP, EUR or HUF",
		},
		{
			name:    "lowercase currency",
			mutate:  func(r *models.PaymentRequest) { r.Currency = "gbp" },
			field:   "currency",
			message: "Currency must be GBP, EUR or HUF",
		},
		{
			name:    "zero amount",
			mutate:  func(r *models.PaymentRequest) { r.Amount = 0 },
			field:   "amount",
			message: "'Amount' must not be empty.",
		},
		{
			name:    "empty cvv",
			mutate:  func(r *models.PaymentRequest) { r.CVV = "" },
			field:   "cvv",
			message: "'Cvv' must not be empty.",
		},
		{
			name:    "cvv too long",
			mutate:  func(r *models.PaymentRequest) { r.CVV = "12345" },
			field:   "cvv",
			message: "'Cvv' must be between 3 and 4 characters. You entered 5 characters.",
		},
		{
			name:    "cvv with letters",
			mutate:  func(r *models.PaymentRequest) { r.CVV = "12a" },
			field:   "cvv",
			message: "CVV must only contain numeric characters",
		},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			failures := v.Validate(req)
			require.Equal(t, []FieldError{{Field: tt.field, Message: tt.message}}, failures)
		})
	}
}

func TestValidateAcceptsBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.PaymentRequest)
	}{
		{"card number of 14 digits", func(r *models.PaymentRequest) { r.CardNumber = "12345678901234" }},
		{"card number of 19 digits", func(r *models.PaymentRequest) { r.CardNumber = "1234567890123456789" }},
		{"expiry next month", func(r *models.PaymentRequest) { r.ExpiryMonth, r.ExpiryYear = 7, 2025 }},
		{"euro", func(r *models.PaymentRequest) { r.Currency = "EUR" }},
		{"forint", func(r *models.PaymentRequest) { r.Currency = "HUF" }},
		{"negative amount", func(r *models.PaymentRequest) { r.Amount = -50 }},
		{"cvv of 4 digits", func(r *models.PaymentRequest) { r.CVV = "1234" }},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			require.Empty(t, v.Validate(req))
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	v := newTestValidator()

	failures := v.Validate(models.PaymentRequest{})

	fields := make([]string, 0, len(failures))
	for _, f := range failures {
		fields = append(fields, f.Field)
	}
	require.Equal(t, []string{"card_number", "expiry_month", "currency", "amount", "cvv"}, fields)
}

func TestValidateSkipsYearWhenMonthInvalid(t *testing.T) {
	v := newTestValidator()

	req := validRequest()
	req.ExpiryMonth = 13
	req.ExpiryYear = 0

	failures := v.Validate(req)
	require.Len(t, failures, 1)
	require.Equal(t, "expiry_month", failures[0].Field)
}

func TestCheckReturnsError(t *testing.T) {
	v := newTestValidator()

	req := validRequest()
	req.CardNumber = "123"

	err := v.Check(req)
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	require.Equal(t, "card_number", verr.Fields[0].Field)
	require.Contains(t, err.Error(), "card_number")
}
