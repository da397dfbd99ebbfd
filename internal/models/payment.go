package models

import "time"

type PaymentStatus string

const (
	StatusAuthorized PaymentStatus = "Authorized"
	StatusDeclined   PaymentStatus = "Declined"
	StatusRejected   PaymentStatus = "Rejected"
)

// PaymentRequest is the merchant input. It is never stored as is.
type PaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	CVV         string `json:"cvv"`
}

// Payment is the persisted record. It only keeps the last four digits of the card.
type Payment struct {
	ID                 string        `json:"id"`
	Status             PaymentStatus `json:"status"`
	CardNumberLastFour string        `json:"cardNumberLastFour"`
	ExpiryMonth        int           `json:"expiryMonth"`
	ExpiryYear         int           `json:"expiryYear"`
	Currency           string        `json:"currency"`
	Amount             int64         `json:"amount"`
}

type PaymentResponse struct {
	ID                 string        `json:"id"`
	Status             PaymentStatus `json:"status"`
	CardNumberLastFour string        `json:"cardNumberLastFour"`
	ExpiryMonth        int           `json:"expiryMonth"`
	ExpiryYear         int           `json:"expiryYear"`
	Currency           string        `json:"currency"`
	Amount             int64         `json:"amount"`
}

type PaymentEvent struct {
	PaymentResponse
	ProcessedAt time.Time `json:"processedAt"`
}

func (p Payment) Response() PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		Status:             p.Status,
		CardNumberLastFour: p.CardNumberLastFour,
		ExpiryMonth:        p.ExpiryMonth,
		ExpiryYear:         p.ExpiryYear,
		Currency:           p.Currency,
		Amount:             p.Amount,
	}
}
