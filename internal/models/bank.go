package models

// AuthorizationRequest is what the gateway sends to the acquiring bank.
type AuthorizationRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

// AuthorizationResult is either Unreferenced or Referenced.
type AuthorizationResult interface {
	authorizationResult()
}

// Unreferenced means the bank produced no authorization code.
type Unreferenced struct{}

// Referenced carries the bank's authorization code and its outcome.
type Referenced struct {
	Code       string
	Authorized bool
}

func (Unreferenced) authorizationResult() {}
func (Referenced) authorizationResult()   {}
