package payment

import "francoggm/payment-gateway/internal/models"

// Decide maps a bank result to a payment status. Without an authorization
// code the payment is rejected whatever the bank said about authorization.
func Decide(result models.AuthorizationResult) models.PaymentStatus {
	ref, ok := result.(models.Referenced)
	if !ok {
		return models.StatusRejected
	}

	if ref.Authorized {
		return models.StatusAuthorized
	}

	return models.StatusDeclined
}
