package events

import (
	"encoding/json"
	"fmt"
)

// Routing keys emitted by donation-api.
const (
	RKDonationCompleted  = "donation.completed"
	RKDonationUnrecorded = "donation.unrecorded"
	RKRegistrationPaid   = "registration.paid"
)

type DonationCompleted struct {
	DonationID  string `json:"donation_id"`
	PaymentID   string `json:"payment_id"`
	Amount      int64  `json:"amount"`
	Designation string `json:"designation,omitempty"`
}

// DonationUnrecorded flags a confirmed payment whose store insert failed;
// someone has to reconcile it against the gateway records by hand.
type DonationUnrecorded struct {
	PaymentID string `json:"payment_id"`
	Email     string `json:"email"`
	Amount    int64  `json:"amount"`
	Reason    string `json:"reason"`
}

type RegistrationPaid struct {
	RegistrationID string  `json:"registration_id"`
	TransactionID  *string `json:"transaction_id"`
	TotalAmount    int64   `json:"total_amount"`
}

func MustUnmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload failed: %w", err)
	}
	return t, nil
}
