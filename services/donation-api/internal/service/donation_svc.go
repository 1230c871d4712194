package service

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/domain"
	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/payments"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type DonationSvc struct {
	repo DonationStore
	gw   payments.Gateway
	pub  EventPublisher
}

func NewDonationSvc(repo DonationStore, gw payments.Gateway, pub EventPublisher) *DonationSvc {
	return &DonationSvc{repo: repo, gw: gw, pub: pub}
}

type SubmitInput struct {
	FirstName   string
	LastName    string
	Email       string
	Amount      int64
	Designation string
	IsAnonymous bool
	PaymentID   string
}

// ValidateSubmission returns per-field errors; an empty map means the
// input is good to persist.
func ValidateSubmission(in SubmitInput) map[string]string {
	errs := map[string]string{}
	if len(strings.TrimSpace(in.FirstName)) < 2 {
		errs["first_name"] = "first name must be at least 2 characters"
	}
	if len(strings.TrimSpace(in.LastName)) < 2 {
		errs["last_name"] = "last name must be at least 2 characters"
	}
	if !emailRe.MatchString(in.Email) {
		errs["email"] = "invalid email address"
	}
	if in.Amount < 1 {
		errs["amount"] = "amount must be at least 1"
	}
	if in.PaymentID == "" {
		errs["payment_id"] = "missing payment reference"
	}
	return errs
}

// CreateIntent asks the gateway for a client-confirmable intent. Amounts
// arrive in whole currency units and go out in minor units.
func (s *DonationSvc) CreateIntent(ctx context.Context, amount int64, description string) (*payments.Intent, error) {
	if description == "" {
		description = "Tulip Foundation donation"
	}
	return s.gw.CreateIntent(ctx, amount*100, description)
}

// Submit records a donation whose payment was already confirmed by the
// browser widget. The payment happened: if the store insert fails we log
// it and return the record as if it were saved, so the donor still sees
// the confirmation. The unrecorded event gives operators a trail for
// closing the reconciliation gap by hand.
func (s *DonationSvc) Submit(ctx context.Context, in SubmitInput) *domain.Donation {
	d := &domain.Donation{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        strings.TrimSpace(in.Email),
		Amount:       in.Amount,
		Designation:  in.Designation,
		IsAnonymous:  in.IsAnonymous,
		PaymentID:    in.PaymentID,
		DonationType: domain.DonationTypeOnline,
		Status:       domain.DonationCompleted,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		log.Printf("[donation] insert failed after confirmed payment %s: %v", in.PaymentID, err)
		s.publish(ctx, "donation.unrecorded", map[string]any{
			"payment_id": in.PaymentID,
			"email":      d.Email,
			"amount":     d.Amount,
			"reason":     err.Error(),
		})
		return d
	}

	s.publish(ctx, "donation.completed", map[string]any{
		"donation_id": d.ID,
		"payment_id":  d.PaymentID,
		"amount":      d.Amount,
		"designation": d.Designation,
	})
	return d
}

func (s *DonationSvc) publish(ctx context.Context, key string, v any) {
	if s.pub == nil {
		return
	}
	if err := s.pub.PublishJSON(ctx, key, v); err != nil {
		log.Printf("[donation] publish %s: %v", key, err)
	}
}
