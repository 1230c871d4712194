package service

import (
	"context"
	"testing"

	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/domain"
)

func validInput() SubmitInput {
	return SubmitInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
		Amount:    50,
		PaymentID: "pi_123",
	}
}

func TestValidateSubmission(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SubmitInput)
		field  string
	}{
		{"short first name", func(in *SubmitInput) { in.FirstName = "A" }, "first_name"},
		{"short last name", func(in *SubmitInput) { in.LastName = " L " }, "last_name"},
		{"bad email", func(in *SubmitInput) { in.Email = "not-an-email" }, "email"},
		{"zero amount", func(in *SubmitInput) { in.Amount = 0 }, "amount"},
		{"missing payment reference", func(in *SubmitInput) { in.PaymentID = "" }, "payment_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			errs := ValidateSubmission(in)
			if _, ok := errs[tc.field]; !ok {
				t.Errorf("expected error on %q, got %v", tc.field, errs)
			}
		})
	}

	t.Run("valid input passes", func(t *testing.T) {
		if errs := ValidateSubmission(validInput()); len(errs) != 0 {
			t.Errorf("unexpected errors: %v", errs)
		}
	})
}

func TestCreateIntent_ConvertsToMinorUnits(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewDonationSvc(&fakeDonStore{}, gw, nil)

	if _, err := svc.CreateIntent(context.Background(), 50, ""); err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if gw.lastAmountMinor != 5000 {
		t.Errorf("gateway amount = %d, want 5000", gw.lastAmountMinor)
	}
	if gw.lastDescription != "Tulip Foundation donation" {
		t.Errorf("description = %q, want default", gw.lastDescription)
	}
}

func TestSubmit_RecordsCompletedDonation(t *testing.T) {
	dons := &fakeDonStore{}
	pub := &fakePublisher{}
	svc := NewDonationSvc(dons, &fakeGateway{}, pub)

	d := svc.Submit(context.Background(), validInput())

	if d.Status != domain.DonationCompleted {
		t.Errorf("status = %q, want completed", d.Status)
	}
	if d.PaymentID != "pi_123" {
		t.Errorf("payment id = %q, want the gateway reference", d.PaymentID)
	}
	if d.DonationType != domain.DonationTypeOnline {
		t.Errorf("donation type = %q, want %q", d.DonationType, domain.DonationTypeOnline)
	}
	if len(dons.dons) != 1 {
		t.Fatalf("store has %d rows, want 1", len(dons.dons))
	}
	if len(pub.events) != 1 || pub.events[0].key != "donation.completed" {
		t.Errorf("events = %v, want one donation.completed", pub.events)
	}
}

// A store failure after the charge went through must stay invisible to
// the donor: the confirmation payload comes back anyway and only an
// operator event marks the gap.
func TestSubmit_InsertFailureStillConfirms(t *testing.T) {
	dons := &fakeDonStore{createErr: errStoreDown}
	pub := &fakePublisher{}
	svc := NewDonationSvc(dons, &fakeGateway{}, pub)

	d := svc.Submit(context.Background(), validInput())

	if d == nil {
		t.Fatal("Submit returned nil; donor would see an error for a charged payment")
	}
	if d.FirstName != "Ann" || d.PaymentID != "pi_123" {
		t.Errorf("confirmation payload incomplete: %+v", d)
	}
	if len(dons.dons) != 0 {
		t.Errorf("store has %d rows, want 0", len(dons.dons))
	}
	if len(pub.events) != 1 || pub.events[0].key != "donation.unrecorded" {
		t.Errorf("events = %v, want one donation.unrecorded", pub.events)
	}
}
