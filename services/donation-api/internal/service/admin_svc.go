package service

import (
	"context"
	"errors"
	"log"
	"math/rand"

	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/domain"
)

var ErrBadStatus = errors.New("unknown status")

const txAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewTransactionID synthesizes a reference for manually reconciled
// payments: "tx_" plus nine base-36 characters.
func NewTransactionID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = txAlphabet[rand.Intn(len(txAlphabet))]
	}
	return "tx_" + string(b)
}

type AdminSvc struct {
	regs RegistrationStore
	dons DonationStore
	pub  EventPublisher
}

func NewAdminSvc(regs RegistrationStore, dons DonationStore, pub EventPublisher) *AdminSvc {
	return &AdminSvc{regs: regs, dons: dons, pub: pub}
}

// Registrations loads everything newest-first and applies the dashboard
// filter in memory, same as the export path does.
func (s *AdminSvc) Registrations(ctx context.Context, query, status string) ([]domain.Registration, error) {
	all, err := s.regs.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterRegistrations(all, query, status), nil
}

func (s *AdminSvc) Donations(ctx context.Context, query, status string) ([]domain.Donation, error) {
	all, err := s.dons.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterDonations(all, query, status), nil
}

// Stats recomputes every aggregate from a fresh load of both lists.
func (s *AdminSvc) Stats(ctx context.Context) (DashboardStats, error) {
	regs, err := s.regs.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	dons, err := s.dons.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	return ComputeStats(regs, dons), nil
}

// UpdatePaymentStatus corrects a registration by hand. Moving to paid
// mints a fresh transaction id; moving back to pending clears it, keeping
// transaction_id non-null only while the row is paid.
func (s *AdminSvc) UpdatePaymentStatus(ctx context.Context, id, status string) (*domain.Registration, error) {
	if status != domain.PaymentPaid && status != domain.PaymentPending {
		return nil, ErrBadStatus
	}

	fields := map[string]any{"payment_status": status}
	if status == domain.PaymentPaid {
		fields["transaction_id"] = NewTransactionID()
	} else {
		fields["transaction_id"] = nil
	}

	if err := s.regs.Patch(ctx, id, fields); err != nil {
		return nil, err
	}
	reg, err := s.regs.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if status == domain.PaymentPaid {
		s.publish(ctx, "registration.paid", map[string]any{
			"registration_id": reg.ID,
			"transaction_id":  reg.TransactionID,
			"total_amount":    reg.TotalAmount,
		})
	}
	return reg, nil
}

// UpdateDonationStatus also accepts the completed->pending demotion; the
// dashboard uses it to pull a record back for manual correction.
func (s *AdminSvc) UpdateDonationStatus(ctx context.Context, id, status string) (*domain.Donation, error) {
	if status != domain.DonationCompleted && status != domain.DonationPending {
		return nil, ErrBadStatus
	}
	if err := s.dons.Patch(ctx, id, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	return s.dons.ByID(ctx, id)
}

// SendCertificate flips the bookkeeping flag. No mail goes out here; the
// flag only records that a certificate was handled.
func (s *AdminSvc) SendCertificate(ctx context.Context, id string) (*domain.Donation, error) {
	if err := s.dons.Patch(ctx, id, map[string]any{"certificate_sent": true}); err != nil {
		return nil, err
	}
	return s.dons.ByID(ctx, id)
}

func (s *AdminSvc) publish(ctx context.Context, key string, v any) {
	if s.pub == nil {
		return
	}
	if err := s.pub.PublishJSON(ctx, key, v); err != nil {
		log.Printf("[admin] publish %s: %v", key, err)
	}
}
