package service

import (
	"context"
	"errors"

	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/domain"
	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/payments"
	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/repository"
)

type fakeRegStore struct {
	regs     []domain.Registration
	listErr  error
	patchErr error
}

func (f *fakeRegStore) List(ctx context.Context) ([]domain.Registration, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Registration, len(f.regs))
	copy(out, f.regs)
	return out, nil
}

func (f *fakeRegStore) ByID(ctx context.Context, id string) (*domain.Registration, error) {
	for i := range f.regs {
		if f.regs[i].ID == id {
			r := f.regs[i]
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRegStore) Patch(ctx context.Context, id string, fields map[string]any) error {
	if f.patchErr != nil {
		return f.patchErr
	}
	for i := range f.regs {
		if f.regs[i].ID != id {
			continue
		}
		if v, ok := fields["payment_status"]; ok {
			f.regs[i].PaymentStatus = v.(string)
		}
		if v, ok := fields["transaction_id"]; ok {
			if v == nil {
				f.regs[i].TransactionID = nil
			} else {
				tx := v.(string)
				f.regs[i].TransactionID = &tx
			}
		}
		return nil
	}
	return repository.ErrNotFound
}

type fakeDonStore struct {
	dons      []domain.Donation
	listErr   error
	createErr error
	patchErr  error
}

func (f *fakeDonStore) List(ctx context.Context) ([]domain.Donation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Donation, len(f.dons))
	copy(out, f.dons)
	return out, nil
}

func (f *fakeDonStore) ByID(ctx context.Context, id string) (*domain.Donation, error) {
	for i := range f.dons {
		if f.dons[i].ID == id {
			d := f.dons[i]
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDonStore) Create(ctx context.Context, d *domain.Donation) error {
	if f.createErr != nil {
		return f.createErr
	}
	if d.ID == "" {
		d.ID = "don-" + d.PaymentID
	}
	f.dons = append(f.dons, *d)
	return nil
}

func (f *fakeDonStore) Patch(ctx context.Context, id string, fields map[string]any) error {
	if f.patchErr != nil {
		return f.patchErr
	}
	for i := range f.dons {
		if f.dons[i].ID != id {
			continue
		}
		if v, ok := fields["status"]; ok {
			f.dons[i].Status = v.(string)
		}
		if v, ok := fields["certificate_sent"]; ok {
			f.dons[i].CertificateSent = v.(bool)
		}
		return nil
	}
	return repository.ErrNotFound
}

type publishedEvent struct {
	key     string
	payload any
}

type fakePublisher struct {
	events []publishedEvent
}

func (f *fakePublisher) PublishJSON(ctx context.Context, key string, v any) error {
	f.events = append(f.events, publishedEvent{key: key, payload: v})
	return nil
}

type fakeGateway struct {
	lastAmountMinor int64
	lastDescription string
	err             error
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amountMinor int64, description string) (*payments.Intent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastAmountMinor = amountMinor
	f.lastDescription = description
	return &payments.Intent{ID: "pi_test", ClientSecret: "pi_test_secret", Status: "requires_payment_method"}, nil
}

var errStoreDown = errors.New("store unavailable")
