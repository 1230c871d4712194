package service

import (
	"context"

	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/domain"
)

// Store interfaces mirror what the record store offers: ordered read,
// insert, and single-row partial patch. The gorm repositories satisfy
// them; tests swap in in-memory fakes.

type RegistrationStore interface {
	List(ctx context.Context) ([]domain.Registration, error)
	ByID(ctx context.Context, id string) (*domain.Registration, error)
	Patch(ctx context.Context, id string, fields map[string]any) error
}

type DonationStore interface {
	List(ctx context.Context) ([]domain.Donation, error)
	ByID(ctx context.Context, id string) (*domain.Donation, error)
	Create(ctx context.Context, d *domain.Donation) error
	Patch(ctx context.Context, id string, fields map[string]any) error
}

type AdminUserStore interface {
	Create(ctx context.Context, u *domain.AdminUser) error
	ByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}

// EventPublisher is satisfied by mq.Publisher. A nil publisher is fine;
// services skip the publish.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}
