package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/domain"
)

type DonationRepo struct{ db *gorm.DB }

func NewDonationRepo(db *gorm.DB) *DonationRepo {
	return &DonationRepo{db: db}
}

func (r *DonationRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Donation{})
}

func (r *DonationRepo) List(ctx context.Context) ([]domain.Donation, error) {
	var out []domain.Donation
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DonationRepo) ByID(ctx context.Context, id string) (*domain.Donation, error) {
	var d domain.Donation
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DonationRepo) Create(ctx context.Context, d *domain.Donation) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DonationRepo) Patch(ctx context.Context, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.Donation{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
