package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/domain"
)

var ErrNotFound = errors.New("record_not_found")

type RegistrationRepo struct{ db *gorm.DB }

func NewRegistrationRepo(db *gorm.DB) *RegistrationRepo {
	return &RegistrationRepo{db: db}
}

func (r *RegistrationRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Registration{})
}

// List returns every registration, newest first.
func (r *RegistrationRepo) List(ctx context.Context) ([]domain.Registration, error) {
	var out []domain.Registration
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RegistrationRepo) ByID(ctx context.Context, id string) (*domain.Registration, error) {
	var reg domain.Registration
	if err := r.db.WithContext(ctx).First(&reg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// Patch applies a partial update to a single row. Last write wins: two
// admin sessions racing on the same record get no version check.
func (r *RegistrationRepo) Patch(ctx context.Context, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.Registration{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
