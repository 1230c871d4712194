package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/domain"
)

type AdminUserRepo struct{ db *gorm.DB }

func NewAdminUserRepo(db *gorm.DB) *AdminUserRepo {
	return &AdminUserRepo{db: db}
}

func (r *AdminUserRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.AdminUser{})
}

func (r *AdminUserRepo) Create(ctx context.Context, u *domain.AdminUser) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *AdminUserRepo) ByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
