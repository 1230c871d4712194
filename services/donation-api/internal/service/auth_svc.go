package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hyperlinqai/tulip-foundation/pkg/auth"
	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/domain"
	"github.com/hyperlinqai/tulip-foundation/services/donation-api/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthSvc struct {
	repo     AdminUserStore
	tokenTTL time.Duration
}

func NewAuthSvc(repo AdminUserStore, tokenTTL time.Duration) *AuthSvc {
	return &AuthSvc{repo: repo, tokenTTL: tokenTTL}
}

func (s *AuthSvc) Login(ctx context.Context, email, password string) (*domain.AdminUser, string, error) {
	u, err := s.repo.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	access, err := auth.CreateAccessToken(u.ID, u.Role, u.Email, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, access, nil
}

// EnsureAdmin seeds the dashboard account on first boot; an existing
// account is left alone.
func (s *AuthSvc) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if _, err := s.repo.ByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.Create(ctx, &domain.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         auth.RoleAdmin,
	})
}
