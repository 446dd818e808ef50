package user

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"

	appErrors "Bolso/internal/errors"
	"Bolso/internal/pkg"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, user *User) error {
	user.Id = pkg.GenerateULIDObject()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), 12)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	return s.Repository.Create(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*User, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.Repository.GetByEmail(ctx, email)
}

func (s *Service) UpdateName(ctx context.Context, id ulid.ULID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}

	entity, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	entity.Name = name
	entity.UpdatedAt = time.Now()
	return s.Repository.Update(ctx, entity)
}

func (s *Service) UpdatePassword(ctx context.Context, id ulid.ULID, currentPassword, newPassword string) error {
	entity, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entity.Password), []byte(currentPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return err
	}

	entity.Password = string(hashed)
	entity.UpdatedAt = time.Now()
	return s.Repository.Update(ctx, entity)
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}
