package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fathima-sithara/files-manager/internal/auth"
	"github.com/fathima-sithara/files-manager/internal/models"
	"github.com/fathima-sithara/files-manager/internal/repository"
	"github.com/fathima-sithara/files-manager/internal/utils"
)

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" {
		return nil, utils.ErrMissingEmail
	}
	if password == "" {
		return nil, utils.ErrMissingPassword
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, utils.ErrAlreadyExist
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: auth.HashPassword(password),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique index catches the race the pre-check cannot.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, utils.ErrAlreadyExist
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
