package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fathima-sithara/files-manager/internal/auth"
	"github.com/fathima-sithara/files-manager/internal/models"
	"github.com/fathima-sithara/files-manager/internal/repository"
	"github.com/fathima-sithara/files-manager/internal/sessions"
	"github.com/fathima-sithara/files-manager/internal/utils"
)

type authService struct {
	verifier *auth.Verifier
	sessions *sessions.Store
	users    repository.UserRepository
}

func NewAuthService(verifier *auth.Verifier, store *sessions.Store, users repository.UserRepository) AuthService {
	return &authService{verifier: verifier, sessions: store, users: users}
}

func (s *authService) Connect(ctx context.Context, authHeader string) (string, error) {
	if authHeader == "" {
		return "", utils.ErrUnauthorized
	}
	email, password, err := auth.ParseBasicHeader(authHeader)
	if err != nil {
		return "", err
	}
	user, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		return "", err
	}
	token, err := s.sessions.Create(ctx, user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

func (s *authService) Disconnect(ctx context.Context, token string) error {
	err := s.sessions.Destroy(ctx, token)
	if errors.Is(err, sessions.ErrNoSession) {
		return utils.ErrUnauthorized
	}
	return err
}

func (s *authService) Identify(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.sessions.UserID(ctx, token)
	if errors.Is(err, sessions.ErrNoSession) {
		return nil, utils.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, utils.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
