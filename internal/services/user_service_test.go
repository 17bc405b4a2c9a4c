package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fathima-sithara/files-manager/internal/auth"
	"github.com/fathima-sithara/files-manager/internal/models"
	"github.com/fathima-sithara/files-manager/internal/repository"
	"github.com/fathima-sithara/files-manager/internal/utils"
)

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, u)
	return nil
}

func TestRegister(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, "bob@dylan.com", "toto1234!")
	require.NoError(t, err)

	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "bob@dylan.com", user.Email)
	assert.Equal(t, auth.HashPassword("toto1234!"), user.PasswordHash)
}

func TestRegisterTrimsInput(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), " bob@dylan.com ", " toto1234! ")
	require.NoError(t, err)
	assert.Equal(t, "bob@dylan.com", user.Email)
	assert.Equal(t, auth.HashPassword("toto1234!"), user.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "secret")
	require.ErrorIs(t, err, utils.ErrMissingEmail)

	_, err = svc.Register(ctx, "  ", "secret")
	require.ErrorIs(t, err, utils.ErrMissingEmail)

	_, err = svc.Register(ctx, "bob@dylan.com", "")
	require.ErrorIs(t, err, utils.ErrMissingPassword)
}

func TestRegisterDuplicate(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "bob@dylan.com", "toto1234!")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "bob@dylan.com", "other")
	require.ErrorIs(t, err, utils.ErrAlreadyExist)
}

// racyUserRepo misses on the pre-check but trips the unique index on
// insert, modeling two concurrent registrations of the same email.
type racyUserRepo struct {
	repository.UserRepository
}

func (r *racyUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r *racyUserRepo) Create(ctx context.Context, u *models.User) error {
	return repository.ErrDuplicateEmail
}

func TestRegisterDuplicateRace(t *testing.T) {
	svc := NewUserService(&racyUserRepo{})

	_, err := svc.Register(context.Background(), "bob@dylan.com", "toto1234!")
	require.ErrorIs(t, err, utils.ErrAlreadyExist)
}
