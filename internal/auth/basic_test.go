package auth

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fathima-sithara/files-manager/internal/models"
	"github.com/fathima-sithara/files-manager/internal/repository"
	"github.com/fathima-sithara/files-manager/internal/utils"
)

func TestHashPassword(t *testing.T) {
	// fixed sha1 hex digest, the credential matching contract
	assert.Equal(t, "5baa61e4c9b404d29e59f178b46c95cc43a2b824", HashPassword("password"))
	assert.NotEqual(t, HashPassword("a"), HashPassword("b"))
}

func TestParseBasicHeader(t *testing.T) {
	basic := func(creds string) string {
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
	}

	tests := []struct {
		name      string
		header    string
		wantEmail string
		wantPass  string
		wantErr   bool
	}{
		{name: "valid", header: basic("bob@dylan.com:toto1234!"), wantEmail: "bob@dylan.com", wantPass: "toto1234!"},
		{name: "trims whitespace", header: basic(" bob@dylan.com : secret "), wantEmail: "bob@dylan.com", wantPass: "secret"},
		{name: "password may contain colon", header: basic("a@b.c:p:q"), wantEmail: "a@b.c", wantPass: "p:q"},
		{name: "empty header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Bearer abc", wantErr: true},
		{name: "invalid base64", header: "Basic !!!", wantErr: true},
		{name: "no separator", header: basic("bobdylan.com"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, pass, err := ParseBasicHeader(tt.header)
			if tt.wantErr {
				require.ErrorIs(t, err, utils.ErrUnauthorized)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, email)
			assert.Equal(t, tt.wantPass, pass)
		})
	}
}

type fakeUserRepo struct {
	repository.UserRepository
	user *models.User // matched when email+hash line up
}

func (f *fakeUserRepo) FindByCredentials(ctx context.Context, email, passwordHash string) (*models.User, error) {
	if f.user != nil && f.user.Email == email && f.user.PasswordHash == passwordHash {
		return f.user, nil
	}
	return nil, repository.ErrUserNotFound
}

func TestVerifier(t *testing.T) {
	stored := &models.User{
		ID:           primitive.NewObjectID(),
		Email:        "bob@dylan.com",
		PasswordHash: HashPassword("toto1234!"),
	}
	v := NewVerifier(&fakeUserRepo{user: stored})

	t.Run("valid credentials", func(t *testing.T) {
		u, err := v.Verify(context.Background(), "bob@dylan.com", "toto1234!")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, u.ID)
	})

	t.Run("trims before matching", func(t *testing.T) {
		u, err := v.Verify(context.Background(), " bob@dylan.com ", " toto1234! ")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "bob@dylan.com", "nope")
		require.ErrorIs(t, err, utils.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "joe@dylan.com", "toto1234!")
		require.ErrorIs(t, err, utils.ErrUnauthorized)
	})
}
