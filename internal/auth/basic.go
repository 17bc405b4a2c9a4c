// Package auth implements the credential side of session establishment:
// parsing the Basic authorization header and matching credentials against
// stored accounts.
package auth

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/fathima-sithara/files-manager/internal/models"
	"github.com/fathima-sithara/files-manager/internal/repository"
	"github.com/fathima-sithara/files-manager/internal/utils"
)

const basicPrefix = "Basic "

// HashPassword returns the hex sha1 digest of password. sha1 is the
// credential contract inherited from the existing user records; it is known
// to be weak and must not be reused for anything but this matching.
func HashPassword(password string) string {
	sum := sha1.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// ParseBasicHeader extracts the email and password from an
// "Authorization: Basic base64(email:password)" header value. Both parts
// are trimmed of surrounding whitespace.
func ParseBasicHeader(header string) (email, password string, err error) {
	if !strings.HasPrefix(header, basicPrefix) {
		return "", "", utils.ErrUnauthorized
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, basicPrefix))
	if err != nil {
		return "", "", utils.ErrUnauthorized
	}
	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return "", "", utils.ErrUnauthorized
	}
	return strings.TrimSpace(email), strings.TrimSpace(password), nil
}

// Verifier matches credentials against the user store.
type Verifier struct {
	users repository.UserRepository
}

func NewVerifier(users repository.UserRepository) *Verifier {
	return &Verifier{users: users}
}

// Verify returns the user matching (email, password), or Unauthorized when
// no account matches. Read-only.
func (v *Verifier) Verify(ctx context.Context, email, password string) (*models.User, error) {
	u, err := v.users.FindByCredentials(ctx, strings.TrimSpace(email), HashPassword(strings.TrimSpace(password)))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, utils.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
