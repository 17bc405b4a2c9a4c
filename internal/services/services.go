package services

import (
	"context"

	"github.com/fathima-sithara/files-manager/internal/models"
)

// AuthService owns the session-token lifecycle.
type AuthService interface {
	// Connect validates a Basic authorization header and issues a token.
	Connect(ctx context.Context, authHeader string) (string, error)
	// Disconnect revokes a token.
	Disconnect(ctx context.Context, token string) error
	// Identify resolves a token to its user. The user record must still
	// exist; a dangling session is Unauthorized.
	Identify(ctx context.Context, token string) (*models.User, error)
}

// UserService owns account registration.
type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
}

// UploadRequest is the client payload of POST /files. Data carries the
// file bytes base64-encoded and is empty for folders.
type UploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

// FileService owns file metadata, payload persistence, and read access
// control. Every read applies the owner-or-public rule; a file the
// requester may not see is reported as not found.
type FileService interface {
	Upload(ctx context.Context, requesterID string, req UploadRequest) (*models.File, error)
	Show(ctx context.Context, requesterID, fileID string) (*models.File, error)
	List(ctx context.Context, parentID string, page, limit int64) ([]*models.File, error)
	// SetVisibility toggles isPublic; owner only.
	SetVisibility(ctx context.Context, requesterID, fileID string, public bool) (*models.File, error)
	// Content returns the stored bytes, or the size-variant derivative
	// when size is one of the generated widths. requesterID may be empty
	// for anonymous access to public files.
	Content(ctx context.Context, requesterID, fileID string, size int) ([]byte, *models.File, error)
}

// AppService reports backend liveness and aggregate counts.
type AppService interface {
	Status(ctx context.Context) (db, cache bool)
	Stats(ctx context.Context) (users, files int64, err error)
}
