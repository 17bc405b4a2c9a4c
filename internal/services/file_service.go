package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fathima-sithara/files-manager/internal/models"
	"github.com/fathima-sithara/files-manager/internal/queue"
	"github.com/fathima-sithara/files-manager/internal/repository"
	"github.com/fathima-sithara/files-manager/internal/storage"
	"github.com/fathima-sithara/files-manager/internal/utils"
)

const (
	defaultPageLimit = 20
)

// PayloadStore is the slice of the payload store the upload and read paths
// need.
type PayloadStore interface {
	Save(data []byte) (string, error)
	Read(path string) ([]byte, error)
}

type fileService struct {
	files repository.FileRepository
	store PayloadStore
	jobs  queue.Producer
}

func NewFileService(files repository.FileRepository, store PayloadStore, jobs queue.Producer) FileService {
	return &fileService{files: files, store: store, jobs: jobs}
}

func (s *fileService) Upload(ctx context.Context, requesterID string, req UploadRequest) (*models.File, error) {
	if req.Name == "" {
		return nil, utils.ErrMissingName
	}
	if !models.ValidType(req.Type) {
		return nil, utils.ErrMissingType
	}
	if req.Data == "" && req.Type != models.TypeFolder {
		return nil, utils.ErrMissingData
	}
	if !models.IsRootParent(req.ParentID) {
		parent, err := s.files.FindByID(ctx, req.ParentID)
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, utils.ErrParentNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("lookup parent: %w", err)
		}
		if parent.Type != models.TypeFolder {
			return nil, utils.ErrParentNotFolder
		}
	}

	ownerID, err := primitive.ObjectIDFromHex(requesterID)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}
	file := &models.File{
		UserID:   ownerID,
		Name:     req.Name,
		Type:     req.Type,
		IsPublic: req.IsPublic,
		ParentID: models.RootParent,
	}
	if !models.IsRootParent(req.ParentID) {
		file.ParentID = req.ParentID
	}

	if req.Type == models.TypeFolder {
		if err := s.files.Create(ctx, file); err != nil {
			return nil, fmt.Errorf("create folder: %w", err)
		}
		return file, nil
	}

	payload, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, utils.ErrMissingData
	}
	path, err := s.store.Save(payload)
	if err != nil {
		return nil, fmt.Errorf("store payload: %w", err)
	}
	file.LocalPath = path
	if err := s.files.Create(ctx, file); err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	// The record is durable at this point, so the worker can resolve the
	// job by id whenever it dequeues it.
	if req.Type == models.TypeImage {
		job := queue.ThumbnailJob{UserID: requesterID, FileID: file.ID.Hex()}
		if err := s.jobs.Enqueue(ctx, job); err != nil {
			return nil, fmt.Errorf("enqueue thumbnail job: %w", err)
		}
	}
	return file, nil
}

func (s *fileService) Show(ctx context.Context, requesterID, fileID string) (*models.File, error) {
	file, err := s.readable(ctx, requesterID, fileID)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (s *fileService) List(ctx context.Context, parentID string, page, limit int64) ([]*models.File, error) {
	if models.IsRootParent(parentID) {
		parentID = models.RootParent
	} else {
		// An unknown parent yields an empty page, not an error.
		if _, err := s.files.FindByID(ctx, parentID); err != nil {
			if errors.Is(err, repository.ErrFileNotFound) {
				return []*models.File{}, nil
			}
			return nil, fmt.Errorf("lookup parent: %w", err)
		}
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	files, err := s.files.FindChildren(ctx, parentID, PageSkip(page, limit), limit)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	return files, nil
}

func (s *fileService) SetVisibility(ctx context.Context, requesterID, fileID string, public bool) (*models.File, error) {
	file, err := s.files.FindByID(ctx, fileID)
	if errors.Is(err, repository.ErrFileNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup file: %w", err)
	}
	if file.UserID.Hex() != requesterID {
		return nil, utils.ErrNotFound
	}
	if err := s.files.SetPublic(ctx, fileID, public); err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("update file: %w", err)
	}
	file.IsPublic = public
	return file, nil
}

func (s *fileService) Content(ctx context.Context, requesterID, fileID string, size int) ([]byte, *models.File, error) {
	file, err := s.readable(ctx, requesterID, fileID)
	if err != nil {
		return nil, nil, err
	}
	if file.Type == models.TypeFolder {
		return nil, nil, utils.ErrFolderNoContent
	}

	path := file.LocalPath
	if size == 500 || size == 250 || size == 100 {
		path = storage.DerivativePath(file.LocalPath, size)
	}
	data, err := s.store.Read(path)
	if err != nil {
		// Missing derivative (not generated yet, or never will be) is
		// indistinguishable from a missing file.
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, utils.ErrNotFound
		}
		return nil, nil, fmt.Errorf("read content: %w", err)
	}
	return data, file, nil
}

// readable fetches a file and applies the owner-or-public read rule. A file
// the requester may not see is reported exactly like an absent one.
func (s *fileService) readable(ctx context.Context, requesterID, fileID string) (*models.File, error) {
	file, err := s.files.FindByID(ctx, fileID)
	if errors.Is(err, repository.ErrFileNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup file: %w", err)
	}
	if !file.IsPublic && file.UserID.Hex() != requesterID {
		return nil, utils.ErrNotFound
	}
	return file, nil
}

// PageSkip converts a 1-indexed page to a record offset. Page 0 (the
// client default) reads the first page.
func PageSkip(page, limit int64) int64 {
	if page <= 1 {
		return 0
	}
	return (page - 1) * limit
}
