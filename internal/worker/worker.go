// Package worker drains the thumbnail queue and writes resized derivatives
// next to the original payloads.
package worker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/fathima-sithara/files-manager/internal/models"
	"github.com/fathima-sithara/files-manager/internal/queue"
	"github.com/fathima-sithara/files-manager/internal/repository"
	"github.com/fathima-sithara/files-manager/internal/storage"
)

// Widths of the generated derivatives.
var Widths = []int{500, 250, 100}

var (
	errMissingUserID = errors.New("Missing userId")
	errMissingFileID = errors.New("Missing fileId")
	errFileNotFound  = errors.New("File not found")
)

// Store is the slice of the payload store the worker needs.
type Store interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
}

type Worker struct {
	jobs   queue.Consumer
	files  repository.FileRepository
	store  Store
	logger *zap.SugaredLogger
}

func New(jobs queue.Consumer, files repository.FileRepository, store Store, logger *zap.SugaredLogger) *Worker {
	return &Worker{jobs: jobs, files: files, store: store, logger: logger}
}

// Run consumes jobs until ctx is canceled. Failed jobs are logged and
// dropped; there is no retry.
func (w *Worker) Run(ctx context.Context) {
	for {
		job, err := w.jobs.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Errorf("dequeue failed: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if err := w.Process(ctx, job); err != nil {
			w.logger.Errorw("thumbnail job failed", "fileId", job.FileID, "userId", job.UserID, "error", err)
		}
	}
}

// Process generates and stores all derivatives for one job.
func (w *Worker) Process(ctx context.Context, job *queue.ThumbnailJob) error {
	if job.UserID == "" {
		return errMissingUserID
	}
	if job.FileID == "" {
		return errMissingFileID
	}

	file, err := w.files.FindByIDAndUser(ctx, job.FileID, job.UserID)
	if errors.Is(err, repository.ErrFileNotFound) {
		return errFileNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup file: %w", err)
	}

	data, err := w.store.Read(file.LocalPath)
	if err != nil {
		return fmt.Errorf("read original: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	format := outputFormat(file)

	for _, width := range Widths {
		resized := imaging.Resize(img, width, 0, imaging.Lanczos)
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, resized, format); err != nil {
			return fmt.Errorf("encode %dpx derivative: %w", width, err)
		}
		if err := w.store.Write(storage.DerivativePath(file.LocalPath, width), buf.Bytes()); err != nil {
			return fmt.Errorf("write %dpx derivative: %w", width, err)
		}
	}
	return nil
}

// outputFormat picks the encoding from the file's display name, falling
// back to JPEG for unrecognized extensions.
func outputFormat(file *models.File) imaging.Format {
	if f, err := imaging.FormatFromFilename(file.Name); err == nil {
		return f
	}
	return imaging.JPEG
}
