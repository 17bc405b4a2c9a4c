package services

import (
	"context"

	"github.com/fathima-sithara/files-manager/internal/repository"
)

// PingFunc probes one backend.
type PingFunc func(ctx context.Context) error

type appService struct {
	users     repository.UserRepository
	files     repository.FileRepository
	pingDB    PingFunc
	pingCache PingFunc
}

func NewAppService(users repository.UserRepository, files repository.FileRepository, pingDB, pingCache PingFunc) AppService {
	return &appService{users: users, files: files, pingDB: pingDB, pingCache: pingCache}
}

func (s *appService) Status(ctx context.Context) (db, cache bool) {
	return s.pingDB(ctx) == nil, s.pingCache(ctx) == nil
}

// Stats degrades to zero counts with the error attached rather than
// failing; the endpoint stays 200 on a store outage.
func (s *appService) Stats(ctx context.Context) (users, files int64, err error) {
	users, err = s.users.Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	files, err = s.files.Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	return users, files, nil
}
