package usecase

import (
	"context"

	"filesmanager/internal/domain/repository"
)

// Pinger is any store that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type AppUseCase struct {
	db    Pinger
	cache Pinger
	users repository.UserRepository
	files repository.FileRepository
}

func NewAppUseCase(db, cache Pinger, users repository.UserRepository, files repository.FileRepository) *AppUseCase {
	return &AppUseCase{
		db:    db,
		cache: cache,
		users: users,
		files: files,
	}
}

// Status probes both stores. It never errors; unreachable stores just
// report false.
func (uc *AppUseCase) Status(ctx context.Context) (dbAlive, cacheAlive bool) {
	dbAlive = uc.db.Ping(ctx) == nil
	cacheAlive = uc.cache.Ping(ctx) == nil
	return dbAlive, cacheAlive
}

type Stats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

func (uc *AppUseCase) Stats(ctx context.Context) (*Stats, error) {
	users, err := uc.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	files, err := uc.files.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{Users: users, Files: files}, nil
}
