package repository

import (
	"context"

	"filesmanager/internal/domain/entity"
)

type FileRepository interface {
	Create(ctx context.Context, file *entity.File) error
	// GetByID loads an entry regardless of owner; content serving needs this.
	GetByID(ctx context.Context, id string) (*entity.File, error)
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.File, error)
	// ListByUserAndParent returns the page-th window of 20 entries owned by
	// userID under parentID (empty parentID means root), in natural order.
	ListByUserAndParent(ctx context.Context, userID, parentID string, page int) ([]*entity.File, error)
	// SetPublic atomically updates the visibility flag and returns the
	// post-update entry.
	SetPublic(ctx context.Context, id, userID string, value bool) (*entity.File, error)
	Count(ctx context.Context) (int64, error)
}
