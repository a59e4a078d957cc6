package usecase

import (
	"context"
	"encoding/base64"
	"mime"
	"path/filepath"

	"filesmanager/internal/domain/entity"
	"filesmanager/internal/domain/repository"
	"filesmanager/internal/domain/service"
	"filesmanager/pkg/errors"
	"filesmanager/pkg/logger"
)

// ContentSizes are the derivative widths a content request may ask for.
var ContentSizes = map[string]bool{"500": true, "250": true, "100": true}

type FileUseCase struct {
	fileRepo repository.FileRepository
	userRepo repository.UserRepository
	store    service.ContentStore
	queue    service.JobQueue
}

func NewFileUseCase(fileRepo repository.FileRepository, userRepo repository.UserRepository, store service.ContentStore, queue service.JobQueue) *FileUseCase {
	return &FileUseCase{
		fileRepo: fileRepo,
		userRepo: userRepo,
		store:    store,
		queue:    queue,
	}
}

type UploadInput struct {
	UserID   string
	Name     string
	Type     string
	ParentID string // empty means root
	IsPublic bool
	Data     string // base64 content, required for non-folders
}

// Upload validates and persists a new entry. Checks run in a fixed order
// and the first failure wins: parent, name, type, data. The caller's token
// has already been resolved by the auth middleware.
func (uc *FileUseCase) Upload(ctx context.Context, input UploadInput) (*entity.File, error) {
	if input.ParentID != "" {
		if !isHexID(input.ParentID) {
			return nil, errors.BadRequest("Invalid parentId format", nil)
		}
		parent, err := uc.fileRepo.GetByID(ctx, input.ParentID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return nil, errors.BadRequest("Parent not found", err)
			}
			return nil, err
		}
		if !parent.IsFolder() {
			return nil, errors.BadRequest("Parent is not a folder", nil)
		}
	}

	if input.Name == "" {
		return nil, errors.BadRequest("Missing name", nil)
	}
	if !entity.ValidType(input.Type) {
		return nil, errors.BadRequest("Missing type or invalid type", nil)
	}
	if input.Type != entity.TypeFolder && input.Data == "" {
		return nil, errors.BadRequest("Missing data", nil)
	}

	file := &entity.File{
		UserID:   input.UserID,
		Name:     input.Name,
		Type:     input.Type,
		IsPublic: input.IsPublic,
		ParentID: input.ParentID,
	}

	if input.Type == entity.TypeFolder {
		if err := uc.fileRepo.Create(ctx, file); err != nil {
			return nil, err
		}
		return file, nil
	}

	content, err := base64.StdEncoding.DecodeString(input.Data)
	if err != nil {
		return nil, errors.BadRequest("Invalid data", err)
	}

	path, err := uc.store.Save(content)
	if err != nil {
		return nil, errors.Internal("Internal Server Error", err)
	}
	file.LocalPath = path

	if err := uc.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}

	// No transaction spans the insert and the enqueue; a failure here
	// leaves an entry without derivatives, observed only in logs.
	job := entity.ThumbnailJob{UserID: input.UserID, FileID: file.ID}
	if err := uc.queue.EnqueueThumbnail(ctx, job); err != nil {
		logger.Warn("Failed to enqueue thumbnail job for file %s: %v", file.ID, err)
	}

	return file, nil
}

func (uc *FileUseCase) Show(ctx context.Context, userID, id string) (*entity.File, error) {
	return uc.fileRepo.GetByIDAndUser(ctx, id, userID)
}

// Index lists a 20-entry window of the user's entries under a parent.
// An out-of-range page is an empty list, never an error.
func (uc *FileUseCase) Index(ctx context.Context, userID, parentID string, page int) ([]*entity.File, error) {
	return uc.fileRepo.ListByUserAndParent(ctx, userID, parentID, page)
}

// SetPublic toggles visibility. The resolved user must still exist, and
// the entry must belong to them.
func (uc *FileUseCase) SetPublic(ctx context.Context, userID, id string, value bool) (*entity.File, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Unauthorized("Unauthorized", err)
		}
		return nil, err
	}

	return uc.fileRepo.SetPublic(ctx, id, userID, value)
}

// Content serves the raw bytes of an entry, or of one of its derivatives
// when size is given. Private entries are indistinguishable from absent
// ones for anyone but the owner, requesterID being empty for anonymous
// callers.
func (uc *FileUseCase) Content(ctx context.Context, requesterID, id, size string) ([]byte, string, error) {
	file, err := uc.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if !file.IsPublic && (requesterID == "" || requesterID != file.UserID) {
		return nil, "", errors.NotFound("Not found", nil)
	}

	if file.IsFolder() {
		return nil, "", errors.BadRequest("A folder doesn't have content", nil)
	}

	if size != "" && !ContentSizes[size] {
		return nil, "", errors.BadRequest("Invalid size parameter. Size can be 500, 250, or 100.", nil)
	}

	path := file.LocalPath
	if size != "" {
		path += "_" + size
	}

	if !uc.store.Exists(path) {
		return nil, "", errors.NotFound("Not found", nil)
	}

	data, err := uc.store.Read(path)
	if err != nil {
		return nil, "", errors.Internal("Internal Server Error", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(file.Name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return data, contentType, nil
}

// isHexID reports whether s looks like a 24-character hex object id,
// without reaching into the storage driver.
func isHexID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
