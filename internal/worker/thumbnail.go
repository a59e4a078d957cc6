package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"filesmanager/internal/domain/entity"
	"filesmanager/internal/domain/repository"
	"filesmanager/internal/domain/service"
	"filesmanager/pkg/logger"
)

// ThumbnailWidths are the derivative sizes generated for every upload.
var ThumbnailWidths = []int{500, 250, 100}

// Thumbnailer turns one queued job into three resized derivatives written
// next to the original. Re-delivered jobs overwrite the same paths, so
// processing is idempotent.
type Thumbnailer struct {
	files repository.FileRepository
	store service.ContentStore
}

func NewThumbnailer(files repository.FileRepository, store service.ContentStore) *Thumbnailer {
	return &Thumbnailer{
		files: files,
		store: store,
	}
}

// Handle processes one raw queue payload. Every returned error is fatal
// for the job; the queue drops it rather than requeueing.
func (t *Thumbnailer) Handle(ctx context.Context, body []byte) error {
	var job entity.ThumbnailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("malformed thumbnail job: %w", err)
	}
	if job.FileID == "" {
		return fmt.Errorf("thumbnail job: missing fileId")
	}
	if job.UserID == "" {
		return fmt.Errorf("thumbnail job: missing userId")
	}

	file, err := t.files.GetByIDAndUser(ctx, job.FileID, job.UserID)
	if err != nil {
		return fmt.Errorf("thumbnail job for file %s: %w", job.FileID, err)
	}

	original, err := t.store.Read(file.LocalPath)
	if err != nil {
		return fmt.Errorf("thumbnail job for file %s: %w", job.FileID, err)
	}

	src, err := imaging.Decode(bytes.NewReader(original))
	if err != nil {
		return fmt.Errorf("thumbnail job for file %s: not a decodable image: %w", job.FileID, err)
	}

	format, err := imaging.FormatFromFilename(file.Name)
	if err != nil {
		format = imaging.PNG
	}

	// The three resizes run concurrently and succeed or fail as one.
	// Derivatives already written before a failure stay on disk; a retry
	// overwrites them.
	g, ctx := errgroup.WithContext(ctx)
	for _, width := range ThumbnailWidths {
		width := width
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			thumb := imaging.Resize(src, width, 0, imaging.Lanczos)

			var buf bytes.Buffer
			if err := imaging.Encode(&buf, thumb, format); err != nil {
				return fmt.Errorf("size %d: %w", width, err)
			}

			path := fmt.Sprintf("%s_%d", file.LocalPath, width)
			if err := t.store.Write(path, buf.Bytes()); err != nil {
				return fmt.Errorf("size %d: %w", width, err)
			}

			logger.Info("Thumbnail generated for size %d of file %s", width, file.ID)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("thumbnail job for file %s: %w", job.FileID, err)
	}

	logger.Info("Thumbnails generated for file %s", file.ID)
	return nil
}
