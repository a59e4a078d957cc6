package service

import (
	"context"

	"filesmanager/internal/domain/entity"
)

// JobQueue dispatches asynchronous work to the worker process. Delivery is
// at-least-once and unordered, so every job handler must tolerate re-runs.
type JobQueue interface {
	EnqueueThumbnail(ctx context.Context, job entity.ThumbnailJob) error
	EnqueueWelcome(ctx context.Context, job entity.WelcomeJob) error
}
