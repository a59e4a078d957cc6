package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"filesmanager/internal/domain/entity"
	"filesmanager/internal/domain/repository"
	"filesmanager/pkg/logger"
)

// Welcomer emits a welcome notification for a freshly registered user.
// There is no persisted side effect, only the log line.
type Welcomer struct {
	users repository.UserRepository
}

func NewWelcomer(users repository.UserRepository) *Welcomer {
	return &Welcomer{users: users}
}

func (w *Welcomer) Handle(ctx context.Context, body []byte) error {
	var job entity.WelcomeJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("malformed welcome job: %w", err)
	}
	if job.UserID == "" {
		return fmt.Errorf("welcome job: missing userId")
	}

	user, err := w.users.GetByID(ctx, job.UserID)
	if err != nil {
		return fmt.Errorf("welcome job for user %s: %w", job.UserID, err)
	}

	logger.Info("Welcome %s!", user.Email)
	return nil
}
