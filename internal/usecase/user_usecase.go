package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"filesmanager/internal/domain/entity"
	"filesmanager/internal/domain/repository"
	"filesmanager/internal/domain/service"
	"filesmanager/pkg/errors"
	"filesmanager/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	queue    service.JobQueue
}

func NewUserUseCase(userRepo repository.UserRepository, queue service.JobQueue) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		queue:    queue,
	}
}

// Register creates a user and queues the welcome notification. The entry
// is committed before the enqueue, so a failed enqueue loses the welcome
// but never the user.
func (uc *UserUseCase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.BadRequest("Already exist", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Internal Server Error", err)
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Lost the race with a concurrent registration for the same email.
		if errors.Is(err, "CONFLICT") {
			return nil, errors.BadRequest("Already exist", err)
		}
		return nil, err
	}

	if err := uc.queue.EnqueueWelcome(ctx, entity.WelcomeJob{UserID: user.ID}); err != nil {
		logger.Warn("Failed to enqueue welcome job for user %s: %v", user.ID, err)
	}

	return user, nil
}

// Me returns the user a resolved token belongs to. A token whose user has
// vanished is treated as an invalid token.
func (uc *UserUseCase) Me(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Unauthorized("Unauthorized", err)
		}
		return nil, err
	}
	return user, nil
}
