package usecase

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"filesmanager/internal/domain/repository"
	"filesmanager/pkg/errors"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   repository.TokenStore
	tokenTTL time.Duration
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens repository.TokenStore, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

// Login validates a Basic auth header and issues an opaque token that the
// store expires after the configured TTL. Every failure mode is the same
// Unauthorized so callers learn nothing about which check tripped.
func (uc *AuthUseCase) Login(ctx context.Context, authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, "Basic ") {
		return "", errors.Unauthorized("Unauthorized", nil)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, "Basic "))
	if err != nil {
		return "", errors.Unauthorized("Unauthorized", err)
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok || email == "" || password == "" {
		return "", errors.Unauthorized("Unauthorized", nil)
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return "", errors.Unauthorized("Unauthorized", err)
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.Unauthorized("Unauthorized", err)
	}

	token := uuid.New().String()
	if err := uc.tokens.Set(ctx, token, user.ID, uc.tokenTTL); err != nil {
		return "", errors.Internal("Internal Server Error", err)
	}

	return token, nil
}

// Logout deletes the token. Once deleted (or expired) a retry fails with
// Unauthorized, same as a token that never existed.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return errors.Unauthorized("Unauthorized", nil)
	}

	userID, err := uc.tokens.Get(ctx, token)
	if err != nil {
		return errors.Internal("Internal Server Error", err)
	}
	if userID == "" {
		return errors.Unauthorized("Unauthorized", nil)
	}

	if err := uc.tokens.Del(ctx, token); err != nil {
		return errors.Internal("Internal Server Error", err)
	}
	return nil
}

// ResolveUser maps a token to the user id it was issued for.
func (uc *AuthUseCase) ResolveUser(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errors.Unauthorized("Unauthorized", nil)
	}

	userID, err := uc.tokens.Get(ctx, token)
	if err != nil {
		return "", errors.Internal("Internal Server Error", err)
	}
	if userID == "" {
		return "", errors.Unauthorized("Unauthorized", nil)
	}
	return userID, nil
}
