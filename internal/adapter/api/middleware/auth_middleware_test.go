package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filesmanager/internal/adapter/api/middleware"
	"filesmanager/internal/domain/entity"
	"filesmanager/internal/usecase"
	"filesmanager/pkg/errors"
)

type singleUserRepo struct{ user *entity.User }

func (r singleUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (r singleUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.user.Email == email {
		return r.user, nil
	}
	return nil, errors.NotFound("Not found", nil)
}

func (r singleUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if r.user.ID == id {
		return r.user, nil
	}
	return nil, errors.NotFound("Not found", nil)
}

func (r singleUserRepo) Count(ctx context.Context) (int64, error) { return 1, nil }

type mapTokenStore struct{ tokens map[string]string }

func (s mapTokenStore) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	s.tokens[token] = userID
	return nil
}

func (s mapTokenStore) Get(ctx context.Context, token string) (string, error) {
	return s.tokens[token], nil
}

func (s mapTokenStore) Del(ctx context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

func (s mapTokenStore) Ping(ctx context.Context) error { return nil }

func setup(t *testing.T) (*middleware.AuthMiddleware, string) {
	t.Helper()
	user := &entity.User{ID: "bbbbbbbbbbbbbbbbbbbbbbbb", Email: "bob@dylan.com"}
	tokens := mapTokenStore{tokens: map[string]string{"031bffac-3edc-4e51-aaae": user.ID}}
	auth := usecase.NewAuthUseCase(singleUserRepo{user: user}, tokens, 24*time.Hour)
	return middleware.NewAuthMiddleware(auth), "031bffac-3edc-4e51-aaae"
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, token string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenUserID string
	h := mw(func(c echo.Context) error {
		seenUserID = middleware.UserID(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, seenUserID
}

func TestAuthenticate(t *testing.T) {
	mw, token := setup(t)

	t.Run("valid token", func(t *testing.T) {
		rec, userID := invoke(t, mw.Authenticate, token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "bbbbbbbbbbbbbbbbbbbbbbbb", userID)
	})

	t.Run("missing token", func(t *testing.T) {
		rec, _ := invoke(t, mw.Authenticate, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	})

	t.Run("unknown token", func(t *testing.T) {
		rec, _ := invoke(t, mw.Authenticate, "deadbeef")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOptionalAuthenticate(t *testing.T) {
	mw, token := setup(t)

	t.Run("valid token resolves", func(t *testing.T) {
		rec, userID := invoke(t, mw.OptionalAuthenticate, token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "bbbbbbbbbbbbbbbbbbbbbbbb", userID)
	})

	t.Run("anonymous passes through", func(t *testing.T) {
		rec, userID := invoke(t, mw.OptionalAuthenticate, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, userID)
	})

	t.Run("bad token stays anonymous", func(t *testing.T) {
		rec, userID := invoke(t, mw.OptionalAuthenticate, "deadbeef")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, userID)
	})
}
