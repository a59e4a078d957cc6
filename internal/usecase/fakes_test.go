package usecase_test

import (
	"context"
	"fmt"
	"time"

	"filesmanager/internal/domain/entity"
	"filesmanager/pkg/errors"
)

// In-memory stand-ins for the Mongo repositories, the Redis token store,
// the AMQP publisher and the disk store. They mirror the adapters' error
// contracts so the use cases see the same behavior either way.

type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return errors.Conflict("Already exist")
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("%024x", r.nextID)
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Not found", nil)
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("Not found", nil)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeFileRepo struct {
	files  []*entity.File
	nextID int
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{}
}

func (r *fakeFileRepo) Create(ctx context.Context, file *entity.File) error {
	r.nextID++
	file.ID = fmt.Sprintf("%024x", r.nextID)
	cp := *file
	r.files = append(r.files, &cp)
	return nil
}

func (r *fakeFileRepo) GetByID(ctx context.Context, id string) (*entity.File, error) {
	if len(id) != 24 {
		return nil, errors.NotFound("Not found", nil)
	}
	for _, f := range r.files {
		if f.ID == id {
			cp := *f
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Not found", nil)
}

func (r *fakeFileRepo) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.File, error) {
	if len(id) != 24 {
		return nil, errors.BadRequest("Invalid ID format", nil)
	}
	for _, f := range r.files {
		if f.ID == id && f.UserID == userID {
			cp := *f
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Not found", nil)
}

func (r *fakeFileRepo) ListByUserAndParent(ctx context.Context, userID, parentID string, page int) ([]*entity.File, error) {
	var owned []*entity.File
	for _, f := range r.files {
		if f.UserID == userID && f.ParentID == parentID {
			cp := *f
			owned = append(owned, &cp)
		}
	}

	const pageSize = 20
	start := page * pageSize
	if start >= len(owned) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(owned) {
		end = len(owned)
	}
	return owned[start:end], nil
}

func (r *fakeFileRepo) SetPublic(ctx context.Context, id, userID string, value bool) (*entity.File, error) {
	if len(id) != 24 {
		return nil, errors.BadRequest("Invalid ID format", nil)
	}
	for _, f := range r.files {
		if f.ID == id && f.UserID == userID {
			f.IsPublic = value
			cp := *f
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Not found", nil)
}

func (r *fakeFileRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.files)), nil
}

type storedToken struct {
	userID    string
	expiresAt time.Time
}

// fakeTokenStore keeps tokens with expiry against a controllable clock.
type fakeTokenStore struct {
	tokens map[string]storedToken
	now    func() time.Time
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{
		tokens: map[string]storedToken{},
		now:    time.Now,
	}
}

func (s *fakeTokenStore) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	s.tokens[token] = storedToken{userID: userID, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *fakeTokenStore) Get(ctx context.Context, token string) (string, error) {
	t, ok := s.tokens[token]
	if !ok || !s.now().Before(t.expiresAt) {
		return "", nil
	}
	return t.userID, nil
}

func (s *fakeTokenStore) Del(ctx context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

func (s *fakeTokenStore) Ping(ctx context.Context) error {
	return nil
}

type fakeQueue struct {
	thumbnails []entity.ThumbnailJob
	welcomes   []entity.WelcomeJob
	failNext   bool
}

func (q *fakeQueue) EnqueueThumbnail(ctx context.Context, job entity.ThumbnailJob) error {
	if q.failNext {
		q.failNext = false
		return fmt.Errorf("broker unavailable")
	}
	q.thumbnails = append(q.thumbnails, job)
	return nil
}

func (q *fakeQueue) EnqueueWelcome(ctx context.Context, job entity.WelcomeJob) error {
	if q.failNext {
		q.failNext = false
		return fmt.Errorf("broker unavailable")
	}
	q.welcomes = append(q.welcomes, job)
	return nil
}

type fakeContentStore struct {
	contents map[string][]byte
	nextName int
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{contents: map[string][]byte{}}
}

func (s *fakeContentStore) Save(data []byte) (string, error) {
	s.nextName++
	path := fmt.Sprintf("/tmp/files_manager/%08d", s.nextName)
	s.contents[path] = data
	return path, nil
}

func (s *fakeContentStore) Read(path string) ([]byte, error) {
	data, ok := s.contents[path]
	if !ok {
		return nil, fmt.Errorf("no content at %s", path)
	}
	return data, nil
}

func (s *fakeContentStore) Exists(path string) bool {
	_, ok := s.contents[path]
	return ok
}

func (s *fakeContentStore) Write(path string, data []byte) error {
	s.contents[path] = data
	return nil
}
