package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bakhat123/socal/internal/auth"
	"github.com/bakhat123/socal/internal/config"
	"github.com/bakhat123/socal/internal/model"
	"github.com/bakhat123/socal/internal/session"
	"github.com/bakhat123/socal/internal/store"
)

// fakeStore is an in-memory Store implementation for handler tests.
// Fields left nil behave like empty collections; err forces every call
// to fail like an unreachable database.
type fakeStore struct {
	blogs    []model.Blog
	cities   []model.City
	counties []model.County
	homes    map[string]*model.Home
	users    []model.User

	err error

	insertedBlogs []model.Blog
	insertedUsers []model.User
	updates       []bson.M
	deleted       []primitive.ObjectID
	upsertedHomes map[string]*model.Home
}

func (f *fakeStore) ListBlogs(_ context.Context, language string) ([]model.Blog, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Blog
	for _, b := range f.blogs {
		if b.Language == language && b.IsPublished() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) FindBlog(_ context.Context, language, slug string) (*model.Blog, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.blogs {
		b := &f.blogs[i]
		if b.Language == language && b.Slug == slug && b.IsPublished() {
			return b, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListAllBlogs(_ context.Context) ([]model.Blog, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.blogs, nil
}

func (f *fakeStore) ListPublishedBlogs(_ context.Context) ([]model.Blog, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Blog
	for _, b := range f.blogs {
		if b.IsPublished() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) BlogVariantExists(_ context.Context, groupID, language string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, b := range f.blogs {
		if b.GroupID == groupID && b.Language == language {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) BlogSlugExists(_ context.Context, slug, language string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, b := range f.blogs {
		if b.Slug == slug && b.Language == language {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) InsertBlog(_ context.Context, blog *model.Blog) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	f.insertedBlogs = append(f.insertedBlogs, *blog)
	return primitive.NewObjectID(), nil
}

func (f *fakeStore) UpdateBlog(_ context.Context, id primitive.ObjectID, set bson.M) error {
	if f.err != nil {
		return f.err
	}
	for _, b := range f.blogs {
		if b.ID == id {
			f.updates = append(f.updates, set)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) DeleteBlog(_ context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	for _, b := range f.blogs {
		if b.ID == id {
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) ListCities(_ context.Context, language string) ([]model.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.City
	for _, c := range f.cities {
		if c.Language == language {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) FindCity(_ context.Context, language, slug string) (*model.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.cities {
		c := &f.cities[i]
		if c.Language == language && c.Slug == slug {
			return c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListAllCities(_ context.Context) ([]model.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cities, nil
}

func (f *fakeStore) ListCounties(_ context.Context, language string) ([]model.County, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.County
	for _, c := range f.counties {
		if c.Language == language {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) FindCounty(_ context.Context, language, slug string) (*model.County, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.counties {
		c := &f.counties[i]
		if c.Language == language && c.Slug == slug {
			return c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListAllCounties(_ context.Context) ([]model.County, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counties, nil
}

func (f *fakeStore) FindHome(_ context.Context, locale string) (*model.Home, error) {
	if f.err != nil {
		return nil, f.err
	}
	if home, ok := f.homes[locale]; ok {
		return home, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) UpsertHome(_ context.Context, locale string, home *model.Home) error {
	if f.err != nil {
		return f.err
	}
	if f.upsertedHomes == nil {
		f.upsertedHomes = make(map[string]*model.Home)
	}
	f.upsertedHomes[locale] = home
	return nil
}

func (f *fakeStore) ListUsers(_ context.Context) ([]model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func (f *fakeStore) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) InsertUser(_ context.Context, user *model.User) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	f.insertedUsers = append(f.insertedUsers, *user)
	return primitive.NewObjectID(), nil
}

func (f *fakeStore) UpdateUser(_ context.Context, id primitive.ObjectID, set bson.M) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			f.updates = append(f.updates, set)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) DeleteUser(_ context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) Ping(_ context.Context) error {
	return f.err
}

// testConfig returns a config suitable for handler tests without going
// through the environment.
func testConfig() *config.Config {
	return &config.Config{
		SessionSecret: strings.Repeat("s", 32),
		SiteURL:       "https://example.com",
		Env:           "development",
		LoginRPS:      100,
		LoginBurst:    100,
	}
}

// newTestHandler wires a Handler over the fake store. The returned
// http.Handler wraps the given handlerFunc in the session middleware so
// session reads and writes work like in production.
func newTestHandler(t *testing.T, fs *fakeStore) *Handler {
	t.Helper()
	return New(testConfig(), fs, session.New(true))
}

func withSession(h *Handler, fn http.HandlerFunc) http.Handler {
	return h.sessions.LoadAndSave(fn)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return hash
}

func publishedBlog(slug, language, groupID string) model.Blog {
	return model.Blog{
		ID:       primitive.NewObjectID(),
		Slug:     slug,
		Language: language,
		GroupID:  groupID,
		Title:    slug,
		Status:   model.BlogStatusPublished,
	}
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t, &fakeStore{})

	rec := httptest.NewRecorder()
	h.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}
