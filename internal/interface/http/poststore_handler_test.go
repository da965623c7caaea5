package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-gateway/internal/domain/entity"
	"blog-gateway/internal/domain/repository"
	handlers "blog-gateway/internal/interface/http"
	"blog-gateway/internal/router"
	"blog-gateway/internal/router/modules"
	"blog-gateway/pkg/response"
)

type fakePostRepo struct {
	mu     sync.Mutex
	nextID int64
	posts  map[int64]entity.Post
	err    error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[int64]entity.Post)}
}

func (f *fakePostRepo) seed(p entity.Post) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID > f.nextID {
		f.nextID = p.ID
	}
	f.posts[p.ID] = p
}

func (f *fakePostRepo) List(context.Context) ([]entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakePostRepo) ListByUser(_ context.Context, userID int64) ([]entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Post, 0)
	for _, p := range f.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	p.ID = f.nextID
	f.posts[p.ID] = *p
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

var _ repository.PostRepository = (*fakePostRepo)(nil)

func newPostStore(t *testing.T) (*gin.Engine, *fakePostRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newFakePostRepo()
	engine := gin.New()
	reg := router.NewRegistry(engine, "/")
	reg.Add(modules.NewPostStoreModule(handlers.NewPostStoreHandler(repo, testLogger())))
	reg.RegisterAll()
	return engine, repo
}

func decodeEnvelope[T any](t *testing.T, w *httptest.ResponseRecorder) response.APIResponse[T] {
	t.Helper()
	var env response.APIResponse[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestPostStoreList(t *testing.T) {
	engine, repo := newPostStore(t)
	repo.seed(entity.Post{ID: 1, Title: "first", UserID: 1})
	repo.seed(entity.Post{ID: 2, Title: "second", UserID: 2})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts", nil))

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope[[]entity.Post](t, w)
	assert.True(t, env.Success)
	require.Len(t, env.Data, 2)
	assert.Equal(t, "second", env.Data[0].Title, "newest first")
}

func TestPostStoreListByUser(t *testing.T) {
	engine, repo := newPostStore(t)
	repo.seed(entity.Post{ID: 1, Title: "mine", UserID: 1})
	repo.seed(entity.Post{ID: 2, Title: "theirs", UserID: 2})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/my-posts/1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope[[]entity.Post](t, w)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "mine", env.Data[0].Title)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/my-posts/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostStoreGet(t *testing.T) {
	engine, repo := newPostStore(t)
	repo.seed(entity.Post{ID: 7, Title: "hello", Content: "world", UserID: 1})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/7", nil))
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope[entity.Post](t, w)
	assert.Equal(t, "hello", env.Data.Title)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	missing := decodeEnvelope[any](t, w)
	assert.False(t, missing.Success)
}

func TestPostStoreCreate(t *testing.T) {
	engine, repo := newPostStore(t)

	body := `{"title":"T","content":"C","author":"alice","user_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope[entity.Post](t, w)
	assert.NotZero(t, env.Data.ID)
	assert.False(t, env.Data.Date.IsZero(), "date assigned when omitted")
	assert.Equal(t, int64(1), env.Data.UserID)
	assert.Len(t, repo.posts, 1)
}

func TestPostStoreCreateKeepsProvidedDate(t *testing.T) {
	engine, _ := newPostStore(t)

	when := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	body, _ := json.Marshal(gin.H{"title": "T", "content": "C", "user_id": 1, "date": when})
	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope[entity.Post](t, w)
	assert.True(t, when.Equal(env.Data.Date))
}

func TestPostStoreCreateRejectsIncompletePayload(t *testing.T) {
	engine, repo := newPostStore(t)

	for name, body := range map[string]string{
		"missing title":   `{"content":"C","user_id":1}`,
		"missing content": `{"title":"T","user_id":1}`,
		"missing user_id": `{"title":"T","content":"C"}`,
		"not json":        `title=T`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
	assert.Empty(t, repo.posts)
}

func TestPostStoreDelete(t *testing.T) {
	engine, repo := newPostStore(t)
	repo.seed(entity.Post{ID: 3, Title: "gone soon", UserID: 1})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/posts/3", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.posts)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/posts/3", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostStoreStorageFailure(t *testing.T) {
	engine, repo := newPostStore(t)
	repo.err = errors.New("connection reset")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset", "raw storage error must not leak")
}
