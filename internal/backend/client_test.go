package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-gateway/internal/domain/entity"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func envelope(t *testing.T, data any) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{"status": 200, "success": true, "message": "ok", "data": data})
	require.NoError(t, err)
	return b
}

func TestListPosts(t *testing.T) {
	posts := []entity.Post{
		{ID: 2, Title: "second", UserID: 1},
		{ID: 1, Title: "first", UserID: 2},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(envelope(t, posts))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, testLogger())
	got, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestListUserPostsScopesByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/my-posts/42", r.URL.Path)
		_, _ = w.Write(envelope(t, []entity.Post{}))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, testLogger())
	got, err := c.ListUserPosts(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreatePostForwardsBody(t *testing.T) {
	var received entity.Post
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(envelope(t, map[string]any{"created": true}))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, testLogger())
	err := c.CreatePost(context.Background(), entity.Post{Title: "T", Content: "C", UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, "T", received.Title)
	assert.Equal(t, int64(7), received.UserID)
}

func TestGetPostNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, testLogger())
	_, err := c.GetPost(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestServerErrorIsBackendUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, testLogger())
	_, err := c.ListPosts(context.Background())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestTimeoutIsBackendUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write(envelope(t, []entity.Post{}))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 20*time.Millisecond, testLogger())
	_, err := c.ListPosts(context.Background())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestConnectionRefusedIsBackendUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewClient(srv.URL, time.Second, testLogger())
	err := c.DeletePost(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}
