// Package backend is the gateway's client for the post store tier. Every
// failure to reach the store, including timeouts and 5xx responses, maps to
// ErrBackendUnavailable so the HTTP layer can surface it instead of
// swallowing it.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"blog-gateway/internal/domain/entity"
	"blog-gateway/pkg/response"
)

var (
	ErrBackendUnavailable = errors.New("post store unavailable")
	ErrPostNotFound       = errors.New("post not found")
)

type Client struct {
	base   string
	http   *http.Client
	logger *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (c *Client) ListPosts(ctx context.Context) ([]entity.Post, error) {
	var posts []entity.Post
	if err := c.do(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) ListUserPosts(ctx context.Context, userID int64) ([]entity.Post, error) {
	var posts []entity.Post
	if err := c.do(ctx, http.MethodGet, "/my-posts/"+strconv.FormatInt(userID, 10), nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, id int64) (*entity.Post, error) {
	var post entity.Post
	if err := c.do(ctx, http.MethodGet, "/posts/"+strconv.FormatInt(id, 10), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreatePost(ctx context.Context, p entity.Post) error {
	return c.do(ctx, http.MethodPost, "/posts", p, nil)
}

func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+strconv.FormatInt(id, 10), nil, nil)
}

// do performs one round trip and decodes the store's response envelope into
// out when non-nil. Raw backend error bodies are logged, never returned.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("path", path).Warn("post store request failed")
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrPostNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		c.logger.WithFields(logrus.Fields{"path": path, "status": resp.StatusCode}).Warn("post store error response")
		return fmt.Errorf("%w: status %d", ErrBackendUnavailable, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("post store rejected request: status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	var env response.APIResponse[json.RawMessage]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.logger.WithError(err).WithField("path", path).Warn("post store response undecodable")
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}
