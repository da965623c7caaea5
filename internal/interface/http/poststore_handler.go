package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-gateway/internal/domain/entity"
	"blog-gateway/internal/domain/repository"
	"blog-gateway/pkg/response"
	"blog-gateway/pkg/validation"
)

// PostStoreHandler is the data tier's JSON CRUD surface. It carries no auth
// of its own; the trust boundary is entirely at the gateway.
type PostStoreHandler struct {
	Repo   repository.PostRepository
	Logger *logrus.Logger
}

func NewPostStoreHandler(repo repository.PostRepository, logger *logrus.Logger) *PostStoreHandler {
	return &PostStoreHandler{Repo: repo, Logger: logger}
}

type createPostRequest struct {
	Title   string    `json:"title" binding:"required"`
	Content string    `json:"content" binding:"required"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	UserID  int64     `json:"user_id" binding:"required"`
}

func (h *PostStoreHandler) List(c *gin.Context) {
	posts, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "list posts")
		return
	}
	resp := response.Success(c, http.StatusOK, posts, "posts")
	c.JSON(resp.Status, resp)
}

func (h *PostStoreHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid user id", nil)
		c.JSON(resp.Status, resp)
		return
	}
	posts, err := h.Repo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.storeError(c, err, "list user posts")
		return
	}
	resp := response.Success(c, http.StatusOK, posts, "posts")
	c.JSON(resp.Status, resp)
}

func (h *PostStoreHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		c.JSON(resp.Status, resp)
		return
	}
	post, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "post not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.storeError(c, err, "get post")
		return
	}
	resp := response.Success(c, http.StatusOK, post, "post")
	c.JSON(resp.Status, resp)
}

func (h *PostStoreHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	post := &entity.Post{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Date:    req.Date,
		UserID:  req.UserID,
	}
	if post.Date.IsZero() {
		post.Date = time.Now()
	}

	if err := h.Repo.Create(c.Request.Context(), post); err != nil {
		h.storeError(c, err, "create post")
		return
	}
	resp := response.Success(c, http.StatusCreated, post, "post created")
	c.JSON(resp.Status, resp)
}

func (h *PostStoreHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		c.JSON(resp.Status, resp)
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "post not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.storeError(c, err, "delete post")
		return
	}
	resp := response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "post deleted")
	c.JSON(resp.Status, resp)
}

func (h *PostStoreHandler) storeError(c *gin.Context, err error, op string) {
	h.Logger.WithError(err).Error(op + " failed")
	resp := response.Error[any](c, http.StatusInternalServerError, "storage error", nil)
	c.JSON(resp.Status, resp)
}
