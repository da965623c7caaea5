package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-gateway/internal/application"
	"blog-gateway/internal/backend"
	"blog-gateway/internal/domain/entity"
	"blog-gateway/internal/domain/repository"
	"blog-gateway/internal/interface/middleware"
	"blog-gateway/internal/session"
	"blog-gateway/pkg/helpers"
)

// WebHandler serves the gateway's HTML surface: credential forms, session
// establishment, and the post pages proxied from the post store.
type WebHandler struct {
	Auth     *application.AuthService
	Sessions session.Store
	Backend  *backend.Client
	Logger   *logrus.Logger
	Cookies  *helpers.CookieManager

	// EnforceDeleteOwnership requires the principal to own a post before its
	// deletion is forwarded. Off, the handler keeps the legacy
	// delete-any-post-by-id behavior.
	EnforceDeleteOwnership bool
}

func NewWebHandler(auth *application.AuthService, sessions session.Store, bc *backend.Client, logger *logrus.Logger, cookies *helpers.CookieManager, enforceDeleteOwnership bool) *WebHandler {
	return &WebHandler{
		Auth:                   auth,
		Sessions:               sessions,
		Backend:                bc,
		Logger:                 logger,
		Cookies:                cookies,
		EnforceDeleteOwnership: enforceDeleteOwnership,
	}
}

type credentialsForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type newPostForm struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
	// user_id is deliberately not bound: post ownership comes from the
	// session principal, never from the client.
}

func (h *WebHandler) Index(c *gin.Context) {
	_, authed := middleware.CurrentPrincipal(c)
	c.HTML(http.StatusOK, "index.html", gin.H{"IsAuthenticated": authed})
}

func (h *WebHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *WebHandler) SignUpForm(c *gin.Context) {
	c.HTML(http.StatusOK, "sign-up.html", gin.H{})
}

// Login verifies credentials and establishes a session. Unknown usernames
// and wrong passwords produce the same redirect, so the response does not
// reveal which one failed.
func (h *WebHandler) Login(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	u, err := h.Auth.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, application.ErrUsernameNotFound) && !errors.Is(err, application.ErrInvalidCredentials) {
			h.Logger.WithError(err).Error("authentication failed")
		}
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	h.establishSession(c, u)
}

func (h *WebHandler) SignUp(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "sign-up.html", gin.H{"Error": "Username and password are required"})
		return
	}

	u, err := h.Auth.SignUp(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			c.HTML(http.StatusOK, "sign-up.html", gin.H{"Error": "Username already exist", "Username": form.Username})
			return
		}
		h.Logger.WithError(err).Error("sign-up failed")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Could not create your account"})
		return
	}

	h.establishSession(c, u)
}

// establishSession runs only after the credential check has completed.
func (h *WebHandler) establishSession(c *gin.Context, u *entity.User) {
	token, err := h.Sessions.Establish(c.Request.Context(), u.Principal())
	if err != nil {
		h.Logger.WithError(err).Error("session establish failed")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Could not start your session"})
		return
	}
	h.Cookies.SetSession(c, token)
	c.Redirect(http.StatusSeeOther, "/posts")
}

// Logout revokes the server-side session; clearing the cookie alone would
// leave the session resolvable.
func (h *WebHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(helpers.SessionCookieName); err == nil && token != "" {
		if err := h.Sessions.Revoke(c.Request.Context(), token); err != nil {
			h.Logger.WithError(err).Warn("session revoke failed")
		}
	}
	h.Cookies.ClearSession(c)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *WebHandler) Posts(c *gin.Context) {
	posts, err := h.Backend.ListPosts(c.Request.Context())
	if err != nil {
		h.backendError(c, err)
		return
	}
	c.HTML(http.StatusOK, "posts.html", gin.H{"Posts": posts})
}

func (h *WebHandler) MyPosts(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)
	posts, err := h.Backend.ListUserPosts(c.Request.Context(), p.ID)
	if err != nil {
		h.backendError(c, err)
		return
	}
	c.HTML(http.StatusOK, "my-posts.html", gin.H{"Posts": posts})
}

func (h *WebHandler) NewPostForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new-post.html", gin.H{})
}

// NewPost creates a post attributed to the session principal. Any user_id in
// the request body is ignored.
func (h *WebHandler) NewPost(c *gin.Context) {
	var form newPostForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "new-post.html", gin.H{"Error": "Title and content are required"})
		return
	}

	p, _ := middleware.CurrentPrincipal(c)
	post := entity.Post{
		Title:   form.Title,
		Content: form.Content,
		Author:  p.Username,
		Date:    time.Now(),
		UserID:  p.ID,
	}
	if err := h.Backend.CreatePost(c.Request.Context(), post); err != nil {
		h.backendError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/posts")
}

func (h *WebHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Invalid post id"})
		return
	}

	if h.EnforceDeleteOwnership {
		post, err := h.Backend.GetPost(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, backend.ErrPostNotFound) {
				c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Post not found"})
				return
			}
			h.backendError(c, err)
			return
		}
		p, _ := middleware.CurrentPrincipal(c)
		if post.UserID != p.ID {
			c.HTML(http.StatusForbidden, "error.html", gin.H{"Message": "You can only delete your own posts"})
			return
		}
	}

	if err := h.Backend.DeletePost(c.Request.Context(), id); err != nil {
		h.backendError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/my-posts")
}

// backendError surfaces a post store failure as a distinguishable 502; the
// store's error body is never relayed.
func (h *WebHandler) backendError(c *gin.Context, err error) {
	h.Logger.WithError(err).Error("post store call failed")
	c.HTML(http.StatusBadGateway, "error.html", gin.H{"Message": "The post service is currently unavailable"})
}
