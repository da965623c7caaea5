package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	handlers "blog-gateway/internal/interface/http"
	"blog-gateway/internal/interface/middleware"
	"blog-gateway/internal/session"
)

// WebModule wires the gateway surface: the session gate runs on every route,
// RequireAuth gates the post pages, and the credential endpoints carry an
// IP+path rate limit (nil redis disables it).
type WebModule struct {
	Handler  *handlers.WebHandler
	Sessions session.Store
	RDB      *redis.Client
	Logger   *logrus.Logger
}

func NewWebModule(h *handlers.WebHandler, sessions session.Store, rdb *redis.Client, logger *logrus.Logger) *WebModule {
	return &WebModule{Handler: h, Sessions: sessions, RDB: rdb, Logger: logger}
}

func (m *WebModule) Register(rg *gin.RouterGroup) {
	rg.Use(middleware.SessionGate(m.Sessions, m.Logger))

	credLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIPAndPath())

	rg.GET("/", m.Handler.Index)
	rg.GET("/login", m.Handler.LoginForm)
	rg.GET("/sign-up", m.Handler.SignUpForm)
	rg.POST("/login", credLimiter, m.Handler.Login)
	rg.POST("/sign-up", credLimiter, m.Handler.SignUp)
	rg.GET("/logout", m.Handler.Logout)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth())
	{
		auth.GET("/posts", m.Handler.Posts)
		auth.GET("/my-posts", m.Handler.MyPosts)
		auth.GET("/new-post", m.Handler.NewPostForm)
		auth.POST("/new-post", m.Handler.NewPost)
		auth.GET("/delete/:id", m.Handler.DeletePost)
	}
}
