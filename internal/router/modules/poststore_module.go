package modules

import (
	"github.com/gin-gonic/gin"

	handlers "blog-gateway/internal/interface/http"
)

// PostStoreModule registers the data tier's JSON CRUD routes.
type PostStoreModule struct {
	Handler *handlers.PostStoreHandler
}

func NewPostStoreModule(h *handlers.PostStoreHandler) *PostStoreModule {
	return &PostStoreModule{Handler: h}
}

func (m *PostStoreModule) Register(rg *gin.RouterGroup) {
	rg.GET("/posts", m.Handler.List)
	rg.GET("/my-posts/:user_id", m.Handler.ListByUser)
	rg.GET("/posts/:id", m.Handler.Get)
	rg.POST("/posts", m.Handler.Create)
	rg.DELETE("/posts/:id", m.Handler.Delete)
}
