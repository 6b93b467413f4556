package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/shopwish/shopwish-api/internal/interface/http"
	"github.com/shopwish/shopwish-api/internal/interface/middleware"
	"github.com/shopwish/shopwish-api/pkg/helpers"
)

type WishlistModule struct {
	Handler *handlers.WishlistHandler
	JWT     *helpers.JWTManager
}

func NewWishlistModule(h *handlers.WishlistHandler, jwt *helpers.JWTManager) *WishlistModule {
	return &WishlistModule{Handler: h, JWT: jwt}
}

func (m *WishlistModule) Register(rg *gin.RouterGroup) {
	wl := rg.Group("/wishlist")
	wl.Use(middleware.Auth(m.JWT))
	{
		wl.GET("", m.Handler.List)
		wl.GET("/count", m.Handler.Count)
		wl.POST("", m.Handler.Add)
		wl.DELETE("/:productId", m.Handler.Remove)
	}
}
