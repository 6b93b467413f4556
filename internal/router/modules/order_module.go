package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/shopwish/shopwish-api/internal/interface/http"
	"github.com/shopwish/shopwish-api/internal/interface/middleware"
	"github.com/shopwish/shopwish-api/pkg/helpers"
)

type OrderModule struct {
	Handler *handlers.OrderHandler
	JWT     *helpers.JWTManager
}

func NewOrderModule(h *handlers.OrderHandler, jwt *helpers.JWTManager) *OrderModule {
	return &OrderModule{Handler: h, JWT: jwt}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.Auth(m.JWT))
	{
		orders.GET("", m.Handler.List)
		orders.POST("", m.Handler.Create)
	}
}
