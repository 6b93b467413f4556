package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/shopwish/shopwish-api/internal/domain/repository"
	handlers "github.com/shopwish/shopwish-api/internal/interface/http"
	"github.com/shopwish/shopwish-api/internal/interface/middleware"
	"github.com/shopwish/shopwish-api/pkg/helpers"
)

// AdminModule gates product management and order approval behind the
// admin role. Role is re-checked against the database on every request.
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
	Users   repository.UserRepository
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager, users repository.UserRepository) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt, Users: users}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.JWT))
	admin.Use(middleware.RequireAdmin(m.Users))
	{
		admin.POST("/products", m.Handler.CreateProduct)
		admin.PUT("/products/:id", m.Handler.UpdateProduct)
		admin.DELETE("/products/:id", m.Handler.DeleteProduct)
		admin.POST("/products/:id/image", m.Handler.UploadProductImage)

		admin.GET("/orders", m.Handler.ListOrders)
		admin.PUT("/orders/:id/approve", m.Handler.ApproveOrder)
	}
}
