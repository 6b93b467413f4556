package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/shopwish/shopwish-api/internal/interface/http"
)

// CatalogModule exposes the public product routes. No auth required.
type CatalogModule struct {
	Handler *handlers.ProductHandler
}

func NewCatalogModule(h *handlers.ProductHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products", m.Handler.List)
	rg.GET("/products/search", m.Handler.Search)
}
