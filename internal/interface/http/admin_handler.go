package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shopwish/shopwish-api/internal/application"
	"github.com/shopwish/shopwish-api/pkg/response"
	"github.com/shopwish/shopwish-api/pkg/validation"
)

// AdminHandler groups the admin-only catalog and order operations. Routes
// using it sit behind the auth and admin middlewares.
type AdminHandler struct {
	Catalog *application.CatalogService
	Orders  *application.OrderService
	Logger  *logrus.Logger
}

func NewAdminHandler(catalog *application.CatalogService, orders *application.OrderService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Catalog: catalog, Orders: orders, Logger: logger}
}

type productRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url" binding:"omitempty,url"`
}

func (r productRequest) input() application.ProductInput {
	return application.ProductInput{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

// CreateProduct POST /api/admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Catalog.Create(c.Request.Context(), req.input())
	if err != nil {
		h.Logger.WithError(err).Error("create product failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create product", nil)
		return
	}
	response.Success(c, http.StatusCreated, p, "product created", nil)
}

// UpdateProduct PUT /api/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Catalog.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
			return
		}
		h.Logger.WithError(err).Error("update product failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to update product", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "product updated", nil)
}

// DeleteProduct DELETE /api/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.Catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete product failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to delete product", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "product deleted", nil)
}

// UploadProductImage POST /api/admin/products/:id/image (multipart field "image")
func (h *AdminHandler) UploadProductImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing image file", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable image file", nil)
		return
	}
	defer f.Close()

	url, err := h.Catalog.UploadImage(c.Request.Context(), c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrProductNotFound):
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
		case errors.Is(err, application.ErrUploadsDisabled):
			response.Error[any](c, http.StatusServiceUnavailable, "image uploads not configured", nil)
		default:
			h.Logger.WithError(err).Error("upload product image failed")
			response.Error[any](c, http.StatusInternalServerError, "failed to upload image", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"image_url": url}, "image uploaded", nil)
}

// ListOrders GET /api/admin/orders — every order across all users.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list all orders failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load orders", nil)
		return
	}
	response.Success(c, http.StatusOK, orders, "orders", nil)
}

// ApproveOrder PUT /api/admin/orders/:id/approve
func (h *AdminHandler) ApproveOrder(c *gin.Context) {
	order, err := h.Orders.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrOrderNotFound) {
			response.Error[any](c, http.StatusNotFound, "order not found", nil)
			return
		}
		h.Logger.WithError(err).Error("approve order failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to approve order", nil)
		return
	}
	response.Success(c, http.StatusOK, order, "order approved", nil)
}
