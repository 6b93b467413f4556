package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shopwish/shopwish-api/internal/application"
	"github.com/shopwish/shopwish-api/internal/interface/middleware"
	"github.com/shopwish/shopwish-api/pkg/response"
	"github.com/shopwish/shopwish-api/pkg/validation"
)

type WishlistHandler struct {
	Svc    *application.WishlistService
	Logger *logrus.Logger
}

func NewWishlistHandler(svc *application.WishlistService, logger *logrus.Logger) *WishlistHandler {
	return &WishlistHandler{Svc: svc, Logger: logger}
}

type addWishlistRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}

// List GET /api/wishlist
func (h *WishlistHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	items, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("list wishlist failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load wishlist", nil)
		return
	}
	response.Success(c, http.StatusOK, items, "wishlist", nil)
}

// Count GET /api/wishlist/count
func (h *WishlistHandler) Count(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	n, err := h.Svc.Count(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("count wishlist failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to count wishlist", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": n}, "wishlist count", nil)
}

// Add POST /api/wishlist
func (h *WishlistHandler) Add(c *gin.Context) {
	var req addWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	item, err := h.Svc.Add(c.Request.Context(), uid, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAlreadyInWishlist):
			response.Error[any](c, http.StatusConflict, "product already in wishlist", nil)
		case errors.Is(err, application.ErrProductNotFound):
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
		default:
			h.Logger.WithError(err).Error("add to wishlist failed")
			response.Error[any](c, http.StatusInternalServerError, "failed to add to wishlist", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, item, "added to wishlist", nil)
}

// Remove DELETE /api/wishlist/:productId
func (h *WishlistHandler) Remove(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	item, err := h.Svc.Remove(c.Request.Context(), uid, c.Param("productId"))
	if err != nil {
		if errors.Is(err, application.ErrNotInWishlist) {
			response.Error[any](c, http.StatusNotFound, "product not in wishlist", nil)
			return
		}
		h.Logger.WithError(err).Error("remove from wishlist failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to remove from wishlist", nil)
		return
	}
	response.Success(c, http.StatusOK, item, "removed from wishlist", nil)
}
