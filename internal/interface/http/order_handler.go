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

type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type createOrderRequest struct {
	ProductID     string `json:"product_id" binding:"required,uuid"`
	Quantity      *int   `json:"quantity" binding:"omitempty"`
	PaymentMethod string `json:"payment_method" binding:"omitempty,oneof=bank_transfer e_wallet cod"`
}

// List GET /api/orders — orders of the authenticated user, newest first.
func (h *OrderHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	orders, err := h.Svc.ListForUser(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("list orders failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load orders", nil)
		return
	}
	response.Success(c, http.StatusOK, orders, "orders", nil)
}

// Create POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	order, err := h.Svc.Create(c.Request.Context(), uid, application.OrderInput{
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidQuantity):
			response.Error[any](c, http.StatusBadRequest, "quantity must be at least 1", nil)
		case errors.Is(err, application.ErrInvalidPaymentMethod):
			response.Error[any](c, http.StatusBadRequest, "unknown payment method", nil)
		case errors.Is(err, application.ErrProductNotFound):
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
		default:
			h.Logger.WithError(err).Error("create order failed")
			response.Error[any](c, http.StatusInternalServerError, "failed to create order", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, order, "order created", nil)
}
