package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shopwish/shopwish-api/internal/domain/entity"
	"github.com/shopwish/shopwish-api/internal/domain/repository"
	"github.com/shopwish/shopwish-api/pkg/mailer"
)

var (
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrOrderNotFound        = errors.New("order not found")
)

// OrderService creates and lists orders. Creation delegates atomicity to
// the repository transaction; validation and defaults live here.
type OrderService struct {
	Orders repository.OrderRepository
	Users  repository.UserRepository
	Logger *logrus.Logger
	Mail   *Mailer
}

func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, logger *logrus.Logger, mail *Mailer) *OrderService {
	return &OrderService{Orders: orders, Users: users, Logger: logger, Mail: mail}
}

// OrderInput carries checkout parameters. Quantity nil means "not sent"
// and defaults to 1; an explicit zero or negative quantity is rejected.
type OrderInput struct {
	ProductID     string
	Quantity      *int
	PaymentMethod string
}

func (s *OrderService) Create(ctx context.Context, userID string, in OrderInput) (*entity.Order, error) {
	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	payment := in.PaymentMethod
	if payment == "" {
		payment = entity.PaymentBankTransfer
	}
	if !entity.ValidPaymentMethod(payment) {
		return nil, ErrInvalidPaymentMethod
	}

	o, err := s.Orders.Create(ctx, userID, in.ProductID, quantity, payment)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{
				"user_id":    userID,
				"product_id": in.ProductID,
			}).Error("order transaction failed")
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	if u, uErr := s.Users.GetByID(ctx, userID); uErr == nil {
		s.Mail.SendOrderConfirmation(ctx, u.Email, mailer.OrderEmailData{
			Name:          u.Name,
			ProductName:   o.ProductName,
			Quantity:      o.Quantity,
			TotalPrice:    o.TotalPrice,
			PaymentMethod: o.PaymentMethod,
		})
	}
	return o, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]entity.Order, error) {
	return s.Orders.ListByUser(ctx, userID)
}

// ListAll returns every order across all users, newest first. Admin only;
// the gate sits in the HTTP layer.
func (s *OrderService) ListAll(ctx context.Context) ([]entity.Order, error) {
	return s.Orders.ListAll(ctx)
}

// Approve moves an order to completed. Approving a completed order is a
// no-op: the status is simply written again.
func (s *OrderService) Approve(ctx context.Context, id string) (*entity.Order, error) {
	o, err := s.Orders.Approve(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}
