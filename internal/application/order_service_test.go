package application

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwish/shopwish-api/internal/domain/entity"
	"github.com/shopwish/shopwish-api/internal/domain/repository"
)

// stubOrderRepo records Create arguments and plays back canned results.
type stubOrderRepo struct {
	createOrder *entity.Order
	createErr   error

	gotProductID string
	gotQuantity  int
	gotPayment   string

	approveOrder *entity.Order
	approveErr   error
}

func (r *stubOrderRepo) Create(ctx context.Context, userID, productID string, quantity int, paymentMethod string) (*entity.Order, error) {
	r.gotProductID = productID
	r.gotQuantity = quantity
	r.gotPayment = paymentMethod
	if r.createErr != nil {
		return nil, r.createErr
	}
	o := *r.createOrder
	o.UserID = userID
	o.ProductID = productID
	o.Quantity = quantity
	o.PaymentMethod = paymentMethod
	o.TotalPrice = o.ProductPrice * float64(quantity)
	return &o, nil
}

func (r *stubOrderRepo) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) ListAll(ctx context.Context) ([]entity.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) Approve(ctx context.Context, id string) (*entity.Order, error) {
	return r.approveOrder, r.approveErr
}

func intPtr(n int) *int { return &n }

func newOrderService(orders repository.OrderRepository) *OrderService {
	return NewOrderService(orders, newStubUserRepo(), logrus.New(), nil)
}

func TestCreateOrderDefaults(t *testing.T) {
	repo := &stubOrderRepo{createOrder: &entity.Order{
		ID:           "order-1",
		ProductName:  "Headphones",
		ProductPrice: 100000,
		Status:       entity.OrderStatusInProgress,
		OrderDate:    time.Now(),
	}}
	svc := newOrderService(repo)

	o, err := svc.Create(context.Background(), "user-1", OrderInput{ProductID: "prod-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.gotQuantity)
	assert.Equal(t, entity.PaymentBankTransfer, repo.gotPayment)
	assert.Equal(t, 100000.0, o.TotalPrice)
	assert.Equal(t, entity.OrderStatusInProgress, o.Status)
}

func TestCreateOrderQuantityMultipliesPrice(t *testing.T) {
	repo := &stubOrderRepo{createOrder: &entity.Order{
		ProductName:  "Headphones",
		ProductPrice: 100000,
		Status:       entity.OrderStatusInProgress,
	}}
	svc := newOrderService(repo)

	o, err := svc.Create(context.Background(), "user-1", OrderInput{
		ProductID:     "prod-1",
		Quantity:      intPtr(2),
		PaymentMethod: entity.PaymentEWallet,
	})
	require.NoError(t, err)
	assert.Equal(t, 200000.0, o.TotalPrice)
	assert.Equal(t, entity.PaymentEWallet, o.PaymentMethod)
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	svc := newOrderService(&stubOrderRepo{})

	_, err := svc.Create(context.Background(), "user-1", OrderInput{
		ProductID: "prod-1",
		Quantity:  intPtr(0),
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCreateOrderRejectsUnknownPayment(t *testing.T) {
	svc := newOrderService(&stubOrderRepo{})

	_, err := svc.Create(context.Background(), "user-1", OrderInput{
		ProductID:     "prod-1",
		PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestCreateOrderProductGone(t *testing.T) {
	svc := newOrderService(&stubOrderRepo{createErr: repository.ErrNotFound})

	_, err := svc.Create(context.Background(), "user-1", OrderInput{ProductID: "prod-missing"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestApproveOrderNotFound(t *testing.T) {
	svc := newOrderService(&stubOrderRepo{approveErr: repository.ErrNotFound})

	_, err := svc.Approve(context.Background(), "order-missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestApproveCompletedOrderIsNoOp(t *testing.T) {
	svc := newOrderService(&stubOrderRepo{approveOrder: &entity.Order{
		ID:     "order-1",
		Status: entity.OrderStatusCompleted,
	}})

	o, err := svc.Approve(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, o.Status)
}
