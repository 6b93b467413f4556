package entity

import "time"

// Order statuses. Status only ever moves in-progress -> completed.
const (
	OrderStatusInProgress = "in-progress"
	OrderStatusCompleted  = "completed"
)

// Payment methods accepted at checkout.
const (
	PaymentBankTransfer = "bank_transfer"
	PaymentEWallet      = "e_wallet"
	PaymentCOD          = "cod"
)

// ValidPaymentMethod reports whether m is one of the accepted payment methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentBankTransfer, PaymentEWallet, PaymentCOD:
		return true
	}
	return false
}

// Order is a purchase record. ProductName, ProductPrice and ProductImage are
// a snapshot taken at creation time; later catalog edits never touch them.
type Order struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	ProductPrice  float64   `json:"product_price"`
	ProductImage  string    `json:"product_image"`
	Quantity      int       `json:"quantity"`
	TotalPrice    float64   `json:"total_price"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	OrderDate     time.Time `json:"order_date"`
}
