package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<div style="font-family:sans-serif;max-width:560px;margin:0 auto">
  <h2>Welcome to ShopWish, {{.Name}}!</h2>
  <p>Your account is ready. Browse the catalog, save products to your
  wishlist and order whenever you are ready.</p>
  <p>Happy shopping,<br>The ShopWish team</p>
</div>
`))

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(`
<div style="font-family:sans-serif;max-width:560px;margin:0 auto">
  <h2>Thanks for your order, {{.Name}}!</h2>
  <table style="width:100%;border-collapse:collapse">
    <tr><td>Product</td><td>{{.ProductName}}</td></tr>
    <tr><td>Quantity</td><td>{{.Quantity}}</td></tr>
    <tr><td>Total</td><td>{{printf "%.2f" .TotalPrice}}</td></tr>
    <tr><td>Payment</td><td>{{.PaymentMethod}}</td></tr>
  </table>
  <p>Your order is in progress. We will let you know once it is confirmed.</p>
</div>
`))

// OrderEmailData carries the order fields rendered into the confirmation
// email.
type OrderEmailData struct {
	Name          string
	ProductName   string
	Quantity      int
	TotalPrice    float64
	PaymentMethod string
}

// NewWelcomeJob builds the registration welcome email.
func NewWelcomeJob(to, name string) (EmailJob, error) {
	var buf bytes.Buffer
	if err := welcomeTmpl.Execute(&buf, struct{ Name string }{Name: name}); err != nil {
		return EmailJob{}, err
	}
	return EmailJob{
		To:      to,
		Subject: "Welcome to ShopWish",
		Text:    fmt.Sprintf("Welcome to ShopWish, %s!", name),
		HTML:    buf.String(),
	}, nil
}

// NewOrderConfirmationJob builds the order confirmation email.
func NewOrderConfirmationJob(to string, data OrderEmailData) (EmailJob, error) {
	var buf bytes.Buffer
	if err := orderConfirmationTmpl.Execute(&buf, data); err != nil {
		return EmailJob{}, err
	}
	return EmailJob{
		To:      to,
		Subject: fmt.Sprintf("Order received: %s", data.ProductName),
		Text: fmt.Sprintf("Thanks for your order, %s! %d x %s, total %.2f via %s.",
			data.Name, data.Quantity, data.ProductName, data.TotalPrice, data.PaymentMethod),
		HTML: buf.String(),
	}, nil
}
