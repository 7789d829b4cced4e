package entity

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/DioGolang/acme/pkg/email"
)

const (
	OrderHeader     = "Order from Acme, Inc"
	OrderSubject    = "New Order"
	ShortDateLayout = "1/2/2006"
)

type Vendor struct {
	VendorID    int
	CompanyName string
	Email       string

	mailer email.Sender
}

// UseSender routes the vendor's messages through s instead of the stub
// transport.
func (v *Vendor) UseSender(s email.Sender) *Vendor {
	v.mailer = s
	return v
}

func (v *Vendor) sender() email.Sender {
	if v.mailer == nil {
		return email.NewService()
	}
	return v.mailer
}

// PlaceOrder composes the order text for product and hands it to the
// transport. A nil product is rejected before any text is built.
func (v *Vendor) PlaceOrder(product *Product, quantity int, opts ...OrderOption) (OperationResult[bool], error) {
	if product == nil {
		return OperationResult[bool]{}, ErrProductIsRequired
	}
	options := newOrderOptions(opts)

	lines := []string{
		OrderHeader,
		"Product: " + product.Name,
		"Quantity: " + strconv.Itoa(quantity),
	}
	if options.deliverBy != nil {
		lines = append(lines, "Deliver By: "+options.deliverBy.Format(ShortDateLayout))
	}
	lines = append(lines, "Instructions: "+options.instructions)

	orderText := strings.Join(lines, "\n")
	confirmation := v.sender().SendMessage(OrderSubject, orderText, v.Email)

	return NewOperationResult(email.Confirmed(confirmation), orderText), nil
}

func (v *Vendor) SendWelcomeEmail(messageBody string) string {
	subject := strings.TrimSpace("Hello " + v.CompanyName)
	return v.sender().SendMessage(subject, messageBody, v.Email)
}

// SendEmail sends messageBody to every vendor in iteration order and returns
// one confirmation per vendor.
func SendEmail(vendors iter.Seq[*Vendor], messageBody string) []string {
	confirmations := make([]string, 0)
	for v := range vendors {
		subject := "Important message for: " + v.CompanyName
		confirmations = append(confirmations, v.sender().SendMessage(subject, messageBody, v.Email))
	}
	return confirmations
}

func (v *Vendor) String() string {
	return fmt.Sprintf("Vendor: %s (%d)", v.CompanyName, v.VendorID)
}
