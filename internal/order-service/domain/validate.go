package domain

import (
	"fmt"
	"math"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
)

const (
	maxCustomerName  = 100
	maxCustomerEmail = 200
	maxAddress       = 500
	maxPaymentMethod = 50
	maxNotes         = 1000
	maxProductName   = 200
	maxSKU           = 50
	maxImageURL      = 500
)

// MaxQuantity is the largest quantity a single line may carry.
const MaxQuantity = math.MaxInt32

type problems []string

func (p *problems) add(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

func (p *problems) required(field, value string, limit int) {
	value = strings.TrimSpace(value)
	if value == "" {
		p.add("%s is required", field)
		return
	}
	p.maxLen(field, value, limit)
}

func (p *problems) maxLen(field, value string, limit int) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > limit {
		p.add("%s must be at most %d characters", field, limit)
	}
}

// Validate checks every field of the draft and reports all problems at once.
func (d Draft) Validate() error {
	var p problems

	p.required("customerName", d.CustomerName, maxCustomerName)
	p.required("customerEmail", d.CustomerEmail, maxCustomerEmail)
	if email := strings.TrimSpace(d.CustomerEmail); email != "" && !validEmail(email) {
		p.add("customerEmail must be a valid email address")
	}
	p.required("shippingAddress", d.ShippingAddress, maxAddress)
	p.maxLen("billingAddress", d.BillingAddress, maxAddress)
	p.required("paymentMethod", d.PaymentMethod, maxPaymentMethod)
	p.maxLen("notes", d.Notes, maxNotes)

	if len(d.Items) == 0 {
		p.add("order must contain at least one item")
	}
	for i, it := range d.Items {
		field := func(name string) string { return fmt.Sprintf("orderItems[%d].%s", i, name) }
		if it.ProductID < 1 {
			p.add("%s must be a positive id", field("productId"))
		}
		p.required(field("productName"), it.ProductName, maxProductName)
		p.maxLen(field("sku"), it.SKU, maxSKU)
		p.maxLen(field("imageUrl"), it.ImageURL, maxImageURL)
		switch {
		case it.Quantity < 1:
			p.add("%s must be at least 1", field("quantity"))
		case it.Quantity > MaxQuantity:
			p.add("%s must be at most %d", field("quantity"), MaxQuantity)
		}
		switch {
		case !it.UnitPrice.IsPositive():
			p.add("%s must be greater than 0", field("unitPrice"))
		case !it.UnitPrice.Equal(it.UnitPrice.Truncate(currencyPlaces)):
			p.add("%s must have at most %d decimal places", field("unitPrice"), currencyPlaces)
		}
	}

	if len(p) > 0 {
		return apperr.Invalid(p...)
	}
	return nil
}

// validEmail accepts a bare RFC 5322 address, no display name.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
