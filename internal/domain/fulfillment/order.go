package fulfillment

import (
	"github.com/shopspring/decimal"
)

// Order is the storefront order payload delivered once per order-creation
// event. It is constructed by the webhook layer and treated as immutable
// afterwards; this system never persists it.
type Order struct {
	// ID is the storefront's internal order identifier
	ID int64
	// OrderNumber is the human-facing order number shown to the customer
	OrderNumber int64
	// Email is the order-level customer email, when the storefront provides one
	Email string
	// LineItems is the ordered sequence of purchased items
	LineItems []LineItem
	// ShippingAddress is nil when the storefront omitted it
	ShippingAddress *Address
	// BillingAddress is nil when the storefront omitted it
	BillingAddress *Address
	// Customer is the embedded customer sub-record, when present
	Customer *Customer
}

// LineItem is a single purchased product line on a storefront order
type LineItem struct {
	// SKU is the merchant's stock keeping unit; may be empty for
	// unmapped products
	SKU string
	// Title is the display name of the product
	Title string
	// VariantTitle is the variant label (e.g. size or colour), may be empty
	VariantTitle string
	// Quantity is the number of units ordered
	Quantity int
	// Price is the unit price
	Price decimal.Decimal
}

// Address is a postal address attached to an order. Shipping and billing
// addresses share this shape; they differ only in the field-name prefix
// used in the outbound provider request.
type Address struct {
	FirstName string
	LastName  string
	Company   string
	Address1  string
	Address2  string
	City      string
	Province  string
	Country   string
	Zip       string
	Phone     string
}

// Customer is the customer sub-record embedded in an order event
type Customer struct {
	Email     string
	FirstName string
	LastName  string
}
