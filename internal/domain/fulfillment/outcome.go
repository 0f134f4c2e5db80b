package fulfillment

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Fulfillment Errors
// ---------------------------------------------------------------------------

var (
	// Validation errors, raised before any provider call is made
	ErrMissingShippingAddress = errors.New("fulfillment: shipping address is required")
	ErrMissingBillingAddress  = errors.New("fulfillment: billing address is required")
	ErrNoLineItems            = errors.New("fulfillment: order has no line items")

	// ErrMalformedOrderEvent indicates the inbound event could not be
	// interpreted as an order at all; the event source should redeliver
	ErrMalformedOrderEvent = errors.New("fulfillment: malformed order event")
)

// ---------------------------------------------------------------------------
// SubmissionOutcome
// ---------------------------------------------------------------------------

// SubmissionOutcome is the value-typed result of one order submission to
// the provider. Clients return it instead of raising faults: validation and
// transport failures are folded into Success=false with Error populated.
type SubmissionOutcome struct {
	// Success is true iff the provider accepted the submission
	Success bool
	// Message is an optional human-readable note about the outcome
	Message string
	// OrderID is the correlation identifier for the submission, the
	// locally generated customer PO; empty on failure
	OrderID string
	// Error carries the validation or transport error text on failure
	Error string
}

// FailedSubmission builds a failed outcome from an error
func FailedSubmission(err error) SubmissionOutcome {
	return SubmissionOutcome{
		Success: false,
		Message: "Order could not be submitted for fulfillment",
		Error:   err.Error(),
	}
}

// ---------------------------------------------------------------------------
// Normalized provider-side orders (read path)
// ---------------------------------------------------------------------------

// FulfillmentOrder is the normalized view of one provider-side order,
// constructed transiently per retrieval call and never cached.
//
// Items is always empty in practice: the provider's retrieval schema does
// not carry per-order item detail in the observed payload shape. The field
// is kept so the view model does not change when the provider fixes this.
type FulfillmentOrder struct {
	OrderNumber   string          `json:"order_number"`
	OrderDate     string          `json:"order_date"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Status        string          `json:"status"`
	Total         decimal.Decimal `json:"total"`
	Items         []ItemSummary   `json:"items"`
	// ShippingAddress is a display string assembled from the provider's
	// billing/shipping block, not a structured address
	ShippingAddress string `json:"shipping_address"`
	TrackingNumber  string `json:"tracking_number,omitempty"`
	ShippedOn       string `json:"shipped_on,omitempty"`
	ShippedVia      string `json:"shipped_via,omitempty"`
	PaymentStatus   string `json:"payment_status,omitempty"`
}

// ItemSummary is a single item line in a normalized fulfillment order
type ItemSummary struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// RetrievalResult is the value-typed result of one provider order fetch.
// An empty Orders slice with Success=true means the provider currently has
// no orders, which is a valid terminal state distinct from a failed fetch.
type RetrievalResult struct {
	Success bool
	Orders  []FulfillmentOrder
	Error   string
}

// FailedRetrieval builds a failed result from an error
func FailedRetrieval(err error) RetrievalResult {
	return RetrievalResult{
		Success: false,
		Orders:  []FulfillmentOrder{},
		Error:   err.Error(),
	}
}
