package dropship

import (
	"encoding/xml"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dropship/bridge/internal/domain/fulfillment"
)

// ---------------------------------------------------------------------------
// Provider XML Response Types
// ---------------------------------------------------------------------------

// ordersResponse is the document returned by the order-retrieval endpoint.
// The provider emits one <order> element per order directly under
// <response>; a slice-typed field absorbs the single-node and multi-node
// shapes uniformly, so no runtime coercion is needed.
type ordersResponse struct {
	XMLName xml.Name        `xml:"response"`
	Orders  []providerOrder `xml:"order"`
}

// providerOrder is one order record as the provider reports it
type providerOrder struct {
	OrderNumber     string           `xml:"order_number"`
	OrderDate       string           `xml:"order_date"`
	OrderStatus     string           `xml:"order_status"`
	GrandTotal      string           `xml:"grand_total"`
	AWBN            string           `xml:"awbn"`
	ShippedOn       string           `xml:"shipped_on"`
	ShippedVia      string           `xml:"shipped_via"`
	PaymentStatus   string           `xml:"payment_status"`
	BillingShipping *providerAddress `xml:"order_billing_shipping"`
}

// providerAddress is the nested billing/shipping block. The provider only
// exposes shipping-prefixed name fields here.
type providerAddress struct {
	FirstName string `xml:"s_first_name"`
	LastName  string `xml:"s_last_name"`
	Company   string `xml:"s_company"`
	Email     string `xml:"s_email"`
}

// ---------------------------------------------------------------------------
// Normalization
// ---------------------------------------------------------------------------

const (
	// fallbackCustomerName is shown when the provider reports no recipient
	// name at all
	fallbackCustomerName = "N/A"
	// fallbackStatus is assumed when the provider omits the order status
	fallbackStatus = "pending"
)

// normalizeOrder converts one provider order record into the domain view.
// Per-order item detail is not reconstructable from this endpoint's schema,
// so Items is always empty; that is a known data gap, not something to mask.
func normalizeOrder(po *providerOrder) fulfillment.FulfillmentOrder {
	order := fulfillment.FulfillmentOrder{
		OrderNumber:    po.OrderNumber,
		OrderDate:      po.OrderDate,
		CustomerName:   fallbackCustomerName,
		Status:         fallbackStatus,
		Total:          ParseDecimal(po.GrandTotal),
		Items:          []fulfillment.ItemSummary{},
		TrackingNumber: po.AWBN,
		ShippedOn:      po.ShippedOn,
		ShippedVia:     po.ShippedVia,
		PaymentStatus:  po.PaymentStatus,
	}

	if po.OrderStatus != "" {
		order.Status = strings.ToLower(po.OrderStatus)
	}

	if bs := po.BillingShipping; bs != nil {
		if name := joinNonBlank(" ", bs.FirstName, bs.LastName); name != "" {
			order.CustomerName = name
		}
		order.CustomerEmail = bs.Email
		order.ShippingAddress = joinNonBlank(", ", bs.Company, bs.FirstName, bs.LastName)
	}

	return order
}

// joinNonBlank joins the trimmed non-empty parts with sep
func joinNonBlank(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, sep)
}

// ParseDecimal parses a provider amount string, returning zero for empty or
// invalid values
func ParseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
