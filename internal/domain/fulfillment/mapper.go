package fulfillment

import (
	"fmt"
	"strings"
)

// Pure mapping functions between the storefront order schema and the
// provider's form-encoded request schema. No I/O, no mutable state.

const (
	// DefaultSizeLabel is used when a line item has no variant label
	DefaultSizeLabel = "One Size"

	// DefaultLogisticMethod is the fixed carrier label sent with every
	// submission. LogisticMethod is the extension point for real
	// shipping-method mapping.
	DefaultLogisticMethod = "DTDC"

	// CustomerPOPrefix is prepended to the storefront order number to form
	// the correlation id between this system and the provider. The provider
	// does not return a usable order identifier synchronously, so the PO is
	// the only handle both sides share.
	CustomerPOPrefix = "PO-SHOPIFY-"

	// placeholderEmailDomain backs the synthesized contact email. The
	// storefront does not deliver a per-address email, so one is derived
	// from the recipient first name. Customization point: replace with real
	// contact data if the provider is confirmed to require a deliverable
	// address.
	placeholderEmailDomain = "@customer.com"
)

// BucketEntry is one product line in the outbound request's indexed bucket
type BucketEntry struct {
	SKU  string
	Size string
	Qty  int
}

// ProductBucket maps a dense, zero-based index to a product entry
type ProductBucket map[int]BucketEntry

// MapProductBucket converts line items into the provider's indexed bucket.
// Items without a SKU are dropped entirely: they do not consume an index and
// never reach the provider (DropUnskuedItems policy). Indices are positions
// in the filtered sequence, so the bucket is always dense from zero.
func MapProductBucket(items []LineItem) ProductBucket {
	bucket := make(ProductBucket)
	idx := 0
	for _, item := range items {
		if item.SKU == "" {
			continue
		}
		size := item.VariantTitle
		if size == "" {
			size = DefaultSizeLabel
		}
		bucket[idx] = BucketEntry{
			SKU:  item.SKU,
			Size: size,
			Qty:  item.Quantity,
		}
		idx++
	}
	return bucket
}

// MapShippingAddress renames address fields into the provider's s_-prefixed
// form keys. A nil address is a validation failure.
func MapShippingAddress(addr *Address) (map[string]string, error) {
	if addr == nil {
		return nil, ErrMissingShippingAddress
	}
	return mapAddress(addr, "s_"), nil
}

// MapBillingAddress renames address fields into the provider's b_-prefixed
// form keys. A nil address is a validation failure.
func MapBillingAddress(addr *Address) (map[string]string, error) {
	if addr == nil {
		return nil, ErrMissingBillingAddress
	}
	return mapAddress(addr, "b_"), nil
}

// mapAddress performs the 1:1 field rename. Missing optional subfields map
// to empty strings, never omitted keys, so the outbound form shape is stable.
func mapAddress(addr *Address, prefix string) map[string]string {
	return map[string]string{
		prefix + "first_name":   addr.FirstName,
		prefix + "last_name":    addr.LastName,
		prefix + "company":      addr.Company,
		prefix + "address_1":    addr.Address1,
		prefix + "address_2":    addr.Address2,
		prefix + "city":         addr.City,
		prefix + "state":        addr.Province,
		prefix + "country_name": addr.Country,
		prefix + "zip_code":     addr.Zip,
		prefix + "contact_no":   addr.Phone,
		prefix + "email":        contactEmail(addr),
	}
}

// contactEmail synthesizes a placeholder contact email from the recipient
// first name; empty when no first name is present.
func contactEmail(addr *Address) string {
	if addr.FirstName == "" {
		return ""
	}
	return strings.ToLower(addr.FirstName) + placeholderEmailDomain
}

// LogisticMethod returns the carrier label for an order. Currently fixed
// regardless of order content.
func LogisticMethod(_ *Order) string {
	return DefaultLogisticMethod
}

// CustomerEmail resolves the customer email for the outbound request:
// order-level email first, then the embedded customer record, else empty.
func CustomerEmail(o *Order) string {
	if o.Email != "" {
		return o.Email
	}
	if o.Customer != nil {
		return o.Customer.Email
	}
	return ""
}

// CustomerPO derives the deterministic purchase-order identifier for an
// order. Idempotent: the same order number always yields the same PO.
func CustomerPO(o *Order) string {
	return fmt.Sprintf("%s%d", CustomerPOPrefix, o.OrderNumber)
}
