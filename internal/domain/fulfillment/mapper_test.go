package fulfillment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Product Bucket Tests
// ---------------------------------------------------------------------------

func TestMapProductBucket(t *testing.T) {
	t.Run("all items carry SKUs", func(t *testing.T) {
		items := []LineItem{
			{SKU: "ABC-1", VariantTitle: "M", Quantity: 2},
			{SKU: "ABC-2", VariantTitle: "L", Quantity: 1},
			{SKU: "ABC-3", VariantTitle: "XL", Quantity: 3},
		}

		bucket := MapProductBucket(items)

		require.Len(t, bucket, 3)
		assert.Equal(t, BucketEntry{SKU: "ABC-1", Size: "M", Qty: 2}, bucket[0])
		assert.Equal(t, BucketEntry{SKU: "ABC-2", Size: "L", Qty: 1}, bucket[1])
		assert.Equal(t, BucketEntry{SKU: "ABC-3", Size: "XL", Qty: 3}, bucket[2])
	})

	t.Run("items without SKU are dropped and do not consume an index", func(t *testing.T) {
		items := []LineItem{
			{SKU: "", Title: "gift wrap", Quantity: 1},
			{SKU: "ABC-1", VariantTitle: "M", Quantity: 2},
			{SKU: "", Title: "note card", Quantity: 1},
			{SKU: "ABC-2", VariantTitle: "L", Quantity: 1},
		}

		bucket := MapProductBucket(items)

		require.Len(t, bucket, 2)
		// Indices stay dense from zero over the retained items
		assert.Equal(t, "ABC-1", bucket[0].SKU)
		assert.Equal(t, "ABC-2", bucket[1].SKU)
		_, hasGap := bucket[2]
		assert.False(t, hasGap)
	})

	t.Run("missing variant label falls back to default size", func(t *testing.T) {
		items := []LineItem{{SKU: "ABC-1", Quantity: 1}}

		bucket := MapProductBucket(items)

		require.Len(t, bucket, 1)
		assert.Equal(t, DefaultSizeLabel, bucket[0].Size)
	})

	t.Run("no items yields empty bucket", func(t *testing.T) {
		assert.Empty(t, MapProductBucket(nil))
		assert.Empty(t, MapProductBucket([]LineItem{}))
	})

	t.Run("bucket size equals count of SKU-bearing items", func(t *testing.T) {
		items := []LineItem{
			{SKU: "A", Quantity: 1},
			{SKU: "", Quantity: 1},
			{SKU: "B", Quantity: 1},
			{SKU: "C", Quantity: 1},
			{SKU: "", Quantity: 1},
		}

		bucket := MapProductBucket(items)

		assert.Len(t, bucket, 3)
		for i := 0; i < len(bucket); i++ {
			_, ok := bucket[i]
			assert.True(t, ok, "index %d must be present", i)
		}
	})
}

// ---------------------------------------------------------------------------
// Address Mapping Tests
// ---------------------------------------------------------------------------

func TestMapShippingAddress(t *testing.T) {
	t.Run("nil address fails", func(t *testing.T) {
		fields, err := MapShippingAddress(nil)
		assert.ErrorIs(t, err, ErrMissingShippingAddress)
		assert.Nil(t, fields)
	})

	t.Run("full address maps with s_ prefix", func(t *testing.T) {
		addr := &Address{
			FirstName: "Jane",
			LastName:  "Doe",
			Company:   "Acme Ltd",
			Address1:  "1 Main St",
			Address2:  "Suite 4",
			City:      "Springfield",
			Province:  "IL",
			Country:   "United States",
			Zip:       "62704",
			Phone:     "555-0100",
		}

		fields, err := MapShippingAddress(addr)
		require.NoError(t, err)

		assert.Equal(t, "Jane", fields["s_first_name"])
		assert.Equal(t, "Doe", fields["s_last_name"])
		assert.Equal(t, "Acme Ltd", fields["s_company"])
		assert.Equal(t, "1 Main St", fields["s_address_1"])
		assert.Equal(t, "Suite 4", fields["s_address_2"])
		assert.Equal(t, "Springfield", fields["s_city"])
		assert.Equal(t, "IL", fields["s_state"])
		assert.Equal(t, "United States", fields["s_country_name"])
		assert.Equal(t, "62704", fields["s_zip_code"])
		assert.Equal(t, "555-0100", fields["s_contact_no"])
		assert.Equal(t, "jane@customer.com", fields["s_email"])
	})

	t.Run("missing optional subfields map to empty strings", func(t *testing.T) {
		addr := &Address{FirstName: "Jane", City: "Springfield"}

		fields, err := MapShippingAddress(addr)
		require.NoError(t, err)

		// All keys present, empty values for missing data
		assert.Len(t, fields, 11)
		assert.Equal(t, "", fields["s_company"])
		assert.Equal(t, "", fields["s_address_2"])
		assert.Equal(t, "", fields["s_contact_no"])
	})

	t.Run("no first name yields empty synthesized email", func(t *testing.T) {
		addr := &Address{LastName: "Doe"}

		fields, err := MapShippingAddress(addr)
		require.NoError(t, err)
		assert.Equal(t, "", fields["s_email"])
	})
}

func TestMapBillingAddress(t *testing.T) {
	t.Run("nil address fails", func(t *testing.T) {
		fields, err := MapBillingAddress(nil)
		assert.ErrorIs(t, err, ErrMissingBillingAddress)
		assert.Nil(t, fields)
	})

	t.Run("full address maps with b_ prefix", func(t *testing.T) {
		addr := &Address{FirstName: "John", LastName: "Smith", City: "Boston"}

		fields, err := MapBillingAddress(addr)
		require.NoError(t, err)

		assert.Equal(t, "John", fields["b_first_name"])
		assert.Equal(t, "Smith", fields["b_last_name"])
		assert.Equal(t, "Boston", fields["b_city"])
		assert.Equal(t, "john@customer.com", fields["b_email"])
	})
}

// ---------------------------------------------------------------------------
// Order Helper Tests
// ---------------------------------------------------------------------------

func TestLogisticMethod(t *testing.T) {
	// Fixed carrier label regardless of order content
	assert.Equal(t, DefaultLogisticMethod, LogisticMethod(&Order{}))
	assert.Equal(t, DefaultLogisticMethod, LogisticMethod(&Order{
		LineItems: []LineItem{{SKU: "A", Quantity: 10, Price: decimal.NewFromInt(5)}},
	}))
}

func TestCustomerEmail(t *testing.T) {
	tests := []struct {
		name     string
		order    *Order
		expected string
	}{
		{
			name:     "order-level email preferred",
			order:    &Order{Email: "order@example.com", Customer: &Customer{Email: "cust@example.com"}},
			expected: "order@example.com",
		},
		{
			name:     "falls back to customer record",
			order:    &Order{Customer: &Customer{Email: "cust@example.com"}},
			expected: "cust@example.com",
		},
		{
			name:     "empty when neither present",
			order:    &Order{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CustomerEmail(tt.order))
		})
	}
}

func TestCustomerPO(t *testing.T) {
	order := &Order{OrderNumber: 12345}

	po := CustomerPO(order)
	assert.Equal(t, "PO-SHOPIFY-12345", po)

	// Deterministic and idempotent under repeated calls
	assert.Equal(t, po, CustomerPO(order))
	assert.Equal(t, po, CustomerPO(&Order{OrderNumber: 12345}))
}
