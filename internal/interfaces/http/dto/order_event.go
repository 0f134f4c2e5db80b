package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dropship/bridge/internal/domain/fulfillment"
)

// OrderCreatedEvent is the order-creation webhook payload sent by the
// storefront. Only the fields the bridge forwards are decoded.
type OrderCreatedEvent struct {
	ID              int64         `json:"id"`
	OrderNumber     int64         `json:"order_number" binding:"required"`
	Email           string        `json:"email"`
	LineItems       []LineItem    `json:"line_items"`
	ShippingAddress *Address      `json:"shipping_address"`
	BillingAddress  *Address      `json:"billing_address"`
	Customer        *CustomerInfo `json:"customer"`
}

// LineItem is a purchased item within an order event.
type LineItem struct {
	SKU          string          `json:"sku"`
	Title        string          `json:"title"`
	VariantTitle string          `json:"variant_title"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

// Address is a shipping or billing address within an order event.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
}

// CustomerInfo is the customer record attached to an order event.
type CustomerInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ToDomain converts the decoded event into the domain order model.
func (e *OrderCreatedEvent) ToDomain() *fulfillment.Order {
	order := &fulfillment.Order{
		ID:          e.ID,
		OrderNumber: e.OrderNumber,
		Email:       e.Email,
	}
	for _, item := range e.LineItems {
		order.LineItems = append(order.LineItems, fulfillment.LineItem{
			SKU:          item.SKU,
			Title:        item.Title,
			VariantTitle: item.VariantTitle,
			Quantity:     item.Quantity,
			Price:        item.Price,
		})
	}
	order.ShippingAddress = e.ShippingAddress.toDomain()
	order.BillingAddress = e.BillingAddress.toDomain()
	if e.Customer != nil {
		order.Customer = &fulfillment.Customer{
			Email:     e.Customer.Email,
			FirstName: e.Customer.FirstName,
			LastName:  e.Customer.LastName,
		}
	}
	return order
}

func (a *Address) toDomain() *fulfillment.Address {
	if a == nil {
		return nil
	}
	return &fulfillment.Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Company:   a.Company,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		Province:  a.Province,
		Country:   a.Country,
		Zip:       a.Zip,
		Phone:     a.Phone,
	}
}
