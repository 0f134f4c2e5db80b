package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appfulfillment "github.com/dropship/bridge/internal/application/fulfillment"
)

// FulfillmentHandler exposes provider-side order state
type FulfillmentHandler struct {
	BaseHandler
	status *appfulfillment.StatusService
	logger *zap.Logger
}

// NewFulfillmentHandler creates a new FulfillmentHandler
func NewFulfillmentHandler(status *appfulfillment.StatusService, logger *zap.Logger) *FulfillmentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FulfillmentHandler{
		status: status,
		logger: logger.Named("fulfillment"),
	}
}

// RegisterRoutes registers fulfillment routes
func (h *FulfillmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/fulfillment")
	{
		orders.GET("/orders", h.ListOrders)
		orders.GET("/status", h.ProviderStatus)
	}
}

// ListOrders returns the provider's current order list. An empty provider
// response is a successful empty list; a retrieval failure surfaces as 502
// so callers can distinguish "no orders" from "provider down".
func (h *FulfillmentHandler) ListOrders(c *gin.Context) {
	result := h.status.ListOrders(c.Request.Context())
	if !result.Success {
		h.BadGateway(c, result.Error)
		return
	}
	h.Success(c, result.Orders)
}

// ProviderStatus reports whether the provider endpoint is reachable.
func (h *FulfillmentHandler) ProviderStatus(c *gin.Context) {
	if err := h.status.ProviderStatus(c.Request.Context()); err != nil {
		h.logger.Warn("provider probe failed", zap.Error(err))
		h.BadGateway(c, err.Error())
		return
	}
	h.Success(c, gin.H{"provider": "reachable"})
}
