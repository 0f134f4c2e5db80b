package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appfulfillment "github.com/dropship/bridge/internal/application/fulfillment"
	"github.com/dropship/bridge/internal/domain/fulfillment"
	"github.com/dropship/bridge/internal/interfaces/http/dto"
)

// WebhookHandler receives storefront webhook events
type WebhookHandler struct {
	BaseHandler
	intake *appfulfillment.IntakeService
	logger *zap.Logger
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(intake *appfulfillment.IntakeService, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{
		intake: intake,
		logger: logger.Named("webhook"),
	}
}

// RegisterRoutes registers webhook routes
func (h *WebhookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	webhooks := rg.Group("/webhooks")
	{
		webhooks.POST("/orders/create", h.OrderCreated)
	}
}

// OrderCreated handles the order-creation webhook. The response status
// signals redelivery to the source: a decoded event always gets 200 even
// when the provider rejects it, while an undecodable payload gets 400 and
// an internal fault gets 500 so the source retries.
func (h *WebhookHandler) OrderCreated(c *gin.Context) {
	var event dto.OrderCreatedEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		h.logger.Warn("undecodable order event", zap.Error(err))
		h.BadRequest(c, "invalid order event payload")
		return
	}

	ack, err := h.intake.ProcessOrderCreated(c.Request.Context(), event.ToDomain())
	if err != nil {
		if errors.Is(err, fulfillment.ErrMalformedOrderEvent) {
			h.BadRequest(c, err.Error())
			return
		}
		h.logger.Error("order intake failed", zap.Error(err))
		h.InternalError(c, "order intake failed")
		return
	}

	c.JSON(http.StatusOK, ack)
}
