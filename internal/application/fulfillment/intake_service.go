package fulfillment

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/dropship/bridge/internal/domain/fulfillment"
)

// ProviderClient is the outbound port to the fulfillment provider. The
// dropship infrastructure adapter implements it.
type ProviderClient interface {
	SubmitOrder(ctx context.Context, order *domain.Order) domain.SubmissionOutcome
	FetchOrders(ctx context.Context) domain.RetrievalResult
	Probe(ctx context.Context) error
}

// Acknowledgment is the body returned to the webhook source. Received
// reports that the event was consumed; Success reports whether the
// provider accepted the forwarded order.
type Acknowledgment struct {
	Received    bool   `json:"received"`
	Success     bool   `json:"success"`
	OrderNumber int64  `json:"order_number,omitempty"`
	Message     string `json:"message,omitempty"`
}

// IntakeService forwards incoming order-creation events to the provider.
type IntakeService struct {
	provider ProviderClient
	logger   *zap.Logger
}

func NewIntakeService(provider ProviderClient, logger *zap.Logger) *IntakeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeService{
		provider: provider,
		logger:   logger.Named("intake"),
	}
}

// ProcessOrderCreated validates the decoded event and submits it to the
// provider. A provider rejection is reported in the acknowledgment, not
// as an error; an error return means the event itself was unusable.
func (s *IntakeService) ProcessOrderCreated(ctx context.Context, order *domain.Order) (Acknowledgment, error) {
	if order == nil || order.OrderNumber == 0 {
		return Acknowledgment{}, domain.ErrMalformedOrderEvent
	}

	// Correlation id ties the intake log lines to the provider call
	eventID := uuid.NewString()
	s.logger.Info("processing order-created event",
		zap.String("event_id", eventID),
		zap.Int64("order_number", order.OrderNumber),
		zap.Int("line_items", len(order.LineItems)))

	outcome := s.provider.SubmitOrder(ctx, order)

	if !outcome.Success {
		s.logger.Warn("provider rejected order",
			zap.String("event_id", eventID),
			zap.Int64("order_number", order.OrderNumber),
			zap.String("error", outcome.Error))
	}

	ack := Acknowledgment{
		Received:    true,
		Success:     outcome.Success,
		OrderNumber: order.OrderNumber,
	}
	if outcome.Success {
		ack.Message = outcome.OrderID
	} else {
		ack.Message = outcome.Error
	}
	return ack, nil
}
