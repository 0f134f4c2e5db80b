package fulfillment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/dropship/bridge/internal/domain/fulfillment"
)

// StatusService serves read-only views of provider-side order state.
type StatusService struct {
	provider ProviderClient
	logger   *zap.Logger
}

func NewStatusService(provider ProviderClient, logger *zap.Logger) *StatusService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusService{
		provider: provider,
		logger:   logger.Named("status"),
	}
}

// ListOrders fetches the current order list from the provider. Failures
// are carried inside the result so callers can render a degraded view
// instead of aborting.
func (s *StatusService) ListOrders(ctx context.Context) domain.RetrievalResult {
	result := s.provider.FetchOrders(ctx)
	if !result.Success {
		s.logger.Warn("order retrieval failed", zap.String("error", result.Error))
	}
	return result
}

// ProviderStatus probes provider reachability.
func (s *StatusService) ProviderStatus(ctx context.Context) error {
	return s.provider.Probe(ctx)
}
