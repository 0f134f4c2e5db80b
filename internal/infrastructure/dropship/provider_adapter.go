package dropship

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dropship/bridge/internal/domain/fulfillment"
)

// maxResponseSize is the maximum allowed response size from the provider (10MB)
const maxResponseSize = 10 * 1024 * 1024

var (
	// ErrProviderUnavailable indicates a network-level failure before any
	// usable response arrived
	ErrProviderUnavailable = errors.New("dropship: provider unavailable")
	// ErrProviderRequestFailed indicates the provider answered with an HTTP
	// error status
	ErrProviderRequestFailed = errors.New("dropship: provider request failed")
	// ErrInvalidResponse indicates the provider's response body could not be
	// parsed into the expected XML shape
	ErrInvalidResponse = errors.New("dropship: invalid provider response")
)

// Adapter is the HTTP client for the dropship provider API. It is
// constructed once at process start and shared by reference; it holds no
// per-request mutable state, so concurrent use is safe.
type Adapter struct {
	config      *Config
	httpClient  *http.Client
	probeClient *http.Client
	logger      *zap.Logger
}

// NewAdapter creates a provider adapter with the given configuration
func NewAdapter(config *Config, logger *zap.Logger) (*Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Adapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.SubmitTimeoutSeconds) * time.Second,
		},
		probeClient: &http.Client{
			Timeout: time.Duration(config.ProbeTimeoutSeconds) * time.Second,
		},
		logger: logger.Named("dropship"),
	}, nil
}

// ---------------------------------------------------------------------------
// Submission
// ---------------------------------------------------------------------------

// SubmitOrder submits one storefront order to the provider and returns a
// value-typed outcome. It never raises a fault to the caller: validation
// failures short-circuit before any network call, transport failures are
// folded into a failed outcome.
//
// Success is judged by HTTP status 200 alone (TrustHttpStatusOnly). The
// provider's in-band error contract is undocumented, so the body is not
// inspected on this path; a 200 carrying a business-level rejection would
// be reported as success.
func (a *Adapter) SubmitOrder(ctx context.Context, order *fulfillment.Order) fulfillment.SubmissionOutcome {
	if order == nil {
		return fulfillment.FailedSubmission(fulfillment.ErrMalformedOrderEvent)
	}

	form, err := a.buildSubmission(order)
	if err != nil {
		a.logger.Warn("Order rejected before submission",
			zap.Int64("order_number", order.OrderNumber),
			zap.Error(err),
		)
		return fulfillment.FailedSubmission(err)
	}

	po := fulfillment.CustomerPO(order)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.SubmitURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return fulfillment.FailedSubmission(fmt.Errorf("dropship: failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/xml")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Error("Order submission transport failure",
			zap.String("customer_po", po),
			zap.Error(err),
		)
		return fulfillment.FailedSubmission(fmt.Errorf("%w: %v", ErrProviderUnavailable, err))
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused; the body is not interpreted
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))

	if resp.StatusCode != http.StatusOK {
		a.logger.Warn("Order submission rejected",
			zap.String("customer_po", po),
			zap.Int("status", resp.StatusCode),
		)
		return fulfillment.FailedSubmission(fmt.Errorf("%w: HTTP %d", ErrProviderRequestFailed, resp.StatusCode))
	}

	a.logger.Info("Order submitted",
		zap.String("customer_po", po),
		zap.Int64("order_number", order.OrderNumber),
	)
	return fulfillment.SubmissionOutcome{
		Success: true,
		Message: "Order submitted for fulfillment",
		OrderID: po,
	}
}

// buildSubmission assembles the provider's form-encoded request body.
// Validation failures are returned before any field is written.
func (a *Adapter) buildSubmission(order *fulfillment.Order) (url.Values, error) {
	if len(order.LineItems) == 0 {
		return nil, fulfillment.ErrNoLineItems
	}

	shipping, err := fulfillment.MapShippingAddress(order.ShippingAddress)
	if err != nil {
		return nil, err
	}
	billing, err := fulfillment.MapBillingAddress(order.BillingAddress)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("uname", a.config.Username)
	form.Set("pass", a.config.Password)
	form.Set("email", fulfillment.CustomerEmail(order))
	form.Set("customer_po", fulfillment.CustomerPO(order))
	form.Set("Logistic", fulfillment.LogisticMethod(order))

	for k, v := range shipping {
		form.Set(k, v)
	}
	for k, v := range billing {
		form.Set(k, v)
	}

	bucket := fulfillment.MapProductBucket(order.LineItems)
	for i := 0; i < len(bucket); i++ {
		entry := bucket[i]
		key := "productBucket[" + strconv.Itoa(i) + "]"
		form.Set(key+"[sku]", entry.SKU)
		form.Set(key+"[size]", entry.Size)
		form.Set(key+"[qty]", strconv.Itoa(entry.Qty))
	}

	return form, nil
}

// ---------------------------------------------------------------------------
// Retrieval
// ---------------------------------------------------------------------------

// FetchOrders retrieves the provider's current order set and normalizes it.
// The provider takes no filters or pagination: the request body carries
// credentials only. Missing <order> nodes are a valid empty result; parse
// and transport failures yield a failed result with an empty list.
func (a *Adapter) FetchOrders(ctx context.Context) fulfillment.RetrievalResult {
	form := url.Values{}
	form.Set("uname", a.config.Username)
	form.Set("pass", a.config.Password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.OrdersURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return fulfillment.FailedRetrieval(fmt.Errorf("dropship: failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/xml")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Error("Order retrieval transport failure", zap.Error(err))
		return fulfillment.FailedRetrieval(fmt.Errorf("%w: %v", ErrProviderUnavailable, err))
	}
	defer resp.Body.Close()

	// Read the raw bytes; the payload is XML and must not be transformed
	// by any content-type driven decoding
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fulfillment.FailedRetrieval(fmt.Errorf("dropship: failed to read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		a.logger.Warn("Order retrieval rejected", zap.Int("status", resp.StatusCode))
		return fulfillment.FailedRetrieval(fmt.Errorf("%w: HTTP %d", ErrProviderRequestFailed, resp.StatusCode))
	}

	var doc ordersResponse
	if err := xml.Unmarshal(body, &doc); err != nil {
		a.logger.Error("Order retrieval parse failure", zap.Error(err))
		return fulfillment.FailedRetrieval(fmt.Errorf("%w: %v", ErrInvalidResponse, err))
	}

	orders := make([]fulfillment.FulfillmentOrder, 0, len(doc.Orders))
	for i := range doc.Orders {
		orders = append(orders, normalizeOrder(&doc.Orders[i]))
	}

	a.logger.Info("Orders retrieved", zap.Int("count", len(orders)))
	return fulfillment.RetrievalResult{Success: true, Orders: orders}
}

// ---------------------------------------------------------------------------
// Connectivity
// ---------------------------------------------------------------------------

// Probe performs a lightweight connectivity check against the provider
// root. It proves reachability only; it does not authenticate.
func (a *Adapter) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.config.BaseURL, nil)
	if err != nil {
		return fmt.Errorf("dropship: failed to create probe request: %w", err)
	}

	resp, err := a.probeClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: HTTP %d", ErrProviderRequestFailed, resp.StatusCode)
	}
	return nil
}
