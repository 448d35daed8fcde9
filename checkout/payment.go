package checkout

import (
	"context"
	"time"

	"github.com/NailaFatima/stylehub-go/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultProcessingDelay mirrors the simulated gateway latency.
const DefaultProcessingDelay = 3 * time.Second

// Processor simulates a payment gateway. Processing always succeeds
// after a fixed delay, but the wait is context-bound: if the caller is
// torn down mid-delay, cancelling the context aborts the operation and
// no order is produced.
type Processor struct {
	delay time.Duration
	log   *zap.Logger
}

// NewProcessor returns a processor with the given simulated delay.
func NewProcessor(delay time.Duration, log *zap.Logger) *Processor {
	if delay <= 0 {
		delay = DefaultProcessingDelay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{delay: delay, log: log}
}

// PaymentRequest is everything needed to settle a validated payment.
type PaymentRequest struct {
	Items        []models.CartItem
	Total        float64
	CustomerInfo models.CustomerInfo
	Method       PaymentMethod
}

// Process waits out the simulated gateway delay and constructs the
// order. Order ids are random UUIDs rather than wall-clock stamps, so
// rapid successive orders cannot collide.
func (p *Processor) Process(ctx context.Context, req PaymentRequest) (models.Order, error) {
	select {
	case <-time.After(p.delay):
	case <-ctx.Done():
		p.log.Info("payment cancelled", zap.Error(ctx.Err()))
		return models.Order{}, ctx.Err()
	}

	order := models.Order{
		ID:            NewOrderID(),
		Items:         req.Items,
		Total:         req.Total,
		CustomerInfo:  req.CustomerInfo,
		PaymentMethod: req.Method.Label(),
		OrderDate:     time.Now(),
	}
	p.log.Info("payment processed",
		zap.String("orderId", order.ID),
		zap.String("method", order.PaymentMethod),
		zap.Float64("total", order.Total))
	return order, nil
}

// NewOrderID mints a collision-resistant order identifier.
func NewOrderID() string {
	return "ORD-" + uuid.NewString()
}
