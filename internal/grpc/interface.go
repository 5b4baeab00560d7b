package grpc

import (
	"context"
	"time"

	"github.com/clinicq/dispatch-server/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

type DispatchService interface {
	CallNext(ctx context.Context, in service.CallNextInput) (service.DispatchResult, error)
	RepeatCall(ctx context.Context, ticketID string) error
	Finish(ctx context.Context, ticketID string) error
	Cancel(ctx context.Context, ticketID string) error
	QueuePreview(ctx context.Context, agentID string) ([]service.TicketView, error)
}
