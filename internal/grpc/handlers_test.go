package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	pb "github.com/clinicq/dispatch-server/api/v1"
	"github.com/clinicq/dispatch-server/internal/grpc/mocks"
	"github.com/clinicq/dispatch-server/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestHandlers(dispatch DispatchService, cache Cacher) *GRPCHandlers {
	return NewGRPCHandlers(dispatch, cache, zap.NewNop(), time.Second)
}

// TestNewGRPCHandlers tests the constructor
func TestNewGRPCHandlers(t *testing.T) {
	t.Run("nil dispatch panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewGRPCHandlers(nil, &mocks.MockCacher{}, zap.NewNop(), time.Second)
		})
	})

	t.Run("non-positive TTL gets the default", func(t *testing.T) {
		h := NewGRPCHandlers(&mocks.MockDispatchService{}, &mocks.MockCacher{}, zap.NewNop(), 0)
		assert.Equal(t, defaultPreviewTTL, h.previewTTL)
	})

	t.Run("explicit TTL is kept", func(t *testing.T) {
		h := NewGRPCHandlers(&mocks.MockDispatchService{}, &mocks.MockCacher{}, zap.NewNop(), 7*time.Second)
		assert.Equal(t, 7*time.Second, h.previewTTL)
	})
}

func TestPreviewKey(t *testing.T) {
	assert.Equal(t, "grpc:queue_preview:queue", previewKey(cacheKeyQueuePreview, ""))
	assert.Equal(t, "grpc:queue_preview:agent:doc-1", previewKey(cacheKeyQueuePreview, "doc-1"))
}

func TestCallNext(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the dispatched snapshot", func(t *testing.T) {
		mockService := &mocks.MockDispatchService{
			CallNextFunc: func(ctx context.Context, in service.CallNextInput) (service.DispatchResult, error) {
				assert.Equal(t, "doc-1", in.AgentID)
				assert.Equal(t, "Dr. Adams", in.AgentName)
				assert.Equal(t, "Desk 3", in.Counter)
				return service.DispatchResult{Ticket: &service.TicketView{
					ID:            "t-1",
					DisplayNumber: "A001",
					Priority:      "normal",
					Counter:       "Desk 3",
					AgentName:     "Dr. Adams",
				}}, nil
			},
		}

		h := newTestHandlers(mockService, &mocks.MockCacher{})

		resp, err := h.CallNext(ctx, &pb.CallNextRequest{
			AgentId:   "doc-1",
			AgentName: "Dr. Adams",
			Counter:   "Desk 3",
		})

		assert.NoError(t, err)
		assert.Equal(t, "t-1", resp.GetTicket().GetId())
		assert.Equal(t, "A001", resp.GetTicket().GetDisplayNumber())
		assert.False(t, resp.GetAlreadyServing())
	})

	t.Run("propagates the already-serving guard", func(t *testing.T) {
		mockService := &mocks.MockDispatchService{
			CallNextFunc: func(ctx context.Context, in service.CallNextInput) (service.DispatchResult, error) {
				return service.DispatchResult{
					Ticket:         &service.TicketView{ID: "t-1"},
					AlreadyServing: true,
					Message:        "a ticket is already in service",
				}, nil
			},
		}

		h := newTestHandlers(mockService, &mocks.MockCacher{})

		resp, err := h.CallNext(ctx, &pb.CallNextRequest{})

		assert.NoError(t, err)
		assert.True(t, resp.GetAlreadyServing())
		assert.NotEmpty(t, resp.GetMessage())
	})

	t.Run("empty queue returns a message, not an error", func(t *testing.T) {
		mockService := &mocks.MockDispatchService{
			CallNextFunc: func(ctx context.Context, in service.CallNextInput) (service.DispatchResult, error) {
				return service.DispatchResult{Message: "no waiting tickets"}, nil
			},
		}

		h := newTestHandlers(mockService, &mocks.MockCacher{})

		resp, err := h.CallNext(ctx, &pb.CallNextRequest{})

		assert.NoError(t, err)
		assert.Nil(t, resp.GetTicket())
		assert.NotEmpty(t, resp.GetMessage())
	})

	t.Run("contention maps to Aborted", func(t *testing.T) {
		mockService := &mocks.MockDispatchService{
			CallNextFunc: func(ctx context.Context, in service.CallNextInput) (service.DispatchResult, error) {
				return service.DispatchResult{}, service.ErrDispatchContention
			},
		}

		h := newTestHandlers(mockService, &mocks.MockCacher{})

		_, err := h.CallNext(ctx, &pb.CallNextRequest{})

		assert.Equal(t, codes.Aborted, status.Code(err))
	})

	t.Run("storage failure maps to Internal", func(t *testing.T) {
		mockService := &mocks.MockDispatchService{
			CallNextFunc: func(ctx context.Context, in service.CallNextInput) (service.DispatchResult, error) {
				return service.DispatchResult{}, service.ErrStorageFailure
			},
		}

		h := newTestHandlers(mockService, &mocks.MockCacher{})

		_, err := h.CallNext(ctx, &pb.CallNextRequest{})

		st, ok := status.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, codes.Internal, st.Code())
		assert.Equal(t, "database error", st.Message())
	})
}

func TestTicketIDValidation(t *testing.T) {
	ctx := context.Background()
	h := newTestHandlers(&mocks.MockDispatchService{}, &mocks.MockCacher{})

	t.Run("RepeatCall", func(t *testing.T) {
		_, err := h.RepeatCall(ctx, &pb.RepeatCallRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("FinishTicket", func(t *testing.T) {
		_, err := h.FinishTicket(ctx, &pb.FinishRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("CancelTicket", func(t *testing.T) {
		_, err := h.CancelTicket(ctx, &pb.CancelRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("RepeatCall success", func(t *testing.T) {
		mockService := &mocks.MockDispatchService{
			RepeatCallFunc: func(ctx context.Context, ticketID string) error {
				assert.Equal(t, "t-1", ticketID)
				return nil
			},
		}

		h := newTestHandlers(mockService, &mocks.MockCacher{})

		_, err := h.RepeatCall(ctx, &pb.RepeatCallRequest{TicketId: "t-1"})
		assert.NoError(t, err)
	})

	t.Run("FinishTicket unknown ticket maps to NotFound", func(t *testing.T) {
		mockService := &mocks.MockDispatchService{
			FinishFunc: func(ctx context.Context, ticketID string) error {
				return service.ErrTicketNotFound
			},
		}

		h := newTestHandlers(mockService, &mocks.MockCacher{})

		_, err := h.FinishTicket(ctx, &pb.FinishRequest{TicketId: "missing"})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("CancelTicket success", func(t *testing.T) {
		mockService := &mocks.MockDispatchService{
			CancelFunc: func(ctx context.Context, ticketID string) error {
				return nil
			},
		}

		h := newTestHandlers(mockService, &mocks.MockCacher{})

		_, err := h.CancelTicket(ctx, &pb.CancelRequest{TicketId: "t-1"})
		assert.NoError(t, err)
	})
}

func TestQueuePreview(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss fetches from the service", func(t *testing.T) {
		serviceCalls := 0
		mockService := &mocks.MockDispatchService{
			QueuePreviewFunc: func(ctx context.Context, agentID string) ([]service.TicketView, error) {
				serviceCalls++
				assert.Equal(t, "doc-1", agentID)
				return []service.TicketView{{ID: "t-1", DisplayNumber: "A001"}}, nil
			},
		}
		mockCache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				return redis.Nil
			},
		}

		h := newTestHandlers(mockService, mockCache)

		resp, err := h.QueuePreview(ctx, &pb.QueuePreviewRequest{AgentId: "doc-1"})

		assert.NoError(t, err)
		assert.Len(t, resp.GetTickets(), 1)
		assert.Equal(t, "t-1", resp.GetTickets()[0].GetId())
		assert.Equal(t, 1, serviceCalls)
	})

	t.Run("cache hit skips the service", func(t *testing.T) {
		mockService := &mocks.MockDispatchService{
			QueuePreviewFunc: func(ctx context.Context, agentID string) ([]service.TicketView, error) {
				t.Fatal("service must not be called on a cache hit")
				return nil, nil
			},
		}
		mockCache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				views, ok := dest.(*[]service.TicketView)
				assert.True(t, ok)
				*views = []service.TicketView{{ID: "cached", DisplayNumber: "A009"}}
				return nil
			},
		}

		h := newTestHandlers(mockService, mockCache)

		resp, err := h.QueuePreview(ctx, &pb.QueuePreviewRequest{})

		assert.NoError(t, err)
		assert.Len(t, resp.GetTickets(), 1)
		assert.Equal(t, "cached", resp.GetTickets()[0].GetId())
	})

	t.Run("cache error degrades to a miss", func(t *testing.T) {
		mockService := &mocks.MockDispatchService{
			QueuePreviewFunc: func(ctx context.Context, agentID string) ([]service.TicketView, error) {
				return []service.TicketView{{ID: "t-1"}}, nil
			},
		}
		mockCache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				return errors.New("connection refused")
			},
		}

		h := newTestHandlers(mockService, mockCache)

		resp, err := h.QueuePreview(ctx, &pb.QueuePreviewRequest{})

		assert.NoError(t, err)
		assert.Len(t, resp.GetTickets(), 1)
	})

	t.Run("service failure surfaces as Internal", func(t *testing.T) {
		mockService := &mocks.MockDispatchService{
			QueuePreviewFunc: func(ctx context.Context, agentID string) ([]service.TicketView, error) {
				return nil, service.ErrStorageFailure
			},
		}
		mockCache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				return redis.Nil
			},
		}

		h := newTestHandlers(mockService, mockCache)

		_, err := h.QueuePreview(ctx, &pb.QueuePreviewRequest{})

		assert.Equal(t, codes.Internal, status.Code(err))
	})
}

func TestHandleErrorContext(t *testing.T) {
	h := newTestHandlers(&mocks.MockDispatchService{}, &mocks.MockCacher{})

	t.Run("canceled context wins over the wrapped error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := h.handleError(ctx, "CallNext", service.ErrStorageFailure)

		assert.Equal(t, codes.Canceled, status.Code(err))
	})

	t.Run("expired deadline maps to DeadlineExceeded", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		err := h.handleError(ctx, "CallNext", service.ErrStorageFailure)

		assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
	})
}
