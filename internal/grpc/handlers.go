package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	pb "github.com/clinicq/dispatch-server/api/v1"
	"github.com/clinicq/dispatch-server/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultPreviewTTL  = 2 * time.Second
	defaultGRPCTimeout = 10 * time.Second
)

type CacheKeyType string

const cacheKeyQueuePreview CacheKeyType = "grpc:queue_preview"

type GRPCHandlers struct {
	pb.UnimplementedQueueDispatchServer
	dispatch   DispatchService
	cache      Cacher
	logger     *zap.Logger
	sfGroup    singleflight.Group
	previewTTL time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(dispatch DispatchService, cache Cacher, logger *zap.Logger, previewTTL time.Duration) *GRPCHandlers {
	if dispatch == nil {
		panic("nil DispatchService provided to NewGRPCHandlers")
	}
	if previewTTL <= 0 {
		previewTTL = defaultPreviewTTL
	}
	return &GRPCHandlers{
		dispatch:   dispatch,
		cache:      cache,
		logger:     logger.Named("grpc-handler"),
		previewTTL: previewTTL,
	}
}

func previewKey(prefix CacheKeyType, agentID string) string {
	scope := "queue"
	if agentID != "" {
		scope = "agent:" + agentID
	}
	return fmt.Sprintf("%s:%s", prefix, scope)
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrTicketNotFound):
		s.logger.Info("ticket not found", zap.String("op", op))
		return status.Error(codes.NotFound, "ticket not found")
	case errors.Is(err, service.ErrDispatchContention):
		s.logger.Warn("dispatch contention", zap.String("op", op))
		return status.Error(codes.Aborted, "dispatch contention, call again")
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) CallNext(ctx context.Context, req *pb.CallNextRequest) (*pb.CallNextResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	result, err := s.dispatch.CallNext(ctx, service.CallNextInput{
		AgentID:   req.GetAgentId(),
		AgentName: req.GetAgentName(),
		Counter:   req.GetCounter(),
	})
	if err != nil {
		return nil, s.handleError(ctx, "CallNext", err)
	}

	return &pb.CallNextResponse{
		Ticket:         snapshotToProto(result.Ticket),
		AlreadyServing: result.AlreadyServing,
		Message:        result.Message,
	}, nil
}

func (s *GRPCHandlers) RepeatCall(ctx context.Context, req *pb.RepeatCallRequest) (*pb.RepeatCallResponse, error) {
	if req.GetTicketId() == "" {
		return nil, status.Error(codes.InvalidArgument, "ticket_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	if err := s.dispatch.RepeatCall(ctx, req.GetTicketId()); err != nil {
		return nil, s.handleError(ctx, "RepeatCall", err)
	}
	return &pb.RepeatCallResponse{}, nil
}

func (s *GRPCHandlers) FinishTicket(ctx context.Context, req *pb.FinishRequest) (*pb.FinishResponse, error) {
	if req.GetTicketId() == "" {
		return nil, status.Error(codes.InvalidArgument, "ticket_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	if err := s.dispatch.Finish(ctx, req.GetTicketId()); err != nil {
		return nil, s.handleError(ctx, "FinishTicket", err)
	}
	return &pb.FinishResponse{}, nil
}

func (s *GRPCHandlers) CancelTicket(ctx context.Context, req *pb.CancelRequest) (*pb.CancelResponse, error) {
	if req.GetTicketId() == "" {
		return nil, status.Error(codes.InvalidArgument, "ticket_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	if err := s.dispatch.Cancel(ctx, req.GetTicketId()); err != nil {
		return nil, s.handleError(ctx, "CancelTicket", err)
	}
	return &pb.CancelResponse{}, nil
}

func (s *GRPCHandlers) QueuePreview(ctx context.Context, req *pb.QueuePreviewRequest) (*pb.QueuePreviewResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := previewKey(cacheKeyQueuePreview, req.GetAgentId())

	tickets, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.previewTTL, s.logger, func(fetchCtx context.Context) ([]service.TicketView, error) {
		return s.dispatch.QueuePreview(fetchCtx, req.GetAgentId())
	})
	if err != nil {
		return nil, s.handleError(ctx, "QueuePreview", err)
	}

	pbTickets := make([]*pb.TicketSnapshot, len(tickets))
	for i := range tickets {
		pbTickets[i] = snapshotToProto(&tickets[i])
	}
	return &pb.QueuePreviewResponse{Tickets: pbTickets}, nil
}

func snapshotToProto(t *service.TicketView) *pb.TicketSnapshot {
	if t == nil {
		return nil
	}
	return &pb.TicketSnapshot{
		Id:            t.ID,
		DisplayNumber: t.DisplayNumber,
		Priority:      t.Priority,
		Counter:       t.Counter,
		AgentName:     t.AgentName,
	}
}
