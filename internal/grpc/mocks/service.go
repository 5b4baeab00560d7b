package mocks

import (
	"context"
	"errors"

	"github.com/clinicq/dispatch-server/internal/service"
)

// MockDispatchService is a mock implementation of the DispatchService
// interface for testing the handler layer. It uses function-based mocking
// for flexibility.
type MockDispatchService struct {
	CallNextFunc     func(ctx context.Context, in service.CallNextInput) (service.DispatchResult, error)
	RepeatCallFunc   func(ctx context.Context, ticketID string) error
	FinishFunc       func(ctx context.Context, ticketID string) error
	CancelFunc       func(ctx context.Context, ticketID string) error
	QueuePreviewFunc func(ctx context.Context, agentID string) ([]service.TicketView, error)
}

// CallNext implements the DispatchService interface
func (m *MockDispatchService) CallNext(ctx context.Context, in service.CallNextInput) (service.DispatchResult, error) {
	if m.CallNextFunc != nil {
		return m.CallNextFunc(ctx, in)
	}
	return service.DispatchResult{}, errors.New("CallNextFunc not implemented")
}

// RepeatCall implements the DispatchService interface
func (m *MockDispatchService) RepeatCall(ctx context.Context, ticketID string) error {
	if m.RepeatCallFunc != nil {
		return m.RepeatCallFunc(ctx, ticketID)
	}
	return errors.New("RepeatCallFunc not implemented")
}

// Finish implements the DispatchService interface
func (m *MockDispatchService) Finish(ctx context.Context, ticketID string) error {
	if m.FinishFunc != nil {
		return m.FinishFunc(ctx, ticketID)
	}
	return errors.New("FinishFunc not implemented")
}

// Cancel implements the DispatchService interface
func (m *MockDispatchService) Cancel(ctx context.Context, ticketID string) error {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, ticketID)
	}
	return errors.New("CancelFunc not implemented")
}

// QueuePreview implements the DispatchService interface
func (m *MockDispatchService) QueuePreview(ctx context.Context, agentID string) ([]service.TicketView, error) {
	if m.QueuePreviewFunc != nil {
		return m.QueuePreviewFunc(ctx, agentID)
	}
	return nil, errors.New("QueuePreviewFunc not implemented")
}
