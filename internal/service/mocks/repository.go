package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/clinicq/dispatch-server/internal/repository/models"
)

// MockTicketRepository is a mock implementation of the TicketRepository
// interface for testing the service layer.
type MockTicketRepository struct {
	FindInServiceFunc             func(ctx context.Context, scope models.Scope) (*models.Ticket, error)
	LastPreferentialFinishFunc    func(ctx context.Context, scope models.Scope, w models.Window) (time.Time, bool, error)
	CountNormalsFinishedAfterFunc func(ctx context.Context, scope models.Scope, baseline time.Time) (int, error)
	ListWaitingFunc               func(ctx context.Context, scope models.Scope, w models.Window, preferential bool, limit int) ([]models.Ticket, error)
	ClaimTicketFunc               func(ctx context.Context, scope models.Scope, ticketID string, asg models.Assignment, now time.Time) (bool, error)
	StampCalledFunc               func(ctx context.Context, ticketID string, now time.Time) (bool, error)
	MarkServedFunc                func(ctx context.Context, ticketID string, now time.Time) (bool, error)
	MarkCancelledFunc             func(ctx context.Context, ticketID string, now time.Time) (bool, error)
	DeleteFinishedBeforeFunc      func(ctx context.Context, cutoff time.Time) (int64, error)
}

// FindInService implements the TicketRepository interface
func (m *MockTicketRepository) FindInService(ctx context.Context, scope models.Scope) (*models.Ticket, error) {
	if m.FindInServiceFunc != nil {
		return m.FindInServiceFunc(ctx, scope)
	}
	return nil, errors.New("FindInServiceFunc not implemented")
}

// LastPreferentialFinish implements the TicketRepository interface
func (m *MockTicketRepository) LastPreferentialFinish(ctx context.Context, scope models.Scope, w models.Window) (time.Time, bool, error) {
	if m.LastPreferentialFinishFunc != nil {
		return m.LastPreferentialFinishFunc(ctx, scope, w)
	}
	return time.Time{}, false, errors.New("LastPreferentialFinishFunc not implemented")
}

// CountNormalsFinishedAfter implements the TicketRepository interface
func (m *MockTicketRepository) CountNormalsFinishedAfter(ctx context.Context, scope models.Scope, baseline time.Time) (int, error) {
	if m.CountNormalsFinishedAfterFunc != nil {
		return m.CountNormalsFinishedAfterFunc(ctx, scope, baseline)
	}
	return 0, errors.New("CountNormalsFinishedAfterFunc not implemented")
}

// ListWaiting implements the TicketRepository interface
func (m *MockTicketRepository) ListWaiting(ctx context.Context, scope models.Scope, w models.Window, preferential bool, limit int) ([]models.Ticket, error) {
	if m.ListWaitingFunc != nil {
		return m.ListWaitingFunc(ctx, scope, w, preferential, limit)
	}
	return nil, errors.New("ListWaitingFunc not implemented")
}

// ClaimTicket implements the TicketRepository interface
func (m *MockTicketRepository) ClaimTicket(ctx context.Context, scope models.Scope, ticketID string, asg models.Assignment, now time.Time) (bool, error) {
	if m.ClaimTicketFunc != nil {
		return m.ClaimTicketFunc(ctx, scope, ticketID, asg, now)
	}
	return false, errors.New("ClaimTicketFunc not implemented")
}

// StampCalled implements the TicketRepository interface
func (m *MockTicketRepository) StampCalled(ctx context.Context, ticketID string, now time.Time) (bool, error) {
	if m.StampCalledFunc != nil {
		return m.StampCalledFunc(ctx, ticketID, now)
	}
	return false, errors.New("StampCalledFunc not implemented")
}

// MarkServed implements the TicketRepository interface
func (m *MockTicketRepository) MarkServed(ctx context.Context, ticketID string, now time.Time) (bool, error) {
	if m.MarkServedFunc != nil {
		return m.MarkServedFunc(ctx, ticketID, now)
	}
	return false, errors.New("MarkServedFunc not implemented")
}

// MarkCancelled implements the TicketRepository interface
func (m *MockTicketRepository) MarkCancelled(ctx context.Context, ticketID string, now time.Time) (bool, error) {
	if m.MarkCancelledFunc != nil {
		return m.MarkCancelledFunc(ctx, ticketID, now)
	}
	return false, errors.New("MarkCancelledFunc not implemented")
}

// DeleteFinishedBefore implements the TicketRepository interface
func (m *MockTicketRepository) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteFinishedBeforeFunc != nil {
		return m.DeleteFinishedBeforeFunc(ctx, cutoff)
	}
	return 0, errors.New("DeleteFinishedBeforeFunc not implemented")
}
