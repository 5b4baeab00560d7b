package service

import (
	"context"
	"time"

	"github.com/clinicq/dispatch-server/internal/repository/models"
)

// TicketRepository defines the store operations the dispatch cycle needs.
type TicketRepository interface {
	FindInService(ctx context.Context, scope models.Scope) (*models.Ticket, error)
	LastPreferentialFinish(ctx context.Context, scope models.Scope, w models.Window) (time.Time, bool, error)
	CountNormalsFinishedAfter(ctx context.Context, scope models.Scope, baseline time.Time) (int, error)
	ListWaiting(ctx context.Context, scope models.Scope, w models.Window, preferential bool, limit int) ([]models.Ticket, error)
	ClaimTicket(ctx context.Context, scope models.Scope, ticketID string, asg models.Assignment, now time.Time) (bool, error)
	StampCalled(ctx context.Context, ticketID string, now time.Time) (bool, error)
	MarkServed(ctx context.Context, ticketID string, now time.Time) (bool, error)
	MarkCancelled(ctx context.Context, ticketID string, now time.Time) (bool, error)
	DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
