package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/clinicq/dispatch-server/internal/repository/models"
	"go.uber.org/zap"
)

const (
	dbTimeout = 1 * time.Second

	defaultFairnessTTL    = 1 * time.Second
	defaultCandidateLimit = 10
	previewLimit          = 50

	// claimAttempts bounds how often a lost claim race re-runs the guard
	// before giving up and asking the caller to retry.
	claimAttempts = 3

	defaultCounterLabel = "Front desk"

	msgAlreadyServing = "a ticket is already in service; finish it before calling the next"
	msgNoTickets      = "no waiting tickets"
)

var (
	ErrStorageFailure     = errors.New("storage failure")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrDispatchContention = errors.New("dispatch contention")
)

// DispatchService owns the call-next cycle and the ticket state transitions
// around it. One instance serves both the general queue and every per-agent
// queue; the scope of each request is the only difference.
type DispatchService struct {
	storage        TicketRepository
	logger         *zap.Logger
	clock          func() time.Time
	fairness       *fairnessCounter
	candidateLimit int
}

type Option func(*DispatchService)

// WithClock overrides the time source. Tests use this to pin "now".
func WithClock(clock func() time.Time) Option {
	return func(s *DispatchService) {
		s.clock = clock
	}
}

// WithFairnessTTL overrides how long a fairness count is served from cache.
func WithFairnessTTL(ttl time.Duration) Option {
	return func(s *DispatchService) {
		if ttl > 0 {
			s.fairness.ttl = ttl
		}
	}
}

// NewDispatchService creates a new DispatchService instance.
func NewDispatchService(storage TicketRepository, logger *zap.Logger, opts ...Option) *DispatchService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	s := &DispatchService{
		storage:        storage,
		logger:         logger,
		clock:          time.Now,
		fairness:       newFairnessCounter(storage, defaultFairnessTTL),
		candidateLimit: defaultCandidateLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CallNext runs one dispatch cycle for the request's scope: return the
// in-service ticket unchanged if there is one, otherwise pick the next
// waiting ticket per the fairness ratio and claim it. A lost claim race
// re-enters the guard, so concurrent calls for one scope converge on the
// same ticket.
func (s *DispatchService) CallNext(ctx context.Context, in CallNextInput) (DispatchResult, error) {
	scope := models.Scope{AgentID: in.AgentID}
	now := s.clock().UTC()
	w := windowFor(now)

	for attempt := 0; attempt < claimAttempts; attempt++ {
		current, err := s.findInService(ctx, scope)
		if err != nil {
			return DispatchResult{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}
		if current != nil {
			s.logger.Info("call-next found ticket already in service",
				zap.String("scope", scope.Key()),
				zap.String("ticket_id", current.ID))
			return DispatchResult{
				Ticket:         viewOf(current),
				AlreadyServing: true,
				Message:        msgAlreadyServing,
			}, nil
		}

		normals, err := s.fairnessCount(ctx, scope, w, now)
		if err != nil {
			return DispatchResult{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}
		wantPreferential := preferPreferential(normals, inFlightNormal(current))

		next, err := s.selectCandidate(ctx, scope, w, wantPreferential)
		if err != nil {
			return DispatchResult{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}
		if next == nil {
			return DispatchResult{Message: msgNoTickets}, nil
		}

		asg := assignment(in)
		claimed, err := s.claim(ctx, scope, next.ID, asg, now)
		if err != nil {
			return DispatchResult{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}
		if !claimed {
			s.logger.Warn("dispatch claim lost a race, re-running guard",
				zap.String("scope", scope.Key()),
				zap.String("ticket_id", next.ID),
				zap.Int("attempt", attempt+1))
			continue
		}

		s.logger.Info("ticket dispatched",
			zap.String("scope", scope.Key()),
			zap.String("ticket_id", next.ID),
			zap.String("display_number", next.DisplayNumber),
			zap.String("priority", next.Priority),
			zap.String("counter", asg.Counter))

		return DispatchResult{Ticket: &TicketView{
			ID:            next.ID,
			DisplayNumber: next.DisplayNumber,
			Priority:      next.Priority,
			Counter:       asg.Counter,
			AgentName:     asg.AgentName,
		}}, nil
	}

	return DispatchResult{}, ErrDispatchContention
}

// RepeatCall re-stamps called_at on a dispatched ticket so subscribed
// displays announce it again. Queue position and state do not change.
func (s *DispatchService) RepeatCall(ctx context.Context, ticketID string) error {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	ok, err := s.storage.StampCalled(dbCtx, ticketID, s.clock().UTC())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if !ok {
		return ErrTicketNotFound
	}
	s.logger.Info("call repeated", zap.String("ticket_id", ticketID))
	return nil
}

// Finish completes service for the ticket and returns its scope to idle.
func (s *DispatchService) Finish(ctx context.Context, ticketID string) error {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	ok, err := s.storage.MarkServed(dbCtx, ticketID, s.clock().UTC())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if !ok {
		return ErrTicketNotFound
	}
	s.logger.Info("ticket served", zap.String("ticket_id", ticketID))
	return nil
}

// Cancel aborts service for the ticket; served_at stays empty.
func (s *DispatchService) Cancel(ctx context.Context, ticketID string) error {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	ok, err := s.storage.MarkCancelled(dbCtx, ticketID, s.clock().UTC())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if !ok {
		return ErrTicketNotFound
	}
	s.logger.Info("ticket cancelled", zap.String("ticket_id", ticketID))
	return nil
}

// QueuePreview returns the scope's same-day waiting tickets of both classes,
// oldest first.
func (s *DispatchService) QueuePreview(ctx context.Context, agentID string) ([]TicketView, error) {
	scope := models.Scope{AgentID: agentID}
	w := windowFor(s.clock().UTC())

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	normals, err := s.storage.ListWaiting(dbCtx, scope, w, false, previewLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	prefs, err := s.storage.ListWaiting(dbCtx, scope, w, true, previewLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	merged := append(normals, prefs...)
	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].CreatedAt.Before(merged[j].CreatedAt)
		}
		return merged[i].ID < merged[j].ID
	})

	views := make([]TicketView, 0, len(merged))
	for i := range merged {
		views = append(views, *viewOf(&merged[i]))
	}
	return views, nil
}

// PurgeFinished deletes served and cancelled tickets created before the
// retention cutoff. Run by the housekeeping loop, never by dispatch.
func (s *DispatchService) PurgeFinished(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.clock().UTC().Add(-retention)

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	deleted, err := s.storage.DeleteFinishedBefore(dbCtx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if deleted > 0 {
		s.logger.Info("purged finished tickets",
			zap.Int64("deleted", deleted),
			zap.Time("cutoff", cutoff))
	}
	return deleted, nil
}

func (s *DispatchService) findInService(ctx context.Context, scope models.Scope) (*models.Ticket, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	return s.storage.FindInService(dbCtx, scope)
}

func (s *DispatchService) fairnessCount(ctx context.Context, scope models.Scope, w models.Window, now time.Time) (int, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	return s.fairness.normalsSinceLastPreferential(dbCtx, scope, w, now)
}

func (s *DispatchService) claim(ctx context.Context, scope models.Scope, ticketID string, asg models.Assignment, now time.Time) (bool, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	return s.storage.ClaimTicket(dbCtx, scope, ticketID, asg, now)
}

// inFlightNormal reports whether a normal-priority ticket is being served
// right now; its completion will extend the current normal run.
func inFlightNormal(current *models.Ticket) bool {
	return current != nil && current.IsNormal()
}

// assignment resolves the counter label: explicit counter, then the agent's
// display name, then a generic label.
func assignment(in CallNextInput) models.Assignment {
	counter := in.Counter
	if counter == "" {
		counter = in.AgentName
	}
	if counter == "" {
		counter = defaultCounterLabel
	}
	return models.Assignment{AgentName: in.AgentName, Counter: counter}
}
