package service

import (
	"context"

	"github.com/clinicq/dispatch-server/internal/repository/models"
)

// selectCandidate picks the oldest waiting same-day ticket of the preferred
// class, falling back to the other class in the same request so fairness
// never blocks progress. A nil return with nil error means both classes are
// empty.
func (s *DispatchService) selectCandidate(ctx context.Context, scope models.Scope, w models.Window, wantPreferential bool) (*models.Ticket, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	normals, err := s.storage.ListWaiting(dbCtx, scope, w, false, s.candidateLimit)
	if err != nil {
		return nil, err
	}
	prefs, err := s.storage.ListWaiting(dbCtx, scope, w, true, s.candidateLimit)
	if err != nil {
		return nil, err
	}

	primary, fallback := normals, prefs
	if wantPreferential {
		primary, fallback = prefs, normals
	}

	if len(primary) > 0 {
		return &primary[0], nil
	}
	if len(fallback) > 0 {
		return &fallback[0], nil
	}
	return nil, nil
}
