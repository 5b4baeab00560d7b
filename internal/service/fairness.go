package service

import (
	"context"
	"sync"
	"time"

	"github.com/clinicq/dispatch-server/internal/repository/models"
)

// normalRunLength is the fairness ratio: after this many normal completions
// with no preferential completion in between, the next dispatch yields to
// the preferential class.
const normalRunLength = 2

// preferPreferential decides the priority class of the next dispatch.
// normalsFinished is the count of normal tickets completed since the last
// preferential completion; inFlightNormal accounts for a normal ticket still
// in service, which will extend the run once it finishes.
func preferPreferential(normalsFinished int, inFlightNormal bool) bool {
	if inFlightNormal {
		normalsFinished++
	}
	return normalsFinished >= normalRunLength
}

type fairnessEntry struct {
	normals   int
	expiresAt time.Time
}

// fairnessCounter counts normal completions since the last preferential
// completion, per scope, behind a short TTL cache. The cache only bounds
// store load under bursty call-next traffic; it is never the gate that
// prevents a double dispatch.
type fairnessCounter struct {
	storage TicketRepository
	ttl     time.Duration

	mu      sync.Mutex
	entries map[string]fairnessEntry
}

func newFairnessCounter(storage TicketRepository, ttl time.Duration) *fairnessCounter {
	return &fairnessCounter{
		storage: storage,
		ttl:     ttl,
		entries: make(map[string]fairnessEntry),
	}
}

// normalsSinceLastPreferential returns the fairness count for the scope as
// of now, serving from cache inside the TTL. Store errors are returned, not
// defaulted: guessing "normal" on error could starve the preferential class.
func (f *fairnessCounter) normalsSinceLastPreferential(ctx context.Context, scope models.Scope, w models.Window, now time.Time) (int, error) {
	key := scope.Key()

	f.mu.Lock()
	if entry, ok := f.entries[key]; ok && now.Before(entry.expiresAt) {
		f.mu.Unlock()
		return entry.normals, nil
	}
	f.mu.Unlock()

	baseline, ok, err := f.storage.LastPreferentialFinish(ctx, scope, w)
	if err != nil {
		return 0, err
	}
	if !ok {
		baseline = w.Start
	}

	normals, err := f.storage.CountNormalsFinishedAfter(ctx, scope, baseline)
	if err != nil {
		return 0, err
	}

	f.mu.Lock()
	f.entries[key] = fairnessEntry{normals: normals, expiresAt: now.Add(f.ttl)}
	f.mu.Unlock()

	return normals, nil
}
