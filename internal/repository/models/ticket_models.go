package models

import (
	"database/sql"
	"time"
)

// PriorityNormal is the baseline priority class. Every other priority value
// is treated as preferential.
const PriorityNormal = "normal"

// Ticket statuses.
const (
	StatusWaiting   = "waiting"
	StatusCalled    = "called"
	StatusServed    = "served"
	StatusCancelled = "cancelled"
)

// Ticket is a row of the tickets table.
type Ticket struct {
	ID            string
	DisplayNumber string
	Priority      string
	QueueID       sql.NullString
	AgentID       sql.NullString
	Status        string
	InService     bool
	Counter       sql.NullString
	AgentName     sql.NullString
	CreatedAt     time.Time
	CalledAt      sql.NullTime
	ServedAt      sql.NullTime
	FinishedAt    sql.NullTime
}

// IsNormal reports whether the ticket belongs to the normal priority class.
func (t Ticket) IsNormal() bool {
	return t.Priority == PriorityNormal
}

// Scope is the dispatch boundary. The zero value addresses the shared
// general queue; a non-empty AgentID binds it to that agent's private queue.
type Scope struct {
	AgentID string
}

// IsGlobal reports whether the scope is the shared general queue.
func (s Scope) IsGlobal() bool {
	return s.AgentID == ""
}

// Key returns a stable identifier for the scope, usable as a cache key part.
func (s Scope) Key() string {
	if s.IsGlobal() {
		return "queue"
	}
	return "agent:" + s.AgentID
}

// Window is the scheduling window of a single dispatch cycle: one UTC
// calendar day. Only tickets created inside the window are dispatchable and
// only completions inside it count toward the fairness ratio.
type Window struct {
	Start time.Time
}

// Assignment identifies who is serving a dispatched ticket.
type Assignment struct {
	AgentName string
	Counter   string
}
