package service

import "github.com/clinicq/dispatch-server/internal/repository/models"

// CallNextInput carries the agent identity of a call-next request. An empty
// AgentID addresses the shared general queue.
type CallNextInput struct {
	AgentID   string
	AgentName string
	Counter   string
}

// TicketView is the snapshot exposed to display and announcement consumers.
type TicketView struct {
	ID            string
	DisplayNumber string
	Priority      string
	Counter       string
	AgentName     string
}

// DispatchResult is the outcome of one call-next cycle. A nil Ticket with
// AlreadyServing false means no ticket was waiting.
type DispatchResult struct {
	Ticket         *TicketView
	AlreadyServing bool
	Message        string
}

func viewOf(t *models.Ticket) *TicketView {
	if t == nil {
		return nil
	}
	return &TicketView{
		ID:            t.ID,
		DisplayNumber: t.DisplayNumber,
		Priority:      t.Priority,
		Counter:       t.Counter.String,
		AgentName:     t.AgentName.String,
	}
}
