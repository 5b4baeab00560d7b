package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/clinicq/dispatch-server/internal/repository/models"
)

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

const ticketColumns = `id, display_number, priority, queue_id, agent_id, status,
	in_service, counter, agent_name, created_at, called_at, served_at, finished_at`

// scopeFilter renders the SQL predicate selecting tickets of one scope.
// General-queue tickets carry no agent_id.
func scopeFilter(s models.Scope, column string) (string, []any) {
	if s.IsGlobal() {
		return column + " IS NULL", nil
	}
	return column + " = ?", []any{s.AgentID}
}

func scanTicket(row interface{ Scan(...any) error }) (models.Ticket, error) {
	var t models.Ticket
	err := row.Scan(
		&t.ID, &t.DisplayNumber, &t.Priority, &t.QueueID, &t.AgentID, &t.Status,
		&t.InService, &t.Counter, &t.AgentName, &t.CreatedAt, &t.CalledAt,
		&t.ServedAt, &t.FinishedAt,
	)
	return t, err
}

// EnsureSchema creates the tickets table and its indexes when absent.
func (r *TicketRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS tickets (
		id             TEXT PRIMARY KEY,
		display_number TEXT NOT NULL,
		priority       TEXT NOT NULL DEFAULT 'normal',
		queue_id       TEXT,
		agent_id       TEXT,
		status         TEXT NOT NULL DEFAULT 'waiting',
		in_service     INTEGER NOT NULL DEFAULT 0,
		counter        TEXT,
		agent_name     TEXT,
		created_at     TIMESTAMP NOT NULL,
		called_at      TIMESTAMP,
		served_at      TIMESTAMP,
		finished_at    TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_tickets_serving
		ON tickets (in_service, finished_at);
	CREATE INDEX IF NOT EXISTS idx_tickets_created
		ON tickets (created_at);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure tickets schema: %w", err)
	}
	return nil
}

// FindInService returns the ticket currently being served in the scope, or
// nil when the scope is idle. The newest call wins if the store ever holds
// more than one, mirroring the guard's read in the dispatch cycle.
func (r *TicketRepository) FindInService(ctx context.Context, scope models.Scope) (*models.Ticket, error) {
	filter, args := scopeFilter(scope, "agent_id")
	query := fmt.Sprintf(`
		SELECT %s FROM tickets
		WHERE in_service = 1 AND finished_at IS NULL AND %s
		ORDER BY called_at DESC
		LIMIT 1
	`, ticketColumns, filter)

	t, err := scanTicket(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query FindInService: %w", err)
	}
	return &t, nil
}

// LastPreferentialFinish returns the completion time of the most recent
// preferential ticket finished inside the window. ok is false when no
// preferential ticket has finished yet today.
func (r *TicketRepository) LastPreferentialFinish(ctx context.Context, scope models.Scope, w models.Window) (time.Time, bool, error) {
	filter, scopeArgs := scopeFilter(scope, "agent_id")
	query := fmt.Sprintf(`
		SELECT finished_at FROM tickets
		WHERE finished_at IS NOT NULL
		  AND finished_at >= ?
		  AND priority <> ?
		  AND %s
		ORDER BY finished_at DESC
		LIMIT 1
	`, filter)

	args := append([]any{w.Start, models.PriorityNormal}, scopeArgs...)

	var finished time.Time
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&finished)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("query LastPreferentialFinish: %w", err)
	}
	return finished, true, nil
}

// CountNormalsFinishedAfter counts normal-priority tickets whose service
// completed strictly after the baseline.
func (r *TicketRepository) CountNormalsFinishedAfter(ctx context.Context, scope models.Scope, baseline time.Time) (int, error) {
	filter, scopeArgs := scopeFilter(scope, "agent_id")
	query := fmt.Sprintf(`
		SELECT COUNT(id) FROM tickets
		WHERE finished_at IS NOT NULL
		  AND finished_at > ?
		  AND priority = ?
		  AND %s
	`, filter)

	args := append([]any{baseline, models.PriorityNormal}, scopeArgs...)

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("query CountNormalsFinishedAfter: %w", err)
	}
	return count, nil
}

// ListWaiting returns up to limit waiting tickets of one priority class
// created inside the window, oldest first. Ties on created_at break by id so
// the order is stable.
func (r *TicketRepository) ListWaiting(ctx context.Context, scope models.Scope, w models.Window, preferential bool, limit int) ([]models.Ticket, error) {
	classOp := "="
	if preferential {
		classOp = "<>"
	}
	filter, scopeArgs := scopeFilter(scope, "agent_id")
	query := fmt.Sprintf(`
		SELECT %s FROM tickets
		WHERE finished_at IS NULL
		  AND in_service = 0
		  AND priority %s ?
		  AND created_at >= ?
		  AND %s
		ORDER BY created_at ASC, id ASC
		LIMIT ?
	`, ticketColumns, classOp, filter)

	args := append([]any{models.PriorityNormal, w.Start}, scopeArgs...)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ListWaiting: %w", err)
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ListWaiting row: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListWaiting: %w", err)
	}
	return tickets, nil
}

// ClaimTicket moves the ticket into service in one conditional write: the
// row must still be waiting and no other ticket in the scope may be in
// service. A false return means the claim lost a race and the caller should
// re-run the guard.
func (r *TicketRepository) ClaimTicket(ctx context.Context, scope models.Scope, ticketID string, asg models.Assignment, now time.Time) (bool, error) {
	filter, scopeArgs := scopeFilter(scope, "busy.agent_id")
	query := fmt.Sprintf(`
		UPDATE tickets
		SET status = ?, called_at = ?, in_service = 1, agent_name = ?, counter = ?
		WHERE id = ? AND in_service = 0 AND finished_at IS NULL
		  AND NOT EXISTS (
			SELECT 1 FROM tickets AS busy
			WHERE busy.in_service = 1 AND busy.finished_at IS NULL AND %s
		  )
	`, filter)

	args := append([]any{models.StatusCalled, now, asg.AgentName, asg.Counter, ticketID}, scopeArgs...)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("exec ClaimTicket: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ClaimTicket rows affected: %w", err)
	}
	return affected == 1, nil
}

// StampCalled re-stamps called_at on an already dispatched ticket so display
// subscribers re-announce it. No other field changes.
func (r *TicketRepository) StampCalled(ctx context.Context, ticketID string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tickets SET called_at = ? WHERE id = ?`, now, ticketID)
	if err != nil {
		return false, fmt.Errorf("exec StampCalled: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("StampCalled rows affected: %w", err)
	}
	return affected == 1, nil
}

// MarkServed completes service: the ticket leaves the in-service state with
// both served_at and finished_at stamped.
func (r *TicketRepository) MarkServed(ctx context.Context, ticketID string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tickets
		SET status = ?, served_at = ?, finished_at = ?, in_service = 0
		WHERE id = ?
	`, models.StatusServed, now, now, ticketID)
	if err != nil {
		return false, fmt.Errorf("exec MarkServed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("MarkServed rows affected: %w", err)
	}
	return affected == 1, nil
}

// MarkCancelled aborts service: finished_at is stamped but served_at stays
// empty.
func (r *TicketRepository) MarkCancelled(ctx context.Context, ticketID string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tickets
		SET status = ?, finished_at = ?, in_service = 0
		WHERE id = ?
	`, models.StatusCancelled, now, ticketID)
	if err != nil {
		return false, fmt.Errorf("exec MarkCancelled: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("MarkCancelled rows affected: %w", err)
	}
	return affected == 1, nil
}

// DeleteFinishedBefore removes served and cancelled tickets created before
// the cutoff. Housekeeping only; the dispatch cycle never deletes.
func (r *TicketRepository) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM tickets
		WHERE status IN (?, ?) AND created_at < ?
	`, models.StatusServed, models.StatusCancelled, cutoff)
	if err != nil {
		return 0, fmt.Errorf("exec DeleteFinishedBefore: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteFinishedBefore rows affected: %w", err)
	}
	return deleted, nil
}
