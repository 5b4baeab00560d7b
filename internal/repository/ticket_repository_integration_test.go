package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/clinicq/dispatch-server/internal/repository"
	"github.com/clinicq/dispatch-server/internal/repository/models"
)

var baseTime = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) (*sql.DB, *repository.TicketRepository) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// In-memory sqlite drops the database when the last connection closes.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewTicketRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	return db, repo
}

type seedTicket struct {
	id            string
	displayNumber string
	priority      string
	agentID       string
	status        string
	inService     bool
	createdAt     time.Time
	finishedAt    time.Time
}

func insertTicket(t *testing.T, db *sql.DB, s seedTicket) {
	t.Helper()

	if s.priority == "" {
		s.priority = models.PriorityNormal
	}
	if s.status == "" {
		s.status = models.StatusWaiting
	}
	var agentID any
	if s.agentID != "" {
		agentID = s.agentID
	}
	var finishedAt any
	if !s.finishedAt.IsZero() {
		finishedAt = s.finishedAt
	}

	_, err := db.Exec(`
		INSERT INTO tickets (id, display_number, priority, agent_id, status, in_service, created_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, s.id, s.displayNumber, s.priority, agentID, s.status, s.inService, s.createdAt, finishedAt)
	require.NoError(t, err)
}

func TestTicketRepository_Scoping(t *testing.T) {
	ctx := context.Background()
	db, repo := setupTestDB(t)

	insertTicket(t, db, seedTicket{id: "g-1", displayNumber: "A001", status: models.StatusCalled, inService: true, createdAt: baseTime})
	insertTicket(t, db, seedTicket{id: "d-1", displayNumber: "D001", agentID: "doc-1", status: models.StatusCalled, inService: true, createdAt: baseTime})
	insertTicket(t, db, seedTicket{id: "d-2", displayNumber: "D002", agentID: "doc-2", createdAt: baseTime})

	t.Run("global scope only sees unassigned tickets", func(t *testing.T) {
		got, err := repo.FindInService(ctx, models.Scope{})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "g-1", got.ID)
	})

	t.Run("agent scope only sees its own tickets", func(t *testing.T) {
		got, err := repo.FindInService(ctx, models.Scope{AgentID: "doc-1"})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "d-1", got.ID)
	})

	t.Run("idle agent scope finds nothing", func(t *testing.T) {
		got, err := repo.FindInService(ctx, models.Scope{AgentID: "doc-2"})
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestTicketRepository_ListWaiting(t *testing.T) {
	ctx := context.Background()
	db, repo := setupTestDB(t)
	w := models.Window{Start: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)}

	insertTicket(t, db, seedTicket{id: "n-2", displayNumber: "A002", createdAt: baseTime.Add(10 * time.Minute)})
	insertTicket(t, db, seedTicket{id: "n-1", displayNumber: "A001", createdAt: baseTime})
	insertTicket(t, db, seedTicket{id: "p-1", displayNumber: "P001", priority: "preferential", createdAt: baseTime.Add(5 * time.Minute)})
	// Yesterday's leftover never re-enters dispatch.
	insertTicket(t, db, seedTicket{id: "n-old", displayNumber: "A099", createdAt: baseTime.Add(-24 * time.Hour)})
	// Tickets already in service or finished are not waiting.
	insertTicket(t, db, seedTicket{id: "n-busy", displayNumber: "A050", status: models.StatusCalled, inService: true, createdAt: baseTime})
	insertTicket(t, db, seedTicket{id: "n-done", displayNumber: "A051", status: models.StatusServed, createdAt: baseTime, finishedAt: baseTime.Add(time.Hour)})

	t.Run("normal class oldest first", func(t *testing.T) {
		got, err := repo.ListWaiting(ctx, models.Scope{}, w, false, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "n-1", got[0].ID)
		require.Equal(t, "n-2", got[1].ID)
	})

	t.Run("preferential class separated", func(t *testing.T) {
		got, err := repo.ListWaiting(ctx, models.Scope{}, w, true, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "p-1", got[0].ID)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		got, err := repo.ListWaiting(ctx, models.Scope{}, w, false, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "n-1", got[0].ID)
	})

	t.Run("created_at tie breaks by id", func(t *testing.T) {
		insertTicket(t, db, seedTicket{id: "n-0", displayNumber: "A000", createdAt: baseTime})
		got, err := repo.ListWaiting(ctx, models.Scope{}, w, false, 10)
		require.NoError(t, err)
		require.Equal(t, "n-0", got[0].ID)
		require.Equal(t, "n-1", got[1].ID)
	})
}

func TestTicketRepository_ClaimTicket(t *testing.T) {
	ctx := context.Background()
	now := baseTime.Add(time.Hour)
	asg := models.Assignment{AgentName: "Dr. Adams", Counter: "Desk 3"}

	t.Run("claims a waiting ticket and stamps the assignment", func(t *testing.T) {
		db, repo := setupTestDB(t)
		insertTicket(t, db, seedTicket{id: "n-1", displayNumber: "A001", createdAt: baseTime})

		claimed, err := repo.ClaimTicket(ctx, models.Scope{}, "n-1", asg, now)
		require.NoError(t, err)
		require.True(t, claimed)

		got, err := repo.FindInService(ctx, models.Scope{})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "n-1", got.ID)
		require.Equal(t, models.StatusCalled, got.Status)
		require.True(t, got.InService)
		require.Equal(t, "Dr. Adams", got.AgentName.String)
		require.Equal(t, "Desk 3", got.Counter.String)
		require.True(t, got.CalledAt.Valid)
	})

	t.Run("rejects while the scope is busy", func(t *testing.T) {
		db, repo := setupTestDB(t)
		insertTicket(t, db, seedTicket{id: "n-1", displayNumber: "A001", status: models.StatusCalled, inService: true, createdAt: baseTime})
		insertTicket(t, db, seedTicket{id: "n-2", displayNumber: "A002", createdAt: baseTime})

		claimed, err := repo.ClaimTicket(ctx, models.Scope{}, "n-2", asg, now)
		require.NoError(t, err)
		require.False(t, claimed)
	})

	t.Run("second claim of the same ticket loses", func(t *testing.T) {
		db, repo := setupTestDB(t)
		insertTicket(t, db, seedTicket{id: "n-1", displayNumber: "A001", createdAt: baseTime})

		first, err := repo.ClaimTicket(ctx, models.Scope{}, "n-1", asg, now)
		require.NoError(t, err)
		require.True(t, first)

		second, err := repo.ClaimTicket(ctx, models.Scope{}, "n-1", asg, now)
		require.NoError(t, err)
		require.False(t, second)
	})

	t.Run("busy agent scope does not block the general queue", func(t *testing.T) {
		db, repo := setupTestDB(t)
		insertTicket(t, db, seedTicket{id: "d-1", displayNumber: "D001", agentID: "doc-1", status: models.StatusCalled, inService: true, createdAt: baseTime})
		insertTicket(t, db, seedTicket{id: "n-1", displayNumber: "A001", createdAt: baseTime})

		claimed, err := repo.ClaimTicket(ctx, models.Scope{}, "n-1", asg, now)
		require.NoError(t, err)
		require.True(t, claimed)
	})
}

func TestTicketRepository_FairnessQueries(t *testing.T) {
	ctx := context.Background()
	db, repo := setupTestDB(t)
	w := models.Window{Start: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)}

	prefFinish := baseTime.Add(30 * time.Minute)
	insertTicket(t, db, seedTicket{id: "p-done", displayNumber: "P001", priority: "preferential", status: models.StatusServed, createdAt: baseTime, finishedAt: prefFinish})
	insertTicket(t, db, seedTicket{id: "n-before", displayNumber: "A001", status: models.StatusServed, createdAt: baseTime, finishedAt: baseTime.Add(10 * time.Minute)})
	insertTicket(t, db, seedTicket{id: "n-after-1", displayNumber: "A002", status: models.StatusServed, createdAt: baseTime, finishedAt: baseTime.Add(40 * time.Minute)})
	insertTicket(t, db, seedTicket{id: "n-after-2", displayNumber: "A003", status: models.StatusServed, createdAt: baseTime, finishedAt: baseTime.Add(50 * time.Minute)})
	// Yesterday's preferential finish is outside the window.
	insertTicket(t, db, seedTicket{id: "p-old", displayNumber: "P099", priority: "preferential", status: models.StatusServed, createdAt: baseTime.Add(-24 * time.Hour), finishedAt: baseTime.Add(-23 * time.Hour)})

	t.Run("last preferential finish inside the window", func(t *testing.T) {
		got, ok, err := repo.LastPreferentialFinish(ctx, models.Scope{}, w)
		require.NoError(t, err)
		require.True(t, ok)
		require.True(t, got.Equal(prefFinish))
	})

	t.Run("normals counted strictly after the baseline", func(t *testing.T) {
		count, err := repo.CountNormalsFinishedAfter(ctx, models.Scope{}, prefFinish)
		require.NoError(t, err)
		require.Equal(t, 2, count)
	})

	t.Run("no preferential finish in an empty scope", func(t *testing.T) {
		_, ok, err := repo.LastPreferentialFinish(ctx, models.Scope{AgentID: "doc-9"}, w)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestTicketRepository_Transitions(t *testing.T) {
	ctx := context.Background()
	now := baseTime.Add(2 * time.Hour)

	t.Run("StampCalled updates called_at only", func(t *testing.T) {
		db, repo := setupTestDB(t)
		insertTicket(t, db, seedTicket{id: "n-1", displayNumber: "A001", status: models.StatusCalled, inService: true, createdAt: baseTime})

		ok, err := repo.StampCalled(ctx, "n-1", now)
		require.NoError(t, err)
		require.True(t, ok)

		got, err := repo.FindInService(ctx, models.Scope{})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.True(t, got.CalledAt.Valid)
		require.True(t, got.CalledAt.Time.Equal(now))
		require.True(t, got.InService)
	})

	t.Run("MarkServed finishes the ticket", func(t *testing.T) {
		db, repo := setupTestDB(t)
		insertTicket(t, db, seedTicket{id: "n-1", displayNumber: "A001", status: models.StatusCalled, inService: true, createdAt: baseTime})

		ok, err := repo.MarkServed(ctx, "n-1", now)
		require.NoError(t, err)
		require.True(t, ok)

		got, err := repo.FindInService(ctx, models.Scope{})
		require.NoError(t, err)
		require.Nil(t, got, "served ticket must release the scope")

		var status string
		var servedAt, finishedAt sql.NullTime
		require.NoError(t, db.QueryRow(
			`SELECT status, served_at, finished_at FROM tickets WHERE id = 'n-1'`,
		).Scan(&status, &servedAt, &finishedAt))
		require.Equal(t, models.StatusServed, status)
		require.True(t, servedAt.Valid)
		require.True(t, finishedAt.Valid)
	})

	t.Run("MarkCancelled leaves served_at empty", func(t *testing.T) {
		db, repo := setupTestDB(t)
		insertTicket(t, db, seedTicket{id: "n-1", displayNumber: "A001", status: models.StatusCalled, inService: true, createdAt: baseTime})

		ok, err := repo.MarkCancelled(ctx, "n-1", now)
		require.NoError(t, err)
		require.True(t, ok)

		var status string
		var servedAt, finishedAt sql.NullTime
		require.NoError(t, db.QueryRow(
			`SELECT status, served_at, finished_at FROM tickets WHERE id = 'n-1'`,
		).Scan(&status, &servedAt, &finishedAt))
		require.Equal(t, models.StatusCancelled, status)
		require.False(t, servedAt.Valid)
		require.True(t, finishedAt.Valid)
	})

	t.Run("unknown ticket reports false", func(t *testing.T) {
		_, repo := setupTestDB(t)

		ok, err := repo.StampCalled(ctx, "missing", now)
		require.NoError(t, err)
		require.False(t, ok)

		ok, err = repo.MarkServed(ctx, "missing", now)
		require.NoError(t, err)
		require.False(t, ok)

		ok, err = repo.MarkCancelled(ctx, "missing", now)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestTicketRepository_DeleteFinishedBefore(t *testing.T) {
	ctx := context.Background()
	db, repo := setupTestDB(t)

	cutoff := baseTime
	insertTicket(t, db, seedTicket{id: "old-served", displayNumber: "A001", status: models.StatusServed, createdAt: baseTime.Add(-48 * time.Hour), finishedAt: baseTime.Add(-47 * time.Hour)})
	insertTicket(t, db, seedTicket{id: "old-cancelled", displayNumber: "A002", status: models.StatusCancelled, createdAt: baseTime.Add(-30 * time.Hour), finishedAt: baseTime.Add(-29 * time.Hour)})
	// Still waiting, never deleted regardless of age.
	insertTicket(t, db, seedTicket{id: "old-waiting", displayNumber: "A003", createdAt: baseTime.Add(-48 * time.Hour)})
	insertTicket(t, db, seedTicket{id: "fresh-served", displayNumber: "A004", status: models.StatusServed, createdAt: baseTime.Add(time.Hour), finishedAt: baseTime.Add(2 * time.Hour)})

	deleted, err := repo.DeleteFinishedBefore(ctx, cutoff)
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	var remaining int
	require.NoError(t, db.QueryRow(`SELECT COUNT(id) FROM tickets`).Scan(&remaining))
	require.Equal(t, 2, remaining)
}
