package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/clinicq/dispatch-server/internal/repository"
	"github.com/clinicq/dispatch-server/internal/repository/models"
)

func TestTicketRepository_QueryErrors(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("disk I/O error")

	t.Run("FindInService surfaces driver errors", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM tickets").WillReturnError(dbErr)

		repo := repository.NewTicketRepository(db)
		_, err = repo.FindInService(ctx, models.Scope{})

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("ListWaiting surfaces driver errors", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM tickets").WillReturnError(dbErr)

		repo := repository.NewTicketRepository(db)
		w := models.Window{Start: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)}
		_, err = repo.ListWaiting(ctx, models.Scope{}, w, false, 10)

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("ClaimTicket surfaces driver errors", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE tickets").WillReturnError(dbErr)

		repo := repository.NewTicketRepository(db)
		claimed, err := repo.ClaimTicket(ctx, models.Scope{}, "t-1", models.Assignment{}, time.Now().UTC())

		assert.ErrorIs(t, err, dbErr)
		assert.False(t, claimed)
	})

	t.Run("ClaimTicket maps zero affected rows to a lost claim", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE tickets").WillReturnResult(sqlmock.NewResult(0, 0))

		repo := repository.NewTicketRepository(db)
		claimed, err := repo.ClaimTicket(ctx, models.Scope{AgentID: "doc-1"}, "t-1", models.Assignment{}, time.Now().UTC())

		assert.NoError(t, err)
		assert.False(t, claimed)
	})

	t.Run("DeleteFinishedBefore surfaces driver errors", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DELETE FROM tickets").WillReturnError(dbErr)

		repo := repository.NewTicketRepository(db)
		_, err = repo.DeleteFinishedBefore(ctx, time.Now().UTC())

		assert.ErrorIs(t, err, dbErr)
	})
}
