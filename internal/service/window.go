package service

import (
	"time"

	"github.com/clinicq/dispatch-server/internal/repository/models"
)

// windowFor returns the scheduling window containing now: the current UTC
// calendar day. It is computed once per request and threaded through the
// fairness baseline and both candidate lookups, so all three agree on the
// same day boundary.
func windowFor(now time.Time) models.Window {
	y, m, d := now.UTC().Date()
	return models.Window{Start: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}
