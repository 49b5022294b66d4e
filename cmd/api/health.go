// File: cmd/api/health.go
package main

import (
	"context"
	"net/http"
	"time"
)

// healthHandler handles GET /api/health. It round-trips a trivial query
// so the check covers the store connection, not just the process.
func (app *app) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	var one int
	err := app.db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
	if err != nil {
		app.logError(r, err)
		if err := app.writeJSON(w, http.StatusInternalServerError, envelope{"ok": false, "error": err.Error()}, nil); err != nil {
			app.logError(r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"ok": true}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
