// File: cmd/api/stats.go
package main

import "net/http"

// getStatsHandler handles GET /api/stats
func (app *app) getStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.models.Stats.Snapshot(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, stats, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
