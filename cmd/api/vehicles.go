// File: cmd/api/vehicles.go
package main

import (
	"errors"
	"net/http"

	"github.com/autosales/api/internal/data"
	"github.com/autosales/api/internal/validator"
)

// listVehiclesHandler handles GET /api/voitures
func (app *app) listVehiclesHandler(w http.ResponseWriter, r *http.Request) {
	vehicles, err := app.models.Vehicles.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, vehicles, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createVehicleHandler handles POST /api/voitures
func (app *app) createVehicleHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		GarageID    *int64  `json:"garage_id"`
		Marque      string  `json:"marque"`
		Modele      string  `json:"modele"`
		Annee       int     `json:"annee"`
		Prix        float64 `json:"prix"`
		Kilometrage int64   `json:"kilometrage"`
		Carburant   string  `json:"carburant"`
		Etat        string  `json:"etat"`
		Disponible  bool    `json:"disponible"`
		Couleur     *string `json:"couleur"`
		Description *string `json:"description"`
		ImageURL    *string `json:"image_url"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Unset optionals keep their zero values: kilometrage 0, disponible
	// false, garage reference null.
	vehicle := &data.Vehicle{
		GarageID:    input.GarageID,
		Marque:      input.Marque,
		Modele:      input.Modele,
		Annee:       input.Annee,
		Prix:        input.Prix,
		Kilometrage: input.Kilometrage,
		Carburant:   input.Carburant,
		Etat:        input.Etat,
		Disponible:  input.Disponible,
		Couleur:     input.Couleur,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	v := validator.New()
	if data.ValidateVehicle(v, vehicle); !v.IsEmpty() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := app.models.Vehicles.Insert(r.Context(), vehicle); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusCreated, envelope{"id": vehicle.ID}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateVehicleHandler handles PUT /api/voitures/:id
func (app *app) updateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var patch data.VehiclePatch
	if err := app.readJSON(w, r, &patch); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.models.Vehicles.Update(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrEmptyPatch):
			app.errorResponseJSON(w, r, http.StatusBadRequest, "No fields to update")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"ok": true}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteVehicleHandler handles DELETE /api/voitures/:id. Deleting an
// absent id succeeds silently.
func (app *app) deleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	if err := app.models.Vehicles.Delete(r.Context(), id); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"ok": true}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
