// File: cmd/api/clients.go
package main

import (
	"errors"
	"net/http"

	"github.com/autosales/api/internal/data"
	"github.com/autosales/api/internal/validator"
)

// listClientsHandler handles GET /api/clients
func (app *app) listClientsHandler(w http.ResponseWriter, r *http.Request) {
	clients, err := app.models.Clients.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, clients, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createClientHandler handles POST /api/clients
func (app *app) createClientHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		GarageID  int64   `json:"garage_id"`
		Nom       string  `json:"nom"`
		Prenom    string  `json:"prenom"`
		Email     *string `json:"email"`
		Telephone *string `json:"telephone"`
		Adresse   *string `json:"adresse"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	client := &data.Client{
		GarageID:  input.GarageID,
		Nom:       input.Nom,
		Prenom:    input.Prenom,
		Email:     input.Email,
		Telephone: input.Telephone,
		Adresse:   input.Adresse,
	}

	v := validator.New()
	if data.ValidateClient(v, client); !v.IsEmpty() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := app.models.Clients.Insert(r.Context(), client); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusCreated, envelope{"id": client.ID}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateClientHandler handles PUT /api/clients/:id
func (app *app) updateClientHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var patch data.ClientPatch
	if err := app.readJSON(w, r, &patch); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.models.Clients.Update(r.Context(), id, patch)
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

// deleteClientHandler handles DELETE /api/clients/:id
func (app *app) deleteClientHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	if err := app.models.Clients.Delete(r.Context(), id); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"ok": true}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
