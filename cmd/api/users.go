// File: cmd/api/users.go
package main

import (
	"errors"
	"net/http"

	"github.com/autosales/api/internal/data"
	"github.com/autosales/api/internal/validator"
)

// registerHandler handles POST /api/register. The user and its profile
// are inserted in one transaction; any failure rolls both back before
// the error is surfaced.
func (app *app) registerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Nom      string `json:"nom"`
		Prenom   string `json:"prenom"`
		GarageID *int64 `json:"garage_id"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(input.Email != "", "email", "must be provided")
	v.Check(input.Password != "", "password", "must be provided")
	v.Check(input.Nom != "", "nom", "must be provided")
	v.Check(input.Prenom != "", "prenom", "must be provided")
	if !v.IsEmpty() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	// Existence check before the expensive hash. The unique index on
	// users.email still backstops concurrent registrations.
	_, err := app.models.Users.GetByEmail(r.Context(), input.Email)
	switch {
	case err == nil:
		app.emailTakenResponse(w, r)
		return
	case !errors.Is(err, data.ErrRecordNotFound):
		app.serverErrorResponse(w, r, err)
		return
	}

	user := &data.User{
		Email: input.Email,
		Role:  data.RoleEmploye,
	}
	if err := user.Password.Set(input.Password); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	profile := &data.Profile{
		Nom:      input.Nom,
		Prenom:   input.Prenom,
		Email:    input.Email,
		GarageID: input.GarageID,
	}

	err = app.models.Users.Register(r.Context(), user, profile)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrDuplicateEmail):
			app.emailTakenResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	token, err := app.auth.IssueToken(user.ID, user.Role)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"token": token}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// loginHandler handles POST /api/login.
func (app *app) loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(input.Email != "", "email", "must be provided")
	v.Check(input.Password != "", "password", "must be provided")
	if !v.IsEmpty() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	user, err := app.models.Users.GetByEmail(r.Context(), input.Email)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	match, err := user.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !match {
		app.invalidCredentialsResponse(w, r)
		return
	}

	token, err := app.auth.IssueToken(user.ID, user.Role)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"token": token}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
