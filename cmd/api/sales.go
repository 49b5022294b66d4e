// File: cmd/api/sales.go
package main

import (
	"net/http"

	"github.com/autosales/api/internal/data"
	"github.com/autosales/api/internal/validator"
)

// listSalesHandler handles GET /api/ventes
func (app *app) listSalesHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := app.models.Sales.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, sales, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createSaleHandler handles POST /api/ventes. Vehicle and client
// existence is enforced by the store's foreign keys, and the vehicle's
// availability flag is left as-is.
func (app *app) createSaleHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		VoitureID int64   `json:"voiture_id"`
		ClientID  int64   `json:"client_id"`
		EmployeID int64   `json:"employe_id"`
		GarageID  int64   `json:"garage_id"`
		PrixVente float64 `json:"prix_vente"`
		Notes     *string `json:"notes"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sale := &data.Sale{
		VoitureID: input.VoitureID,
		ClientID:  input.ClientID,
		EmployeID: input.EmployeID,
		GarageID:  input.GarageID,
		PrixVente: input.PrixVente,
		Notes:     input.Notes,
	}

	v := validator.New()
	if data.ValidateSale(v, sale); !v.IsEmpty() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := app.models.Sales.Insert(r.Context(), sale); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusCreated, envelope{"id": sale.ID}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
