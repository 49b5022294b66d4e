// File: cmd/api/sales_test.go
// Description: Integration tests for sales, stats and health

package main

import (
	"net/http"
	"testing"

	"github.com/autosales/api/internal/data"
)

func TestHealthHandler(t *testing.T) {
	app, testUtils := newTestApp(t)
	defer testUtils.CleanDatabase()

	rr := makeRequest(t, app, "GET", "/api/health", nil, nil)
	checkResponseCode(t, http.StatusOK, rr.Code)

	var response struct {
		OK bool `json:"ok"`
	}
	parseJSONResponse(t, rr, &response)
	if !response.OK {
		t.Error("expected ok to be true")
	}
}

func TestCreateSaleAndList(t *testing.T) {
	app, testUtils := newTestApp(t)
	defer testUtils.CleanDatabase()

	token := registerTestUser(t, app, "vendeur@b.com", "pw123456")
	headers := createAuthHeaders(token)

	claims, err := app.auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("Failed to verify token: %v", err)
	}

	garageID, err := testUtils.SeedTestGarage("Garage Central")
	if err != nil {
		t.Fatalf("Failed to seed garage: %v", err)
	}
	vehicleID, err := testUtils.SeedTestVehicle("Peugeot", "3008", 2022, 28900, true)
	if err != nil {
		t.Fatalf("Failed to seed vehicle: %v", err)
	}
	clientID, err := testUtils.SeedTestClient(garageID, "Martin", "Claire")
	if err != nil {
		t.Fatalf("Failed to seed client: %v", err)
	}

	t.Run("Missing fields", func(t *testing.T) {
		rr := makeRequest(t, app, "POST", "/api/ventes",
			map[string]interface{}{"voiture_id": vehicleID}, headers)
		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Create and read back joined", func(t *testing.T) {
		payload := map[string]interface{}{
			"voiture_id": vehicleID,
			"client_id":  clientID,
			"employe_id": claims.UserID,
			"garage_id":  garageID,
			"prix_vente": 27500,
			"notes":      "remise fidélité",
		}
		rr := makeRequest(t, app, "POST", "/api/ventes", payload, headers)
		checkResponseCode(t, http.StatusCreated, rr.Code)

		rr = makeRequest(t, app, "GET", "/api/ventes", nil, headers)
		checkResponseCode(t, http.StatusOK, rr.Code)

		var sales []data.Sale
		parseJSONResponse(t, rr, &sales)
		if len(sales) != 1 {
			t.Fatalf("expected 1 sale, got %d", len(sales))
		}
		if sales[0].PrixVente != 27500 {
			t.Errorf("expected prix_vente 27500, got %v", sales[0].PrixVente)
		}
		if sales[0].ClientNom != "Martin" || sales[0].ClientPrenom != "Claire" {
			t.Errorf("missing client join fields: %+v", sales[0])
		}
		if sales[0].VoitureMarque != "Peugeot" || sales[0].VoitureModele != "3008" {
			t.Errorf("missing vehicle join fields: %+v", sales[0])
		}
		if sales[0].DateVente.IsZero() {
			t.Error("expected a store-assigned sale timestamp")
		}
	})

	t.Run("Sale does not flip vehicle availability", func(t *testing.T) {
		rr := makeRequest(t, app, "GET", "/api/voitures", nil, headers)
		var vehicles []data.Vehicle
		parseJSONResponse(t, rr, &vehicles)
		if len(vehicles) != 1 || !vehicles[0].Disponible {
			t.Error("expected the sold vehicle to remain available")
		}
	})

	t.Run("Non-existent vehicle reference fails", func(t *testing.T) {
		payload := map[string]interface{}{
			"voiture_id": 424242,
			"client_id":  clientID,
			"employe_id": claims.UserID,
			"garage_id":  garageID,
			"prix_vente": 1000,
		}
		rr := makeRequest(t, app, "POST", "/api/ventes", payload, headers)
		checkResponseCode(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestStatsHandler(t *testing.T) {
	app, testUtils := newTestApp(t)
	defer testUtils.CleanDatabase()

	token := registerTestUser(t, app, "vendeur@b.com", "pw123456")
	headers := createAuthHeaders(token)

	claims, err := app.auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("Failed to verify token: %v", err)
	}

	t.Run("Empty store", func(t *testing.T) {
		rr := makeRequest(t, app, "GET", "/api/stats", nil, headers)
		checkResponseCode(t, http.StatusOK, rr.Code)

		var stats data.Stats
		parseJSONResponse(t, rr, &stats)
		if stats.TotalVoitures != 0 || stats.TotalVentes != 0 {
			t.Errorf("expected empty counts, got %+v", stats)
		}
		if stats.ChiffreAffaires != 0 {
			t.Errorf("expected zero revenue, got %v", stats.ChiffreAffaires)
		}
		if len(stats.RecentVentes) != 0 {
			t.Errorf("expected no recent sales, got %d", len(stats.RecentVentes))
		}
	})

	t.Run("Revenue equals the sum of sale prices", func(t *testing.T) {
		availableID, err := testUtils.SeedTestVehicle("Peugeot", "208", 2021, 14500, true)
		if err != nil {
			t.Fatalf("Failed to seed vehicle: %v", err)
		}
		soldID, err := testUtils.SeedTestVehicle("Renault", "Clio", 2018, 8990, false)
		if err != nil {
			t.Fatalf("Failed to seed vehicle: %v", err)
		}
		garageID, err := testUtils.SeedTestGarage("Garage Central")
		if err != nil {
			t.Fatalf("Failed to seed garage: %v", err)
		}
		clientID, err := testUtils.SeedTestClient(garageID, "Martin", "Claire")
		if err != nil {
			t.Fatalf("Failed to seed client: %v", err)
		}

		for _, sale := range []map[string]interface{}{
			{"voiture_id": availableID, "client_id": clientID, "employe_id": claims.UserID, "garage_id": garageID, "prix_vente": 14000},
			{"voiture_id": soldID, "client_id": clientID, "employe_id": claims.UserID, "garage_id": garageID, "prix_vente": 8500},
		} {
			rr := makeRequest(t, app, "POST", "/api/ventes", sale, headers)
			checkResponseCode(t, http.StatusCreated, rr.Code)
		}

		rr := makeRequest(t, app, "GET", "/api/stats", nil, headers)
		checkResponseCode(t, http.StatusOK, rr.Code)

		var stats data.Stats
		parseJSONResponse(t, rr, &stats)

		if stats.TotalVoitures != 2 {
			t.Errorf("expected 2 vehicles, got %d", stats.TotalVoitures)
		}
		if stats.VoituresDisponibles != 1 {
			t.Errorf("expected 1 available vehicle, got %d", stats.VoituresDisponibles)
		}
		if stats.TotalClients != 1 {
			t.Errorf("expected 1 client, got %d", stats.TotalClients)
		}
		if stats.TotalVentes != 2 {
			t.Errorf("expected 2 sales, got %d", stats.TotalVentes)
		}
		if stats.ChiffreAffaires != 22500 {
			t.Errorf("expected revenue 22500, got %v", stats.ChiffreAffaires)
		}
		if len(stats.RecentVentes) != 2 {
			t.Errorf("expected 2 recent sales, got %d", len(stats.RecentVentes))
		}
	})
}
