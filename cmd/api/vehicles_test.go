// File: cmd/api/vehicles_test.go
// Description: Integration tests for the vehicle endpoints

package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/autosales/api/internal/data"
)

func TestVehicleEndpointsRequireAuth(t *testing.T) {
	app, testUtils := newTestApp(t)
	defer testUtils.CleanDatabase()

	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/api/voitures"},
		{"POST", "/api/voitures"},
		{"PUT", "/api/voitures/1"},
		{"DELETE", "/api/voitures/1"},
		{"GET", "/api/stats"},
		{"GET", "/api/ventes"},
		{"GET", "/api/clients"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.url), func(t *testing.T) {
			rr := makeRequest(t, app, tt.method, tt.url, nil, nil)
			checkResponseCode(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestCreateVehicleDefaults(t *testing.T) {
	app, testUtils := newTestApp(t)
	defer testUtils.CleanDatabase()

	token := registerTestUser(t, app, "vendeur@b.com", "pw123456")
	headers := createAuthHeaders(token)

	payload := map[string]interface{}{
		"marque":    "Peugeot",
		"modele":    "208",
		"annee":     2021,
		"prix":      14500,
		"carburant": "essence",
		"etat":      "occasion",
	}

	rr := makeRequest(t, app, "POST", "/api/voitures", payload, headers)
	checkResponseCode(t, http.StatusCreated, rr.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	parseJSONResponse(t, rr, &created)
	if created.ID < 1 {
		t.Fatalf("expected a store-assigned id, got %d", created.ID)
	}

	// Read back and check the defaulted columns.
	rr = makeRequest(t, app, "GET", "/api/voitures", nil, headers)
	checkResponseCode(t, http.StatusOK, rr.Code)

	var vehicles []data.Vehicle
	parseJSONResponse(t, rr, &vehicles)

	if len(vehicles) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(vehicles))
	}
	if vehicles[0].Disponible {
		t.Error("expected disponible to default to false")
	}
	if vehicles[0].Kilometrage != 0 {
		t.Errorf("expected kilometrage to default to 0, got %d", vehicles[0].Kilometrage)
	}
	if vehicles[0].GarageID != nil {
		t.Errorf("expected garage_id to default to null, got %v", *vehicles[0].GarageID)
	}
}

func TestCreateVehicleMissingFields(t *testing.T) {
	app, testUtils := newTestApp(t)
	defer testUtils.CleanDatabase()

	token := registerTestUser(t, app, "vendeur@b.com", "pw123456")
	headers := createAuthHeaders(token)

	payload := map[string]interface{}{
		"marque": "Peugeot",
		"modele": "208",
	}

	rr := makeRequest(t, app, "POST", "/api/voitures", payload, headers)
	checkResponseCode(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateVehicle(t *testing.T) {
	app, testUtils := newTestApp(t)
	defer testUtils.CleanDatabase()

	token := registerTestUser(t, app, "vendeur@b.com", "pw123456")
	headers := createAuthHeaders(token)

	vehicleID, err := testUtils.SeedTestVehicle("Renault", "Clio", 2019, 9990, true)
	if err != nil {
		t.Fatalf("Failed to seed vehicle: %v", err)
	}

	t.Run("Empty patch is rejected", func(t *testing.T) {
		rr := makeRequest(t, app, "PUT", fmt.Sprintf("/api/voitures/%d", vehicleID), map[string]interface{}{}, headers)
		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Single field changes only that column", func(t *testing.T) {
		rr := makeRequest(t, app, "PUT", fmt.Sprintf("/api/voitures/%d", vehicleID),
			map[string]interface{}{"prix": 8990}, headers)
		checkResponseCode(t, http.StatusOK, rr.Code)

		rr = makeRequest(t, app, "GET", "/api/voitures", nil, headers)
		var vehicles []data.Vehicle
		parseJSONResponse(t, rr, &vehicles)

		if len(vehicles) != 1 {
			t.Fatalf("expected 1 vehicle, got %d", len(vehicles))
		}
		if vehicles[0].Prix != 8990 {
			t.Errorf("expected prix 8990, got %v", vehicles[0].Prix)
		}
		if vehicles[0].Marque != "Renault" || vehicles[0].Modele != "Clio" {
			t.Errorf("unrelated columns changed: %+v", vehicles[0])
		}
		if !vehicles[0].Disponible {
			t.Error("disponible flag should be untouched")
		}
	})
}

func TestDeleteVehicleIdempotent(t *testing.T) {
	app, testUtils := newTestApp(t)
	defer testUtils.CleanDatabase()

	token := registerTestUser(t, app, "vendeur@b.com", "pw123456")
	headers := createAuthHeaders(token)

	vehicleID, err := testUtils.SeedTestVehicle("Renault", "Clio", 2019, 9990, true)
	if err != nil {
		t.Fatalf("Failed to seed vehicle: %v", err)
	}

	rr := makeRequest(t, app, "DELETE", fmt.Sprintf("/api/voitures/%d", vehicleID), nil, headers)
	checkResponseCode(t, http.StatusOK, rr.Code)

	// Deleting the same id again still succeeds.
	rr = makeRequest(t, app, "DELETE", fmt.Sprintf("/api/voitures/%d", vehicleID), nil, headers)
	checkResponseCode(t, http.StatusOK, rr.Code)

	// As does deleting an id that never existed.
	rr = makeRequest(t, app, "DELETE", "/api/voitures/424242", nil, headers)
	checkResponseCode(t, http.StatusOK, rr.Code)
}
