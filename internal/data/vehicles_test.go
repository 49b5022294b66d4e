// File: internal/data/vehicles_test.go
package data

import (
	"testing"

	"github.com/autosales/api/internal/validator"
)

func TestVehiclePatchAssignments(t *testing.T) {
	marque := "Renault"
	disponible := true
	prix := 15990.0

	tests := []struct {
		name         string
		patch        VehiclePatch
		expectedSets []string
		expectedArgs []any
	}{
		{
			name:         "Empty patch",
			patch:        VehiclePatch{},
			expectedSets: []string{},
			expectedArgs: []any{},
		},
		{
			name:         "Single field",
			patch:        VehiclePatch{Marque: &marque},
			expectedSets: []string{"marque = $1"},
			expectedArgs: []any{"Renault"},
		},
		{
			name:         "Multiple fields keep column order",
			patch:        VehiclePatch{Prix: &prix, Disponible: &disponible},
			expectedSets: []string{"prix = $1", "disponible = $2"},
			expectedArgs: []any{15990.0, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sets, args := tt.patch.assignments()

			if len(sets) != len(tt.expectedSets) {
				t.Fatalf("expected %d assignments, got %d", len(tt.expectedSets), len(sets))
			}
			for i := range sets {
				if sets[i] != tt.expectedSets[i] {
					t.Errorf("assignment %d: expected %q, got %q", i, tt.expectedSets[i], sets[i])
				}
				if args[i] != tt.expectedArgs[i] {
					t.Errorf("argument %d: expected %v, got %v", i, tt.expectedArgs[i], args[i])
				}
			}
		})
	}
}

func TestClientPatchAssignments(t *testing.T) {
	nom := "Dupont"
	telephone := "0601020304"

	sets, args := ClientPatch{Nom: &nom, Telephone: &telephone}.assignments()

	expectedSets := []string{"nom = $1", "telephone = $2"}
	if len(sets) != len(expectedSets) {
		t.Fatalf("expected %d assignments, got %d", len(expectedSets), len(sets))
	}
	for i := range sets {
		if sets[i] != expectedSets[i] {
			t.Errorf("assignment %d: expected %q, got %q", i, expectedSets[i], sets[i])
		}
	}
	if args[0] != "Dupont" || args[1] != "0601020304" {
		t.Errorf("unexpected arguments: %v", args)
	}
}

func TestValidateVehicle(t *testing.T) {
	v := validator.New()
	ValidateVehicle(v, &Vehicle{
		Marque:    "Peugeot",
		Modele:    "208",
		Annee:     2021,
		Prix:      14500,
		Carburant: "essence",
		Etat:      "occasion",
	})
	if !v.IsEmpty() {
		t.Errorf("expected no errors for a complete vehicle, got %v", v.Errors)
	}

	v = validator.New()
	ValidateVehicle(v, &Vehicle{Marque: "Peugeot", Modele: "208"})
	for _, key := range []string{"annee", "prix", "carburant", "etat"} {
		if _, ok := v.Errors[key]; !ok {
			t.Errorf("expected a validation error for %q", key)
		}
	}
}

func TestValidateSale(t *testing.T) {
	v := validator.New()
	ValidateSale(v, &Sale{VoitureID: 1, ClientID: 2, EmployeID: 3, GarageID: 4, PrixVente: 10000})
	if !v.IsEmpty() {
		t.Errorf("expected no errors for a complete sale, got %v", v.Errors)
	}

	v = validator.New()
	ValidateSale(v, &Sale{VoitureID: 1})
	for _, key := range []string{"client_id", "employe_id", "garage_id", "prix_vente"} {
		if _, ok := v.Errors[key]; !ok {
			t.Errorf("expected a validation error for %q", key)
		}
	}
}
