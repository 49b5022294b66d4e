// File: internal/data/testutils.go
// Description: Database testing utilities for integration tests

package data

import (
	"database/sql"
	"fmt"
)

// TestUtils provides utility functions for testing database operations
// against an already-migrated test database.
type TestUtils struct {
	DB *sql.DB
}

// NewTestUtils creates a new TestUtils instance.
func NewTestUtils(db *sql.DB) *TestUtils {
	return &TestUtils{DB: db}
}

// TruncateAllTables removes all data from all tables in the correct order
// to avoid foreign key constraints.
func (tu *TestUtils) TruncateAllTables() error {
	tables := []string{
		"ventes",
		"voitures",
		"clients",
		"profiles",
		"users",
		"garages",
	}

	for _, table := range tables {
		query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)
		_, err := tu.DB.Exec(query)
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return nil
}

// ResetIdentitySequences resets all identity sequences to start from 1.
func (tu *TestUtils) ResetIdentitySequences() error {
	sequences := []string{
		"users_id_seq",
		"profiles_id_seq",
		"voitures_id_seq",
		"clients_id_seq",
		"ventes_id_seq",
		"garages_id_seq",
	}

	for _, seq := range sequences {
		query := fmt.Sprintf("ALTER SEQUENCE %s RESTART WITH 1", seq)
		_, err := tu.DB.Exec(query)
		if err != nil {
			return fmt.Errorf("failed to reset sequence %s: %w", seq, err)
		}
	}

	return nil
}

// CleanDatabase truncates all tables and resets sequences for a clean
// test environment.
func (tu *TestUtils) CleanDatabase() error {
	if err := tu.TruncateAllTables(); err != nil {
		return err
	}
	if err := tu.ResetIdentitySequences(); err != nil {
		return err
	}
	return nil
}

// SeedTestVehicle creates a test vehicle and returns its ID.
func (tu *TestUtils) SeedTestVehicle(marque, modele string, annee int, prix float64, disponible bool) (int64, error) {
	query := `
		INSERT INTO voitures (marque, modele, annee, prix, carburant, etat, disponible)
		VALUES ($1, $2, $3, $4, 'essence', 'occasion', $5)
		RETURNING id
	`

	var vehicleID int64
	err := tu.DB.QueryRow(query, marque, modele, annee, prix, disponible).Scan(&vehicleID)
	if err != nil {
		return 0, fmt.Errorf("failed to seed test vehicle: %w", err)
	}

	return vehicleID, nil
}

// SeedTestGarage creates a test garage and returns its ID, so seeded
// rows can satisfy the garage_id foreign keys.
func (tu *TestUtils) SeedTestGarage(nom string) (int64, error) {
	query := `
		INSERT INTO garages (nom)
		VALUES ($1)
		RETURNING id
	`

	var garageID int64
	err := tu.DB.QueryRow(query, nom).Scan(&garageID)
	if err != nil {
		return 0, fmt.Errorf("failed to seed test garage: %w", err)
	}

	return garageID, nil
}

// SeedTestClient creates a test client and returns its ID.
func (tu *TestUtils) SeedTestClient(garageID int64, nom, prenom string) (int64, error) {
	query := `
		INSERT INTO clients (garage_id, nom, prenom)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var clientID int64
	err := tu.DB.QueryRow(query, garageID, nom, prenom).Scan(&clientID)
	if err != nil {
		return 0, fmt.Errorf("failed to seed test client: %w", err)
	}

	return clientID, nil
}

// CountRows returns the number of rows in a table.
func (tu *TestUtils) CountRows(table string) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	err := tu.DB.QueryRow(query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}
