// File: internal/data/vehicles.go
package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/autosales/api/internal/validator"
)

// Vehicle represents a car in the inventory.
type Vehicle struct {
	ID          int64     `json:"id"`
	GarageID    *int64    `json:"garage_id"`
	Marque      string    `json:"marque"`
	Modele      string    `json:"modele"`
	Annee       int       `json:"annee"`
	Prix        float64   `json:"prix"`
	Kilometrage int64     `json:"kilometrage"`
	Carburant   string    `json:"carburant"`
	Etat        string    `json:"etat"`
	Disponible  bool      `json:"disponible"`
	Couleur     *string   `json:"couleur"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VehiclePatch lists the columns a partial update may set. Nil fields
// are left untouched.
type VehiclePatch struct {
	GarageID    *int64   `json:"garage_id"`
	Marque      *string  `json:"marque"`
	Modele      *string  `json:"modele"`
	Annee       *int     `json:"annee"`
	Prix        *float64 `json:"prix"`
	Kilometrage *int64   `json:"kilometrage"`
	Carburant   *string  `json:"carburant"`
	Etat        *string  `json:"etat"`
	Disponible  *bool    `json:"disponible"`
	Couleur     *string  `json:"couleur"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

// assignments interprets the patch into SET clauses and their arguments.
func (p VehiclePatch) assignments() ([]string, []any) {
	sets := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.GarageID != nil {
		add("garage_id", *p.GarageID)
	}
	if p.Marque != nil {
		add("marque", *p.Marque)
	}
	if p.Modele != nil {
		add("modele", *p.Modele)
	}
	if p.Annee != nil {
		add("annee", *p.Annee)
	}
	if p.Prix != nil {
		add("prix", *p.Prix)
	}
	if p.Kilometrage != nil {
		add("kilometrage", *p.Kilometrage)
	}
	if p.Carburant != nil {
		add("carburant", *p.Carburant)
	}
	if p.Etat != nil {
		add("etat", *p.Etat)
	}
	if p.Disponible != nil {
		add("disponible", *p.Disponible)
	}
	if p.Couleur != nil {
		add("couleur", *p.Couleur)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}

	return sets, args
}

// ValidateVehicle checks the required fields of a new vehicle.
func ValidateVehicle(v *validator.Validator, vehicle *Vehicle) {
	v.Check(vehicle.Marque != "", "marque", "must be provided")
	v.Check(vehicle.Modele != "", "modele", "must be provided")
	v.Check(vehicle.Annee != 0, "annee", "must be provided")
	v.Check(vehicle.Prix != 0, "prix", "must be provided")
	v.Check(vehicle.Carburant != "", "carburant", "must be provided")
	v.Check(vehicle.Etat != "", "etat", "must be provided")
}

// VehicleModel wraps a sql.DB connection pool.
type VehicleModel struct {
	DB *sql.DB
}

// GetAll retrieves every vehicle, most recently updated first.
func (m *VehicleModel) GetAll(ctx context.Context) ([]*Vehicle, error) {
	query := `
		SELECT id, garage_id, marque, modele, annee, prix, kilometrage,
		       carburant, etat, disponible, couleur, description, image_url,
		       created_at, updated_at
		FROM voitures
		ORDER BY updated_at DESC
	`

	ctx, cancel := queryContext(ctx)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := []*Vehicle{}

	for rows.Next() {
		vehicle := &Vehicle{}
		err := rows.Scan(
			&vehicle.ID,
			&vehicle.GarageID,
			&vehicle.Marque,
			&vehicle.Modele,
			&vehicle.Annee,
			&vehicle.Prix,
			&vehicle.Kilometrage,
			&vehicle.Carburant,
			&vehicle.Etat,
			&vehicle.Disponible,
			&vehicle.Couleur,
			&vehicle.Description,
			&vehicle.ImageURL,
			&vehicle.CreatedAt,
			&vehicle.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

// Insert adds a new vehicle to the inventory.
func (m *VehicleModel) Insert(ctx context.Context, vehicle *Vehicle) error {
	query := `
		INSERT INTO voitures
			(garage_id, marque, modele, annee, prix, kilometrage, carburant,
			 etat, disponible, couleur, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	ctx, cancel := queryContext(ctx)
	defer cancel()

	return m.DB.QueryRowContext(ctx, query,
		vehicle.GarageID,
		vehicle.Marque,
		vehicle.Modele,
		vehicle.Annee,
		vehicle.Prix,
		vehicle.Kilometrage,
		vehicle.Carburant,
		vehicle.Etat,
		vehicle.Disponible,
		vehicle.Couleur,
		vehicle.Description,
		vehicle.ImageURL,
	).Scan(&vehicle.ID, &vehicle.CreatedAt, &vehicle.UpdatedAt)
}

// Update rewrites only the columns supplied in the patch.
func (m *VehicleModel) Update(ctx context.Context, id int64, patch VehiclePatch) error {
	sets, args := patch.assignments()
	if len(sets) == 0 {
		return ErrEmptyPatch
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE voitures SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	ctx, cancel := queryContext(ctx)
	defer cancel()

	_, err := m.DB.ExecContext(ctx, query, args...)
	return err
}

// Delete removes a vehicle. Deleting an id that does not exist succeeds
// silently, matching zero-row DELETE semantics.
func (m *VehicleModel) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM voitures
		WHERE id = $1
	`

	ctx, cancel := queryContext(ctx)
	defer cancel()

	_, err := m.DB.ExecContext(ctx, query, id)
	return err
}
