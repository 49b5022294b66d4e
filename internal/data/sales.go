// File: internal/data/sales.go
package data

import (
	"context"
	"database/sql"
	"time"

	"github.com/autosales/api/internal/validator"
)

// Sale represents a completed vehicle sale. The display fields are only
// populated by joined reads.
type Sale struct {
	ID            int64     `json:"id"`
	VoitureID     int64     `json:"voiture_id"`
	ClientID      int64     `json:"client_id"`
	EmployeID     int64     `json:"employe_id"`
	GarageID      int64     `json:"garage_id"`
	PrixVente     float64   `json:"prix_vente"`
	Notes         *string   `json:"notes"`
	DateVente     time.Time `json:"date_vente"`
	ClientNom     string    `json:"client_nom,omitempty"`
	ClientPrenom  string    `json:"client_prenom,omitempty"`
	VoitureMarque string    `json:"voiture_marque,omitempty"`
	VoitureModele string    `json:"voiture_modele,omitempty"`
}

// ValidateSale checks the required fields of a new sale.
func ValidateSale(v *validator.Validator, sale *Sale) {
	v.Check(sale.VoitureID != 0, "voiture_id", "must be provided")
	v.Check(sale.ClientID != 0, "client_id", "must be provided")
	v.Check(sale.EmployeID != 0, "employe_id", "must be provided")
	v.Check(sale.GarageID != 0, "garage_id", "must be provided")
	v.Check(sale.PrixVente != 0, "prix_vente", "must be provided")
}

// SaleModel wraps a sql.DB connection pool.
type SaleModel struct {
	DB *sql.DB
}

// GetAll retrieves every sale joined with client and vehicle display
// fields, most recent first.
func (m *SaleModel) GetAll(ctx context.Context) ([]*Sale, error) {
	query := `
		SELECT v.id, v.voiture_id, v.client_id, v.employe_id, v.garage_id,
		       v.prix_vente, v.notes, v.date_vente,
		       c.nom, c.prenom, vt.marque, vt.modele
		FROM ventes v
		JOIN clients c ON c.id = v.client_id
		JOIN voitures vt ON vt.id = v.voiture_id
		ORDER BY v.date_vente DESC
	`

	ctx, cancel := queryContext(ctx)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSales(rows)
}

// Insert records a new sale on a dedicated transactional connection. The
// sale timestamp is assigned by the store. Referential integrity of the
// vehicle and client references is left to the store's foreign keys; the
// vehicle's availability flag is deliberately not touched.
func (m *SaleModel) Insert(ctx context.Context, sale *Sale) error {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO ventes (voiture_id, client_id, employe_id, garage_id, prix_vente, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date_vente
	`

	err = tx.QueryRowContext(ctx, query,
		sale.VoitureID,
		sale.ClientID,
		sale.EmployeID,
		sale.GarageID,
		sale.PrixVente,
		sale.Notes,
	).Scan(&sale.ID, &sale.DateVente)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func scanSales(rows *sql.Rows) ([]*Sale, error) {
	sales := []*Sale{}

	for rows.Next() {
		sale := &Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.VoitureID,
			&sale.ClientID,
			&sale.EmployeID,
			&sale.GarageID,
			&sale.PrixVente,
			&sale.Notes,
			&sale.DateVente,
			&sale.ClientNom,
			&sale.ClientPrenom,
			&sale.VoitureMarque,
			&sale.VoitureModele,
		)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}
