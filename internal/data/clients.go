// File: internal/data/clients.go
package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/autosales/api/internal/validator"
)

// Client represents a customer of a garage.
type Client struct {
	ID        int64     `json:"id"`
	GarageID  int64     `json:"garage_id"`
	Nom       string    `json:"nom"`
	Prenom    string    `json:"prenom"`
	Email     *string   `json:"email"`
	Telephone *string   `json:"telephone"`
	Adresse   *string   `json:"adresse"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientPatch lists the columns a partial update may set.
type ClientPatch struct {
	GarageID  *int64  `json:"garage_id"`
	Nom       *string `json:"nom"`
	Prenom    *string `json:"prenom"`
	Email     *string `json:"email"`
	Telephone *string `json:"telephone"`
	Adresse   *string `json:"adresse"`
}

func (p ClientPatch) assignments() ([]string, []any) {
	sets := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.GarageID != nil {
		add("garage_id", *p.GarageID)
	}
	if p.Nom != nil {
		add("nom", *p.Nom)
	}
	if p.Prenom != nil {
		add("prenom", *p.Prenom)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.Telephone != nil {
		add("telephone", *p.Telephone)
	}
	if p.Adresse != nil {
		add("adresse", *p.Adresse)
	}

	return sets, args
}

// ValidateClient checks the required fields of a new client.
func ValidateClient(v *validator.Validator, client *Client) {
	v.Check(client.GarageID != 0, "garage_id", "must be provided")
	v.Check(client.Nom != "", "nom", "must be provided")
	v.Check(client.Prenom != "", "prenom", "must be provided")
}

// ClientModel wraps a sql.DB connection pool.
type ClientModel struct {
	DB *sql.DB
}

// GetAll retrieves every client, most recently updated first.
func (m *ClientModel) GetAll(ctx context.Context) ([]*Client, error) {
	query := `
		SELECT id, garage_id, nom, prenom, email, telephone, adresse,
		       created_at, updated_at
		FROM clients
		ORDER BY updated_at DESC
	`

	ctx, cancel := queryContext(ctx)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []*Client{}

	for rows.Next() {
		client := &Client{}
		err := rows.Scan(
			&client.ID,
			&client.GarageID,
			&client.Nom,
			&client.Prenom,
			&client.Email,
			&client.Telephone,
			&client.Adresse,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}

// Insert adds a new client.
func (m *ClientModel) Insert(ctx context.Context, client *Client) error {
	query := `
		INSERT INTO clients (garage_id, nom, prenom, email, telephone, adresse)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	ctx, cancel := queryContext(ctx)
	defer cancel()

	return m.DB.QueryRowContext(ctx, query,
		client.GarageID,
		client.Nom,
		client.Prenom,
		client.Email,
		client.Telephone,
		client.Adresse,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
}

// Update rewrites only the columns supplied in the patch.
func (m *ClientModel) Update(ctx context.Context, id int64, patch ClientPatch) error {
	sets, args := patch.assignments()
	if len(sets) == 0 {
		return ErrEmptyPatch
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE clients SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	ctx, cancel := queryContext(ctx)
	defer cancel()

	_, err := m.DB.ExecContext(ctx, query, args...)
	return err
}

// Delete removes a client, silently when the id does not exist.
func (m *ClientModel) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM clients
		WHERE id = $1
	`

	ctx, cancel := queryContext(ctx)
	defer cancel()

	_, err := m.DB.ExecContext(ctx, query, id)
	return err
}
