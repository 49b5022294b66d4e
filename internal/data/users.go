// File: internal/data/users.go
package data

import (
	"context"
	"database/sql"
	"errors"
)

// RoleEmploye is the role assigned to every registered user.
const RoleEmploye = "employe"

// User represents an account row in the users table.
type User struct {
	ID       int64    `json:"id"`
	Email    string   `json:"email"`
	Password Password `json:"-"`
	Role     string   `json:"role"`
}

// Profile carries the name fields attached one-to-one to a User.
type Profile struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
	Email    string `json:"email"`
	GarageID *int64 `json:"garage_id"`
}

// UserModel wraps a sql.DB connection pool.
type UserModel struct {
	DB *sql.DB
}

// Register inserts a user and its profile inside a single transaction.
// Either both rows exist afterward or neither does.
func (m *UserModel) Register(ctx context.Context, user *User, profile *Profile) error {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, query, user.Email, user.Password.hash, user.Role).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	profile.UserID = user.ID

	query = `
		INSERT INTO profiles (user_id, nom, prenom, email, garage_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, query, profile.UserID, profile.Nom, profile.Prenom, profile.Email, profile.GarageID).Scan(&profile.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetByEmail retrieves a user by its email.
func (m *UserModel) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password_hash, role
		FROM users
		WHERE email = $1
	`

	ctx, cancel := queryContext(ctx)
	defer cancel()

	user := &User{}

	err := m.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password.hash,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return user, nil
}
