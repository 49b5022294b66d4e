// File: internal/data/models.go
package data

import "database/sql"

// Models wraps all data models for use with the connection pool.
type Models struct {
	Users    UserModel
	Vehicles VehicleModel
	Clients  ClientModel
	Sales    SaleModel
	Stats    StatsModel
}

// NewModels initializes the Models struct with a given database connection.
func NewModels(db *sql.DB) Models {
	return Models{
		Users:    UserModel{DB: db},
		Vehicles: VehicleModel{DB: db},
		Clients:  ClientModel{DB: db},
		Sales:    SaleModel{DB: db},
		Stats:    StatsModel{DB: db},
	}
}
