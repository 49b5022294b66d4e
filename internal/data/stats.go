// File: internal/data/stats.go
package data

import (
	"context"
	"database/sql"
)

// Stats is the on-demand reporting snapshot. Counts are independent
// point-in-time reads with no cross-query isolation guarantee.
type Stats struct {
	TotalVoitures       int64   `json:"totalVoitures"`
	VoituresDisponibles int64   `json:"voituresDisponibles"`
	TotalClients        int64   `json:"totalClients"`
	TotalVentes         int64   `json:"totalVentes"`
	ChiffreAffaires     float64 `json:"chiffreAffaires"`
	RecentVentes        []*Sale `json:"recentVentes"`
}

// StatsModel wraps a sql.DB connection pool.
type StatsModel struct {
	DB *sql.DB
}

// Snapshot computes the reporting aggregates from the current rows.
func (m *StatsModel) Snapshot(ctx context.Context) (*Stats, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	stats := &Stats{}

	counts := []struct {
		query string
		dest  any
	}{
		{`SELECT COUNT(*) FROM voitures`, &stats.TotalVoitures},
		{`SELECT COUNT(*) FROM voitures WHERE disponible = TRUE`, &stats.VoituresDisponibles},
		{`SELECT COUNT(*) FROM clients`, &stats.TotalClients},
		{`SELECT COUNT(*) FROM ventes`, &stats.TotalVentes},
		{`SELECT COALESCE(SUM(prix_vente), 0) FROM ventes`, &stats.ChiffreAffaires},
	}

	for _, c := range counts {
		if err := m.DB.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	query := `
		SELECT v.id, v.voiture_id, v.client_id, v.employe_id, v.garage_id,
		       v.prix_vente, v.notes, v.date_vente,
		       c.nom, c.prenom, vt.marque, vt.modele
		FROM ventes v
		JOIN clients c ON c.id = v.client_id
		JOIN voitures vt ON vt.id = v.voiture_id
		ORDER BY v.date_vente DESC
		LIMIT 5
	`

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recent, err := scanSales(rows)
	if err != nil {
		return nil, err
	}
	stats.RecentVentes = recent

	return stats, nil
}
