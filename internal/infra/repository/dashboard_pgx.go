package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/BruksfildServices01/essentia-tours/internal/domain/dashboard"
)

// DashboardPgxReader pulls the full tables the admin dashboard reduces over.
type DashboardPgxReader struct {
	pool Querier
}

func NewDashboardPgxReader(pool Querier) *DashboardPgxReader {
	return &DashboardPgxReader{pool: pool}
}

const (
	dashboardUsersSQL        = `SELECT COALESCE(user_type, '') FROM users`
	dashboardPasseiosSQL     = `SELECT id FROM passeios`
	dashboardAgendamentosSQL = `SELECT data_passeio, COALESCE(status, ''), COALESCE(valor_total, 0) FROM agendamentos`
)

func (r *DashboardPgxReader) Snapshot(ctx context.Context) (*dashboard.Snapshot, error) {
	s := &dashboard.Snapshot{}

	var err error
	if s.UserTypes, err = collect(ctx, r.pool, dashboardUsersSQL,
		func(row pgx.Rows) (string, error) {
			var t string
			err := row.Scan(&t)
			return t, err
		}); err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}

	passeios, err := collect(ctx, r.pool, dashboardPasseiosSQL,
		func(row pgx.Rows) (string, error) {
			var id string
			err := row.Scan(&id)
			return id, err
		})
	if err != nil {
		return nil, fmt.Errorf("passeios: %w", err)
	}
	s.Passeios = len(passeios)

	if s.Agendamentos, err = collect(ctx, r.pool, dashboardAgendamentosSQL,
		func(row pgx.Rows) (dashboard.BookingRow, error) {
			var b dashboard.BookingRow
			err := row.Scan(&b.DataPasseio, &b.Status, &b.ValorTotal)
			return b, err
		}); err != nil {
		return nil, fmt.Errorf("agendamentos: %w", err)
	}

	return s, nil
}

var _ dashboard.Reader = (*DashboardPgxReader)(nil)
