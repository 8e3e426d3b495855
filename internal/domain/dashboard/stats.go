package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/timezone"
)

// BookingRow is the slice of an agendamento the admin dashboard reduces over.
type BookingRow struct {
	DataPasseio time.Time
	Status      string
	ValorTotal  float64
}

// Snapshot holds full-table reads taken for one dashboard computation.
type Snapshot struct {
	UserTypes    []string
	Passeios     int
	Agendamentos []BookingRow
}

type Reader interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

type Stats struct {
	TotalClientes         int     `json:"totalClientes"`
	TotalGuias            int     `json:"totalGuias"`
	TotalAdmins           int     `json:"totalAdmins"`
	TotalPasseios         int     `json:"totalPasseios"`
	AgendamentosHoje      int     `json:"agendamentosHoje"`
	AgendamentosMes       int     `json:"agendamentosMes"`
	AgendamentosPendentes int     `json:"agendamentosPendentes"`
	ReceitaMes            float64 `json:"receitaMes"`
}

// ComputeStats reduces a snapshot in memory. now carries the server's
// configured location; "this month" is [first day, last day] inclusive of
// that calendar.
func ComputeStats(s *Snapshot, now time.Time) Stats {
	var st Stats
	if s == nil {
		return st
	}

	for _, role := range s.UserTypes {
		switch role {
		case models.RoleCliente:
			st.TotalClientes++
		case models.RoleGuia:
			st.TotalGuias++
		case models.RoleAdmin:
			st.TotalAdmins++
		}
	}
	st.TotalPasseios = s.Passeios

	today := now.Format(timezone.DateLayout)
	first, last := timezone.MonthRange(now)

	for _, a := range s.Agendamentos {
		day := timezone.DateKey(a.DataPasseio)
		status := booking.Normalize(a.Status)

		if day == today {
			st.AgendamentosHoje++
		}
		if status == booking.StatusPendenteCliente {
			st.AgendamentosPendentes++
		}
		if day >= first && day <= last {
			st.AgendamentosMes++
			if status.CountsAsRevenue() {
				st.ReceitaMes += a.ValorTotal
			}
		}
	}

	return st
}
