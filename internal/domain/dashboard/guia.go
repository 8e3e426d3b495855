package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/dto"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/timezone"
)

const (
	DefaultAvaliacao     = 4.5
	defaultHorarioInicio = "08:00"
	defaultHorarioFim    = "18:00"
	defaultPasseioNome   = "Passeio não informado"
	defaultClienteNome   = "Cliente não informado"
)

type GuiaProfile struct {
	ID                 string  `json:"id"`
	Nome               string  `json:"nome"`
	Email              string  `json:"email"`
	AvaliacaoMedia     float64 `json:"avaliacaoMedia"`
	TotalAvaliacoes    int     `json:"totalAvaliacoes"`
	ComissaoTotal      float64 `json:"comissaoTotal"`
	PercentualComissao float64 `json:"percentualComissao"`
}

type GuiaStats struct {
	TotalAgendamentos int     `json:"totalAgendamentos"`
	AgendamentosMes   int     `json:"agendamentosMes"`
	ReceitaMes        float64 `json:"receitaMes"`
	AvaliacaoMedia    float64 `json:"avaliacaoMedia"`
	TotalAvaliacoes   int     `json:"totalAvaliacoes"`
}

type GuiaAgendamento struct {
	ID              string    `json:"id"`
	PasseioNome     string    `json:"passeio_nome"`
	ClienteNome     string    `json:"cliente_nome"`
	ClienteTelefone string    `json:"cliente_telefone"`
	DataPasseio     time.Time `json:"data_passeio"`
	HorarioInicio   string    `json:"horario_inicio"`
	HorarioFim      string    `json:"horario_fim"`
	NumeroPessoas   int       `json:"numero_pessoas"`
	ValorTotal      float64   `json:"valor_total"`
	ValorComissao   float64   `json:"valor_comissao"`
	Status          string    `json:"status"`
	Observacoes     *string   `json:"observacoes"`
}

type GuiaAgenda struct {
	Pendentes   []GuiaAgendamento `json:"pendentes"`
	Confirmados []GuiaAgendamento `json:"confirmados"`
	EmAndamento []GuiaAgendamento `json:"emAndamento"`
	Concluidos  []GuiaAgendamento `json:"concluidos"`
	Cancelados  []GuiaAgendamento `json:"cancelados"`
}

type GuiaPanel struct {
	Guia         GuiaProfile `json:"guia"`
	Stats        GuiaStats   `json:"stats"`
	Agendamentos GuiaAgenda  `json:"agendamentos"`
}

// NewGuiaProfile merges the guide's account with its optional guias row.
func NewGuiaProfile(u *models.User, extra *models.Guia, defaultCommission float64) GuiaProfile {
	p := GuiaProfile{
		ID:                 u.ID,
		Nome:               u.Nome,
		Email:              u.Email,
		AvaliacaoMedia:     DefaultAvaliacao,
		PercentualComissao: defaultCommission,
	}
	if extra == nil {
		return p
	}
	if extra.AvaliacaoMedia != nil && *extra.AvaliacaoMedia > 0 {
		p.AvaliacaoMedia = *extra.AvaliacaoMedia
	}
	if extra.PercentualComissao != nil && *extra.PercentualComissao > 0 {
		p.PercentualComissao = *extra.PercentualComissao
	}
	p.TotalAvaliacoes = extra.TotalAvaliacoes
	p.ComissaoTotal = extra.ComissaoTotal
	return p
}

// BuildGuiaPanel computes the guide's stats and groups its bookings by
// status. Month revenue is the commission of concluded bookings this month.
func BuildGuiaPanel(profile GuiaProfile, rows []dto.AgendamentoView, now time.Time) GuiaPanel {
	panel := GuiaPanel{
		Guia: profile,
		Stats: GuiaStats{
			AvaliacaoMedia:  profile.AvaliacaoMedia,
			TotalAvaliacoes: profile.TotalAvaliacoes,
		},
		Agendamentos: GuiaAgenda{
			Pendentes:   []GuiaAgendamento{},
			Confirmados: []GuiaAgendamento{},
			EmAndamento: []GuiaAgendamento{},
			Concluidos:  []GuiaAgendamento{},
			Cancelados:  []GuiaAgendamento{},
		},
	}

	first, last := timezone.MonthRange(now)

	for _, a := range rows {
		status := booking.Normalize(a.Status)
		day := timezone.DateKey(a.DataPasseio)
		inMonth := !a.DataPasseio.IsZero() && day >= first && day <= last

		if inMonth {
			panel.Stats.AgendamentosMes++
		}

		item := formatGuiaAgendamento(a, status)
		switch status {
		case booking.StatusPendenteCliente:
			panel.Agendamentos.Pendentes = append(panel.Agendamentos.Pendentes, item)
		case booking.StatusConfirmadas:
			panel.Agendamentos.Confirmados = append(panel.Agendamentos.Confirmados, item)
		case booking.StatusEmProgresso:
			panel.Agendamentos.EmAndamento = append(panel.Agendamentos.EmAndamento, item)
		case booking.StatusConcluidas:
			panel.Stats.TotalAgendamentos++
			if inMonth {
				panel.Stats.ReceitaMes += a.ValorComissao
			}
			panel.Agendamentos.Concluidos = append(panel.Agendamentos.Concluidos, item)
		case booking.StatusCanceladas:
			panel.Agendamentos.Cancelados = append(panel.Agendamentos.Cancelados, item)
		}
	}

	return panel
}

func formatGuiaAgendamento(a dto.AgendamentoView, status booking.Status) GuiaAgendamento {
	pessoas := a.NumeroPessoas
	if pessoas < 1 {
		pessoas = 1
	}
	return GuiaAgendamento{
		ID:              a.ID,
		PasseioNome:     orDefault(a.PasseioNome, defaultPasseioNome),
		ClienteNome:     orDefault(a.ClienteNome, defaultClienteNome),
		ClienteTelefone: orDefault(a.ClienteTelefone, ""),
		DataPasseio:     a.DataPasseio,
		HorarioInicio:   orDefault(a.HorarioInicio, defaultHorarioInicio),
		HorarioFim:      orDefault(a.HorarioFim, defaultHorarioFim),
		NumeroPessoas:   pessoas,
		ValorTotal:      a.ValorTotal,
		ValorComissao:   a.ValorComissao,
		Status:          string(status),
		Observacoes:     a.Observacoes,
	}
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

// GuiaDirectory resolves a guide's account and optional metadata row.
type GuiaDirectory interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	// GetGuia returns nil, nil when the guide has no guias row.
	GetGuia(ctx context.Context, id string) (*models.Guia, error)
}
