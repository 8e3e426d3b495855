package booking

import (
	"context"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/kanban"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/metrics"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAgendamento struct {
	repo              domain.Repository
	columns           kanban.ColumnRepository
	audit             *audit.Dispatcher
	defaultCommission float64
}

func NewCreateAgendamento(
	repo domain.Repository,
	columns kanban.ColumnRepository,
	audit *audit.Dispatcher,
	defaultCommission float64,
) *CreateAgendamento {
	return &CreateAgendamento{
		repo:              repo,
		columns:           columns,
		audit:             audit,
		defaultCommission: defaultCommission,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAgendamento) Execute(
	ctx context.Context,
	in AgendamentoInput,
) (*models.Agendamento, error) {

	// --------------------------------------------------
	// 1️⃣ Passeio
	// --------------------------------------------------
	passeioID := deref(in.PasseioID)
	if passeioID == "" {
		return nil, httperr.ErrBusiness("passeio_required")
	}
	passeio, err := uc.repo.GetPasseio(ctx, passeioID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data do passeio
	// --------------------------------------------------
	if deref(in.DataPasseio) == "" {
		return nil, httperr.ErrBusiness("data_required")
	}
	data, err := timezone.ParseDate(*in.DataPasseio)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 3️⃣ Status
	// --------------------------------------------------
	status := domain.StatusEmProgresso
	if s := deref(in.Status); s != "" {
		status = domain.Normalize(s)
		ok, err := kanban.IsAllowedStatus(ctx, uc.columns, status, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}

	// --------------------------------------------------
	// 4️⃣ Valores (snapshot no momento da escrita)
	// --------------------------------------------------
	pessoas := 1
	if in.NumeroPessoas != nil {
		pessoas = *in.NumeroPessoas
	}
	pct := uc.defaultCommission
	if in.PercentualComissao != nil {
		pct = *in.PercentualComissao
	}
	if pct < 0 || pct > 100 {
		return nil, httperr.ErrBusiness("invalid_commission")
	}
	v := domain.ComputeValores(passeio.Preco, pessoas, pct)

	// --------------------------------------------------
	// 5️⃣ Persistência
	// --------------------------------------------------
	a := &models.Agendamento{
		PasseioID:          passeio.ID,
		ClienteID:          optionalID(in.ClienteID),
		GuiaID:             optionalID(in.GuiaID),
		DataPasseio:        data,
		HorarioInicio:      optionalText(in.HorarioInicio),
		HorarioFim:         optionalText(in.HorarioFim),
		NumeroPessoas:      v.NumeroPessoas,
		ValorTotal:         v.ValorTotal,
		PercentualComissao: v.PercentualComissao,
		ValorComissao:      v.ValorComissao,
		Status:             string(status),
		Observacoes:        optionalText(in.Observacoes),
		MetodoPagamento:    optionalText(in.MetodoPagamento),
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	metrics.AgendamentosCreated.WithLabelValues("admin").Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "agendamento_created",
		Entity:   "agendamento",
		EntityID: &a.ID,
		Metadata: map[string]any{
			"status":      a.Status,
			"valor_total": a.ValorTotal,
		},
	})

	return a, nil
}
