package booking

import (
	"context"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/kanban"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/timezone"
)

type UpdateAgendamento struct {
	repo    domain.Repository
	columns kanban.ColumnRepository
	audit   *audit.Dispatcher
}

func NewUpdateAgendamento(
	repo domain.Repository,
	columns kanban.ColumnRepository,
	audit *audit.Dispatcher,
) *UpdateAgendamento {
	return &UpdateAgendamento{
		repo:    repo,
		columns: columns,
		audit:   audit,
	}
}

// Execute applies the fields present in in. Totals are recomputed only
// when the tour, the party size or the commission percent changes; otherwise
// the stored snapshot is kept even if the tour price moved since.
func (uc *UpdateAgendamento) Execute(
	ctx context.Context,
	id string,
	in AgendamentoInput,
) (*models.Agendamento, error) {

	a, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	recompute := false

	if p := deref(in.PasseioID); p != "" && p != a.PasseioID {
		a.PasseioID = p
		recompute = true
	}
	if in.NumeroPessoas != nil && *in.NumeroPessoas != a.NumeroPessoas {
		a.NumeroPessoas = *in.NumeroPessoas
		recompute = true
	}
	if in.PercentualComissao != nil && *in.PercentualComissao != a.PercentualComissao {
		if *in.PercentualComissao < 0 || *in.PercentualComissao > 100 {
			return nil, httperr.ErrBusiness("invalid_commission")
		}
		a.PercentualComissao = *in.PercentualComissao
		recompute = true
	}

	if recompute {
		passeio, err := uc.repo.GetPasseio(ctx, a.PasseioID)
		if err != nil {
			return nil, err
		}
		v := domain.ComputeValores(passeio.Preco, a.NumeroPessoas, a.PercentualComissao)
		a.NumeroPessoas = v.NumeroPessoas
		a.ValorTotal = v.ValorTotal
		a.ValorComissao = v.ValorComissao
	}

	if in.ClienteID != nil {
		a.ClienteID = optionalID(in.ClienteID)
	}
	if in.GuiaID != nil {
		a.GuiaID = optionalID(in.GuiaID)
	}
	if deref(in.DataPasseio) != "" {
		data, err := timezone.ParseDate(*in.DataPasseio)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		a.DataPasseio = data
	}
	if in.HorarioInicio != nil {
		a.HorarioInicio = optionalText(in.HorarioInicio)
	}
	if in.HorarioFim != nil {
		a.HorarioFim = optionalText(in.HorarioFim)
	}
	if in.Observacoes != nil {
		a.Observacoes = optionalText(in.Observacoes)
	}
	if in.MetodoPagamento != nil {
		a.MetodoPagamento = optionalText(in.MetodoPagamento)
	}
	if s := deref(in.Status); s != "" {
		status := domain.Normalize(s)
		ok, err := kanban.IsAllowedStatus(ctx, uc.columns, status, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		a.Status = string(status)
	} else {
		a.Status = string(domain.Normalize(a.Status))
	}

	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "agendamento_updated",
		Entity:   "agendamento",
		EntityID: &a.ID,
		Metadata: map[string]any{"recomputed": recompute},
	})

	return a, nil
}
