package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/dto"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/timezone"
)

type ListAgendamentosInput struct {
	Status    string
	ClienteID string
	GuiaID    string

	// From and To bound the tour date, inclusive. Month takes precedence
	// when set (YYYY-MM), as used by the calendar view.
	From  string
	To    string
	Month string
}

type ListAgendamentos struct {
	repo domain.Repository
}

func NewListAgendamentos(repo domain.Repository) *ListAgendamentos {
	return &ListAgendamentos{repo: repo}
}

func (uc *ListAgendamentos) Execute(
	ctx context.Context,
	in ListAgendamentosInput,
) ([]dto.AgendamentoView, error) {

	f := domain.ListFilter{
		ClienteID: in.ClienteID,
		GuiaID:    in.GuiaID,
	}
	if in.Status != "" {
		f.Status = domain.Normalize(in.Status)
	}

	if in.Month != "" {
		start, err := time.Parse("2006-01", in.Month)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_month")
		}
		end := start.AddDate(0, 1, -1)
		f.From, f.To = &start, &end
	} else {
		if in.From != "" {
			d, err := timezone.ParseDate(in.From)
			if err != nil {
				return nil, httperr.ErrBusiness("invalid_date")
			}
			f.From = &d
		}
		if in.To != "" {
			d, err := timezone.ParseDate(in.To)
			if err != nil {
				return nil, httperr.ErrBusiness("invalid_date")
			}
			f.To = &d
		}
	}

	rows, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.AgendamentoView{}
	}
	return rows, nil
}
