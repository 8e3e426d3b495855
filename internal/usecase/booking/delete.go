package booking

import (
	"context"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
)

type DeleteAgendamento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAgendamento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAgendamento {
	return &DeleteAgendamento{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the booking for good. There is no soft delete.
func (uc *DeleteAgendamento) Execute(
	ctx context.Context,
	id string,
	actorID *string,
) error {

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusiness("agendamento_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "agendamento_deleted",
		Entity:   "agendamento",
		EntityID: &id,
	})
	return nil
}
