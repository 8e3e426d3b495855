package kanban

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/kanban"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

// ======================================================
// SAVE
// ======================================================

type SaveColumnInput struct {
	ID         string
	Title      string
	Color      string
	OrderIndex *int
	ActorID    *string
}

type SaveColumn struct {
	columns domain.ColumnRepository
	audit   *audit.Dispatcher
}

func NewSaveColumn(
	columns domain.ColumnRepository,
	audit *audit.Dispatcher,
) *SaveColumn {
	return &SaveColumn{
		columns: columns,
		audit:   audit,
	}
}

// Execute creates the column when in.ID is a board placeholder, deriving
// the permanent id from the title; otherwise it updates the existing one.
func (uc *SaveColumn) Execute(
	ctx context.Context,
	in SaveColumnInput,
) (*models.KanbanColumn, error) {

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, httperr.ErrBusiness("title_required")
	}
	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = domain.DefaultColor
	}

	var (
		col    *models.KanbanColumn
		action string
	)

	if domain.IsNewColumnID(in.ID) {
		id := domain.Slugify(title)
		if id == "" {
			id = models.NewID()
		}
		exists, err := uc.columns.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, httperr.ErrBusiness("column_already_exists")
		}

		col = &models.KanbanColumn{
			ID:         id,
			Title:      title,
			Color:      color,
			OrderIndex: domain.DefaultOrderIndex,
			Ativo:      true,
		}
		if in.OrderIndex != nil {
			col.OrderIndex = *in.OrderIndex
		}
		if err := uc.columns.Create(ctx, col); err != nil {
			return nil, err
		}
		action = "column_created"
	} else {
		existing, err := uc.columns.Get(ctx, in.ID)
		if err != nil {
			return nil, err
		}
		existing.Title = title
		existing.Color = color
		if in.OrderIndex != nil {
			existing.OrderIndex = *in.OrderIndex
		}
		if err := uc.columns.Update(ctx, existing); err != nil {
			return nil, err
		}
		col = existing
		action = "column_updated"
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   action,
		Entity:   "kanban_column",
		EntityID: &col.ID,
	})
	return col, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteColumn struct {
	columns  domain.ColumnRepository
	bookings booking.Repository
	audit    *audit.Dispatcher
}

func NewDeleteColumn(
	columns domain.ColumnRepository,
	bookings booking.Repository,
	audit *audit.Dispatcher,
) *DeleteColumn {
	return &DeleteColumn{
		columns:  columns,
		bookings: bookings,
		audit:    audit,
	}
}

// Execute refuses to delete a column while any booking still carries its id
// as status.
func (uc *DeleteColumn) Execute(
	ctx context.Context,
	id string,
	actorID *string,
) error {

	inUse, err := uc.bookings.CountByStatus(ctx, booking.Status(id))
	if err != nil {
		return err
	}
	if inUse > 0 {
		return httperr.ErrBusiness("column_in_use")
	}

	deleted, err := uc.columns.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusiness("column_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "column_deleted",
		Entity:   "kanban_column",
		EntityID: &id,
	})
	return nil
}
