package kanban

import (
	"context"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/kanban"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/lead"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/metrics"
)

type UpdateItemStatusInput struct {
	ItemID  string
	Status  string
	ActorID *string
}

type UpdateItemStatusOutput struct {
	ItemID string `json:"id"`
	Status string `json:"status"`
	IsLead bool   `json:"isLead"`
}

// UpdateItemStatus moves a board card. Card ids are looked up among leads
// first and then among bookings.
type UpdateItemStatus struct {
	leads    lead.Repository
	bookings booking.Repository
	columns  domain.ColumnRepository
	audit    *audit.Dispatcher
}

func NewUpdateItemStatus(
	leads lead.Repository,
	bookings booking.Repository,
	columns domain.ColumnRepository,
	audit *audit.Dispatcher,
) *UpdateItemStatus {
	return &UpdateItemStatus{
		leads:    leads,
		bookings: bookings,
		columns:  columns,
		audit:    audit,
	}
}

func (uc *UpdateItemStatus) Execute(
	ctx context.Context,
	in UpdateItemStatusInput,
) (*UpdateItemStatusOutput, error) {

	status := booking.Normalize(in.Status)
	if in.ItemID == "" || status == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	// --------------------------------------------------
	// 1️⃣ Lead?
	// --------------------------------------------------
	isLead := true
	if _, err := uc.leads.Get(ctx, in.ItemID); err != nil {
		if !httperr.IsBusiness(err, "lead_not_found") {
			return nil, err
		}
		isLead = false
	}

	// --------------------------------------------------
	// 2️⃣ Status permitido
	// --------------------------------------------------
	ok, err := domain.IsAllowedStatus(ctx, uc.columns, status, isLead)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	// --------------------------------------------------
	// 3️⃣ Escrita
	// --------------------------------------------------
	var updated bool
	if isLead {
		updated, err = uc.leads.UpdateStatus(ctx, in.ItemID, string(status))
	} else {
		updated, err = uc.bookings.UpdateStatus(ctx, in.ItemID, status)
	}
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, httperr.ErrBusiness("item_not_found")
	}

	entity := "agendamento"
	if isLead {
		entity = "lead"
	}
	metrics.StatusChanges.WithLabelValues(string(status)).Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "status_updated",
		Entity:   entity,
		EntityID: &in.ItemID,
		Metadata: map[string]any{"status": string(status)},
	})

	return &UpdateItemStatusOutput{
		ItemID: in.ItemID,
		Status: string(status),
		IsLead: isLead,
	}, nil
}
