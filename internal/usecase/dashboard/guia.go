package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/dashboard"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/timezone"
)

type GetGuiaDashboard struct {
	guias    domain.GuiaDirectory
	bookings booking.Repository

	defaultCommission float64
	timezone          string
	now               func() time.Time
}

func NewGetGuiaDashboard(
	guias domain.GuiaDirectory,
	bookings booking.Repository,
	defaultCommission float64,
	tz string,
) *GetGuiaDashboard {
	return &GetGuiaDashboard{
		guias:             guias,
		bookings:          bookings,
		defaultCommission: defaultCommission,
		timezone:          tz,
		now:               time.Now,
	}
}

func (uc *GetGuiaDashboard) Execute(
	ctx context.Context,
	guiaID string,
) (*domain.GuiaPanel, error) {

	if guiaID == "" {
		return nil, httperr.ErrBusiness("guia_id_required")
	}

	// --------------------------------------------------
	// 1️⃣ Conta do guia
	// --------------------------------------------------
	u, err := uc.guias.GetUser(ctx, guiaID)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, httperr.ErrBusiness("guia_not_found")
		}
		return nil, err
	}
	if u.UserType != models.RoleGuia {
		return nil, httperr.ErrBusiness("guia_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Dados extras (opcional)
	// --------------------------------------------------
	extra, err := uc.guias.GetGuia(ctx, guiaID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Agendamentos do guia
	// --------------------------------------------------
	rows, err := uc.bookings.List(ctx, booking.ListFilter{GuiaID: guiaID})
	if err != nil {
		return nil, err
	}

	now := uc.now().In(timezone.Location(uc.timezone))
	panel := domain.BuildGuiaPanel(
		domain.NewGuiaProfile(u, extra, uc.defaultCommission),
		rows,
		now,
	)
	return &panel, nil
}
