package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/essentia-tours/internal/dto"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

type ListFilter struct {
	Status    Status
	ClienteID string
	GuiaID    string
	From      *time.Time
	To        *time.Time
}

type Repository interface {
	// -------- Passeio --------
	GetPasseio(ctx context.Context, id string) (*models.Passeio, error)

	// -------- Agendamento --------
	Create(ctx context.Context, a *models.Agendamento) error
	Get(ctx context.Context, id string) (*models.Agendamento, error)
	Update(ctx context.Context, a *models.Agendamento) error
	Delete(ctx context.Context, id string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status Status) (bool, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// -------- Read model --------
	GetView(ctx context.Context, id string) (*dto.AgendamentoView, error)
	List(ctx context.Context, f ListFilter) ([]dto.AgendamentoView, error)
}
