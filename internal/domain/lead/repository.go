package lead

import (
	"context"

	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

const (
	StatusNovo       = "novo"
	StatusConvertido = "convertido"
)

type Repository interface {
	Create(ctx context.Context, l *models.Lead) error
	Get(ctx context.Context, id string) (*models.Lead, error)
	List(ctx context.Context) ([]models.Lead, error)

	UpdateStatus(ctx context.Context, id, status string) (bool, error)

	// MarkConverted flips an unconverted lead to convertido and records the
	// booking created for it. It returns false when the lead was already
	// converted, which callers treat as a duplicate conversion.
	MarkConverted(ctx context.Context, id, agendamentoID string) (bool, error)
}
