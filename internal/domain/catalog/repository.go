package catalog

import (
	"context"

	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

type Repository interface {
	List(ctx context.Context, onlyActive bool) ([]models.Passeio, error)
	Get(ctx context.Context, id string) (*models.Passeio, error)
	Create(ctx context.Context, p *models.Passeio) error
	// Update writes fields and reports false when no tour has that id.
	Update(ctx context.Context, id string, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
