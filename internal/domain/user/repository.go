package user

import (
	"context"

	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

type Repository interface {
	// FindByEmail returns nil, nil when no account uses email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, id string, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
