package customer

import (
	"context"

	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

type Repository interface {
	// -------- Lookup (nil, nil when absent) --------
	FindClienteByEmail(ctx context.Context, email string) (*models.Cliente, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// -------- User --------
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUserContact(ctx context.Context, id, nome, telefone string) error

	// -------- Cliente --------
	// UpsertCliente inserts c or, when a row with the same email exists,
	// moves that row onto c's id and contact data.
	UpsertCliente(ctx context.Context, c *models.Cliente) error
	ReparentAgendamentos(ctx context.Context, oldID, newID string) (int64, error)
}

// Directory backs the admin client list and the customer area.
type Directory interface {
	ListClienteAccounts(ctx context.Context) ([]models.User, error)
	ListClientes(ctx context.Context) ([]models.Cliente, error)
	GetCliente(ctx context.Context, id string) (*models.Cliente, error)
	UpdateCliente(ctx context.Context, id string, fields map[string]any) (bool, error)
}
