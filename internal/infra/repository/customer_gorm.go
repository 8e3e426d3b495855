package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/customer"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *CustomerGormRepository) FindClienteByEmail(
	ctx context.Context,
	email string,
) (*models.Cliente, error) {

	var c models.Cliente
	err := conn(ctx, r.db).Where("email = ?", email).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	err := conn(ctx, r.db).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *CustomerGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return conn(ctx, r.db).Create(u).Error
}

func (r *CustomerGormRepository) UpdateUserContact(
	ctx context.Context,
	id, nome, telefone string,
) error {

	updates := map[string]any{"nome": nome}
	if telefone != "" {
		updates["telefone"] = telefone
	}
	return conn(ctx, r.db).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// --------------------------------------------------
// Cliente
// --------------------------------------------------

func (r *CustomerGormRepository) UpsertCliente(
	ctx context.Context,
	c *models.Cliente,
) error {
	return conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"id", "nome", "telefone", "status", "atualizado_em",
			}),
		}).
		Create(c).Error
}

func (r *CustomerGormRepository) ReparentAgendamentos(
	ctx context.Context,
	oldID, newID string,
) (int64, error) {

	res := conn(ctx, r.db).
		Model(&models.Agendamento{}).
		Where("cliente_id = ?", oldID).
		Update("cliente_id", newID)
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *CustomerGormRepository) ListClienteAccounts(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := conn(ctx, r.db).
		Where("user_type = ?", models.RoleCliente).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *CustomerGormRepository) ListClientes(ctx context.Context) ([]models.Cliente, error) {
	var clientes []models.Cliente
	if err := conn(ctx, r.db).Order("criado_em DESC").Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

func (r *CustomerGormRepository) GetCliente(ctx context.Context, id string) (*models.Cliente, error) {
	var c models.Cliente
	if err := conn(ctx, r.db).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, notFound(err, "cliente_not_found")
	}
	return &c, nil
}

func (r *CustomerGormRepository) UpdateCliente(
	ctx context.Context,
	id string,
	fields map[string]any,
) (bool, error) {

	var count int64
	if err := conn(ctx, r.db).Model(&models.Cliente{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, nil
	}
	if len(fields) == 0 {
		return true, nil
	}
	return true, conn(ctx, r.db).Model(&models.Cliente{}).Where("id = ?", id).Updates(fields).Error
}

// Compile-time check
var (
	_ domain.Repository = (*CustomerGormRepository)(nil)
	_ domain.Directory  = (*CustomerGormRepository)(nil)
)
