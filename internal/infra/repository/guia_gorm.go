package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/essentia-tours/internal/domain/dashboard"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

type GuiaGormRepository struct {
	db *gorm.DB
}

func NewGuiaGormRepository(db *gorm.DB) *GuiaGormRepository {
	return &GuiaGormRepository{db: db}
}

func (r *GuiaGormRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := conn(ctx, r.db).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

func (r *GuiaGormRepository) GetGuia(ctx context.Context, id string) (*models.Guia, error) {
	var g models.Guia
	err := conn(ctx, r.db).Where("id = ?", id).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ListActive returns guides with status ativo ordered by name.
func (r *GuiaGormRepository) ListActive(ctx context.Context) ([]models.Guia, error) {
	var guias []models.Guia
	if err := conn(ctx, r.db).
		Where("status = ?", "ativo").
		Order("nome ASC").
		Find(&guias).Error; err != nil {
		return nil, err
	}
	return guias, nil
}

func (r *GuiaGormRepository) Create(ctx context.Context, g *models.Guia) error {
	return conn(ctx, r.db).Create(g).Error
}

// Update writes the given columns and reports whether the guide exists.
func (r *GuiaGormRepository) Update(ctx context.Context, id string, fields map[string]any) (bool, error) {
	if len(fields) == 0 {
		return r.exists(ctx, id)
	}
	res := conn(ctx, r.db).Model(&models.Guia{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	return r.exists(ctx, id)
}

func (r *GuiaGormRepository) exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Guia{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Compile-time check
var _ dashboard.GuiaDirectory = (*GuiaGormRepository)(nil)
