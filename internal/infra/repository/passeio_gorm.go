package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/catalog"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

type PasseioGormRepository struct {
	db *gorm.DB
}

func NewPasseioGormRepository(db *gorm.DB) *PasseioGormRepository {
	return &PasseioGormRepository{db: db}
}

func (r *PasseioGormRepository) List(ctx context.Context, onlyActive bool) ([]models.Passeio, error) {
	q := conn(ctx, r.db).Order("nome ASC")
	if onlyActive {
		q = q.Where("ativo = ?", true)
	}

	var passeios []models.Passeio
	if err := q.Find(&passeios).Error; err != nil {
		return nil, err
	}
	return passeios, nil
}

func (r *PasseioGormRepository) Get(ctx context.Context, id string) (*models.Passeio, error) {
	var p models.Passeio
	if err := conn(ctx, r.db).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFound(err, "passeio_not_found")
	}
	return &p, nil
}

func (r *PasseioGormRepository) Create(ctx context.Context, p *models.Passeio) error {
	// ativo=false must be written, not replaced by a column default
	return conn(ctx, r.db).Select("*").Create(p).Error
}

func (r *PasseioGormRepository) Update(ctx context.Context, id string, fields map[string]any) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.Passeio{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, nil
	}
	if len(fields) == 0 {
		return true, nil
	}
	return true, conn(ctx, r.db).Model(&models.Passeio{}).Where("id = ?", id).Updates(fields).Error
}

func (r *PasseioGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&models.Passeio{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*PasseioGormRepository)(nil)
