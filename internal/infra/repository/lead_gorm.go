package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/lead"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

type LeadGormRepository struct {
	db *gorm.DB
}

func NewLeadGormRepository(db *gorm.DB) *LeadGormRepository {
	return &LeadGormRepository{db: db}
}

func (r *LeadGormRepository) Create(ctx context.Context, l *models.Lead) error {
	return conn(ctx, r.db).Create(l).Error
}

func (r *LeadGormRepository) Get(ctx context.Context, id string) (*models.Lead, error) {
	var l models.Lead
	if err := conn(ctx, r.db).Where("id = ?", id).First(&l).Error; err != nil {
		return nil, notFound(err, "lead_not_found")
	}
	return &l, nil
}

func (r *LeadGormRepository) List(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	if err := conn(ctx, r.db).Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *LeadGormRepository) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	res := conn(ctx, r.db).
		Model(&models.Lead{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *LeadGormRepository) MarkConverted(ctx context.Context, id, agendamentoID string) (bool, error) {
	res := conn(ctx, r.db).
		Model(&models.Lead{}).
		Where("id = ? AND status <> ?", id, domain.StatusConvertido).
		Updates(map[string]any{
			"status":         domain.StatusConvertido,
			"agendamento_id": agendamentoID,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*LeadGormRepository)(nil)
