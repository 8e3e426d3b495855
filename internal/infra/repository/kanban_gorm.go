package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/kanban"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

type KanbanColumnGormRepository struct {
	db *gorm.DB
}

func NewKanbanColumnGormRepository(db *gorm.DB) *KanbanColumnGormRepository {
	return &KanbanColumnGormRepository{db: db}
}

func (r *KanbanColumnGormRepository) ListActive(ctx context.Context) ([]models.KanbanColumn, error) {
	var cols []models.KanbanColumn
	if err := conn(ctx, r.db).
		Where("ativo = ?", true).
		Order("order_index ASC").
		Find(&cols).Error; err != nil {
		return nil, err
	}
	return cols, nil
}

func (r *KanbanColumnGormRepository) Get(ctx context.Context, id string) (*models.KanbanColumn, error) {
	var c models.KanbanColumn
	if err := conn(ctx, r.db).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, notFound(err, "column_not_found")
	}
	return &c, nil
}

func (r *KanbanColumnGormRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&models.KanbanColumn{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *KanbanColumnGormRepository) Create(ctx context.Context, c *models.KanbanColumn) error {
	return conn(ctx, r.db).Create(c).Error
}

func (r *KanbanColumnGormRepository) Update(ctx context.Context, c *models.KanbanColumn) error {
	return conn(ctx, r.db).
		Model(&models.KanbanColumn{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"title":       c.Title,
			"color":       c.Color,
			"order_index": c.OrderIndex,
		}).Error
}

func (r *KanbanColumnGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&models.KanbanColumn{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.ColumnRepository = (*KanbanColumnGormRepository)(nil)
