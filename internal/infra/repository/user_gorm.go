package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/user"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
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

func (r *UserGormRepository) Get(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := conn(ctx, r.db).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

func (r *UserGormRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := conn(ctx, r.db).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	return conn(ctx, r.db).Create(u).Error
}

func (r *UserGormRepository) Update(ctx context.Context, id string, fields map[string]any) (bool, error) {
	if len(fields) == 0 {
		var count int64
		err := conn(ctx, r.db).Model(&models.User{}).Where("id = ?", id).Count(&count).Error
		return count > 0, err
	}
	res := conn(ctx, r.db).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *UserGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&models.User{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
