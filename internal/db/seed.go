package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/essentia-tours/internal/auth"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

type SeedUser struct {
	Email    string
	Nome     string
	Password string
	UserType string
}

var DefaultUsers = []SeedUser{
	{Email: "admin@essentia.com", Nome: "Administrador Essentia", Password: "admin123", UserType: models.RoleAdmin},
	{Email: "guia@essentia.com", Nome: "Guia Local", Password: "guia123", UserType: models.RoleGuia},
}

var DemoPasseios = []models.Passeio{
	{
		ID:               "tour-roma-1",
		Nome:             "Roma Imperial e Coliseu",
		Descricao:        "Um mergulho na história do Império Romano com acesso prioritário ao Coliseu e Fórum Romano.",
		Preco:            120,
		Duracao:          "4h",
		Categoria:        "História",
		CapacidadeMaxima: 20,
		Imagens:          models.StringList{"https://images.unsplash.com/photo-1552832230-c0197dd311b5?auto=format&fit=crop&q=80&w=1000"},
		Ativo:            true,
	},
	{
		ID:               "tour-veneza-1",
		Nome:             "Veneza Clássica e Gôndola",
		Descricao:        "Explore os canais mais famosos do mundo e a icônica Praça São Marcos em um passeio inesquecível.",
		Preco:            180,
		Duracao:          "3h",
		Categoria:        "Romance",
		CapacidadeMaxima: 6,
		Imagens:          models.StringList{"https://images.unsplash.com/photo-1514890547357-a9ee2887a35f?auto=format&fit=crop&q=80&w=1000"},
		Ativo:            true,
	},
	{
		ID:               "tour-toscana-1",
		Nome:             "Sabores da Toscana",
		Descricao:        "Degustação de vinhos e azeites em uma vinícola familiar no coração das colinas toscanas.",
		Preco:            150,
		Duracao:          "6h",
		Categoria:        "Gastronomia",
		CapacidadeMaxima: 12,
		Imagens:          models.StringList{"https://images.unsplash.com/photo-1542135915-30912ee6bad2?auto=format&fit=crop&q=80&w=1000"},
		Ativo:            true,
	},
}

// SeedUsers upserts users by email, resetting name, role and password.
func SeedUsers(db *gorm.DB, users []SeedUser) error {
	for _, su := range users {
		hash, err := auth.HashPassword(su.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", su.Email, err)
		}

		u := models.User{
			Email:        su.Email,
			Nome:         su.Nome,
			PasswordHash: hash,
			UserType:     su.UserType,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"nome", "password_hash", "user_type"}),
		}).Create(&u).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", su.Email, err)
		}
	}
	return nil
}

// SeedPasseios upserts tours by id, refreshing name, price and images.
func SeedPasseios(db *gorm.DB, passeios []models.Passeio) error {
	for i := range passeios {
		p := passeios[i]
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"nome", "preco", "imagens"}),
		}).Create(&p).Error; err != nil {
			return fmt.Errorf("seed passeio %s: %w", p.ID, err)
		}
	}
	return nil
}
