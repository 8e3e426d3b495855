package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleGuia    = "guia"
	RoleCliente = "cliente"
)

type User struct {
	ID           string `gorm:"primaryKey;size:64" json:"id"`
	Email        string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Nome         string `gorm:"size:150;not null" json:"nome"`
	FirstName    string `gorm:"size:100" json:"firstName"`
	LastName     string `gorm:"size:100" json:"lastName"`
	UserType     string `gorm:"column:user_type;size:20;default:'cliente'" json:"userType"`
	Telefone     string `gorm:"size:30" json:"telefone"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleGuia, RoleCliente:
		return true
	}
	return false
}
