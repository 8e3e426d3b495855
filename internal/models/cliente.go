package models

import (
	"time"

	"gorm.io/gorm"
)

// Cliente is the customer profile, keyed by email and kept on the same id as
// its User account.
type Cliente struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Nome     string `gorm:"size:150;not null" json:"nome"`
	Email    string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Telefone string `gorm:"size:30" json:"telefone"`
	CPF      string `gorm:"column:cpf;size:20" json:"cpf"`
	Endereco string `gorm:"type:text" json:"endereco"`
	Status   string `gorm:"size:20;default:'ativo'" json:"status"`

	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

func (Cliente) TableName() string { return "clientes" }

func (c *Cliente) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
