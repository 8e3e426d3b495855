package models

import (
	"time"

	"gorm.io/gorm"
)

type Lead struct {
	ID            string     `gorm:"primaryKey;size:64" json:"id"`
	Nome          string     `gorm:"size:150;not null" json:"nome"`
	Email         string     `gorm:"size:150;index;not null" json:"email"`
	Telefone      *string    `gorm:"size:30" json:"telefone"`
	PasseioID     string     `gorm:"size:64" json:"passeio_id"`
	PasseioNome   string     `gorm:"size:150" json:"passeio_nome"`
	DataPasseio   *time.Time `gorm:"type:date" json:"data_passeio"`
	NumeroPessoas int        `gorm:"default:1" json:"numero_pessoas"`
	Observacoes   string     `gorm:"type:text" json:"observacoes"`
	Status        string     `gorm:"size:30;index;default:'novo'" json:"status"`

	AgendamentoID *string `gorm:"size:64" json:"agendamento_id"`

	CreatedAt    time.Time `json:"created_at"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizado_em"`
}

func (Lead) TableName() string { return "leads" }

func (l *Lead) BeforeCreate(*gorm.DB) error {
	ensureID(&l.ID)
	return nil
}
