package models

import (
	"time"

	"gorm.io/gorm"
)

// Guia holds guide metadata. It shares its id with the guide's User row.
type Guia struct {
	ID                 string     `gorm:"primaryKey;size:64" json:"id"`
	Nome               string     `gorm:"size:150;not null" json:"nome"`
	Email              string     `gorm:"size:150" json:"email"`
	Telefone           string     `gorm:"size:30" json:"telefone"`
	Especialidades     StringList `gorm:"type:text" json:"especialidades"`
	Idiomas            StringList `gorm:"type:text" json:"idiomas"`
	Status             string     `gorm:"size:20;default:'ativo'" json:"status"`
	AvaliacaoMedia     *float64   `json:"avaliacao_media"`
	TotalAvaliacoes    int        `json:"total_avaliacoes"`
	ComissaoTotal      float64    `json:"comissao_total"`
	PercentualComissao *float64   `json:"percentual_comissao"`
	Biografia          string     `gorm:"type:text" json:"biografia"`

	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criado_em"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizado_em"`
}

func (Guia) TableName() string { return "guias" }

func (g *Guia) BeforeCreate(*gorm.DB) error {
	ensureID(&g.ID)
	return nil
}
