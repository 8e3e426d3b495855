package models

import (
	"time"

	"gorm.io/gorm"
)

type Passeio struct {
	ID               string     `gorm:"primaryKey;size:64" json:"id"`
	Nome             string     `gorm:"size:200;not null" json:"nome"`
	Descricao        string     `gorm:"type:text" json:"descricao"`
	Preco            float64    `json:"preco"`
	Duracao          string     `gorm:"size:50" json:"duracao"`
	Categoria        string     `gorm:"size:80" json:"categoria"`
	CapacidadeMaxima int        `gorm:"default:20" json:"capacidadeMaxima"`
	Imagens          StringList `gorm:"type:text" json:"imagens"`
	Inclusoes        StringList `gorm:"type:text" json:"inclusoes"`
	Idiomas          StringList `gorm:"type:text" json:"idiomas"`
	Ativo            bool       `json:"ativo"`

	Tarifa2Pessoas   *float64 `gorm:"column:tarifa_2_pessoas" json:"tarifa2Pessoas"`
	Tarifa4Pessoas   *float64 `gorm:"column:tarifa_4_pessoas" json:"tarifa4Pessoas"`
	Tarifa6Pessoas   *float64 `gorm:"column:tarifa_6_pessoas" json:"tarifa6Pessoas"`
	Tarifa8Pessoas   *float64 `gorm:"column:tarifa_8_pessoas" json:"tarifa8Pessoas"`
	Tarifa10Pessoas  *float64 `gorm:"column:tarifa_10_pessoas" json:"tarifa10Pessoas"`
	SobConsultaTexto *string  `gorm:"type:text" json:"sobConsultaTexto"`

	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

func (Passeio) TableName() string { return "passeios" }

func (p *Passeio) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
