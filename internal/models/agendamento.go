package models

import (
	"time"

	"gorm.io/gorm"
)

// Agendamento is a booking. ValorTotal and ValorComissao are a snapshot taken
// when the booking is written; later tour price changes do not touch them.
type Agendamento struct {
	ID                 string    `gorm:"primaryKey;size:64" json:"id"`
	PasseioID          string    `gorm:"size:64;index;not null" json:"passeio_id"`
	ClienteID          *string   `gorm:"size:64;index" json:"cliente_id"`
	GuiaID             *string   `gorm:"size:64;index" json:"guia_id"`
	DataPasseio        time.Time `gorm:"type:date;index;not null" json:"data_passeio"`
	HorarioInicio      *string   `gorm:"size:5" json:"horario_inicio"`
	HorarioFim         *string   `gorm:"size:5" json:"horario_fim"`
	NumeroPessoas      int       `gorm:"default:1" json:"numero_pessoas"`
	ValorTotal         float64   `json:"valor_total"`
	PercentualComissao float64   `json:"percentual_comissao"`
	ValorComissao      float64   `json:"valor_comissao"`
	Status             string    `gorm:"size:40;index;default:'em_progresso'" json:"status"`
	Observacoes        *string   `gorm:"type:text" json:"observacoes"`
	MetodoPagamento    *string   `gorm:"size:30" json:"metodo_pagamento"`
	PagamentoID        *string   `gorm:"size:64" json:"pagamento_id"`

	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criado_em"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizado_em"`
}

func (Agendamento) TableName() string { return "agendamentos" }

func (a *Agendamento) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
