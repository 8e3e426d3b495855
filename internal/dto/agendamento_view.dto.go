package dto

import "time"

// AgendamentoView is a booking joined with the names the board and the
// customer area display.
type AgendamentoView struct {
	ID                 string    `json:"id"`
	PasseioID          string    `json:"passeio_id"`
	ClienteID          *string   `json:"cliente_id"`
	GuiaID             *string   `json:"guia_id"`
	DataPasseio        time.Time `json:"data_passeio"`
	HorarioInicio      *string   `json:"horario_inicio"`
	HorarioFim         *string   `json:"horario_fim"`
	NumeroPessoas      int       `json:"numero_pessoas"`
	ValorTotal         float64   `json:"valor_total"`
	ValorComissao      float64   `json:"valor_comissao"`
	PercentualComissao float64   `json:"percentual_comissao"`
	Status             string    `json:"status"`
	Observacoes        *string   `json:"observacoes"`
	MetodoPagamento    *string   `json:"metodo_pagamento"`
	CriadoEm           time.Time `json:"criado_em"`

	PasseioNome *string `json:"passeio_nome"`
	ClienteNome *string `json:"cliente_nome"`
	GuiaNome    *string `json:"guia_nome"`

	ClienteTelefone *string `json:"cliente_telefone,omitempty"`
	ClienteEmail    *string `json:"cliente_email,omitempty"`
}

// BoardItem is a card on the kanban board: a booking or an unconverted lead.
type BoardItem struct {
	AgendamentoView

	IsLead    bool    `json:"isLead,omitempty"`
	LeadEmail string  `json:"leadEmail,omitempty"`
	LeadPhone *string `json:"leadPhone,omitempty"`
}
