package kanban

import (
	"context"
	"sort"
	"strings"

	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/dto"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

// ======================================================
// READ MODEL
// ======================================================

type PasseioOption struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco"`
	Duracao   string  `json:"duracao"`
	Categoria string  `json:"categoria"`
}

type ClienteOption struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

type GuiaOption struct {
	ID             string            `json:"id"`
	Nome           string            `json:"nome"`
	Email          string            `json:"email"`
	Especialidades models.StringList `json:"especialidades"`
}

// Snapshot is everything the board needs, read in one pass.
type Snapshot struct {
	Agendamentos []dto.AgendamentoView
	Leads        []models.Lead
	Passeios     []PasseioOption
	Clientes     []ClienteOption
	Guias        []GuiaOption
	Columns      []models.KanbanColumn
}

type Reader interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// ======================================================
// BOARD
// ======================================================

type Column struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Color      string          `json:"color"`
	OrderIndex int             `json:"order_index"`
	Ativo      bool            `json:"ativo"`
	Synthetic  bool            `json:"synthetic,omitempty"`
	Items      []dto.BoardItem `json:"items"`
}

type Board struct {
	Columns  []Column        `json:"columns"`
	Tarefas  []dto.BoardItem `json:"tarefas"`
	Passeios []PasseioOption `json:"passeios"`
	Clientes []ClienteOption `json:"clientes"`
	Guias    []GuiaOption    `json:"guias"`
}

const leadSuffix = " (Lead)"

// BuildBoard groups bookings and open leads into columns by status. The
// "novo" column is added when not persisted, and statuses with no column get
// a synthetic one so no card disappears from the board.
func BuildBoard(s *Snapshot) Board {
	items := make([]dto.BoardItem, 0, len(s.Agendamentos)+len(s.Leads))
	for _, a := range s.Agendamentos {
		a.Status = string(booking.Normalize(a.Status))
		items = append(items, dto.BoardItem{AgendamentoView: a})
	}
	for _, l := range s.Leads {
		if strings.EqualFold(l.Status, string(booking.StatusConvertido)) {
			continue
		}
		items = append(items, leadCard(l))
	}

	columns := make([]Column, 0, len(s.Columns)+1)
	index := map[string]int{}
	for _, c := range s.Columns {
		if !c.Ativo {
			continue
		}
		index[c.ID] = len(columns)
		if canonical := string(booking.Normalize(c.ID)); canonical != c.ID {
			index[canonical] = len(columns)
		}
		columns = append(columns, Column{
			ID:         c.ID,
			Title:      c.Title,
			Color:      c.Color,
			OrderIndex: c.OrderIndex,
			Ativo:      true,
			Items:      []dto.BoardItem{},
		})
	}

	if _, ok := index[NovoColumnID]; !ok {
		index[NovoColumnID] = len(columns)
		columns = append(columns, Column{
			ID:         NovoColumnID,
			Title:      "Novos Leads",
			Color:      "blue",
			OrderIndex: -1,
			Ativo:      true,
			Synthetic:  true,
			Items:      []dto.BoardItem{},
		})
	}

	for _, item := range items {
		i, ok := index[item.Status]
		if !ok {
			i = len(columns)
			index[item.Status] = i
			columns = append(columns, Column{
				ID:         item.Status,
				Title:      item.Status,
				Color:      DefaultColor,
				OrderIndex: DefaultOrderIndex,
				Ativo:      true,
				Synthetic:  true,
				Items:      []dto.BoardItem{},
			})
		}
		columns[i].Items = append(columns[i].Items, item)
	}

	sort.SliceStable(columns, func(a, b int) bool {
		return columns[a].OrderIndex < columns[b].OrderIndex
	})

	return Board{
		Columns:  columns,
		Tarefas:  items,
		Passeios: nonNil(s.Passeios),
		Clientes: nonNil(s.Clientes),
		Guias:    nonNil(s.Guias),
	}
}

func leadCard(l models.Lead) dto.BoardItem {
	status := l.Status
	if status == "" {
		status = string(booking.StatusNovo)
	}

	passeioNome := l.PasseioNome
	if passeioNome == "" {
		passeioNome = "Passeio Solicitado"
	}
	clienteNome := l.Nome + leadSuffix

	view := dto.AgendamentoView{
		ID:            l.ID,
		PasseioID:     l.PasseioID,
		NumeroPessoas: l.NumeroPessoas,
		Status:        string(booking.Normalize(status)),
		PasseioNome:   &passeioNome,
		ClienteNome:   &clienteNome,
		CriadoEm:      l.CreatedAt,
	}
	if view.NumeroPessoas < 1 {
		view.NumeroPessoas = 1
	}
	if l.DataPasseio != nil {
		view.DataPasseio = *l.DataPasseio
	}
	if l.Observacoes != "" {
		obs := l.Observacoes
		view.Observacoes = &obs
	}

	return dto.BoardItem{
		AgendamentoView: view,
		IsLead:          true,
		LeadEmail:       l.Email,
		LeadPhone:       l.Telefone,
	}
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
