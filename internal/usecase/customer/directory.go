package customer

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/customer"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

// ======================================================
// ADMIN LIST
// ======================================================

type ClienteEntry struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Status   string `json:"status"`
	Origin   string `json:"origin"`
	Type     string `json:"type"`
}

type ListClientes struct {
	dir domain.Directory
}

func NewListClientes(dir domain.Directory) *ListClientes {
	return &ListClientes{dir: dir}
}

// Execute lists registered customer accounts first, then cliente profiles
// whose email has no account yet (captured through forms, shown as leads).
func (uc *ListClientes) Execute(ctx context.Context) ([]ClienteEntry, error) {
	users, err := uc.dir.ListClienteAccounts(ctx)
	if err != nil {
		return nil, err
	}
	clientes, err := uc.dir.ListClientes(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ClienteEntry, 0, len(users)+len(clientes))
	registered := make(map[string]bool, len(users))

	for _, u := range users {
		registered[strings.ToLower(u.Email)] = true
		out = append(out, ClienteEntry{
			ID:       u.ID,
			Nome:     u.Nome,
			Email:    u.Email,
			Telefone: u.Telefone,
			Status:   "active",
			Origin:   "website",
			Type:     "client",
		})
	}

	for _, c := range clientes {
		if registered[strings.ToLower(c.Email)] {
			continue
		}
		status := c.Status
		if status == "" {
			status = "novo"
		}
		out = append(out, ClienteEntry{
			ID:       c.ID,
			Nome:     c.Nome,
			Email:    c.Email,
			Telefone: c.Telefone,
			Status:   status,
			Origin:   "referral",
			Type:     "lead",
		})
	}

	return out, nil
}

// ======================================================
// PERFIL
// ======================================================

type PerfilInput struct {
	Nome     string
	Telefone string
	CPF      string
	Endereco string
}

type Perfil struct {
	dir domain.Directory
}

func NewPerfil(dir domain.Directory) *Perfil {
	return &Perfil{dir: dir}
}

func (uc *Perfil) Get(ctx context.Context, clienteID string) (*models.Cliente, error) {
	if clienteID == "" {
		return nil, httperr.ErrBusiness("cliente_id_required")
	}
	return uc.dir.GetCliente(ctx, clienteID)
}

// Update writes the non-empty fields only.
func (uc *Perfil) Update(
	ctx context.Context,
	clienteID string,
	in PerfilInput,
) (*models.Cliente, error) {

	if clienteID == "" {
		return nil, httperr.ErrBusiness("cliente_id_required")
	}

	fields := map[string]any{}
	for column, value := range map[string]string{
		"nome":     in.Nome,
		"telefone": in.Telefone,
		"cpf":      in.CPF,
		"endereco": in.Endereco,
	} {
		if v := strings.TrimSpace(value); v != "" {
			fields[column] = v
		}
	}

	ok, err := uc.dir.UpdateCliente(ctx, clienteID, fields)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("cliente_not_found")
	}
	return uc.dir.GetCliente(ctx, clienteID)
}

// ======================================================
// RESERVAS
// ======================================================

type Reserva struct {
	ID              string    `json:"id"`
	PasseioNome     string    `json:"passeioNome"`
	Data            time.Time `json:"data"`
	Horario         *string   `json:"horario"`
	Pessoas         int       `json:"pessoas"`
	ValorTotal      float64   `json:"valorTotal"`
	Status          string    `json:"status"`
	MetodoPagamento string    `json:"metodoPagamento"`
	CriadoEm        time.Time `json:"criadoEm"`
}

type ListReservas struct {
	bookings booking.Repository
}

func NewListReservas(bookings booking.Repository) *ListReservas {
	return &ListReservas{bookings: bookings}
}

// Execute returns the customer's bookings, newest first.
func (uc *ListReservas) Execute(ctx context.Context, clienteID string) ([]Reserva, error) {
	if clienteID == "" {
		return nil, httperr.ErrBusiness("cliente_id_required")
	}

	rows, err := uc.bookings.List(ctx, booking.ListFilter{ClienteID: clienteID})
	if err != nil {
		return nil, err
	}

	out := make([]Reserva, 0, len(rows))
	for _, r := range rows {
		res := Reserva{
			ID:              r.ID,
			PasseioNome:     "Passeio não encontrado",
			Data:            r.DataPasseio,
			Horario:         r.HorarioInicio,
			Pessoas:         r.NumeroPessoas,
			ValorTotal:      r.ValorTotal,
			Status:          r.Status,
			MetodoPagamento: "Não informado",
			CriadoEm:        r.CriadoEm,
		}
		if r.PasseioNome != nil && *r.PasseioNome != "" {
			res.PasseioNome = *r.PasseioNome
		}
		if r.MetodoPagamento != nil && *r.MetodoPagamento != "" {
			res.MetodoPagamento = *r.MetodoPagamento
		}
		out = append(out, res)
	}
	return out, nil
}
