package customer

import (
	"context"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/customer"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/tx"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type EnsureClienteInput struct {
	Nome     string
	Email    string
	Telefone string
}

type EnsureClienteOutput struct {
	ClienteID   string
	NovoCliente bool
	// SenhaGerada is set only when a new account was provisioned.
	SenhaGerada string
	Cliente     *models.Cliente
}

// ======================================================
// USE CASE
// ======================================================

// EnsureCliente resolves the customer id for a contact, creating the user
// account and cliente profile when needed and keeping both on the same id.
type EnsureCliente struct {
	repo  domain.Repository
	tx    tx.Runner
	audit *audit.Dispatcher
}

func NewEnsureCliente(
	repo domain.Repository,
	tx tx.Runner,
	audit *audit.Dispatcher,
) *EnsureCliente {
	return &EnsureCliente{
		repo:  repo,
		tx:    tx,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *EnsureCliente) Execute(
	ctx context.Context,
	in EnsureClienteInput,
) (*EnsureClienteOutput, error) {

	email := validators.NormalizeEmail(in.Email)
	nome := strings.TrimSpace(in.Nome)
	telefone := strings.TrimSpace(in.Telefone)

	if nome == "" {
		return nil, httperr.ErrBusiness("nome_required")
	}
	if !validators.IsEmail(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	var out EnsureClienteOutput

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {

		// --------------------------------------------------
		// 1️⃣ Registros existentes
		// --------------------------------------------------
		cliente, err := uc.repo.FindClienteByEmail(ctx, email)
		if err != nil {
			return err
		}
		user, err := uc.repo.FindUserByEmail(ctx, email)
		if err != nil {
			return err
		}

		if telefone == "" && cliente != nil {
			telefone = cliente.Telefone
		}

		// --------------------------------------------------
		// 2️⃣ Conta de usuário (o id da conta manda)
		// --------------------------------------------------
		if user == nil {
			id := models.NewID()
			if cliente != nil {
				id = cliente.ID
			}

			senha, err := generatePassword()
			if err != nil {
				return err
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			user = &models.User{
				ID:           id,
				Email:        email,
				Nome:         nome,
				PasswordHash: string(hash),
				UserType:     models.RoleCliente,
				Telefone:     telefone,
			}
			if err := uc.repo.CreateUser(ctx, user); err != nil {
				return err
			}

			out.NovoCliente = true
			out.SenhaGerada = senha
		} else if err := uc.repo.UpdateUserContact(ctx, user.ID, nome, telefone); err != nil {
			return err
		}

		// --------------------------------------------------
		// 3️⃣ Perfil de cliente no mesmo id
		// --------------------------------------------------
		profile := &models.Cliente{
			ID:       user.ID,
			Nome:     nome,
			Email:    email,
			Telefone: telefone,
			Status:   "ativo",
		}
		if err := uc.repo.UpsertCliente(ctx, profile); err != nil {
			return err
		}

		// --------------------------------------------------
		// 4️⃣ Reservas do id antigo
		// --------------------------------------------------
		if cliente != nil && cliente.ID != user.ID {
			moved, err := uc.repo.ReparentAgendamentos(ctx, cliente.ID, user.ID)
			if err != nil {
				return err
			}
			log.Printf("[Customer] %s re-keyed %s -> %s (%d agendamentos)", email, cliente.ID, user.ID, moved)
		}

		out.ClienteID = user.ID
		out.Cliente = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	if out.NovoCliente {
		uc.audit.Dispatch(audit.Event{
			Action:   "cliente_created",
			Entity:   "cliente",
			EntityID: &out.ClienteID,
		})
	}

	return &out, nil
}
