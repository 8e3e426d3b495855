package checkout

import (
	"context"
	"log"
	"strings"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/tx"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/infra/payment"
	"github.com/BruksfildServices01/essentia-tours/internal/metrics"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/timezone"
	"github.com/BruksfildServices01/essentia-tours/internal/usecase/customer"
)

const MetodoPix = "pix"

type PixGateway interface {
	CreatePix(ctx context.Context, in payment.PixRequest) (*payment.PixCharge, error)
}

// ClienteFinder returns cliente_not_found for an unknown id.
type ClienteFinder interface {
	GetCliente(ctx context.Context, id string) (*models.Cliente, error)
}

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateReservaInput struct {
	PasseioID       string
	Data            string
	Horario         string
	Pessoas         int
	ClienteNome     string
	ClienteEmail    string
	ClienteTelefone string
	MetodoPagamento string
	Observacoes     string

	// PreCadastroClienteID is the id returned by the checkout precheck.
	PreCadastroClienteID string
}

type CreateReservaOutput struct {
	Agendamento *models.Agendamento
	ClienteID   string
	NovoCliente bool
	SenhaGerada string
	Desconto    float64
	Pix         *payment.PixCharge
	// PixErro is set when the booking was saved but the charge failed.
	PixErro string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReserva struct {
	bookings booking.Repository
	clientes *customer.EnsureCliente
	finder   ClienteFinder
	tx       tx.Runner
	gateway  PixGateway
	audit    *audit.Dispatcher

	commission  float64
	pixDiscount float64
}

func NewCreateReserva(
	bookings booking.Repository,
	clientes *customer.EnsureCliente,
	finder ClienteFinder,
	tx tx.Runner,
	gateway PixGateway,
	audit *audit.Dispatcher,
	commission float64,
	pixDiscount float64,
) *CreateReserva {
	return &CreateReserva{
		bookings:    bookings,
		clientes:    clientes,
		finder:      finder,
		tx:          tx,
		gateway:     gateway,
		audit:       audit,
		commission:  commission,
		pixDiscount: pixDiscount,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReserva) Execute(
	ctx context.Context,
	in CreateReservaInput,
) (*CreateReservaOutput, error) {

	metodo := strings.ToLower(strings.TrimSpace(in.MetodoPagamento))

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if strings.TrimSpace(in.PasseioID) == "" ||
		strings.TrimSpace(in.Data) == "" ||
		in.Pessoas <= 0 ||
		strings.TrimSpace(in.ClienteNome) == "" ||
		strings.TrimSpace(in.ClienteEmail) == "" ||
		metodo == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	data, err := timezone.ParseDate(in.Data)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	var out CreateReservaOutput

	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {

		// --------------------------------------------------
		// 2️⃣ Passeio
		// --------------------------------------------------
		passeio, err := uc.bookings.GetPasseio(ctx, strings.TrimSpace(in.PasseioID))
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 3️⃣ Cliente
		// --------------------------------------------------
		out.ClienteID = strings.TrimSpace(in.PreCadastroClienteID)
		if out.ClienteID != "" {
			cli, err := uc.finder.GetCliente(ctx, out.ClienteID)
			if err != nil {
				return err
			}
			// the pre-registered id must belong to the contact placing the order
			if !strings.EqualFold(cli.Email, strings.TrimSpace(in.ClienteEmail)) {
				return httperr.ErrBusiness("cliente_not_found")
			}
		} else {
			cli, err := uc.clientes.Execute(ctx, customer.EnsureClienteInput{
				Nome:     in.ClienteNome,
				Email:    in.ClienteEmail,
				Telefone: in.ClienteTelefone,
			})
			if err != nil {
				return err
			}
			out.ClienteID = cli.ClienteID
			out.NovoCliente = cli.NovoCliente
			out.SenhaGerada = cli.SenhaGerada
		}

		// --------------------------------------------------
		// 4️⃣ Valor calculado no servidor
		// --------------------------------------------------
		v := booking.ComputeValores(passeio.Preco, in.Pessoas, uc.commission)
		if metodo == MetodoPix {
			discounted := booking.ApplyDiscount(v.ValorTotal, uc.pixDiscount)
			out.Desconto = v.ValorTotal - discounted
			v = booking.Valores{
				NumeroPessoas:      v.NumeroPessoas,
				ValorTotal:         discounted,
				PercentualComissao: v.PercentualComissao,
				ValorComissao:      discounted * v.PercentualComissao / 100,
			}
		}

		// --------------------------------------------------
		// 5️⃣ Agendamento confirmado
		// --------------------------------------------------
		clienteID := out.ClienteID
		a := &models.Agendamento{
			PasseioID:          passeio.ID,
			ClienteID:          &clienteID,
			DataPasseio:        data,
			NumeroPessoas:      v.NumeroPessoas,
			ValorTotal:         v.ValorTotal,
			PercentualComissao: v.PercentualComissao,
			ValorComissao:      v.ValorComissao,
			Status:             string(booking.StatusConfirmadas),
			MetodoPagamento:    &metodo,
		}
		if h := strings.TrimSpace(in.Horario); h != "" {
			a.HorarioInicio = &h
		}
		if obs := strings.TrimSpace(in.Observacoes); obs != "" {
			a.Observacoes = &obs
		}
		if err := uc.bookings.Create(ctx, a); err != nil {
			return err
		}

		out.Agendamento = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Cobrança PIX (fora da transação)
	// --------------------------------------------------
	if metodo == MetodoPix && uc.gateway != nil {
		uc.chargePix(ctx, in, &out)
	}

	metrics.AgendamentosCreated.WithLabelValues("checkout").Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   &out.ClienteID,
		Action:   "reserva_created",
		Entity:   "agendamento",
		EntityID: &out.Agendamento.ID,
		Metadata: map[string]any{
			"metodo":      metodo,
			"valor_total": out.Agendamento.ValorTotal,
		},
	})

	return &out, nil
}

func (uc *CreateReserva) chargePix(
	ctx context.Context,
	in CreateReservaInput,
	out *CreateReservaOutput,
) {
	a := out.Agendamento

	charge, err := uc.gateway.CreatePix(ctx, payment.PixRequest{
		Amount:      a.ValorTotal,
		Description: "Reserva Essentia Tours",
		Reference:   a.ID,
		PayerEmail:  strings.TrimSpace(in.ClienteEmail),
		PayerName:   strings.TrimSpace(in.ClienteNome),
	})
	if err != nil {
		log.Printf("[Checkout] pix charge for %s failed: %v", a.ID, err)
		out.PixErro = "Não foi possível gerar o PIX. Tente novamente."
		return
	}

	a.PagamentoID = &charge.ID
	if err := uc.bookings.Update(ctx, a); err != nil {
		log.Printf("[Checkout] saving payment id for %s: %v", a.ID, err)
	}
	out.Pix = charge
}
