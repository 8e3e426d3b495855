package lead

import (
	"context"
	"log"
	"strings"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/lead"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/tx"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/metrics"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/timezone"
	"github.com/BruksfildServices01/essentia-tours/internal/usecase/customer"
)

const defaultConversionNote = "Convertido manualmente de Lead"

// ======================================================
// INPUT / OUTPUT
// ======================================================

type ConvertLeadInput struct {
	LeadID      string
	GuiaID      *string
	Observacoes string
	ActorID     *string
}

type ConvertLeadOutput struct {
	Agendamento *models.Agendamento
	ClienteID   string
	NovoCliente bool
	SenhaGerada string
}

// ======================================================
// USE CASE
// ======================================================

// ConvertLead turns a lead into a customer plus a booking. All writes share
// one transaction and a lead can be converted only once.
type ConvertLead struct {
	leads    domain.Repository
	bookings booking.Repository
	clientes *customer.EnsureCliente
	tx       tx.Runner
	audit    *audit.Dispatcher

	defaultCommission float64
	timezone          string
}

func NewConvertLead(
	leads domain.Repository,
	bookings booking.Repository,
	clientes *customer.EnsureCliente,
	tx tx.Runner,
	audit *audit.Dispatcher,
	defaultCommission float64,
	tz string,
) *ConvertLead {
	return &ConvertLead{
		leads:             leads,
		bookings:          bookings,
		clientes:          clientes,
		tx:                tx,
		audit:             audit,
		defaultCommission: defaultCommission,
		timezone:          tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ConvertLead) Execute(
	ctx context.Context,
	in ConvertLeadInput,
) (*ConvertLeadOutput, error) {

	var out ConvertLeadOutput

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {

		// --------------------------------------------------
		// 1️⃣ Lead
		// --------------------------------------------------
		l, err := uc.leads.Get(ctx, in.LeadID)
		if err != nil {
			return err
		}
		if strings.EqualFold(l.Status, domain.StatusConvertido) {
			return httperr.ErrBusiness("lead_already_converted")
		}

		// --------------------------------------------------
		// 2️⃣ Cliente (usuário + perfil)
		// --------------------------------------------------
		telefone := ""
		if l.Telefone != nil {
			telefone = *l.Telefone
		}
		cli, err := uc.clientes.Execute(ctx, customer.EnsureClienteInput{
			Nome:     l.Nome,
			Email:    l.Email,
			Telefone: telefone,
		})
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 3️⃣ Valores a partir do passeio
		// --------------------------------------------------
		passeio, err := uc.bookings.GetPasseio(ctx, l.PasseioID)
		if err != nil {
			return err
		}
		v := booking.ComputeValores(passeio.Preco, l.NumeroPessoas, uc.defaultCommission)

		data := l.DataPasseio
		if data == nil {
			today, _ := timezone.ParseDate(timezone.Today(uc.timezone))
			data = &today
		}

		obs := strings.TrimSpace(in.Observacoes)
		if obs == "" {
			obs = l.Observacoes
		}
		if obs == "" {
			obs = defaultConversionNote
		}

		// --------------------------------------------------
		// 4️⃣ Agendamento
		// --------------------------------------------------
		clienteID := cli.ClienteID
		a := &models.Agendamento{
			PasseioID:          passeio.ID,
			ClienteID:          &clienteID,
			GuiaID:             in.GuiaID,
			DataPasseio:        *data,
			NumeroPessoas:      v.NumeroPessoas,
			ValorTotal:         v.ValorTotal,
			PercentualComissao: v.PercentualComissao,
			ValorComissao:      v.ValorComissao,
			Status:             string(booking.StatusEmProgresso),
			Observacoes:        &obs,
		}
		if err := uc.bookings.Create(ctx, a); err != nil {
			return err
		}

		// --------------------------------------------------
		// 5️⃣ Lead convertido (condicional)
		// --------------------------------------------------
		ok, err := uc.leads.MarkConverted(ctx, l.ID, a.ID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.ErrBusiness("lead_already_converted")
		}

		out = ConvertLeadOutput{
			Agendamento: a,
			ClienteID:   cli.ClienteID,
			NovoCliente: cli.NovoCliente,
			SenhaGerada: cli.SenhaGerada,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	log.Printf("[Lead] %s converted into agendamento %s", in.LeadID, out.Agendamento.ID)
	metrics.LeadsConverted.Inc()
	metrics.AgendamentosCreated.WithLabelValues("lead").Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "lead_converted",
		Entity:   "lead",
		EntityID: &in.LeadID,
		Metadata: map[string]any{
			"agendamento_id": out.Agendamento.ID,
			"cliente_id":     out.ClienteID,
		},
	})

	return &out, nil
}
