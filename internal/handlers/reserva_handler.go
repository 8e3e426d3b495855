package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	ucBooking "github.com/BruksfildServices01/essentia-tours/internal/usecase/booking"
	ucCheckout "github.com/BruksfildServices01/essentia-tours/internal/usecase/checkout"
)

// ======================================================
// HANDLER
// ======================================================

type ReservaHandler struct {
	create *ucCheckout.CreateReserva
	list   *ucBooking.ListAgendamentos
}

func NewReservaHandler(
	create *ucCheckout.CreateReserva,
	list *ucBooking.ListAgendamentos,
) *ReservaHandler {
	return &ReservaHandler{
		create: create,
		list:   list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservaRequest struct {
	PasseioID            string `json:"passeioId"`
	Data                 string `json:"data"`
	Horario              string `json:"horario"`
	Pessoas              int    `json:"pessoas"`
	ClienteNome          string `json:"clienteNome"`
	ClienteEmail         string `json:"clienteEmail"`
	ClienteTelefone      string `json:"clienteTelefone"`
	ClienteObservacoes   string `json:"clienteObservacoes"`
	MetodoPagamento      string `json:"metodoPagamento"`
	PreCadastroClienteID string `json:"preCadastroClienteId"`
}

// ======================================================
// CREATE (checkout público)
// ======================================================

func (h *ReservaHandler) Create(c *gin.Context) {
	var req CreateReservaRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucCheckout.CreateReservaInput{
		PasseioID:            req.PasseioID,
		Data:                 req.Data,
		Horario:              req.Horario,
		Pessoas:              req.Pessoas,
		ClienteNome:          req.ClienteNome,
		ClienteEmail:         req.ClienteEmail,
		ClienteTelefone:      req.ClienteTelefone,
		MetodoPagamento:      req.MetodoPagamento,
		Observacoes:          req.ClienteObservacoes,
		PreCadastroClienteID: req.PreCadastroClienteID,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_reserva")
		return
	}

	resp := gin.H{
		"success":     true,
		"message":     "Reserva criada com sucesso",
		"reserva":     out.Agendamento,
		"clienteId":   out.ClienteID,
		"novoCliente": out.NovoCliente,
		"desconto":    out.Desconto,
	}
	if out.SenhaGerada != "" {
		resp["senhaGerada"] = out.SenhaGerada
	}
	if out.Pix != nil {
		resp["pix"] = out.Pix
	}
	if out.PixErro != "" {
		resp["pixErro"] = out.PixErro
	}

	c.JSON(http.StatusCreated, resp)
}

// ======================================================
// LIST (admin)
// ======================================================

func (h *ReservaHandler) List(c *gin.Context) {
	rows, err := h.list.Execute(c.Request.Context(), ucBooking.ListAgendamentosInput{
		Status: string(booking.StatusConfirmadas),
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_reservas")
		return
	}

	c.JSON(http.StatusOK, rows)
}
