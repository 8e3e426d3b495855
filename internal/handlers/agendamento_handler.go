package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	ucBooking "github.com/BruksfildServices01/essentia-tours/internal/usecase/booking"
	ucKanban "github.com/BruksfildServices01/essentia-tours/internal/usecase/kanban"
)

// ======================================================
// HANDLER
// ======================================================

type AgendamentoHandler struct {
	create       *ucBooking.CreateAgendamento
	update       *ucBooking.UpdateAgendamento
	delete       *ucBooking.DeleteAgendamento
	list         *ucBooking.ListAgendamentos
	updateStatus *ucKanban.UpdateItemStatus
	repo         booking.Repository
}

func NewAgendamentoHandler(
	create *ucBooking.CreateAgendamento,
	update *ucBooking.UpdateAgendamento,
	delete *ucBooking.DeleteAgendamento,
	list *ucBooking.ListAgendamentos,
	updateStatus *ucKanban.UpdateItemStatus,
	repo booking.Repository,
) *AgendamentoHandler {
	return &AgendamentoHandler{
		create:       create,
		update:       update,
		delete:       delete,
		list:         list,
		updateStatus: updateStatus,
		repo:         repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// AgendamentoRequest is the admin booking form. Older screens send data and
// comissaoPercentual; both spellings are accepted.
type AgendamentoRequest struct {
	PasseioID          *string  `json:"passeioId"`
	ClienteID          *string  `json:"clienteId"`
	GuiaID             *string  `json:"guiaId"`
	Data               *string  `json:"data"`
	DataPasseio        *string  `json:"dataPasseio"`
	HorarioInicio      *string  `json:"horarioInicio"`
	HorarioFim         *string  `json:"horarioFim"`
	NumeroPessoas      *int     `json:"numeroPessoas"`
	ComissaoPercentual *float64 `json:"comissaoPercentual"`
	PercentualComissao *float64 `json:"percentualComissao"`
	Status             *string  `json:"status"`
	Observacoes        *string  `json:"observacoes"`
	MetodoPagamento    *string  `json:"metodoPagamento"`
}

func (r AgendamentoRequest) input(c *gin.Context) ucBooking.AgendamentoInput {
	data := r.DataPasseio
	if data == nil {
		data = r.Data
	}
	pct := r.PercentualComissao
	if pct == nil {
		pct = r.ComissaoPercentual
	}
	return ucBooking.AgendamentoInput{
		PasseioID:          r.PasseioID,
		ClienteID:          r.ClienteID,
		GuiaID:             r.GuiaID,
		DataPasseio:        data,
		HorarioInicio:      r.HorarioInicio,
		HorarioFim:         r.HorarioFim,
		NumeroPessoas:      r.NumeroPessoas,
		PercentualComissao: pct,
		Status:             r.Status,
		Observacoes:        r.Observacoes,
		MetodoPagamento:    r.MetodoPagamento,
		ActorID:            actorID(c),
	}
}

type StatusRequest struct {
	Status string `json:"status"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AgendamentoHandler) List(c *gin.Context) {
	rows, err := h.list.Execute(c.Request.Context(), ucBooking.ListAgendamentosInput{
		Status:    c.Query("status"),
		ClienteID: c.Query("clienteId"),
		GuiaID:    c.Query("guiaId"),
		From:      c.Query("from"),
		To:        c.Query("to"),
		Month:     c.Query("month"),
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_agendamentos")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AgendamentoHandler) Get(c *gin.Context) {
	view, err := h.repo.GetView(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_agendamento")
		return
	}
	c.JSON(http.StatusOK, view)
}

// ======================================================
// WRITE
// ======================================================

func (h *AgendamentoHandler) Create(c *gin.Context) {
	var req AgendamentoRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.create.Execute(c.Request.Context(), req.input(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_agendamento")
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AgendamentoHandler) Update(c *gin.Context) {
	var req AgendamentoRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.update.Execute(c.Request.Context(), c.Param("id"), req.input(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_agendamento")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AgendamentoHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		httperr.Respond(c, err, "failed_to_delete_agendamento")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AgendamentoHandler) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.updateStatus.Execute(c.Request.Context(), ucKanban.UpdateItemStatusInput{
		ItemID:  c.Param("id"),
		Status:  req.Status,
		ActorID: actorID(c),
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_status")
		return
	}
	c.JSON(http.StatusOK, out)
}
