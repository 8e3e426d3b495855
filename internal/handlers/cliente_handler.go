package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/receipt"
	"github.com/BruksfildServices01/essentia-tours/internal/timezone"
	ucCustomer "github.com/BruksfildServices01/essentia-tours/internal/usecase/customer"
)

type ClienteHandler struct {
	list     *ucCustomer.ListClientes
	ensure   *ucCustomer.EnsureCliente
	perfil   *ucCustomer.Perfil
	reservas *ucCustomer.ListReservas
	bookings booking.Repository
	timezone string
}

func NewClienteHandler(
	list *ucCustomer.ListClientes,
	ensure *ucCustomer.EnsureCliente,
	perfil *ucCustomer.Perfil,
	reservas *ucCustomer.ListReservas,
	bookings booking.Repository,
	tz string,
) *ClienteHandler {
	return &ClienteHandler{
		list:     list,
		ensure:   ensure,
		perfil:   perfil,
		reservas: reservas,
		bookings: bookings,
		timezone: tz,
	}
}

// --------- Requests ---------

type PrecheckRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

type PerfilRequest struct {
	ClienteID string `json:"clienteId"`
	Nome      string `json:"nome"`
	Telefone  string `json:"telefone"`
	CPF       string `json:"cpf"`
	Endereco  string `json:"endereco"`
}

// --------- Admin ---------

func (h *ClienteHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_clientes")
		return
	}
	c.JSON(http.StatusOK, out)
}

// --------- Checkout ---------

// Precheck resolves the customer before payment so the checkout can show
// the generated password and reuse the id.
func (h *ClienteHandler) Precheck(c *gin.Context) {
	var req PrecheckRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.ensure.Execute(c.Request.Context(), ucCustomer.EnsureClienteInput{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_precheck_cliente")
		return
	}

	resp := gin.H{
		"success":     true,
		"clienteId":   out.ClienteID,
		"novoCliente": out.NovoCliente,
	}
	if out.SenhaGerada != "" {
		resp["senhaGerada"] = out.SenhaGerada
	}
	c.JSON(http.StatusOK, resp)
}

// --------- Área do cliente ---------

func (h *ClienteHandler) GetPerfil(c *gin.Context) {
	id := c.Query("clienteId")
	if id != "" && !canAccess(c, id) {
		httperr.Forbidden(c, "forbidden", "Acesso negado.")
		return
	}

	cliente, err := h.perfil.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_perfil")
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) UpdatePerfil(c *gin.Context) {
	var req PerfilRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.ClienteID != "" && !canAccess(c, req.ClienteID) {
		httperr.Forbidden(c, "forbidden", "Acesso negado.")
		return
	}

	cliente, err := h.perfil.Update(c.Request.Context(), req.ClienteID, ucCustomer.PerfilInput{
		Nome:     req.Nome,
		Telefone: req.Telefone,
		CPF:      req.CPF,
		Endereco: req.Endereco,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_perfil")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cliente": cliente})
}

func (h *ClienteHandler) Reservas(c *gin.Context) {
	id := c.Query("clienteId")
	if id != "" && !canAccess(c, id) {
		httperr.Forbidden(c, "forbidden", "Acesso negado.")
		return
	}

	out, err := h.reservas.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_reservas")
		return
	}
	c.JSON(http.StatusOK, out)
}

// Recibo renders the booking receipt as HTML, or as PDF with ?format=pdf.
func (h *ClienteHandler) Recibo(c *gin.Context) {
	view, err := h.bookings.GetView(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_recibo")
		return
	}
	owner := ""
	if view.ClienteID != nil {
		owner = *view.ClienteID
	}
	if !canAccess(c, owner) {
		httperr.Forbidden(c, "forbidden", "Acesso negado.")
		return
	}

	data := receipt.FromView(*view, timezone.NowIn(h.timezone))

	var buf bytes.Buffer
	if c.Query("format") == "pdf" {
		if err := receipt.RenderPDF(&buf, data); err != nil {
			httperr.Respond(c, err, "failed_to_render_recibo")
			return
		}
		c.Header("Content-Disposition", `inline; filename="recibo-`+data.Numero()+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
		return
	}

	if err := receipt.RenderHTML(&buf, data); err != nil {
		httperr.Respond(c, err, "failed_to_render_recibo")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
