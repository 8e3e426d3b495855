package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	ucLead "github.com/BruksfildServices01/essentia-tours/internal/usecase/lead"
)

type LeadHandler struct {
	create  *ucLead.CreateLead
	list    *ucLead.ListLeads
	convert *ucLead.ConvertLead
}

func NewLeadHandler(
	create *ucLead.CreateLead,
	list *ucLead.ListLeads,
	convert *ucLead.ConvertLead,
) *LeadHandler {
	return &LeadHandler{
		create:  create,
		list:    list,
		convert: convert,
	}
}

// --------- Requests ---------

type CreateLeadRequest struct {
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	PasseioID   string `json:"passeioId"`
	PasseioNome string `json:"passeioNome"`
	Data        string `json:"data"`
	Pessoas     int    `json:"pessoas"`
	Observacoes string `json:"observacoes"`
}

type ConvertLeadRequest struct {
	GuiaID      *string `json:"guiaId"`
	Observacoes string  `json:"observacoes"`
}

// --------- Handlers ---------

// Create is the public "request a tour" form.
func (h *LeadHandler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if !bindJSON(c, &req) {
		return
	}

	l, err := h.create.Execute(c.Request.Context(), ucLead.CreateLeadInput{
		Nome:          req.Nome,
		Email:         req.Email,
		Telefone:      req.Telefone,
		PasseioID:     req.PasseioID,
		PasseioNome:   req.PasseioNome,
		DataPasseio:   req.Data,
		NumeroPessoas: req.Pessoas,
		Observacoes:   req.Observacoes,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_lead")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "lead": l})
}

func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_leads")
		return
	}
	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) Convert(c *gin.Context) {
	var req ConvertLeadRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	out, err := h.convert.Execute(c.Request.Context(), ucLead.ConvertLeadInput{
		LeadID:      c.Param("id"),
		GuiaID:      req.GuiaID,
		Observacoes: req.Observacoes,
		ActorID:     actorID(c),
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_convert_lead")
		return
	}

	resp := gin.H{
		"success":     true,
		"agendamento": out.Agendamento,
		"clienteId":   out.ClienteID,
		"novoCliente": out.NovoCliente,
	}
	if out.SenhaGerada != "" {
		resp["senhaGerada"] = out.SenhaGerada
	}
	c.JSON(http.StatusOK, resp)
}
