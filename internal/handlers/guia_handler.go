package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	ucDashboard "github.com/BruksfildServices01/essentia-tours/internal/usecase/dashboard"
	ucGuia "github.com/BruksfildServices01/essentia-tours/internal/usecase/guia"
)

// ======================================================
// HANDLER
// ======================================================

type GuiaHandler struct {
	guias     *ucGuia.Guias
	dashboard *ucDashboard.GetGuiaDashboard
}

func NewGuiaHandler(
	guias *ucGuia.Guias,
	dashboard *ucDashboard.GetGuiaDashboard,
) *GuiaHandler {
	return &GuiaHandler{
		guias:     guias,
		dashboard: dashboard,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type GuiaRequest struct {
	Nome               *string            `json:"nome"`
	Email              *string            `json:"email"`
	Telefone           *string            `json:"telefone"`
	Especialidades     *models.StringList `json:"especialidades"`
	Idiomas            *models.StringList `json:"idiomas"`
	Biografia          *string            `json:"biografia"`
	Status             *string            `json:"status"`
	PercentualComissao *float64           `json:"percentualComissao"`
}

func (r GuiaRequest) input(c *gin.Context) ucGuia.GuiaInput {
	return ucGuia.GuiaInput{
		Nome:               r.Nome,
		Email:              r.Email,
		Telefone:           r.Telefone,
		Especialidades:     r.Especialidades,
		Idiomas:            r.Idiomas,
		Biografia:          r.Biografia,
		Status:             r.Status,
		PercentualComissao: r.PercentualComissao,
		ActorID:            actorID(c),
	}
}

// ======================================================
// CRUD
// ======================================================

func (h *GuiaHandler) List(c *gin.Context) {
	guias, err := h.guias.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_guias")
		return
	}
	c.JSON(http.StatusOK, guias)
}

func (h *GuiaHandler) Create(c *gin.Context) {
	var req GuiaRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.guias.Create(c.Request.Context(), req.input(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_guia")
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (h *GuiaHandler) Update(c *gin.Context) {
	var req GuiaRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.guias.Update(c.Request.Context(), c.Param("id"), req.input(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_guia")
		return
	}
	c.JSON(http.StatusOK, g)
}

// ======================================================
// PAINEL DO GUIA
// ======================================================

// Dashboard serves ?guiaId=; a guide may only read their own panel.
func (h *GuiaHandler) Dashboard(c *gin.Context) {
	guiaID := c.Query("guiaId")
	if guiaID == "" {
		if id := actorID(c); id != nil {
			guiaID = *id
		}
	}

	if !canAccess(c, guiaID) {
		httperr.Forbidden(c, "forbidden", "Acesso negado.")
		return
	}

	panel, err := h.dashboard.Execute(c.Request.Context(), guiaID)
	if err != nil {
		httperr.Respond(c, err, "failed_to_load_guia_dashboard")
		return
	}
	c.JSON(http.StatusOK, panel)
}
