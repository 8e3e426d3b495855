package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/catalog"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
)

type PasseioHandler struct {
	repo  catalog.Repository
	audit *audit.Dispatcher
}

func NewPasseioHandler(repo catalog.Repository, audit *audit.Dispatcher) *PasseioHandler {
	return &PasseioHandler{repo: repo, audit: audit}
}

// --------- Handlers ---------

func (h *PasseioHandler) List(c *gin.Context) {
	onlyActive := c.Query("ativos") == "true"

	passeios, err := h.repo.List(c.Request.Context(), onlyActive)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_passeios")
		return
	}

	c.JSON(http.StatusOK, catalog.ToViews(passeios))
}

func (h *PasseioHandler) Get(c *gin.Context) {
	p, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_passeio")
		return
	}

	c.JSON(http.StatusOK, catalog.ToView(*p))
}

func (h *PasseioHandler) Create(c *gin.Context) {
	var req catalog.Input
	if !bindJSON(c, &req) {
		return
	}

	p := catalog.NewPasseio(req)
	if err := h.repo.Create(c.Request.Context(), &p); err != nil {
		httperr.Respond(c, err, "failed_to_create_passeio")
		return
	}

	log.Printf("[Passeios] created id=%s nome=%q", p.ID, p.Nome)
	h.dispatch(c, "passeio_created", p.ID)

	c.JSON(http.StatusCreated, gin.H{
		"id":      p.ID,
		"message": "Passeio criado com sucesso",
		"passeio": catalog.ToView(p),
	})
}

func (h *PasseioHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req catalog.Input
	if !bindJSON(c, &req) {
		return
	}

	ok, err := h.repo.Update(c.Request.Context(), id, catalog.Changes(req))
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_passeio")
		return
	}
	if !ok {
		httperr.NotFound(c, "passeio_not_found", "Passeio não encontrado.")
		return
	}

	p, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_passeio")
		return
	}

	h.dispatch(c, "passeio_updated", id)

	c.JSON(http.StatusOK, gin.H{
		"message": "Passeio atualizado com sucesso",
		"passeio": catalog.ToView(*p),
	})
}

func (h *PasseioHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	ok, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_delete_passeio")
		return
	}
	if !ok {
		httperr.NotFound(c, "passeio_not_found", "Passeio não encontrado.")
		return
	}

	h.dispatch(c, "passeio_deleted", id)

	c.JSON(http.StatusOK, gin.H{"message": "Passeio excluído com sucesso"})
}

func (h *PasseioHandler) dispatch(c *gin.Context, action, id string) {
	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   action,
		Entity:   "passeio",
		EntityID: &id,
	})
}
