package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/realtime"
	ucKanban "github.com/BruksfildServices01/essentia-tours/internal/usecase/kanban"
)

// ======================================================
// HANDLER
// ======================================================

type BoardHandler struct {
	board        *ucKanban.GetBoard
	updateStatus *ucKanban.UpdateItemStatus
	saveColumn   *ucKanban.SaveColumn
	deleteColumn *ucKanban.DeleteColumn
	hub          *realtime.Hub
}

func NewBoardHandler(
	board *ucKanban.GetBoard,
	updateStatus *ucKanban.UpdateItemStatus,
	saveColumn *ucKanban.SaveColumn,
	deleteColumn *ucKanban.DeleteColumn,
	hub *realtime.Hub,
) *BoardHandler {
	return &BoardHandler{
		board:        board,
		updateStatus: updateStatus,
		saveColumn:   saveColumn,
		deleteColumn: deleteColumn,
		hub:          hub,
	}
}

// --------- Requests ---------

type MoveItemRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SaveColumnRequest struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Color      string `json:"color"`
	OrderIndex *int   `json:"orderIndex"`
}

// --------- Handlers ---------

func (h *BoardHandler) Board(c *gin.Context) {
	board, err := h.board.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_load_board")
		return
	}
	c.JSON(http.StatusOK, board)
}

// Move handles a card dropped on another column.
func (h *BoardHandler) Move(c *gin.Context) {
	var req MoveItemRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.updateStatus.Execute(c.Request.Context(), ucKanban.UpdateItemStatusInput{
		ItemID:  req.ID,
		Status:  req.Status,
		ActorID: actorID(c),
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": out})
}

func (h *BoardHandler) SaveColumn(c *gin.Context) {
	var req SaveColumnRequest
	if !bindJSON(c, &req) {
		return
	}

	col, err := h.saveColumn.Execute(c.Request.Context(), ucKanban.SaveColumnInput{
		ID:         req.ID,
		Title:      req.Title,
		Color:      req.Color,
		OrderIndex: req.OrderIndex,
		ActorID:    actorID(c),
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_save_column")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "column": col})
}

func (h *BoardHandler) DeleteColumn(c *gin.Context) {
	if err := h.deleteColumn.Execute(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		httperr.Respond(c, err, "failed_to_delete_column")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Live upgrades to the websocket that pushes board changes.
func (h *BoardHandler) Live(c *gin.Context) {
	h.hub.ServeWS(c.Writer, c.Request)
}
