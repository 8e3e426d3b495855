package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	ucUser "github.com/BruksfildServices01/essentia-tours/internal/usecase/user"
)

type UserHandler struct {
	users *ucUser.Users
}

func NewUserHandler(users *ucUser.Users) *UserHandler {
	return &UserHandler{users: users}
}

type UserRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	UserType  string `json:"userType"`
	Password  string `json:"password"`
}

func (r UserRequest) input(c *gin.Context) ucUser.UserInput {
	return ucUser.UserInput{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		UserType:  r.UserType,
		Password:  r.Password,
		ActorID:   actorID(c),
	}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.users.Create(c.Request.Context(), req.input(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": u})
}

func (h *UserHandler) Update(c *gin.Context) {
	var req UserRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.users.Update(c.Request.Context(), req.input(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_user")
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Query("id"), actorID(c)); err != nil {
		httperr.Respond(c, err, "failed_to_delete_user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Usuário excluído com sucesso"})
}
