package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/middleware"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	ucUser "github.com/BruksfildServices01/essentia-tours/internal/usecase/user"
)

type AuthHandler struct {
	register *ucUser.Register
	login    *ucUser.Login
	me       *ucUser.Me
	users    *ucUser.Users
}

func NewAuthHandler(
	register *ucUser.Register,
	login *ucUser.Login,
	me *ucUser.Me,
	users *ucUser.Users,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		me:       me,
		users:    users,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Tipo  string `json:"tipo"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserTypeRequest struct {
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

func sessionUser(u *models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"email":    u.Email,
		"nome":     u.Nome,
		"userType": u.UserType,
	}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.register.Execute(c.Request.Context(), ucUser.RegisterInput{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
		Tipo:  req.Tipo,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_register")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Usuário criado com sucesso",
		"userId":      out.User.ID,
		"redirectUrl": out.RedirectURL,
		"token":       out.Token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err, "failed_to_login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"user":        sessionUser(out.User),
		"token":       out.Token,
		"redirectUrl": out.RedirectURL,
	})
}

// Me never fails: the UI treats a null user as signed out.
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.me.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil || u == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": sessionUser(u)})
}

func (h *AuthHandler) UpdateUserType(c *gin.Context) {
	var req UpdateUserTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.users.UpdateType(c.Request.Context(), req.Email, req.UserType, actorID(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_user_type")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tipo de usuário atualizado com sucesso",
		"user": gin.H{
			"id":       u.ID,
			"email":    u.Email,
			"userType": u.UserType,
		},
	})
}
