package httperr

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var statusByCode = map[string]int{
	"invalid_credentials": http.StatusUnauthorized,

	"lead_already_converted": http.StatusConflict,
	"column_in_use":          http.StatusConflict,
	"column_already_exists":  http.StatusConflict,
	"guia_already_exists":    http.StatusConflict,
}

var messages = map[string]string{
	"agendamento_not_found":    "Agendamento não encontrado.",
	"cliente_not_found":        "Cliente não encontrado.",
	"column_not_found":         "Coluna não encontrada.",
	"guia_not_found":           "Guia não encontrado.",
	"item_not_found":           "Item não encontrado.",
	"lead_not_found":           "Lead não encontrado.",
	"passeio_not_found":        "Passeio não encontrado.",
	"user_not_found":           "Usuário não encontrado.",
	"lead_already_converted":   "Este lead já foi convertido.",
	"column_in_use":            "Não é possível excluir uma coluna com agendamentos.",
	"column_already_exists":    "Já existe uma coluna com este título.",
	"guia_already_exists":      "Este guia já está cadastrado.",
	"email_already_registered": "Email já cadastrado.",
	"invalid_credentials":      "Credenciais inválidas.",
	"missing_credentials":      "Email e senha são obrigatórios.",
	"missing_required_fields":  "Campos obrigatórios não informados.",
	"invalid_email":            "Email inválido.",
	"invalid_date":             "Data inválida.",
	"invalid_month":            "Mês inválido.",
	"invalid_status":           "Status inválido.",
	"invalid_commission":       "Percentual de comissão inválido.",
	"invalid_user_type":        "Tipo de usuário inválido.",
	"nome_required":            "Nome é obrigatório.",
	"title_required":           "Título é obrigatório.",
	"passeio_required":         "Passeio é obrigatório.",
	"data_required":            "Data é obrigatória.",
	"cliente_id_required":      "Cliente ID obrigatório.",
	"guia_id_required":         "Guia ID obrigatório.",
	"user_id_required":         "ID do usuário é obrigatório.",
}

// StatusOf maps a business code to its HTTP status: not found codes are
// 404, listed conflicts 409, every other business code 400.
func StatusOf(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	if strings.HasSuffix(code, "_not_found") {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func MessageOf(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return "Requisição inválida."
}

// Respond writes err as a JSON error. Business errors keep their code;
// anything else is logged and answered with 500 and internalCode.
func Respond(c *gin.Context, err error, internalCode string) {
	code := CodeOf(err)
	if code == "" {
		log.Printf("[HTTP] %s %s: %v", c.Request.Method, c.FullPath(), err)
		Internal(c, internalCode, "Erro interno do servidor.")
		return
	}
	Write(c, StatusOf(code), code, MessageOf(code))
}
