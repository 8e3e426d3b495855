package booking

import (
	"strings"
)

type Status string

const (
	StatusNovo            Status = "novo"
	StatusEmProgresso     Status = "em_progresso"
	StatusPendenteCliente Status = "pendente_cliente"
	StatusConfirmadas     Status = "confirmadas"
	StatusConcluidas      Status = "concluidas"
	StatusCanceladas      Status = "canceladas"
	StatusConvertido      Status = "convertido"
)

// BookingStatuses are the canonical values a booking may carry.
var BookingStatuses = []Status{
	StatusEmProgresso,
	StatusPendenteCliente,
	StatusConfirmadas,
	StatusConcluidas,
	StatusCanceladas,
}

// spellings found in existing rows and older clients
var aliases = map[string]Status{
	"confirmada":   StatusConfirmadas,
	"confirmado":   StatusConfirmadas,
	"confirmados":  StatusConfirmadas,
	"concluida":    StatusConcluidas,
	"concluido":    StatusConcluidas,
	"concluidos":   StatusConcluidas,
	"cancelada":    StatusCanceladas,
	"cancelado":    StatusCanceladas,
	"cancelados":   StatusCanceladas,
	"pendente":     StatusPendenteCliente,
	"em_andamento": StatusEmProgresso,
}

// Normalize maps any known spelling of a status to its canonical value.
// Unknown values are returned lowercased and trimmed so custom kanban
// column ids keep working.
func Normalize(raw string) Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := aliases[s]; ok {
		return canonical
	}
	return Status(s)
}

func IsBookingStatus(s Status) bool {
	for _, st := range BookingStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// CountsAsRevenue reports whether a booking in this status is money earned
// or committed.
func (s Status) CountsAsRevenue() bool {
	s = Normalize(string(s))
	return s == StatusConfirmadas || s == StatusConcluidas
}

func (s Status) String() string {
	return string(s)
}

// Aliases returns the legacy spellings that normalize to s.
func Aliases(s Status) []string {
	var out []string
	for alias, canonical := range aliases {
		if canonical == s {
			out = append(out, alias)
		}
	}
	return out
}
