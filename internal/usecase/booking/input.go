package booking

import (
	"strings"
)

// AgendamentoInput carries the admin form fields. Nil pointers mean "not
// sent", which matters for partial updates.
type AgendamentoInput struct {
	PasseioID          *string
	ClienteID          *string
	GuiaID             *string
	DataPasseio        *string
	HorarioInicio      *string
	HorarioFim         *string
	NumeroPessoas      *int
	PercentualComissao *float64
	Status             *string
	Observacoes        *string
	MetodoPagamento    *string

	// ActorID is the admin performing the write, for auditing.
	ActorID *string
}

// optionalID maps the form's "no selection" values to NULL.
func optionalID(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	switch strings.ToLower(v) {
	case "", "none", "null", "undefined":
		return nil
	}
	return &v
}

func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
