package receipt

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/BruksfildServices01/essentia-tours/internal/dto"
)

const Brand = "ESSENTIA TOURS"

// Data is everything printed on a booking receipt.
type Data struct {
	AgendamentoID   string
	PasseioNome     string
	DataPasseio     time.Time
	NumeroPessoas   int
	ValorTotal      float64
	Status          string
	Observacoes     string
	CriadoEm        time.Time
	ClienteNome     string
	ClienteEmail    string
	ClienteTelefone string
	GeradoEm        time.Time
}

func FromView(v dto.AgendamentoView, now time.Time) Data {
	d := Data{
		AgendamentoID:   v.ID,
		PasseioNome:     orDefault(v.PasseioNome, "Passeio não informado"),
		DataPasseio:     v.DataPasseio,
		NumeroPessoas:   v.NumeroPessoas,
		ValorTotal:      v.ValorTotal,
		Status:          v.Status,
		CriadoEm:        v.CriadoEm,
		ClienteNome:     orDefault(v.ClienteNome, "Cliente não informado"),
		ClienteEmail:    orDefault(v.ClienteEmail, "Email não informado"),
		ClienteTelefone: orDefault(v.ClienteTelefone, "Não informado"),
		GeradoEm:        now,
	}
	if v.Observacoes != nil {
		d.Observacoes = strings.TrimSpace(*v.Observacoes)
	}
	return d
}

// Numero is the short reservation number shown to customers.
func (d Data) Numero() string {
	if len(d.AgendamentoID) <= 8 {
		return d.AgendamentoID
	}
	return d.AgendamentoID[:8]
}

func (d Data) DataPasseioFmt() string {
	if d.DataPasseio.IsZero() {
		return "Data não informada"
	}
	return d.DataPasseio.UTC().Format("02/01/2006")
}

func (d Data) CriadoEmFmt() string {
	if d.CriadoEm.IsZero() {
		return "Não informado"
	}
	return d.CriadoEm.Format("02/01/2006")
}

func (d Data) GeradoEmFmt() string {
	return d.GeradoEm.Format("02/01/2006 15:04:05")
}

func (d Data) ValorFmt() string {
	return FormatBRL(d.ValorTotal)
}

// FormatBRL formats v as Brazilian currency: 1234.5 -> "R$ 1.234,50".
func FormatBRL(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	cents := int64(math.Round(v * 100))
	units := fmt.Sprintf("%d", cents/100)

	var b strings.Builder
	for i, r := range units {
		if i > 0 && (len(units)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), cents%100)
}

func orDefault(s *string, def string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}
	return *s
}
