package receipt

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/essentia-tours/internal/dto"
)

func sample() Data {
	nome := "Ana <script>"
	passeio := "Pão de Açúcar"
	obs := "Levar protetor"
	return FromView(dto.AgendamentoView{
		ID:            "a1b2c3d4-e5f6-7890",
		PasseioNome:   &passeio,
		ClienteNome:   &nome,
		DataPasseio:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		NumeroPessoas: 2,
		ValorTotal:    1234.5,
		Status:        "confirmadas",
		Observacoes:   &obs,
	}, time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 200,00", FormatBRL(200))
	assert.Equal(t, "R$ 1.234,50", FormatBRL(1234.5))
	assert.Equal(t, "R$ 1.000.000,01", FormatBRL(1000000.01))
	assert.Equal(t, "-R$ 5,90", FormatBRL(-5.9))
}

func TestFromViewDefaults(t *testing.T) {
	d := FromView(dto.AgendamentoView{ID: "x"}, time.Now())

	assert.Equal(t, "Passeio não informado", d.PasseioNome)
	assert.Equal(t, "Email não informado", d.ClienteEmail)
	assert.Equal(t, "Não informado", d.ClienteTelefone)
	assert.Equal(t, "Data não informada", d.DataPasseioFmt())
	assert.Equal(t, "x", d.Numero())
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, sample()))
	out := buf.String()

	assert.Contains(t, out, "ESSENTIA TOURS")
	assert.Contains(t, out, "Recibo de Reserva #a1b2c3d4")
	assert.Contains(t, out, "10/06/2025")
	assert.Contains(t, out, "R$ 1.234,50")
	assert.Contains(t, out, "Levar protetor")
	assert.False(t, strings.Contains(out, "<script>"), "customer input is escaped")
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, sample()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}
