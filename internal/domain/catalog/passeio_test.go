package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

func decode(t *testing.T, body string) Input {
	t.Helper()
	var in Input
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestNewPasseioDefaults(t *testing.T) {
	p := NewPasseio(decode(t, `{}`))

	assert.Equal(t, DefaultNome, p.Nome)
	assert.Equal(t, DefaultDescricao, p.Descricao)
	assert.Equal(t, DefaultDuracao, p.Duracao)
	assert.Equal(t, DefaultCategoria, p.Categoria)
	assert.Equal(t, DefaultCapacidade, p.CapacidadeMaxima)
	assert.True(t, p.Ativo)
	assert.Equal(t, models.StringList{}, p.Imagens)
}

func TestNewPasseioAdminFormKeys(t *testing.T) {
	p := NewPasseio(decode(t, `{
		"name": "Pão de Açúcar",
		"description": "Bondinho",
		"price": "150.5",
		"duration": 4,
		"type": "Aventura",
		"images": ["a.webp", 3, "b.webp"],
		"includedItems": "Guia, Transporte",
		"languages": ["pt"],
		"maxPeople": "8",
		"status": "Ativo",
		"tarifa2Pessoas": 280,
		"sobConsultaTexto": " Consulte "
	}`))

	assert.Equal(t, "Pão de Açúcar", p.Nome)
	assert.Equal(t, 150.5, p.Preco)
	assert.Equal(t, "4h", p.Duracao)
	assert.Equal(t, "Aventura", p.Categoria)
	assert.Equal(t, models.StringList{"a.webp", "b.webp"}, p.Imagens)
	assert.Equal(t, models.StringList{"Guia", "Transporte"}, p.Inclusoes)
	assert.Equal(t, 8, p.CapacidadeMaxima)
	require.NotNil(t, p.Tarifa2Pessoas)
	assert.Equal(t, 280.0, *p.Tarifa2Pessoas)
	assert.Nil(t, p.Tarifa4Pessoas)
	assert.Equal(t, "Consulte", *p.SobConsultaTexto)
}

func TestNewPasseioPortugueseKeys(t *testing.T) {
	p := NewPasseio(decode(t, `{
		"nome": "Cristo",
		"preco": 99,
		"duracao": "Meio dia",
		"categoria": "História",
		"imagens": "[\"x.webp\"]",
		"capacidadeMaxima": 0,
		"ativo": 0
	}`))

	assert.Equal(t, "Cristo", p.Nome)
	assert.Equal(t, 99.0, p.Preco)
	assert.Equal(t, "Meio dia", p.Duracao)
	assert.Equal(t, models.StringList{"x.webp"}, p.Imagens)
	assert.Equal(t, DefaultCapacidade, p.CapacidadeMaxima)
	assert.False(t, p.Ativo)
}

func TestChangesOnlyTouchesSentFields(t *testing.T) {
	fields := Changes(decode(t, `{"price": 120, "status": "Inativo", "languages": []}`))

	assert.Equal(t, map[string]any{
		"preco":   120.0,
		"ativo":   false,
		"idiomas": models.StringList{},
	}, fields)

	assert.Empty(t, Changes(decode(t, `{"price": "abc", "name": "  "}`)))
}

func TestToViewAliasesImages(t *testing.T) {
	v := ToView(models.Passeio{ID: "p1", Imagens: models.StringList{"a"}})

	b, err := json.Marshal(v)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, []any{"a"}, out["images"])
	assert.Equal(t, []any{"a"}, out["imagens"])
	assert.Equal(t, []any{}, out["inclusoes"])
}
