package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

const (
	DefaultNome       = "Passeio sem nome"
	DefaultDescricao  = "Descrição não informada"
	DefaultDuracao    = "Desconhecida"
	DefaultCategoria  = "Geral"
	DefaultCapacidade = 20
)

// ======================================================
// INPUT
// ======================================================

// Number accepts a JSON number or a numeric string. Empty strings, null and
// text that is not a number leave it unset.
type Number struct {
	Value float64
	Set   bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*n = Number{Value: v, Set: true}
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.Replace(v, ",", ".", 1)), 64)
		if err == nil {
			*n = Number{Value: f, Set: true}
		}
	}
	return nil
}

// Input is the admin tour form. Both the form's English keys and the
// Portuguese column names are accepted; the English key wins when both
// are sent.
type Input struct {
	Name      *string `json:"name"`
	Nome      *string `json:"nome"`
	Desc      *string `json:"description"`
	Descricao *string `json:"descricao"`
	Price     Number  `json:"price"`
	Preco     Number  `json:"preco"`
	Duration  Number  `json:"duration"`
	Duracao   *string `json:"duracao"`
	Type      *string `json:"type"`
	Categoria *string `json:"categoria"`

	Images        *models.StringList `json:"images"`
	Imagens       *models.StringList `json:"imagens"`
	IncludedItems *models.StringList `json:"includedItems"`
	Inclusoes     *models.StringList `json:"inclusoes"`
	Languages     *models.StringList `json:"languages"`
	Idiomas       *models.StringList `json:"idiomas"`

	MaxPeople        Number `json:"maxPeople"`
	CapacidadeMaxima Number `json:"capacidadeMaxima"`

	Status *string `json:"status"`
	Ativo  any     `json:"ativo"`

	Tarifa2Pessoas   Number  `json:"tarifa2Pessoas"`
	Tarifa4Pessoas   Number  `json:"tarifa4Pessoas"`
	Tarifa6Pessoas   Number  `json:"tarifa6Pessoas"`
	Tarifa8Pessoas   Number  `json:"tarifa8Pessoas"`
	Tarifa10Pessoas  Number  `json:"tarifa10Pessoas"`
	SobConsultaTexto *string `json:"sobConsultaTexto"`
}

func firstText(values ...*string) (string, bool) {
	for _, v := range values {
		if v == nil {
			continue
		}
		if s := strings.TrimSpace(*v); s != "" {
			return s, true
		}
	}
	return "", false
}

func firstNumber(values ...Number) (float64, bool) {
	for _, v := range values {
		if v.Set {
			return v.Value, true
		}
	}
	return 0, false
}

func firstList(values ...*models.StringList) (models.StringList, bool) {
	for _, v := range values {
		if v != nil {
			return *v, true
		}
	}
	return nil, false
}

func (in Input) duracao() (string, bool) {
	if in.Duration.Set && in.Duration.Value > 0 {
		return FormatDuracao(in.Duration.Value), true
	}
	return firstText(in.Duracao)
}

// active resolves status "Ativo" or a truthy ativo flag. ok is false when
// neither field was sent.
func (in Input) active() (active, ok bool) {
	if in.Status == nil && in.Ativo == nil {
		return false, false
	}
	if in.Status != nil && strings.EqualFold(strings.TrimSpace(*in.Status), "ativo") {
		return true, true
	}
	switch v := in.Ativo.(type) {
	case bool:
		return v, true
	case float64:
		return v == 1, true
	case string:
		return v == "1" || strings.EqualFold(v, "true"), true
	}
	return false, true
}

func optionalNumber(n Number) *float64 {
	if !n.Set || n.Value == 0 {
		return nil
	}
	v := n.Value
	return &v
}

// ======================================================
// CREATE / UPDATE
// ======================================================

// NewPasseio builds a tour from the form, filling every missing field with
// its catalog default. New tours are active unless the form says otherwise.
func NewPasseio(in Input) models.Passeio {
	p := models.Passeio{
		Nome:             DefaultNome,
		Descricao:        DefaultDescricao,
		Duracao:          DefaultDuracao,
		Categoria:        DefaultCategoria,
		CapacidadeMaxima: DefaultCapacidade,
		Imagens:          models.StringList{},
		Inclusoes:        models.StringList{},
		Idiomas:          models.StringList{},
		Ativo:            true,
		Tarifa2Pessoas:   optionalNumber(in.Tarifa2Pessoas),
		Tarifa4Pessoas:   optionalNumber(in.Tarifa4Pessoas),
		Tarifa6Pessoas:   optionalNumber(in.Tarifa6Pessoas),
		Tarifa8Pessoas:   optionalNumber(in.Tarifa8Pessoas),
		Tarifa10Pessoas:  optionalNumber(in.Tarifa10Pessoas),
	}

	if v, ok := firstText(in.Name, in.Nome); ok {
		p.Nome = v
	}
	if v, ok := firstText(in.Desc, in.Descricao); ok {
		p.Descricao = v
	}
	if v, ok := firstNumber(in.Price, in.Preco); ok {
		p.Preco = v
	}
	if v, ok := in.duracao(); ok {
		p.Duracao = v
	}
	if v, ok := firstText(in.Type, in.Categoria); ok {
		p.Categoria = v
	}
	if v, ok := firstList(in.Images, in.Imagens); ok {
		p.Imagens = v
	}
	if v, ok := firstList(in.IncludedItems, in.Inclusoes); ok {
		p.Inclusoes = v
	}
	if v, ok := firstList(in.Languages, in.Idiomas); ok {
		p.Idiomas = v
	}
	if v, ok := firstNumber(in.MaxPeople, in.CapacidadeMaxima); ok && int(v) > 0 {
		p.CapacidadeMaxima = int(v)
	}
	if v, ok := in.active(); ok {
		p.Ativo = v
	}
	if v, ok := firstText(in.SobConsultaTexto); ok {
		p.SobConsultaTexto = &v
	}

	return p
}

// Changes returns the columns a partial update writes. Fields not sent keep
// their stored value.
func Changes(in Input) map[string]any {
	fields := map[string]any{}

	if v, ok := firstText(in.Name, in.Nome); ok {
		fields["nome"] = v
	}
	if v, ok := firstText(in.Desc, in.Descricao); ok {
		fields["descricao"] = v
	}
	if v, ok := firstNumber(in.Price, in.Preco); ok {
		fields["preco"] = v
	}
	if v, ok := in.duracao(); ok {
		fields["duracao"] = v
	}
	if v, ok := firstText(in.Type, in.Categoria); ok {
		fields["categoria"] = v
	}
	if v, ok := firstList(in.Images, in.Imagens); ok {
		fields["imagens"] = v
	}
	if v, ok := firstList(in.IncludedItems, in.Inclusoes); ok {
		fields["inclusoes"] = v
	}
	if v, ok := firstList(in.Languages, in.Idiomas); ok {
		fields["idiomas"] = v
	}
	if v, ok := firstNumber(in.MaxPeople, in.CapacidadeMaxima); ok {
		n := int(v)
		if n <= 0 {
			n = DefaultCapacidade
		}
		fields["capacidade_maxima"] = n
	}
	if v, ok := in.active(); ok {
		fields["ativo"] = v
	}

	tarifas := []struct {
		column string
		value  Number
	}{
		{"tarifa_2_pessoas", in.Tarifa2Pessoas},
		{"tarifa_4_pessoas", in.Tarifa4Pessoas},
		{"tarifa_6_pessoas", in.Tarifa6Pessoas},
		{"tarifa_8_pessoas", in.Tarifa8Pessoas},
		{"tarifa_10_pessoas", in.Tarifa10Pessoas},
	}
	for _, t := range tarifas {
		if t.value.Set {
			fields[t.column] = optionalNumber(t.value)
		}
	}
	if in.SobConsultaTexto != nil {
		fields["sob_consulta_texto"] = strings.TrimSpace(*in.SobConsultaTexto)
	}

	return fields
}

// ======================================================
// OUTPUT
// ======================================================

type View struct {
	ID               string            `json:"id"`
	Nome             string            `json:"nome"`
	Descricao        string            `json:"descricao"`
	Preco            float64           `json:"preco"`
	Duracao          string            `json:"duracao"`
	Categoria        string            `json:"categoria"`
	Imagens          models.StringList `json:"imagens"`
	Images           models.StringList `json:"images"`
	Inclusoes        models.StringList `json:"inclusoes"`
	Idiomas          models.StringList `json:"idiomas"`
	CapacidadeMaxima int               `json:"capacidadeMaxima"`
	Tarifa2Pessoas   *float64          `json:"tarifa2Pessoas"`
	Tarifa4Pessoas   *float64          `json:"tarifa4Pessoas"`
	Tarifa6Pessoas   *float64          `json:"tarifa6Pessoas"`
	Tarifa8Pessoas   *float64          `json:"tarifa8Pessoas"`
	Tarifa10Pessoas  *float64          `json:"tarifa10Pessoas"`
	SobConsultaTexto *string           `json:"sobConsultaTexto"`
	Ativo            bool              `json:"ativo"`
	CriadoEm         time.Time         `json:"criadoEm"`
	AtualizadoEm     time.Time         `json:"atualizadoEm"`
}

func ToView(p models.Passeio) View {
	return View{
		ID:               p.ID,
		Nome:             p.Nome,
		Descricao:        p.Descricao,
		Preco:            p.Preco,
		Duracao:          p.Duracao,
		Categoria:        p.Categoria,
		Imagens:          p.Imagens,
		Images:           p.Imagens,
		Inclusoes:        p.Inclusoes,
		Idiomas:          p.Idiomas,
		CapacidadeMaxima: p.CapacidadeMaxima,
		Tarifa2Pessoas:   p.Tarifa2Pessoas,
		Tarifa4Pessoas:   p.Tarifa4Pessoas,
		Tarifa6Pessoas:   p.Tarifa6Pessoas,
		Tarifa8Pessoas:   p.Tarifa8Pessoas,
		Tarifa10Pessoas:  p.Tarifa10Pessoas,
		SobConsultaTexto: p.SobConsultaTexto,
		Ativo:            p.Ativo,
		CriadoEm:         p.CriadoEm,
		AtualizadoEm:     p.AtualizadoEm,
	}
}

func ToViews(in []models.Passeio) []View {
	out := make([]View, 0, len(in))
	for _, p := range in {
		out = append(out, ToView(p))
	}
	return out
}

// FormatDuracao renders a duration in hours the way the catalog stores it.
func FormatDuracao(hours float64) string {
	return fmt.Sprintf("%sh", strconv.FormatFloat(hours, 'f', -1, 64))
}
