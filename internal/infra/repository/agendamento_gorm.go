package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/dto"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

type AgendamentoGormRepository struct {
	db *gorm.DB
}

func NewAgendamentoGormRepository(db *gorm.DB) *AgendamentoGormRepository {
	return &AgendamentoGormRepository{db: db}
}

// --------------------------------------------------
// Passeio
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetPasseio(
	ctx context.Context,
	id string,
) (*models.Passeio, error) {

	var p models.Passeio
	if err := conn(ctx, r.db).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFound(err, "passeio_not_found")
	}
	return &p, nil
}

// --------------------------------------------------
// Agendamento
// --------------------------------------------------

func (r *AgendamentoGormRepository) Create(
	ctx context.Context,
	a *models.Agendamento,
) error {
	return conn(ctx, r.db).Create(a).Error
}

func (r *AgendamentoGormRepository) Get(
	ctx context.Context,
	id string,
) (*models.Agendamento, error) {

	var a models.Agendamento
	if err := conn(ctx, r.db).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, notFound(err, "agendamento_not_found")
	}
	return &a, nil
}

func (r *AgendamentoGormRepository) Update(
	ctx context.Context,
	a *models.Agendamento,
) error {
	return conn(ctx, r.db).Save(a).Error
}

func (r *AgendamentoGormRepository) Delete(
	ctx context.Context,
	id string,
) (bool, error) {

	res := conn(ctx, r.db).Where("id = ?", id).Delete(&models.Agendamento{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AgendamentoGormRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.Status,
) (bool, error) {

	res := conn(ctx, r.db).
		Model(&models.Agendamento{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CountByStatus counts bookings whose stored status is status or one of
// its spellings.
func (r *AgendamentoGormRepository) CountByStatus(
	ctx context.Context,
	status domain.Status,
) (int64, error) {

	var count int64
	err := conn(ctx, r.db).
		Model(&models.Agendamento{}).
		Where("status IN ?", spellingsOf(status)).
		Count(&count).Error
	return count, err
}

// --------------------------------------------------
// Read model
// --------------------------------------------------

const agendamentoViewColumns = `
	a.id, a.passeio_id, a.cliente_id, a.guia_id,
	a.data_passeio, a.horario_inicio, a.horario_fim,
	a.numero_pessoas, a.valor_total, a.valor_comissao, a.percentual_comissao,
	a.status, a.observacoes, a.metodo_pagamento, a.criado_em,
	p.nome AS passeio_nome,
	c.nome AS cliente_nome,
	c.telefone AS cliente_telefone,
	c.email AS cliente_email,
	g.nome AS guia_nome`

func (r *AgendamentoGormRepository) viewQuery(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).
		Table("agendamentos AS a").
		Select(agendamentoViewColumns).
		Joins("LEFT JOIN passeios p ON p.id = a.passeio_id").
		Joins("LEFT JOIN clientes c ON c.id = a.cliente_id").
		Joins("LEFT JOIN guias g ON g.id = a.guia_id")
}

func (r *AgendamentoGormRepository) GetView(
	ctx context.Context,
	id string,
) (*dto.AgendamentoView, error) {

	var rows []dto.AgendamentoView
	if err := r.viewQuery(ctx).Where("a.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, httperr.ErrBusiness("agendamento_not_found")
	}
	v := rows[0]
	v.Status = string(domain.Normalize(v.Status))
	return &v, nil
}

func (r *AgendamentoGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]dto.AgendamentoView, error) {

	q := r.viewQuery(ctx)

	if f.Status != "" {
		q = q.Where("a.status IN ?", spellingsOf(f.Status))
	}
	if f.ClienteID != "" {
		q = q.Where("a.cliente_id = ?", f.ClienteID)
	}
	if f.GuiaID != "" {
		q = q.Where("a.guia_id = ?", f.GuiaID)
	}
	if f.From != nil {
		q = q.Where("a.data_passeio >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("a.data_passeio <= ?", *f.To)
	}

	var rows []dto.AgendamentoView
	if err := q.Order("a.criado_em DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Status = string(domain.Normalize(rows[i].Status))
	}
	return rows, nil
}

// spellingsOf lists every stored spelling that normalizes to status.
func spellingsOf(status domain.Status) []string {
	canonical := domain.Normalize(string(status))
	return append([]string{string(canonical)}, domain.Aliases(canonical)...)
}

// Compile-time check
var _ domain.Repository = (*AgendamentoGormRepository)(nil)
