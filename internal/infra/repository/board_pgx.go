package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BruksfildServices01/essentia-tours/internal/domain/kanban"
	"github.com/BruksfildServices01/essentia-tours/internal/dto"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

// Querier is the slice of *pgxpool.Pool the read models use; a pgx.Conn
// or a pgx.Tx satisfies it too.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ Querier = (*pgxpool.Pool)(nil)

// BoardPgxReader reads the kanban snapshot with plain SQL over the pgx pool.
type BoardPgxReader struct {
	pool Querier
}

func NewBoardPgxReader(pool Querier) *BoardPgxReader {
	return &BoardPgxReader{pool: pool}
}

const boardAgendamentosSQL = `
	SELECT a.id, a.passeio_id, a.cliente_id, a.guia_id,
	       a.data_passeio, a.horario_inicio, a.horario_fim,
	       a.numero_pessoas, a.valor_total, a.valor_comissao, a.percentual_comissao,
	       a.status, a.observacoes, a.metodo_pagamento, a.criado_em,
	       p.nome, c.nome, g.nome
	FROM agendamentos a
	LEFT JOIN passeios p ON a.passeio_id = p.id
	LEFT JOIN clientes c ON a.cliente_id = c.id
	LEFT JOIN guias g ON a.guia_id = g.id
	ORDER BY a.criado_em DESC`

const boardLeadsSQL = `
	SELECT id, nome, email, telefone, passeio_id, passeio_nome, data_passeio,
	       numero_pessoas, observacoes, status, created_at
	FROM leads
	WHERE status <> 'convertido'
	ORDER BY created_at DESC`

const boardPasseiosSQL = `
	SELECT id, nome, COALESCE(descricao, ''), COALESCE(preco, 0), COALESCE(duracao, ''), COALESCE(categoria, '')
	FROM passeios
	ORDER BY nome ASC`

const boardClientesSQL = `
	SELECT id, nome, COALESCE(email, ''), COALESCE(telefone, '')
	FROM clientes
	ORDER BY nome ASC`

const boardGuiasSQL = `
	SELECT id, nome, COALESCE(email, ''), especialidades
	FROM guias
	ORDER BY nome ASC`

const boardColumnsSQL = `
	SELECT id, title, color, order_index, ativo
	FROM kanban_columns
	WHERE ativo
	ORDER BY order_index ASC`

func (r *BoardPgxReader) Snapshot(ctx context.Context) (*kanban.Snapshot, error) {
	s := &kanban.Snapshot{}

	var err error
	if s.Agendamentos, err = collect(ctx, r.pool, boardAgendamentosSQL, scanAgendamentoView); err != nil {
		return nil, fmt.Errorf("agendamentos: %w", err)
	}
	if s.Leads, err = collect(ctx, r.pool, boardLeadsSQL, scanLead); err != nil {
		return nil, fmt.Errorf("leads: %w", err)
	}
	if s.Passeios, err = collect(ctx, r.pool, boardPasseiosSQL,
		func(row pgx.Rows) (kanban.PasseioOption, error) {
			var p kanban.PasseioOption
			err := row.Scan(&p.ID, &p.Nome, &p.Descricao, &p.Preco, &p.Duracao, &p.Categoria)
			return p, err
		}); err != nil {
		return nil, fmt.Errorf("passeios: %w", err)
	}
	if s.Clientes, err = collect(ctx, r.pool, boardClientesSQL,
		func(row pgx.Rows) (kanban.ClienteOption, error) {
			var c kanban.ClienteOption
			err := row.Scan(&c.ID, &c.Nome, &c.Email, &c.Telefone)
			return c, err
		}); err != nil {
		return nil, fmt.Errorf("clientes: %w", err)
	}
	if s.Guias, err = collect(ctx, r.pool, boardGuiasSQL,
		func(row pgx.Rows) (kanban.GuiaOption, error) {
			var g kanban.GuiaOption
			err := row.Scan(&g.ID, &g.Nome, &g.Email, &g.Especialidades)
			return g, err
		}); err != nil {
		return nil, fmt.Errorf("guias: %w", err)
	}
	if s.Columns, err = collect(ctx, r.pool, boardColumnsSQL,
		func(row pgx.Rows) (models.KanbanColumn, error) {
			var c models.KanbanColumn
			err := row.Scan(&c.ID, &c.Title, &c.Color, &c.OrderIndex, &c.Ativo)
			return c, err
		}); err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	return s, nil
}

func scanAgendamentoView(row pgx.Rows) (dto.AgendamentoView, error) {
	var a dto.AgendamentoView
	err := row.Scan(
		&a.ID, &a.PasseioID, &a.ClienteID, &a.GuiaID,
		&a.DataPasseio, &a.HorarioInicio, &a.HorarioFim,
		&a.NumeroPessoas, &a.ValorTotal, &a.ValorComissao, &a.PercentualComissao,
		&a.Status, &a.Observacoes, &a.MetodoPagamento, &a.CriadoEm,
		&a.PasseioNome, &a.ClienteNome, &a.GuiaNome,
	)
	return a, err
}

func scanLead(row pgx.Rows) (models.Lead, error) {
	var (
		l           models.Lead
		passeioID   *string
		passeioNome *string
		obs         *string
	)
	err := row.Scan(
		&l.ID, &l.Nome, &l.Email, &l.Telefone, &passeioID, &passeioNome, &l.DataPasseio,
		&l.NumeroPessoas, &obs, &l.Status, &l.CreatedAt,
	)
	if passeioID != nil {
		l.PasseioID = *passeioID
	}
	if passeioNome != nil {
		l.PasseioNome = *passeioNome
	}
	if obs != nil {
		l.Observacoes = *obs
	}
	return l, err
}

// collect runs query on its own pooled connection and maps every row.
func collect[T any](
	ctx context.Context,
	pool Querier,
	query string,
	scan func(pgx.Rows) (T, error),
	args ...any,
) ([]T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

var _ kanban.Reader = (*BoardPgxReader)(nil)
