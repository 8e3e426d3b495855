package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/essentia-tours/internal/db"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/booking"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/timezone"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := dbpkg.OpenSQLite(filepath.Join(t.TempDir(), "essentia.db"))
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return database
}

func agendamentoOn(t *testing.T, s string) models.Agendamento {
	t.Helper()
	d, err := timezone.ParseDate(s)
	require.NoError(t, err)
	return models.Agendamento{DataPasseio: d}
}

func strPtr(s string) *string { return &s }

func TestAgendamentoRepositoryListJoinsNames(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	repo := NewAgendamentoGormRepository(database)

	passeio := models.Passeio{ID: "tour-1", Nome: "Cristo Redentor", Preco: 100, Ativo: true}
	require.NoError(t, database.Create(&passeio).Error)
	require.NoError(t, database.Create(&models.Cliente{ID: "c1", Nome: "Ana", Email: "ana@x.com", Telefone: "219"}).Error)
	require.NoError(t, database.Create(&models.Guia{ID: "g1", Nome: "Marina"}).Error)

	a := agendamentoOn(t, "2025-06-10")
	a.PasseioID = "tour-1"
	a.ClienteID = strPtr("c1")
	a.GuiaID = strPtr("g1")
	a.Status = "confirmada"
	require.NoError(t, repo.Create(ctx, &a))
	assert.NotEmpty(t, a.ID)

	rows, err := repo.List(ctx, booking.ListFilter{Status: booking.StatusConfirmadas})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	got := rows[0]
	assert.Equal(t, "confirmadas", got.Status)
	assert.Equal(t, "Cristo Redentor", *got.PasseioNome)
	assert.Equal(t, "Ana", *got.ClienteNome)
	assert.Equal(t, "219", *got.ClienteTelefone)
	assert.Equal(t, "Marina", *got.GuiaNome)
	assert.Equal(t, "2025-06-10", timezone.DateKey(got.DataPasseio))

	rows, err = repo.List(ctx, booking.ListFilter{GuiaID: "other"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAgendamentoRepositoryStatusAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAgendamentoGormRepository(openTestDB(t))

	a := agendamentoOn(t, "2025-06-10")
	a.PasseioID = "tour-1"
	a.Status = "concluido"
	require.NoError(t, repo.Create(ctx, &a))

	count, err := repo.CountByStatus(ctx, booking.StatusConcluidas)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "legacy spellings count toward the canonical status")

	ok, err := repo.UpdateStatus(ctx, a.ID, booking.StatusCanceladas)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateStatus(ctx, "missing", booking.StatusCanceladas)
	require.NoError(t, err)
	assert.False(t, ok)

	deleted, err := repo.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.Get(ctx, a.ID)
	assert.True(t, httperr.IsBusiness(err, "agendamento_not_found"))

	_, err = repo.GetPasseio(ctx, "missing")
	assert.True(t, httperr.IsBusiness(err, "passeio_not_found"))
}

func TestCustomerRepositoryUpsertMovesClienteOntoNewID(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	repo := NewCustomerGormRepository(database)

	require.NoError(t, database.Create(&models.Cliente{ID: "old", Nome: "Ana", Email: "ana@x.com", CPF: "123"}).Error)

	require.NoError(t, repo.UpsertCliente(ctx, &models.Cliente{
		ID: "new", Nome: "Ana Souza", Email: "ana@x.com", Telefone: "21", Status: "ativo",
	}))

	found, err := repo.FindClienteByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "new", found.ID)
	assert.Equal(t, "Ana Souza", found.Nome)
	assert.Equal(t, "123", found.CPF, "columns outside the upsert are kept")

	missing, err := repo.FindUserByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCustomerRepositoryReparentAgendamentos(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	repo := NewCustomerGormRepository(database)

	for i := 0; i < 2; i++ {
		a := agendamentoOn(t, "2025-06-10")
		a.PasseioID = "tour-1"
		a.ClienteID = strPtr("old")
		a.Status = "em_progresso"
		require.NoError(t, database.Create(&a).Error)
	}

	n, err := repo.ReparentAgendamentos(ctx, "old", "new")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var count int64
	require.NoError(t, database.Model(&models.Agendamento{}).Where("cliente_id = ?", "new").Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestLeadRepositoryMarkConvertedOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewLeadGormRepository(openTestDB(t))

	l := models.Lead{Nome: "Ana", Email: "ana@x.com", PasseioID: "tour-1", Status: "novo", NumeroPessoas: 2}
	require.NoError(t, repo.Create(ctx, &l))

	ok, err := repo.MarkConverted(ctx, l.ID, "ag-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkConverted(ctx, l.ID, "ag-2")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "convertido", got.Status)
	assert.Equal(t, "ag-1", *got.AgendamentoID)
}

func TestKanbanColumnRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewKanbanColumnGormRepository(openTestDB(t))

	require.NoError(t, repo.Create(ctx, &models.KanbanColumn{ID: "vip", Title: "VIP", Color: "gray", OrderIndex: 99, Ativo: true}))

	exists, err := repo.Exists(ctx, "vip")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Update(ctx, &models.KanbanColumn{ID: "vip", Title: "Clientes VIP", Color: "purple", OrderIndex: 0}))
	col, err := repo.Get(ctx, "vip")
	require.NoError(t, err)
	assert.Equal(t, "Clientes VIP", col.Title)
	assert.True(t, col.Ativo)

	cols, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "vip", cols[0].ID, "ordered by order_index")

	deleted, err := repo.Delete(ctx, "vip")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.Get(ctx, "vip")
	assert.True(t, httperr.IsBusiness(err, "column_not_found"))
}

func TestTxRunnerRollsBack(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	runner := NewGormTxRunner(database)
	leads := NewLeadGormRepository(database)

	boom := errors.New("boom")
	err := runner.WithinTx(ctx, func(ctx context.Context) error {
		if err := leads.Create(ctx, &models.Lead{Nome: "Ana", Email: "ana@x.com", Status: "novo"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	all, err := leads.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
