package lead

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/essentia-tours/internal/db"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/infra/repository"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/usecase/customer"
)

type fixture struct {
	db      *gorm.DB
	create  *CreateLead
	convert *ConvertLead
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	database, err := dbpkg.OpenSQLite(filepath.Join(t.TempDir(), "essentia.db"))
	require.NoError(t, err)

	runner := repository.NewGormTxRunner(database)
	leads := repository.NewLeadGormRepository(database)
	bookings := repository.NewAgendamentoGormRepository(database)
	clientes := customer.NewEnsureCliente(repository.NewCustomerGormRepository(database), runner, nil)

	require.NoError(t, database.Create(&models.Passeio{ID: "tour-1", Nome: "Cristo Redentor", Preco: 100, Ativo: true}).Error)

	return fixture{
		db:      database,
		create:  NewCreateLead(leads, nil),
		convert: NewConvertLead(leads, bookings, clientes, runner, nil, 30, "America/Sao_Paulo"),
	}
}

func TestCreateLeadDefaults(t *testing.T) {
	f := newFixture(t)

	l, err := f.create.Execute(context.Background(), CreateLeadInput{
		Nome: "Ana", Email: "ANA@x.com", PasseioID: "tour-1", DataPasseio: "2025-07-01T15:00:00.000Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "novo", l.Status)
	assert.Equal(t, "ana@x.com", l.Email)
	assert.Equal(t, 1, l.NumeroPessoas)
	require.NotNil(t, l.DataPasseio)
	assert.Equal(t, "2025-07-01", l.DataPasseio.Format("2006-01-02"))
	assert.Nil(t, l.Telefone)
}

func TestCreateLeadRequiresFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.create.Execute(context.Background(), CreateLeadInput{Nome: "Ana", Email: "ana@x.com"})
	assert.True(t, httperr.IsBusiness(err, "missing_required_fields"))

	_, err = f.create.Execute(context.Background(), CreateLeadInput{Nome: "Ana", Email: "ana", PasseioID: "tour-1"})
	assert.True(t, httperr.IsBusiness(err, "invalid_email"))
}

func TestConvertLeadCreatesCustomerAndBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	l, err := f.create.Execute(ctx, CreateLeadInput{
		Nome: "Ana", Email: "ana@x.com", PasseioID: "tour-1", NumeroPessoas: 2,
	})
	require.NoError(t, err)

	out, err := f.convert.Execute(ctx, ConvertLeadInput{LeadID: l.ID})
	require.NoError(t, err)

	a := out.Agendamento
	assert.Equal(t, 200.0, a.ValorTotal)
	assert.Equal(t, 60.0, a.ValorComissao)
	assert.Equal(t, 30.0, a.PercentualComissao)
	assert.Equal(t, "em_progresso", a.Status)
	assert.Equal(t, defaultConversionNote, *a.Observacoes)
	assert.Equal(t, out.ClienteID, *a.ClienteID)
	assert.True(t, out.NovoCliente)
	assert.NotEmpty(t, out.SenhaGerada)

	var stored models.Lead
	require.NoError(t, f.db.First(&stored, "id = ?", l.ID).Error)
	assert.Equal(t, "convertido", stored.Status)
	assert.Equal(t, a.ID, *stored.AgendamentoID)

	var cliente models.Cliente
	require.NoError(t, f.db.First(&cliente, "email = ?", "ana@x.com").Error)
	assert.Equal(t, out.ClienteID, cliente.ID)
}

func TestConvertLeadTwiceIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	l, err := f.create.Execute(ctx, CreateLeadInput{Nome: "Ana", Email: "ana@x.com", PasseioID: "tour-1"})
	require.NoError(t, err)

	_, err = f.convert.Execute(ctx, ConvertLeadInput{LeadID: l.ID})
	require.NoError(t, err)

	_, err = f.convert.Execute(ctx, ConvertLeadInput{LeadID: l.ID})
	assert.True(t, httperr.IsBusiness(err, "lead_already_converted"))

	var count int64
	require.NoError(t, f.db.Model(&models.Agendamento{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "no duplicate booking")
}

func TestConvertLeadRollsBackWhenTourIsMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	l, err := f.create.Execute(ctx, CreateLeadInput{Nome: "Bia", Email: "bia@x.com", PasseioID: "ghost"})
	require.NoError(t, err)

	_, err = f.convert.Execute(ctx, ConvertLeadInput{LeadID: l.ID})
	assert.True(t, httperr.IsBusiness(err, "passeio_not_found"))

	var users int64
	require.NoError(t, f.db.Model(&models.User{}).Where("email = ?", "bia@x.com").Count(&users).Error)
	assert.Zero(t, users, "customer writes roll back with the conversion")

	var stored models.Lead
	require.NoError(t, f.db.First(&stored, "id = ?", l.ID).Error)
	assert.Equal(t, "novo", stored.Status)

	_, err = f.convert.Execute(ctx, ConvertLeadInput{LeadID: "missing"})
	assert.True(t, httperr.IsBusiness(err, "lead_not_found"))
}
