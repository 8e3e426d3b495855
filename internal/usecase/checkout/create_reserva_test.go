package checkout

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/essentia-tours/internal/db"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/infra/payment"
	"github.com/BruksfildServices01/essentia-tours/internal/infra/repository"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/usecase/customer"
)

type fakeGateway struct {
	got payment.PixRequest
	err error
}

func (g *fakeGateway) CreatePix(_ context.Context, in payment.PixRequest) (*payment.PixCharge, error) {
	g.got = in
	if g.err != nil {
		return nil, g.err
	}
	return &payment.PixCharge{ID: "123456", Status: "pending", QRCode: "000201"}, nil
}

func newReserva(t *testing.T, gw PixGateway) (*gorm.DB, *CreateReserva) {
	t.Helper()

	database, err := dbpkg.OpenSQLite(filepath.Join(t.TempDir(), "essentia.db"))
	require.NoError(t, err)
	require.NoError(t, database.Create(&models.Passeio{ID: "tour-1", Nome: "Cristo", Preco: 100, Ativo: true}).Error)

	runner := repository.NewGormTxRunner(database)
	customerRepo := repository.NewCustomerGormRepository(database)
	clientes := customer.NewEnsureCliente(customerRepo, runner, nil)

	return database, NewCreateReserva(
		repository.NewAgendamentoGormRepository(database),
		clientes,
		customerRepo,
		runner,
		gw,
		nil,
		30,
		5,
	)
}

func validInput() CreateReservaInput {
	return CreateReservaInput{
		PasseioID:       "tour-1",
		Data:            "2025-08-20",
		Pessoas:         2,
		ClienteNome:     "Ana",
		ClienteEmail:    "ana@x.com",
		MetodoPagamento: "cartao",
	}
}

func TestCreateReservaComputesTotalServerSide(t *testing.T) {
	_, uc := newReserva(t, nil)

	out, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	a := out.Agendamento
	assert.Equal(t, 200.0, a.ValorTotal)
	assert.Equal(t, 60.0, a.ValorComissao)
	assert.Equal(t, "confirmadas", a.Status)
	assert.Equal(t, "cartao", *a.MetodoPagamento)
	assert.True(t, out.NovoCliente)
	assert.Equal(t, out.ClienteID, *a.ClienteID)
	assert.Nil(t, out.Pix)
}

func TestCreateReservaPixDiscountAndCharge(t *testing.T) {
	gw := &fakeGateway{}
	database, uc := newReserva(t, gw)

	in := validInput()
	in.MetodoPagamento = "PIX"
	out, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	a := out.Agendamento
	assert.InDelta(t, 190.0, a.ValorTotal, 1e-9)
	assert.InDelta(t, 57.0, a.ValorComissao, 1e-9)
	assert.InDelta(t, 10.0, out.Desconto, 1e-9)

	require.NotNil(t, out.Pix)
	assert.Equal(t, a.ID, gw.got.Reference)
	assert.InDelta(t, 190.0, gw.got.Amount, 1e-9)

	var stored models.Agendamento
	require.NoError(t, database.First(&stored, "id = ?", a.ID).Error)
	assert.Equal(t, "123456", *stored.PagamentoID)
}

func TestCreateReservaKeepsBookingWhenChargeFails(t *testing.T) {
	database, uc := newReserva(t, &fakeGateway{err: errors.New("timeout")})

	in := validInput()
	in.MetodoPagamento = "pix"
	out, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, out.PixErro)

	var count int64
	require.NoError(t, database.Model(&models.Agendamento{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateReservaUsesPreCadastro(t *testing.T) {
	database, uc := newReserva(t, nil)
	require.NoError(t, database.Create(&models.Cliente{ID: "cli-42", Nome: "Ana", Email: "ana@x.com"}).Error)

	in := validInput()
	in.PreCadastroClienteID = "cli-42"
	out, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "cli-42", out.ClienteID)
	assert.False(t, out.NovoCliente)

	var users int64
	require.NoError(t, database.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}

func TestCreateReservaRejectsUnknownPreCadastro(t *testing.T) {
	database, uc := newReserva(t, nil)
	ctx := context.Background()
	require.NoError(t, database.Create(&models.Cliente{ID: "cli-7", Nome: "Bruno", Email: "bruno@x.com"}).Error)

	in := validInput()
	in.PreCadastroClienteID = "cli-ghost"
	_, err := uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "cliente_not_found"))

	in = validInput()
	in.PreCadastroClienteID = "cli-7"
	_, err = uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "cliente_not_found"), "id of another contact")

	var count int64
	require.NoError(t, database.Model(&models.Agendamento{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateReservaValidation(t *testing.T) {
	database, uc := newReserva(t, nil)
	ctx := context.Background()

	in := validInput()
	in.Pessoas = 0
	_, err := uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "missing_required_fields"))

	in = validInput()
	in.PasseioID = "ghost"
	_, err = uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "passeio_not_found"))

	var users int64
	require.NoError(t, database.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users, "nothing is written for an unknown tour")
}
