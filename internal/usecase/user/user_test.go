package user

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/essentia-tours/internal/auth"
	"github.com/BruksfildServices01/essentia-tours/internal/config"
	dbpkg "github.com/BruksfildServices01/essentia-tours/internal/db"
	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/infra/repository"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

func setup(t *testing.T) (*repository.UserGormRepository, *auth.JWTManager) {
	t.Helper()

	database, err := dbpkg.OpenSQLite(filepath.Join(t.TempDir(), "essentia.db"))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test"
	return repository.NewUserGormRepository(database), auth.NewJWTManager(cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	repo, jm := setup(t)

	out, err := NewRegister(repo, jm, nil).Execute(ctx, RegisterInput{
		Nome: "Marina Costa", Email: "Marina@Essentia.com", Senha: "guia123", Tipo: models.RoleGuia,
	})
	require.NoError(t, err)
	assert.Equal(t, "/guia", out.RedirectURL)
	assert.Equal(t, "Marina", out.User.FirstName)
	assert.Equal(t, "Costa", out.User.LastName)

	claims, err := jm.ValidateToken(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.Subject)

	_, err = NewRegister(repo, jm, nil).Execute(ctx, RegisterInput{
		Nome: "Outra", Email: "marina@essentia.com", Senha: "x", Tipo: models.RoleCliente,
	})
	assert.True(t, httperr.IsBusiness(err, "email_already_registered"))

	login := NewLogin(repo, jm)

	got, err := login.Execute(ctx, "marina@essentia.com", "guia123")
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, got.User.ID)

	_, err = login.Execute(ctx, "marina@essentia.com", "errada")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = login.Execute(ctx, "ninguem@essentia.com", "guia123")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = login.Execute(ctx, "", "")
	assert.True(t, httperr.IsBusiness(err, "missing_credentials"))
}

func TestRegisterValidation(t *testing.T) {
	repo, jm := setup(t)
	uc := NewRegister(repo, jm, nil)

	_, err := uc.Execute(context.Background(), RegisterInput{Nome: "A", Email: "a@x.com", Senha: "1"})
	assert.True(t, httperr.IsBusiness(err, "missing_required_fields"))

	_, err = uc.Execute(context.Background(), RegisterInput{Nome: "A", Email: "a@x.com", Senha: "1", Tipo: "root"})
	assert.True(t, httperr.IsBusiness(err, "invalid_user_type"))
}

func TestMeToleratesMissingAccount(t *testing.T) {
	repo, _ := setup(t)
	me := NewMe(repo)

	u, err := me.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, u)

	id := "deleted"
	u, err = me.Execute(context.Background(), &id)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUsersCRUD(t *testing.T) {
	ctx := context.Background()
	repo, _ := setup(t)
	users := NewUsers(repo, nil)

	created, err := users.Create(ctx, UserInput{
		FirstName: "Ana", LastName: "Souza", Email: "ana@x.com", UserType: "cliente", Password: "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", created.Nome)

	updated, err := users.Update(ctx, UserInput{ID: created.ID, LastName: "Lima", UserType: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "Lima", updated.LastName)
	assert.Equal(t, "admin", updated.UserType)
	assert.Equal(t, "Lima", updated.Nome)

	_, err = users.Update(ctx, UserInput{ID: "missing", FirstName: "X"})
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))

	u, err := users.UpdateType(ctx, "ANA@x.com", "guia", nil)
	require.NoError(t, err)
	assert.Equal(t, "guia", u.UserType)

	list, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "guia", list[0].UserType)

	require.NoError(t, users.Delete(ctx, created.ID, nil))
	assert.True(t, httperr.IsBusiness(users.Delete(ctx, created.ID, nil), "user_not_found"))
}

func TestUserViewDerivesNames(t *testing.T) {
	v := ToView(models.User{Nome: "Maria da Silva"})
	assert.Equal(t, "Maria", v.FirstName)
	assert.Equal(t, "da Silva", v.LastName)
	assert.Equal(t, "ativo", v.Status)
}
