package repository

import (
	"context"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/essentia-tours/internal/db"
	"github.com/BruksfildServices01/essentia-tours/internal/domain/dashboard"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

var snapshotQueries = map[string]string{
	"board agendamentos":     boardAgendamentosSQL,
	"board leads":            boardLeadsSQL,
	"board passeios":         boardPasseiosSQL,
	"board clientes":         boardClientesSQL,
	"board guias":            boardGuiasSQL,
	"board columns":          boardColumnsSQL,
	"dashboard users":        dashboardUsersSQL,
	"dashboard passeios":     dashboardPasseiosSQL,
	"dashboard agendamentos": dashboardAgendamentosSQL,
}

var tableRef = regexp.MustCompile(`(?i)\b(?:FROM|JOIN)\s+([a-z_]+)`)

// seedBoardRows inserts one booking with every joined row present.
func seedBoardRows(t *testing.T, database *gorm.DB, data time.Time) (models.Agendamento, models.Guia) {
	t.Helper()

	suffix := uuid.NewString()
	passeio := models.Passeio{Nome: "Roma " + suffix, Preco: 100, Ativo: true}
	cliente := models.Cliente{Nome: "Ana", Email: "ana-" + suffix + "@x.com"}
	guia := models.Guia{Nome: "Marco " + suffix, Email: "marco-" + suffix + "@x.com", Especialidades: models.StringList{"história"}}
	require.NoError(t, database.Create(&models.User{Email: "admin-" + suffix + "@x.com", Nome: "Admin", UserType: models.RoleAdmin}).Error)
	require.NoError(t, database.Create(&passeio).Error)
	require.NoError(t, database.Create(&cliente).Error)
	require.NoError(t, database.Create(&guia).Error)

	a := models.Agendamento{
		PasseioID:     passeio.ID,
		ClienteID:     &cliente.ID,
		GuiaID:        &guia.ID,
		DataPasseio:   data,
		NumeroPessoas: 2,
		ValorTotal:    200,
		Status:        "confirmadas",
	}
	require.NoError(t, database.Create(&a).Error)
	require.NoError(t, database.Create(&models.Lead{Nome: "Bia", Email: "bia-" + suffix + "@x.com", PasseioID: passeio.ID}).Error)

	return a, guia
}

func TestSnapshotTablesExistAfterMigrate(t *testing.T) {
	database := openTestDB(t)

	for name, query := range snapshotQueries {
		matches := tableRef.FindAllStringSubmatch(query, -1)
		require.NotEmpty(t, matches, name)
		for _, m := range matches {
			assert.True(t, database.Migrator().HasTable(m[1]), "%s reads missing table %s", name, m[1])
		}
	}
}

func TestSnapshotQueriesRunOnMigratedSchema(t *testing.T) {
	database := openTestDB(t)
	_, guia := seedBoardRows(t, database, time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC))

	for name, query := range snapshotQueries {
		t.Run(name, func(t *testing.T) {
			rows, err := database.Raw(query).Rows()
			require.NoError(t, err)
			defer rows.Close()

			cols, err := rows.Columns()
			require.NoError(t, err)

			count := 0
			for rows.Next() {
				values := make([]any, len(cols))
				dest := make([]any, len(cols))
				for i := range values {
					dest[i] = &values[i]
				}
				require.NoError(t, rows.Scan(dest...))
				count++

				if query == boardAgendamentosSQL {
					assert.Equal(t, guia.Nome, asString(values[len(values)-1]))
				}
			}
			require.NoError(t, rows.Err())
			assert.Positive(t, count)
		})
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	}
	return ""
}

// TestPgxReadersAgainstPostgres needs a disposable database in DATABASE_URL.
func TestPgxReadersAgainstPostgres(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()

	database, err := gorm.Open(postgres.Open(url), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(database))

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	defer pool.Close()

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	a, guia := seedBoardRows(t, database, today)
	t.Cleanup(func() {
		database.Where("id = ?", a.ID).Delete(&models.Agendamento{})
		database.Where("passeio_id = ?", a.PasseioID).Delete(&models.Lead{})
		database.Where("id = ?", a.PasseioID).Delete(&models.Passeio{})
		database.Where("id = ?", *a.ClienteID).Delete(&models.Cliente{})
		database.Where("id = ?", guia.ID).Delete(&models.Guia{})
		database.Where("email LIKE ?", "admin-%@x.com").Delete(&models.User{})
	})

	board, err := NewBoardPgxReader(pool).Snapshot(ctx)
	require.NoError(t, err)

	var found bool
	for _, v := range board.Agendamentos {
		if v.ID == a.ID {
			found = true
			require.NotNil(t, v.GuiaNome)
			assert.Equal(t, guia.Nome, *v.GuiaNome)
		}
	}
	assert.True(t, found)
	assert.NotEmpty(t, board.Leads)
	assert.NotEmpty(t, board.Columns)

	snap, err := NewDashboardPgxReader(pool).Snapshot(ctx)
	require.NoError(t, err)

	st := dashboard.ComputeStats(snap, now)
	assert.GreaterOrEqual(t, st.AgendamentosMes, 1)
	assert.GreaterOrEqual(t, st.ReceitaMes, 200.0)
}
