package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

func TestOpenSQLiteSeedsDefaultColumnsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "essentia.db")

	database, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, Migrate(database))

	var cols []models.KanbanColumn
	require.NoError(t, database.Order("order_index").Find(&cols).Error)

	require.Len(t, cols, len(defaultColumns))
	assert.Equal(t, "em_progresso", cols[0].ID)
	assert.True(t, cols[0].Ativo)
}

func TestMigrateKeepsCustomColumns(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "essentia.db"))
	require.NoError(t, err)

	require.NoError(t, database.Where("1 = 1").Delete(&models.KanbanColumn{}).Error)
	require.NoError(t, database.Create(&models.KanbanColumn{ID: "vip", Title: "VIP", Ativo: true}).Error)
	require.NoError(t, Migrate(database))

	var count int64
	require.NoError(t, database.Model(&models.KanbanColumn{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMigrateUsesFixedTableNames(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "essentia.db"))
	require.NoError(t, err)

	tables := map[string]any{
		"users":          &models.User{},
		"clientes":       &models.Cliente{},
		"guias":          &models.Guia{},
		"passeios":       &models.Passeio{},
		"leads":          &models.Lead{},
		"agendamentos":   &models.Agendamento{},
		"kanban_columns": &models.KanbanColumn{},
		"audit_logs":     &models.AuditLog{},
	}

	for name, model := range tables {
		stmt := &gorm.Statement{DB: database}
		require.NoError(t, stmt.Parse(model))
		assert.Equal(t, name, stmt.Schema.Table)
		assert.True(t, database.Migrator().HasTable(name), name)
	}
	assert.False(t, database.Migrator().HasTable("guia"))
}
