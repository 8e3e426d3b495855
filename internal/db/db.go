package db

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/essentia-tours/internal/config"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{
		PrepareStmt:                              true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   newLogger(),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	maxConns := cfg.Database.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns / 2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func newLogger() gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// Migrate creates or updates every table and makes sure the board has its
// default columns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Cliente{},
		&models.Guia{},
		&models.Passeio{},
		&models.Lead{},
		&models.Agendamento{},
		&models.KanbanColumn{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	return seedKanbanColumns(db)
}

var defaultColumns = []models.KanbanColumn{
	{ID: "em_progresso", Title: "Em Progresso", Color: "yellow", OrderIndex: 1, Ativo: true},
	{ID: "pendente_cliente", Title: "Pendente Cliente", Color: "orange", OrderIndex: 2, Ativo: true},
	{ID: "confirmadas", Title: "Confirmadas", Color: "green", OrderIndex: 3, Ativo: true},
	{ID: "concluidas", Title: "Concluídas", Color: "emerald", OrderIndex: 4, Ativo: true},
	{ID: "canceladas", Title: "Canceladas", Color: "red", OrderIndex: 5, Ativo: true},
}

func seedKanbanColumns(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.KanbanColumn{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cols := make([]models.KanbanColumn, len(defaultColumns))
	copy(cols, defaultColumns)
	return db.Create(&cols).Error
}
