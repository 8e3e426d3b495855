package main

import (
	"flag"
	"log"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/essentia-tours/internal/config"
	dbpkg "github.com/BruksfildServices01/essentia-tours/internal/db"
)

func main() {
	users := flag.Bool("users", true, "upsert the default admin and guide accounts")
	passeios := flag.Bool("passeios", true, "upsert the demo tours")
	sqlitePath := flag.String("sqlite", "", "seed a local SQLite file instead of Postgres")
	flag.Parse()

	var (
		db  *gorm.DB
		err error
	)
	if *sqlitePath != "" {
		db, err = dbpkg.OpenSQLite(*sqlitePath)
		if err != nil {
			log.Fatalf("failed to open sqlite: %v", err)
		}
	} else {
		db = dbpkg.NewDB(config.Load())
	}

	if *users {
		if err := dbpkg.SeedUsers(db, dbpkg.DefaultUsers); err != nil {
			log.Fatalf("[Seed] users: %v", err)
		}
		log.Printf("[Seed] %d users ready", len(dbpkg.DefaultUsers))
	}

	if *passeios {
		if err := dbpkg.SeedPasseios(db, dbpkg.DemoPasseios); err != nil {
			log.Fatalf("[Seed] passeios: %v", err)
		}
		log.Printf("[Seed] %d passeios ready", len(dbpkg.DemoPasseios))
	}
}
