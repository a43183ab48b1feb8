package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io/fs"

	"logistics/cmd"
	pgmigrations "logistics/internal/adapters/out/postgres/migrations"
	sqlitemigrations "logistics/internal/adapters/out/sqlite/migrations"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Usage: migrate [up|down|status|version|redo|reset|up-to VERSION|down-to VERSION]
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using the process environment: %v", err)
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	flag.Parse()
	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command, args := arguments[0], arguments[1:]

	db, dialect, migrations, err := open(configs)
	if err != nil {
		log.Fatalf("goose: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("goose: failed to close DB: %v", err)
		}
	}()

	goose.SetBaseFS(migrations)
	if err = goose.SetDialect(dialect); err != nil {
		log.Fatalf("goose: %v", err)
	}

	if err = goose.RunContext(context.Background(), command, db, ".", args...); err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}

func open(configs cmd.Config) (*sql.DB, string, fs.FS, error) {
	switch configs.StorageDriver {
	case cmd.StorageSQLite:
		db, err := sql.Open("sqlite", configs.SQLitePath+"?_pragma=foreign_keys(1)")
		if err != nil {
			return nil, "", nil, err
		}
		return db, "sqlite3", sqlitemigrations.FS, nil
	default:
		db, err := sql.Open("postgres", configs.PostgresDSN())
		if err != nil {
			return nil, "", nil, err
		}
		if err = db.Ping(); err != nil {
			_ = db.Close()
			return nil, "", nil, fmt.Errorf("failed to connect to DB: %w", err)
		}
		return db, "postgres", pgmigrations.FS, nil
	}
}
