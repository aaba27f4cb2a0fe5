package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// EnsureSchema crea el schema (namespace de la tienda) si no existe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, schema string) error {
	if schema == "" || schema == "public" {
		return nil
	}
	_, err := pool.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+pgx.Identifier{schema}.Sanitize())
	if err != nil {
		return fmt.Errorf("create schema %s: %w", schema, err)
	}
	return nil
}

// newMigrator construye golang-migrate sobre el pool (vía database/sql) con los SQL embebidos.
func newMigrator(pool *pgxpool.Pool, schema string) (*migrate.Migrate, error) {
	db := stdlib.OpenDBFromPool(pool)
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{SchemaName: schema})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate init: %w", err)
	}
	return m, nil
}

// MigrateUp aplica las migraciones pendientes. Sin cambios no es error.
func MigrateUp(ctx context.Context, pool *pgxpool.Pool, schema string) error {
	if err := EnsureSchema(ctx, pool, schema); err != nil {
		return err
	}
	m, err := newMigrator(pool, schema)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// MigrateDown revierte steps migraciones (todas si steps <= 0).
func MigrateDown(pool *pgxpool.Pool, schema string, steps int) error {
	m, err := newMigrator(pool, schema)
	if err != nil {
		return err
	}
	defer m.Close()
	if steps > 0 {
		err = m.Steps(-steps)
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// MigrationVersion devuelve la versión aplicada y si quedó marcada como dirty.
func MigrationVersion(pool *pgxpool.Pool, schema string) (uint, bool, error) {
	m, err := newMigrator(pool, schema)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}
