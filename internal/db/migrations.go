// Package db схема базы данных.
package db

import "embed"

// Migrations миграции golang-migrate, встроенные в бинарник.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsRoot = "migrations"
