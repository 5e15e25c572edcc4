package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []struct {
	table string
	ddl   string
}{
	{"countries", `CREATE TABLE IF NOT EXISTS countries (
		id {{id}} PRIMARY KEY,
		name {{text}} NOT NULL,
		code {{text}} NOT NULL UNIQUE,
		continent {{text}} NOT NULL,
		created_at {{time}} NOT NULL
	)`},
	{"coins", `CREATE TABLE IF NOT EXISTS coins (
		id {{id}} PRIMARY KEY,
		country_id {{id}} NOT NULL REFERENCES countries(id),
		type {{text}} NOT NULL,
		face_value {{decimal}} NOT NULL,
		currency {{text}} NOT NULL,
		year INTEGER NOT NULL,
		subject {{text}} NOT NULL,
		note {{text}} NOT NULL,
		metal {{text}} NOT NULL,
		diameter_mm {{float}} NOT NULL,
		weight_grams {{float}} NOT NULL,
		created_at {{time}} NOT NULL
	)`},
	{"banknotes", `CREATE TABLE IF NOT EXISTS banknotes (
		id {{id}} PRIMARY KEY,
		country_id {{id}} NOT NULL REFERENCES countries(id),
		type {{text}} NOT NULL,
		face_value {{decimal}} NOT NULL,
		currency {{text}} NOT NULL,
		year INTEGER NOT NULL,
		subject {{text}} NOT NULL,
		note {{text}} NOT NULL,
		color {{text}} NOT NULL,
		series {{text}} NOT NULL,
		created_at {{time}} NOT NULL
	)`},
	{"outbox", `CREATE TABLE IF NOT EXISTS outbox (
		id {{id}} PRIMARY KEY,
		aggregate_type {{text}} NOT NULL,
		aggregate_id {{text}} NOT NULL,
		event_type {{text}} NOT NULL,
		payload {{json}} NOT NULL,
		created_at {{time}} NOT NULL,
		processed {{bool}} NOT NULL DEFAULT FALSE
	)`},
}

// InitSchema crea las tablas del catálogo y la outbox si no existen.
func InitSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	for _, s := range schema {
		if _, err := db.ExecContext(ctx, d.expand(s.ddl)); err != nil {
			return fmt.Errorf("failed to create %s table: %w", s.table, err)
		}
	}
	return nil
}
