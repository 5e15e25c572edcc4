package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // Driver de PostgreSQL
	_ "modernc.org/sqlite"             // Driver de SQLite sin cgo
)

// Dialect recoge lo que cambia entre motores: driver, placeholders y tipos
// de columna del esquema.
type Dialect struct {
	Name   string
	Driver string

	numbered bool
	types    map[string]string
}

var (
	SQLite = Dialect{
		Name:   "sqlite",
		Driver: "sqlite",
		types: map[string]string{
			"id": "TEXT", "text": "TEXT", "decimal": "TEXT", "time": "DATETIME",
			"bool": "INTEGER", "json": "TEXT", "float": "REAL",
		},
	}
	Postgres = Dialect{
		Name:     "postgres",
		Driver:   "pgx",
		numbered: true,
		types: map[string]string{
			"id": "UUID", "text": "TEXT", "decimal": "NUMERIC(18,4)", "time": "TIMESTAMP WITH TIME ZONE",
			"bool": "BOOLEAN", "json": "JSONB", "float": "DOUBLE PRECISION",
		},
	}
	MySQL = Dialect{
		Name:   "mysql",
		Driver: "mysql",
		types: map[string]string{
			"id": "CHAR(36)", "text": "VARCHAR(255)", "decimal": "DECIMAL(18,4)", "time": "DATETIME(6)",
			"bool": "BOOLEAN", "json": "JSON", "float": "DOUBLE",
		},
	}
)

// DialectFor devuelve el dialecto por nombre ("sqlite", "postgres", "mysql").
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case SQLite.Name:
		return SQLite, nil
	case Postgres.Name:
		return Postgres, nil
	case MySQL.Name:
		return MySQL, nil
	}
	return Dialect{}, fmt.Errorf("unsupported sql dialect %q", name)
}

// Rebind convierte los placeholders "?" al estilo del motor ($1, $2... en
// PostgreSQL).
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// expand sustituye {{tipo}} por el tipo de columna del dialecto.
func (d Dialect) expand(ddl string) string {
	for k, v := range d.types {
		ddl = strings.ReplaceAll(ddl, "{{"+k+"}}", v)
	}
	return ddl
}

// Open abre la conexión y comprueba que responde. En MySQL fuerza parseTime
// para poder leer DATETIME como time.Time.
func Open(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	if d.Name == MySQL.Name {
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("invalid mysql dsn: %w", err)
		}
		cfg.ParseTime = true
		cfg.Loc = time.UTC
		dsn = cfg.FormatDSN()
	}

	db, err := sql.Open(d.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.Name, err)
	}
	if d.Name == SQLite.Name {
		// SQLite solo admite un escritor a la vez.
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", d.Name, err)
	}
	return db, nil
}
