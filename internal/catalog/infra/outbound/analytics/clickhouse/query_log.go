package clickhouse

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
)

// QueryLogRepo implementa catalogDomain.QueryAnalyticsRepository sobre ClickHouse.
type QueryLogRepo struct {
	db *sql.DB
}

// OpenDB abre la conexión con ClickHouse y comprueba que responde.
func OpenDB(ctx context.Context, addr, dbName string) (*sql.DB, error) {
	conn := clickhouse.OpenDB(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: dbName,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
	})

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("could not ping clickhouse: %w", err)
	}
	return conn, nil
}

func NewQueryLogRepo(db *sql.DB) *QueryLogRepo {
	return &QueryLogRepo{db: db}
}

// InitSchema crea la tabla query_log si no existe. Se particiona por mes y se
// ordena por recurso y fecha, que es como se consulta.
func (r *QueryLogRepo) InitSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS query_log (
			resource    LowCardinality(String),
			order_by    String,
			fields      String,
			page        UInt32,
			page_size   UInt32,
			total_count UInt32,
			at          DateTime64(3)
		) ENGINE = MergeTree()
		PARTITION BY toYYYYMM(at)
		ORDER BY (resource, at)
	`)
	return err
}

// LogBatch inserta el lote completo o nada.
func (r *QueryLogRepo) LogBatch(ctx context.Context, entries []catalogDomain.QueryLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO query_log (resource, order_by, fields, page, page_size, total_count, at)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx,
			e.Resource,
			e.OrderBy,
			e.Fields,
			uint32(e.Page),
			uint32(e.PageSize),
			uint32(e.TotalCount),
			e.At,
		); err != nil {
			return fmt.Errorf("failed to exec query log entry for %s: %w", e.Resource, err)
		}
	}

	return tx.Commit()
}

// TopOrderBy agrupa por el orderBy normalizado (sin espacios sobrantes y en
// minúsculas) y devuelve los más pedidos.
func (r *QueryLogRepo) TopOrderBy(ctx context.Context, resource string, since time.Time, limit int) ([]catalogDomain.OrderByStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT lower(trimBoth(order_by)) AS clause, count() AS requests
		FROM query_log
		WHERE resource = ? AND at >= ?
		GROUP BY clause
		ORDER BY requests DESC, clause
		LIMIT ?
	`, resource, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]catalogDomain.OrderByStat, 0, limit)
	for rows.Next() {
		var s catalogDomain.OrderByStat
		if err := rows.Scan(&s.OrderBy, &s.Requests); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// Verificación estática de la interfaz.
var _ catalogDomain.QueryAnalyticsRepository = (*QueryLogRepo)(nil)
