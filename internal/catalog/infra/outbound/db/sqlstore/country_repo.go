package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
)

const countryColumns = `id, name, code, continent, created_at`

// CountryRepo implementa catalogDomain.CountryRepository.
type CountryRepo struct {
	db *sql.DB
	d  Dialect
}

func NewCountryRepo(db *sql.DB, d Dialect) *CountryRepo {
	return &CountryRepo{db: db, d: d}
}

// Create inserta el país y su evento en una transacción.
func (r *CountryRepo) Create(ctx context.Context, c *catalogDomain.Country, evt sharedDomain.OutboxEvent) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, r.d.Rebind(
			`INSERT INTO countries (`+countryColumns+`) VALUES (?, ?, ?, ?, ?)`),
			c.ID, c.Name, c.Code, c.Continent, c.CreatedAt,
		); err != nil {
			return err
		}
		return insertOutboxTx(ctx, tx, r.d, evt)
	})
}

func (r *CountryRepo) Update(ctx context.Context, c *catalogDomain.Country, evt sharedDomain.OutboxEvent) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := execAffecting(ctx, tx, catalogDomain.ErrCountryNotFound, r.d.Rebind(
			`UPDATE countries SET name = ?, code = ?, continent = ? WHERE id = ?`),
			c.Name, c.Code, c.Continent, c.ID,
		); err != nil {
			return err
		}
		return insertOutboxTx(ctx, tx, r.d, evt)
	})
}

func (r *CountryRepo) DeleteByID(ctx context.Context, id uuid.UUID, evt sharedDomain.OutboxEvent) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := execAffecting(ctx, tx, catalogDomain.ErrCountryNotFound, r.d.Rebind(
			`DELETE FROM countries WHERE id = ?`), id,
		); err != nil {
			return err
		}
		return insertOutboxTx(ctx, tx, r.d, evt)
	})
}

func (r *CountryRepo) GetByID(ctx context.Context, id uuid.UUID) (*catalogDomain.Country, error) {
	row := r.db.QueryRowContext(ctx, r.d.Rebind(`SELECT `+countryColumns+` FROM countries WHERE id = ?`), id)

	var c catalogDomain.Country
	if err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Continent, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogDomain.ErrCountryNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List devuelve todos los países en orden de alta. Filtro, orden y
// paginación los aplica la capa de aplicación.
func (r *CountryRepo) List(ctx context.Context) ([]*catalogDomain.Country, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+countryColumns+` FROM countries ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var countries []*catalogDomain.Country
	for rows.Next() {
		var c catalogDomain.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Continent, &c.CreatedAt); err != nil {
			return nil, err
		}
		countries = append(countries, &c)
	}
	return countries, rows.Err()
}

var _ catalogDomain.CountryRepository = (*CountryRepo)(nil)
