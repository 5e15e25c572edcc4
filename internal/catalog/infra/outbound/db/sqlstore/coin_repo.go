package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
)

// CoinRepo implementa catalogDomain.CoinRepository. Las lecturas devuelven
// la moneda con su país.
type CoinRepo struct {
	db *sql.DB
	d  Dialect
}

func NewCoinRepo(db *sql.DB, d Dialect) *CoinRepo {
	return &CoinRepo{db: db, d: d}
}

var coinSelect = selectCollectable("coins", "t.metal, t.diameter_mm, t.weight_grams")

func (r *CoinRepo) Create(ctx context.Context, c *catalogDomain.Coin, evt sharedDomain.OutboxEvent) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		args := append(collectableArgs(&c.Collectable), c.Metal, c.DiameterMM, c.WeightGrams)
		if _, err := tx.ExecContext(ctx, r.d.Rebind(
			`INSERT INTO coins (id, country_id, type, face_value, currency, year, subject, note, created_at, metal, diameter_mm, weight_grams)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`), args...,
		); err != nil {
			return err
		}
		return insertOutboxTx(ctx, tx, r.d, evt)
	})
}

func (r *CoinRepo) Update(ctx context.Context, c *catalogDomain.Coin, evt sharedDomain.OutboxEvent) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := execAffecting(ctx, tx, catalogDomain.ErrCoinNotFound, r.d.Rebind(
			`UPDATE coins SET country_id = ?, type = ?, face_value = ?, currency = ?, year = ?, subject = ?, note = ?,
			 metal = ?, diameter_mm = ?, weight_grams = ? WHERE id = ?`),
			c.CountryID, c.Type, c.FaceValue, c.Currency, c.Year, c.Subject, c.Note,
			c.Metal, c.DiameterMM, c.WeightGrams, c.ID,
		); err != nil {
			return err
		}
		return insertOutboxTx(ctx, tx, r.d, evt)
	})
}

func (r *CoinRepo) DeleteByID(ctx context.Context, id uuid.UUID, evt sharedDomain.OutboxEvent) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := execAffecting(ctx, tx, catalogDomain.ErrCoinNotFound, r.d.Rebind(`DELETE FROM coins WHERE id = ?`), id); err != nil {
			return err
		}
		return insertOutboxTx(ctx, tx, r.d, evt)
	})
}

func (r *CoinRepo) GetByID(ctx context.Context, id uuid.UUID) (*catalogDomain.Coin, error) {
	row := r.db.QueryRowContext(ctx, r.d.Rebind(coinSelect+` WHERE t.id = ?`), id)

	var c catalogDomain.Coin
	if err := scanCollectable(row, &c.Collectable, &c.Metal, &c.DiameterMM, &c.WeightGrams); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogDomain.ErrCoinNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CoinRepo) List(ctx context.Context) ([]*catalogDomain.Coin, error) {
	rows, err := r.db.QueryContext(ctx, coinSelect+` ORDER BY t.created_at, t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coins []*catalogDomain.Coin
	for rows.Next() {
		var c catalogDomain.Coin
		if err := scanCollectable(rows, &c.Collectable, &c.Metal, &c.DiameterMM, &c.WeightGrams); err != nil {
			return nil, err
		}
		coins = append(coins, &c)
	}
	return coins, rows.Err()
}

var _ catalogDomain.CoinRepository = (*CoinRepo)(nil)
