package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
)

// BanknoteRepo implementa catalogDomain.BanknoteRepository. Las lecturas devuelven
// el billete con su país.
type BanknoteRepo struct {
	db *sql.DB
	d  Dialect
}

func NewBanknoteRepo(db *sql.DB, d Dialect) *BanknoteRepo {
	return &BanknoteRepo{db: db, d: d}
}

var banknoteSelect = selectCollectable("banknotes", "t.color, t.series")

func (r *BanknoteRepo) Create(ctx context.Context, c *catalogDomain.Banknote, evt sharedDomain.OutboxEvent) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		args := append(collectableArgs(&c.Collectable), c.Color, c.Series)
		if _, err := tx.ExecContext(ctx, r.d.Rebind(
			`INSERT INTO banknotes (id, country_id, type, face_value, currency, year, subject, note, created_at, color, series)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`), args...,
		); err != nil {
			return err
		}
		return insertOutboxTx(ctx, tx, r.d, evt)
	})
}

func (r *BanknoteRepo) Update(ctx context.Context, c *catalogDomain.Banknote, evt sharedDomain.OutboxEvent) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := execAffecting(ctx, tx, catalogDomain.ErrBanknoteNotFound, r.d.Rebind(
			`UPDATE banknotes SET country_id = ?, type = ?, face_value = ?, currency = ?, year = ?, subject = ?, note = ?,
			 color = ?, series = ? WHERE id = ?`),
			c.CountryID, c.Type, c.FaceValue, c.Currency, c.Year, c.Subject, c.Note,
			c.Color, c.Series, c.ID,
		); err != nil {
			return err
		}
		return insertOutboxTx(ctx, tx, r.d, evt)
	})
}

func (r *BanknoteRepo) DeleteByID(ctx context.Context, id uuid.UUID, evt sharedDomain.OutboxEvent) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := execAffecting(ctx, tx, catalogDomain.ErrBanknoteNotFound, r.d.Rebind(`DELETE FROM banknotes WHERE id = ?`), id); err != nil {
			return err
		}
		return insertOutboxTx(ctx, tx, r.d, evt)
	})
}

func (r *BanknoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*catalogDomain.Banknote, error) {
	row := r.db.QueryRowContext(ctx, r.d.Rebind(banknoteSelect+` WHERE t.id = ?`), id)

	var c catalogDomain.Banknote
	if err := scanCollectable(row, &c.Collectable, &c.Color, &c.Series); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogDomain.ErrBanknoteNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *BanknoteRepo) List(ctx context.Context) ([]*catalogDomain.Banknote, error) {
	rows, err := r.db.QueryContext(ctx, banknoteSelect+` ORDER BY t.created_at, t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banknotes []*catalogDomain.Banknote
	for rows.Next() {
		var c catalogDomain.Banknote
		if err := scanCollectable(rows, &c.Collectable, &c.Color, &c.Series); err != nil {
			return nil, err
		}
		banknotes = append(banknotes, &c)
	}
	return banknotes, rows.Err()
}

var _ catalogDomain.BanknoteRepository = (*BanknoteRepo)(nil)
