package sqlstore

import (
	"context"
	"database/sql"
)

// Store agrupa los repositorios SQL sobre una misma conexión.
type Store struct {
	DB        *sql.DB
	Dialect   Dialect
	Countries *CountryRepo
	Coins     *CoinRepo
	Banknotes *BanknoteRepo
	Outbox    *OutboxRepo
}

// NewStore abre la base de datos, crea el esquema y construye los repositorios.
func NewStore(ctx context.Context, d Dialect, dsn string) (*Store, error) {
	db, err := Open(ctx, d, dsn)
	if err != nil {
		return nil, err
	}
	if err := InitSchema(ctx, db, d); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{
		DB:        db,
		Dialect:   d,
		Countries: NewCountryRepo(db, d),
		Coins:     NewCoinRepo(db, d),
		Banknotes: NewBanknoteRepo(db, d),
		Outbox:    NewOutboxRepo(db, d),
	}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}
