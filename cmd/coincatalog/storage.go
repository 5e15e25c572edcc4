package main

import (
	"context"
	"fmt"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	"github.com/davicafu/coincatalog/internal/catalog/infra/outbound/db/mongodb"
	"github.com/davicafu/coincatalog/internal/catalog/infra/outbound/db/sqlstore"
	"github.com/davicafu/coincatalog/internal/config"
	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
	sharedUtils "github.com/davicafu/coincatalog/internal/shared/infra/utils"
)

// repositories es lo que el resto del arranque necesita del almacenamiento,
// sea cual sea el driver.
type repositories struct {
	countries catalogDomain.CountryRepository
	coins     catalogDomain.CoinRepository
	banknotes catalogDomain.BanknoteRepository
	outbox    sharedDomain.OutboxRepository
	close     func(ctx context.Context) error
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.StorageDriver == config.DriverMongo {
		store, err := mongodb.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		return &repositories{
			countries: store.Countries,
			coins:     store.Coins,
			banknotes: store.Banknotes,
			outbox:    store.Outbox,
			close:     store.Close,
		}, nil
	}

	dialect, err := sqlstore.DialectFor(cfg.StorageDriver)
	if err != nil {
		return nil, err
	}
	dsn := sharedUtils.Ternary(dialect.Name == sqlstore.SQLite.Name, cfg.SQLitePath, cfg.DatabaseURL)

	store, err := sqlstore.NewStore(ctx, dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open %s store: %w", dialect.Name, err)
	}
	return &repositories{
		countries: store.Countries,
		coins:     store.Coins,
		banknotes: store.Banknotes,
		outbox:    store.Outbox,
		close:     func(context.Context) error { return store.Close() },
	}, nil
}
