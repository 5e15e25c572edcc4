package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store agrupa los repositorios MongoDB sobre un mismo cliente. Las
// transacciones requieren un replica set.
type Store struct {
	Client    *mongo.Client
	Countries *CountryRepo
	Coins     *CoinRepo
	Banknotes *BanknoteRepo
	Outbox    *OutboxRepo
}

func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("could not connect to mongoDB: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("could not ping mongoDB: %w", err)
	}
	if err := ensureIndexes(connectCtx, client.Database(dbName)); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Store{
		Client:    client,
		Countries: NewCountryRepo(client, dbName),
		Coins:     NewCoinRepo(client, dbName),
		Banknotes: NewBanknoteRepo(client, dbName),
		Outbox:    NewOutboxRepo(client, dbName),
	}, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string]mongo.IndexModel{
		countriesCollection: {Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		coinsCollection:     {Keys: bson.D{{Key: "countryId", Value: 1}}},
		banknotesCollection: {Keys: bson.D{{Key: "countryId", Value: 1}}},
		outboxCollection:    {Keys: bson.D{{Key: "processed", Value: 1}, {Key: "createdAt", Value: 1}}},
	}
	for coll, model := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", coll, err)
		}
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
