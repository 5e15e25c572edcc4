package mongodb

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
)

const (
	countriesCollection = "countries"
	coinsCollection     = "coins"
	banknotesCollection = "banknotes"
	outboxCollection    = "outbox"
)

type CountryRepo struct {
	repository[catalogDomain.Country, countryDoc]
}

func NewCountryRepo(client *mongo.Client, dbName string) *CountryRepo {
	db := client.Database(dbName)
	return &CountryRepo{repository[catalogDomain.Country, countryDoc]{
		client:   client,
		coll:     db.Collection(countriesCollection),
		outbox:   db.Collection(outboxCollection),
		notFound: catalogDomain.ErrCountryNotFound,
		id:       func(c *catalogDomain.Country) uuid.UUID { return c.ID },
		toDoc:    toCountryDoc,
		fromDoc:  fromCountryDoc,
	}}
}

// CoinRepo lee el país de cada moneda de la colección countries.
type CoinRepo struct {
	repository[catalogDomain.Coin, coinDoc]
}

func NewCoinRepo(client *mongo.Client, dbName string) *CoinRepo {
	db := client.Database(dbName)
	return &CoinRepo{repository[catalogDomain.Coin, coinDoc]{
		client:   client,
		coll:     db.Collection(coinsCollection),
		outbox:   db.Collection(outboxCollection),
		notFound: catalogDomain.ErrCoinNotFound,
		id:       func(c *catalogDomain.Coin) uuid.UUID { return c.ID },
		toDoc:    toCoinDoc,
		fromDoc:  fromCoinDoc,
		hydrate: withCountries(db.Collection(countriesCollection), func(c *catalogDomain.Coin) *catalogDomain.Collectable {
			return &c.Collectable
		}),
	}}
}

// BanknoteRepo lee el país de cada billete de la colección countries.
type BanknoteRepo struct {
	repository[catalogDomain.Banknote, banknoteDoc]
}

func NewBanknoteRepo(client *mongo.Client, dbName string) *BanknoteRepo {
	db := client.Database(dbName)
	return &BanknoteRepo{repository[catalogDomain.Banknote, banknoteDoc]{
		client:   client,
		coll:     db.Collection(banknotesCollection),
		outbox:   db.Collection(outboxCollection),
		notFound: catalogDomain.ErrBanknoteNotFound,
		id:       func(b *catalogDomain.Banknote) uuid.UUID { return b.ID },
		toDoc:    toBanknoteDoc,
		fromDoc:  fromBanknoteDoc,
		hydrate: withCountries(db.Collection(countriesCollection), func(b *catalogDomain.Banknote) *catalogDomain.Collectable {
			return &b.Collectable
		}),
	}}
}

// withCountries resuelve los países con una sola consulta $in.
func withCountries[E any](countries *mongo.Collection, base func(*E) *catalogDomain.Collectable) func(context.Context, []*E) error {
	return func(ctx context.Context, items []*E) error {
		seen := make(map[string]bool, len(items))
		ids := make([]string, 0, len(items))
		for _, it := range items {
			id := base(it).CountryID.String()
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}

		cursor, err := countries.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		byID := make(map[uuid.UUID]catalogDomain.Country, len(ids))
		for cursor.Next(ctx) {
			var doc countryDoc
			if err := cursor.Decode(&doc); err != nil {
				return err
			}
			c, err := fromCountryDoc(&doc)
			if err != nil {
				return err
			}
			byID[c.ID] = *c
		}
		if err := cursor.Err(); err != nil {
			return err
		}

		for _, it := range items {
			b := base(it)
			b.Country = byID[b.CountryID]
		}
		return nil
	}
}

var (
	_ catalogDomain.CountryRepository  = (*CountryRepo)(nil)
	_ catalogDomain.CoinRepository     = (*CoinRepo)(nil)
	_ catalogDomain.BanknoteRepository = (*BanknoteRepo)(nil)
)
