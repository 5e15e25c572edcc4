package domain

import (
	"reflect"

	sharedEvents "github.com/davicafu/coincatalog/internal/shared/domain/events"
)

const (
	CountryAggregate  = "country"
	CoinAggregate     = "coin"
	BanknoteAggregate = "banknote"
)

const (
	CountryCreated = "country.created"
	CountryUpdated = "country.updated"
	CountryDeleted = "country.deleted"

	CoinCreated = "coin.created"
	CoinUpdated = "coin.updated"
	CoinDeleted = "coin.deleted"

	BanknoteCreated = "banknote.created"
	BanknoteUpdated = "banknote.updated"
	BanknoteDeleted = "banknote.deleted"
)

const CatalogTopic = "catalog"

// DeletedEvent es el payload de los eventos de borrado.
type DeletedEvent struct {
	ID string `json:"id"`
}

func NewEventRegistry() map[string]sharedEvents.EventMetadata {
	country := reflect.TypeOf(Country{})
	coin := reflect.TypeOf(Coin{})
	banknote := reflect.TypeOf(Banknote{})
	deleted := reflect.TypeOf(DeletedEvent{})

	return map[string]sharedEvents.EventMetadata{
		CountryCreated:  {Type: country, Topic: CatalogTopic},
		CountryUpdated:  {Type: country, Topic: CatalogTopic},
		CountryDeleted:  {Type: deleted, Topic: CatalogTopic},
		CoinCreated:     {Type: coin, Topic: CatalogTopic},
		CoinUpdated:     {Type: coin, Topic: CatalogTopic},
		CoinDeleted:     {Type: deleted, Topic: CatalogTopic},
		BanknoteCreated: {Type: banknote, Topic: CatalogTopic},
		BanknoteUpdated: {Type: banknote, Topic: CatalogTopic},
		BanknoteDeleted: {Type: deleted, Topic: CatalogTopic},
	}
}
