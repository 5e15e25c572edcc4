package mongodb

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
)

// --- Structs de BSON para el mapeo ---
// Se definen localmente para no "contaminar" el dominio con tags de BSON. Los
// IDs se guardan como string y los importes como Decimal128.

type countryDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Code      string    `bson:"code"`
	Continent string    `bson:"continent"`
	CreatedAt time.Time `bson:"createdAt"`
}

type collectableDoc struct {
	ID        string               `bson:"_id"`
	CountryID string               `bson:"countryId"`
	Type      string               `bson:"type"`
	FaceValue primitive.Decimal128 `bson:"faceValue"`
	Currency  string               `bson:"currency"`
	Year      int                  `bson:"year"`
	Subject   string               `bson:"subject"`
	Note      string               `bson:"note"`
	CreatedAt time.Time            `bson:"createdAt"`
}

type coinDoc struct {
	Base        collectableDoc `bson:",inline"`
	Metal       string         `bson:"metal"`
	DiameterMM  float64        `bson:"diameterMm"`
	WeightGrams float64        `bson:"weightGrams"`
}

type banknoteDoc struct {
	Base   collectableDoc `bson:",inline"`
	Color  string         `bson:"color"`
	Series string         `bson:"series"`
}

type outboxDoc struct {
	ID            string    `bson:"_id"`
	AggregateType string    `bson:"aggregateType"`
	AggregateID   string    `bson:"aggregateId"`
	EventType     string    `bson:"eventType"`
	Payload       string    `bson:"payload"`
	CreatedAt     time.Time `bson:"createdAt"`
	Processed     bool      `bson:"processed"`
}

// --- Helpers de Mapeo y Conversión ---

func toCountryDoc(c *catalogDomain.Country) (*countryDoc, error) {
	return &countryDoc{
		ID: c.ID.String(), Name: c.Name, Code: c.Code, Continent: c.Continent, CreatedAt: c.CreatedAt,
	}, nil
}

func fromCountryDoc(d *countryDoc) (*catalogDomain.Country, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid country id %q: %w", d.ID, err)
	}
	return &catalogDomain.Country{
		ID: id, Name: d.Name, Code: d.Code, Continent: d.Continent, CreatedAt: d.CreatedAt.UTC(),
	}, nil
}

func toCollectableDoc(c *catalogDomain.Collectable) (collectableDoc, error) {
	value, err := primitive.ParseDecimal128(c.FaceValue.String())
	if err != nil {
		return collectableDoc{}, fmt.Errorf("invalid face value %s: %w", c.FaceValue, err)
	}
	return collectableDoc{
		ID:        c.ID.String(),
		CountryID: c.CountryID.String(),
		Type:      c.Type,
		FaceValue: value,
		Currency:  c.Currency,
		Year:      c.Year,
		Subject:   c.Subject,
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
	}, nil
}

func fromCollectableDoc(d *collectableDoc) (catalogDomain.Collectable, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return catalogDomain.Collectable{}, fmt.Errorf("invalid id %q: %w", d.ID, err)
	}
	countryID, err := uuid.Parse(d.CountryID)
	if err != nil {
		return catalogDomain.Collectable{}, fmt.Errorf("invalid country id %q: %w", d.CountryID, err)
	}
	value, err := decimal.NewFromString(d.FaceValue.String())
	if err != nil {
		return catalogDomain.Collectable{}, fmt.Errorf("invalid face value in %s: %w", d.ID, err)
	}
	return catalogDomain.Collectable{
		ID:        id,
		CountryID: countryID,
		Type:      d.Type,
		FaceValue: value,
		Currency:  d.Currency,
		Year:      d.Year,
		Subject:   d.Subject,
		Note:      d.Note,
		CreatedAt: d.CreatedAt.UTC(),
	}, nil
}

func toCoinDoc(c *catalogDomain.Coin) (*coinDoc, error) {
	base, err := toCollectableDoc(&c.Collectable)
	if err != nil {
		return nil, err
	}
	return &coinDoc{Base: base, Metal: c.Metal, DiameterMM: c.DiameterMM, WeightGrams: c.WeightGrams}, nil
}

func fromCoinDoc(d *coinDoc) (*catalogDomain.Coin, error) {
	base, err := fromCollectableDoc(&d.Base)
	if err != nil {
		return nil, err
	}
	return &catalogDomain.Coin{Collectable: base, Metal: d.Metal, DiameterMM: d.DiameterMM, WeightGrams: d.WeightGrams}, nil
}

func toBanknoteDoc(b *catalogDomain.Banknote) (*banknoteDoc, error) {
	base, err := toCollectableDoc(&b.Collectable)
	if err != nil {
		return nil, err
	}
	return &banknoteDoc{Base: base, Color: b.Color, Series: b.Series}, nil
}

func fromBanknoteDoc(d *banknoteDoc) (*catalogDomain.Banknote, error) {
	base, err := fromCollectableDoc(&d.Base)
	if err != nil {
		return nil, err
	}
	return &catalogDomain.Banknote{Collectable: base, Color: d.Color, Series: d.Series}, nil
}

// toOutboxDoc guarda el payload como JSON para que el relayer lo decodifique
// igual que en los almacenes SQL.
func toOutboxDoc(evt sharedDomain.OutboxEvent) (*outboxDoc, error) {
	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal outbox payload: %w", err)
	}
	return &outboxDoc{
		ID: evt.ID.String(), AggregateType: evt.AggregateType, AggregateID: evt.AggregateID,
		EventType: evt.EventType, Payload: string(payload), CreatedAt: evt.CreatedAt, Processed: false,
	}, nil
}

func fromOutboxDoc(d *outboxDoc) (sharedDomain.OutboxEvent, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return sharedDomain.OutboxEvent{}, fmt.Errorf("invalid UUID in outbox document: %w", err)
	}
	return sharedDomain.OutboxEvent{
		ID:            id,
		AggregateType: d.AggregateType,
		AggregateID:   d.AggregateID,
		EventType:     d.EventType,
		Payload:       json.RawMessage(d.Payload),
		CreatedAt:     d.CreatedAt.UTC(),
		Processed:     d.Processed,
	}, nil
}
