package mongodb

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
)

func TestCoinDoc_RoundTrip(t *testing.T) {
	coin := &catalogDomain.Coin{
		Collectable: catalogDomain.Collectable{
			ID:        uuid.New(),
			CountryID: uuid.New(),
			Type:      "Dime",
			FaceValue: decimal.RequireFromString("0.10"),
			Currency:  "CAD",
			Year:      1968,
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		Metal:      "Nickel",
		DiameterMM: 18.03,
	}

	doc, err := toCoinDoc(coin)
	require.NoError(t, err)
	assert.Equal(t, coin.ID.String(), doc.Base.ID)
	assert.Equal(t, "0.10", doc.Base.FaceValue.String())

	back, err := fromCoinDoc(doc)
	require.NoError(t, err)
	assert.True(t, coin.FaceValue.Equal(back.FaceValue))
	back.FaceValue = coin.FaceValue
	assert.Equal(t, coin, back)
}

func TestFromCollectableDoc_InvalidID(t *testing.T) {
	_, err := fromBanknoteDoc(&banknoteDoc{Base: collectableDoc{ID: "nope"}})

	assert.Error(t, err)
}

func TestOutboxDoc_PayloadAsJSON(t *testing.T) {
	id := uuid.New()
	evt := sharedDomain.NewOutboxEvent(catalogDomain.CoinAggregate, id, catalogDomain.CoinDeleted, catalogDomain.DeletedEvent{ID: id.String()})

	doc, err := toOutboxDoc(evt)
	require.NoError(t, err)
	back, err := fromOutboxDoc(doc)
	require.NoError(t, err)

	assert.Equal(t, evt.ID, back.ID)
	assert.JSONEq(t, `{"id":"`+id.String()+`"}`, string(back.Payload.(json.RawMessage)))
}
