package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
)

func TestCoinRepo_Mock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	coinID, countryID := uuid.New(), uuid.New()
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	value, err := primitive.ParseDecimal128("0.10")
	require.NoError(t, err)

	coinDocument := bson.D{
		{Key: "_id", Value: coinID.String()},
		{Key: "countryId", Value: countryID.String()},
		{Key: "type", Value: "Dime"},
		{Key: "faceValue", Value: value},
		{Key: "currency", Value: "CAD"},
		{Key: "year", Value: 1968},
		{Key: "createdAt", Value: created},
		{Key: "metal", Value: "Nickel"},
	}
	countryDocument := bson.D{
		{Key: "_id", Value: countryID.String()},
		{Key: "name", Value: "Canada"},
		{Key: "code", Value: "CA"},
		{Key: "continent", Value: "North America"},
		{Key: "createdAt", Value: created},
	}

	mt.Run("GetByID resuelve el país", func(mt *mtest.T) {
		repo := NewCoinRepo(mt.Client, mt.DB.Name())
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, mt.DB.Name()+".coins", mtest.FirstBatch, coinDocument),
			mtest.CreateCursorResponse(0, mt.DB.Name()+".countries", mtest.FirstBatch, countryDocument),
		)

		coin, err := repo.GetByID(context.Background(), coinID)

		require.NoError(mt, err)
		assert.Equal(mt, "Canada", coin.Country.Name)
		assert.Equal(mt, "0.1", coin.FaceValue.String())
		assert.Equal(mt, "Nickel", coin.Metal)
	})

	mt.Run("GetByID sin documento", func(mt *mtest.T) {
		repo := NewCoinRepo(mt.Client, mt.DB.Name())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".coins", mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), coinID)

		assert.ErrorIs(mt, err, catalogDomain.ErrCoinNotFound)
	})

	mt.Run("List", func(mt *mtest.T) {
		repo := NewCoinRepo(mt.Client, mt.DB.Name())
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, mt.DB.Name()+".coins", mtest.FirstBatch, coinDocument),
			mtest.CreateCursorResponse(0, mt.DB.Name()+".countries", mtest.FirstBatch, countryDocument),
		)

		coins, err := repo.List(context.Background())

		require.NoError(mt, err)
		require.Len(mt, coins, 1)
		assert.Equal(mt, "CA", coins[0].Country.Code)
	})
}

func TestOutboxRepo_Mock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	id := uuid.New()

	mt.Run("FetchPendingOutbox", func(mt *mtest.T) {
		repo := NewOutboxRepo(mt.Client, mt.DB.Name())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".outbox", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id.String()},
			{Key: "aggregateType", Value: "country"},
			{Key: "aggregateId", Value: uuid.NewString()},
			{Key: "eventType", Value: catalogDomain.CountryCreated},
			{Key: "payload", Value: `{"name":"Canada"}`},
			{Key: "createdAt", Value: time.Now()},
			{Key: "processed", Value: false},
		}))

		events, err := repo.FetchPendingOutbox(context.Background(), 10)

		require.NoError(mt, err)
		require.Len(mt, events, 1)
		assert.Equal(mt, id, events[0].ID)
	})

	mt.Run("MarkOutboxProcessed sin coincidencias", func(mt *mtest.T) {
		repo := NewOutboxRepo(mt.Client, mt.DB.Name())
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		err := repo.MarkOutboxProcessed(context.Background(), id)

		assert.ErrorContains(mt, err, "outbox event not found")
	})
}
