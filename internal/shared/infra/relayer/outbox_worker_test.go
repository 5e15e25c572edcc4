package relayer

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
	sharedDomainEvents "github.com/davicafu/coincatalog/internal/shared/domain/events"
	sharedBus "github.com/davicafu/coincatalog/internal/shared/infra/platform/bus"
	"github.com/davicafu/coincatalog/internal/mocks"
)

type coinPayload struct {
	ID   uuid.UUID `json:"id"`
	Type string    `json:"type"`
	Year int       `json:"year"`
}

func testRegistry() map[string]sharedDomainEvents.EventMetadata {
	return map[string]sharedDomainEvents.EventMetadata{
		"coin.created": {Type: reflect.TypeOf(coinPayload{}), Topic: "catalog"},
	}
}

func TestOutboxWorker_ProcessBatch_Success(t *testing.T) {
	// Arrange
	repo := new(mocks.MockOutboxRepository)
	publisher := new(mocks.MockPublisher)

	eventID := uuid.New()
	coinID := uuid.New()
	testEvent := sharedDomain.OutboxEvent{
		ID:            eventID,
		AggregateType: "coin",
		AggregateID:   coinID.String(),
		EventType:     "coin.created",
		Payload:       map[string]interface{}{"id": coinID.String(), "type": "Dime", "year": 1968, "extra": true},
	}

	var published sharedDomainEvents.IntegrationEvent
	repo.On("FetchPendingOutbox", mock.Anything, 10).Return([]sharedDomain.OutboxEvent{testEvent}, nil).Once()
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("events.IntegrationEvent")).
		Run(func(args mock.Arguments) { published = args.Get(1).(sharedDomainEvents.IntegrationEvent) }).
		Return(nil).Once()
	repo.On("MarkOutboxProcessed", mock.Anything, eventID).Return(nil).Once()

	worker := NewOutboxWorker(repo, publisher, testRegistry(), 0, 10, zap.NewNop())

	// Act
	worker.ProcessBatch(context.Background())

	// Assert
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)

	assert.Equal(t, "coin.created", published.Type)
	assert.Equal(t, coinID.String(), published.PartitionKey())
	assert.False(t, published.Timestamp.IsZero())

	var data coinPayload
	require.NoError(t, json.Unmarshal(published.Data, &data))
	assert.Equal(t, coinPayload{ID: coinID, Type: "Dime", Year: 1968}, data)
}

func TestOutboxWorker_ProcessBatch_PublisherFails(t *testing.T) {
	// Arrange
	repo := new(mocks.MockOutboxRepository)
	publisher := new(mocks.MockPublisher)

	testEvent := sharedDomain.OutboxEvent{ID: uuid.New(), EventType: "coin.created", Payload: map[string]interface{}{}}

	repo.On("FetchPendingOutbox", mock.Anything, 10).Return([]sharedDomain.OutboxEvent{testEvent}, nil).Once()
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("kafka is down")).Once()

	worker := NewOutboxWorker(repo, publisher, testRegistry(), 0, 10, zap.NewNop())

	// Act
	worker.ProcessBatch(context.Background())

	// Assert
	publisher.AssertExpectations(t)
	repo.AssertNotCalled(t, "MarkOutboxProcessed", mock.Anything, mock.Anything)
}

func TestOutboxWorker_ProcessBatch_UnknownEventType(t *testing.T) {
	// Arrange
	repo := new(mocks.MockOutboxRepository)
	publisher := new(mocks.MockPublisher)

	testEvent := sharedDomain.OutboxEvent{ID: uuid.New(), EventType: "unregistered.event", Payload: map[string]interface{}{}}

	repo.On("FetchPendingOutbox", mock.Anything, 10).Return([]sharedDomain.OutboxEvent{testEvent}, nil).Once()

	worker := NewOutboxWorker(repo, publisher, map[string]sharedDomainEvents.EventMetadata{}, 0, 10, zap.NewNop())

	// Act
	worker.ProcessBatch(context.Background())

	// Assert
	repo.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "MarkOutboxProcessed", mock.Anything, mock.Anything)
}

func TestOutboxWorker_ProcessBatch_FetchFails(t *testing.T) {
	repo := new(mocks.MockOutboxRepository)
	publisher := new(mocks.MockPublisher)

	repo.On("FetchPendingOutbox", mock.Anything, 5).Return([]sharedDomain.OutboxEvent(nil), errors.New("db down")).Once()

	worker := NewOutboxWorker(repo, publisher, testRegistry(), 0, 5, zap.NewNop())
	worker.ProcessBatch(context.Background())

	repo.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

var _ sharedDomain.OutboxRepository = (*mocks.MockOutboxRepository)(nil)
var _ sharedBus.EventBus = (*mocks.MockPublisher)(nil)
