package mongodb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
)

// OutboxRepo implementa la interfaz sharedDomain.OutboxRepository.
type OutboxRepo struct {
	outboxColl *mongo.Collection
}

func NewOutboxRepo(client *mongo.Client, dbName string) *OutboxRepo {
	return &OutboxRepo{outboxColl: client.Database(dbName).Collection(outboxCollection)}
}

// FetchPendingOutbox obtiene los eventos no procesados de la colección outbox.
func (r *OutboxRepo) FetchPendingOutbox(ctx context.Context, limit int) ([]sharedDomain.OutboxEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.outboxColl.Find(ctx, bson.M{"processed": false}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []sharedDomain.OutboxEvent
	for cursor.Next(ctx) {
		var mo outboxDoc
		if err := cursor.Decode(&mo); err != nil {
			return nil, err
		}
		evt, err := fromOutboxDoc(&mo)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}

	return events, cursor.Err()
}

// MarkOutboxProcessed marca un evento como procesado.
func (r *OutboxRepo) MarkOutboxProcessed(ctx context.Context, id uuid.UUID) error {
	res, err := r.outboxColl.UpdateOne(ctx, bson.M{"_id": id.String()}, bson.M{"$set": bson.M{"processed": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("outbox event not found: %s", id)
	}
	return nil
}

// Verificación en tiempo de compilación.
var _ sharedDomain.OutboxRepository = (*OutboxRepo)(nil)
