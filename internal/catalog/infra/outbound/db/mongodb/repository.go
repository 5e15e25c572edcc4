package mongodb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
)

// repository implementa el Repository del catálogo para una colección. E es
// la entidad de dominio y D su documento BSON.
type repository[E any, D any] struct {
	client   *mongo.Client
	coll     *mongo.Collection
	outbox   *mongo.Collection
	notFound error

	id      func(*E) uuid.UUID
	toDoc   func(*E) (*D, error)
	fromDoc func(*D) (*E, error)
	// hydrate, si no es nil, completa las entidades leídas (p. ej. el país).
	hydrate func(ctx context.Context, items []*E) error
}

// inTx ejecuta fn y la inserción del evento de outbox en la misma transacción.
func (r *repository[E, D]) inTx(ctx context.Context, evt sharedDomain.OutboxEvent, fn func(sessCtx mongo.SessionContext) error) error {
	mo, err := toOutboxDoc(evt)
	if err != nil {
		return err
	}

	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if err := fn(sessCtx); err != nil {
			return nil, err
		}
		if _, err := r.outbox.InsertOne(sessCtx, mo); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

func (r *repository[E, D]) Create(ctx context.Context, e *E, evt sharedDomain.OutboxEvent) error {
	doc, err := r.toDoc(e)
	if err != nil {
		return err
	}
	return r.inTx(ctx, evt, func(sessCtx mongo.SessionContext) error {
		_, err := r.coll.InsertOne(sessCtx, doc)
		return err
	})
}

func (r *repository[E, D]) Update(ctx context.Context, e *E, evt sharedDomain.OutboxEvent) error {
	doc, err := r.toDoc(e)
	if err != nil {
		return err
	}
	return r.inTx(ctx, evt, func(sessCtx mongo.SessionContext) error {
		res, err := r.coll.ReplaceOne(sessCtx, bson.M{"_id": r.id(e).String()}, doc)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return r.notFound
		}
		return nil
	})
}

func (r *repository[E, D]) DeleteByID(ctx context.Context, id uuid.UUID, evt sharedDomain.OutboxEvent) error {
	return r.inTx(ctx, evt, func(sessCtx mongo.SessionContext) error {
		res, err := r.coll.DeleteOne(sessCtx, bson.M{"_id": id.String()})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return r.notFound
		}
		return nil
	})
}

func (r *repository[E, D]) GetByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var doc D
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.notFound
		}
		return nil, err
	}
	e, err := r.fromDoc(&doc)
	if err != nil {
		return nil, err
	}
	if r.hydrate != nil {
		if err := r.hydrate(ctx, []*E{e}); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// List devuelve todos los documentos en orden de alta.
func (r *repository[E, D]) List(ctx context.Context) ([]*E, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*E
	for cursor.Next(ctx) {
		var doc D
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		e, err := r.fromDoc(&doc)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	if r.hydrate != nil && len(items) > 0 {
		if err := r.hydrate(ctx, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}
