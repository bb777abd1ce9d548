package repository

import (
	"context"
	"errors"
	"time"

	"smart-box-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("orden no encontrada")

// Mongo implementation
type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection("orders")}
}

func (m *MongoOrderRepository) Save(ctx context.Context, o *model.Order) error {
	now := time.Now().UTC()

	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now

	filter := bson.M{"order_id": o.OrderID}
	update := bson.M{"$set": o}
	opts := options.Update().SetUpsert(true)
	_, err := m.col.UpdateOne(ctx, filter, update, opts)
	return err
}

func (m *MongoOrderRepository) FindByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var res model.Order
	err := m.col.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

// SetBoxStatus marca box_status o receiver_box_status como "Opened".
// La escritura es atómica a nivel documento ($set), pero NO está coordinada
// con el cooldown en memoria del coordinador.
func (m *MongoOrderRepository) SetBoxStatus(ctx context.Context, orderID, field, value string) error {
	filter := bson.M{"order_id": orderID}
	update := bson.M{
		"$set": bson.M{
			field:        value,
			"updated_at": time.Now().UTC(),
		},
	}

	r, err := m.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoOrderRepository) FindAll(ctx context.Context) ([]*model.Order, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*model.Order
	for cur.Next(ctx) {
		var v model.Order
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, nil
}
