package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
)

// OrderRepository persists orders in a MongoDB collection.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database, collection string) *OrderRepository {
	return &OrderRepository{coll: db.Collection(collection)}
}

// Create inserts a new order document.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// FindByUserID returns the user's orders, newest first.
func (r *OrderRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// FindGuestByEmail returns unclaimed guest orders stored under the email.
func (r *OrderRepository) FindGuestByEmail(ctx context.Context, email string) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{"email": email, "is_guest": true})
}

// FindAll returns every order, newest first.
func (r *OrderRepository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	orders := []*domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// ClaimGuestOrder flips a guest order to user ownership. The filter guards
// on is_guest still being true, so the update is atomic per document and a
// concurrent duplicate claim modifies nothing on the loser.
func (r *OrderRepository) ClaimGuestOrder(ctx context.Context, orderID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"_id": orderID, "is_guest": true}
	update := bson.M{"$set": bson.M{"is_guest": false, "user_id": userID}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("claim order %s: %w", orderID, err)
	}
	if res.ModifiedCount == 0 {
		return domain.ErrOrderAlreadyClaimed
	}
	return nil
}

// EnsureIndexes creates the lookup indexes the order queries rely on.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "is_guest", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
