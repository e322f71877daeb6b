package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
)

// UserRepository persists user records in a MongoDB collection.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database, collection string) *UserRepository {
	return &UserRepository{coll: db.Collection(collection)}
}

type mongoUser struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	Mobile       string `bson:"mobile,omitempty"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role,omitempty"`
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID,
		Name:         mu.Name,
		Email:        mu.Email,
		Mobile:       mu.Mobile,
		PasswordHash: mu.PasswordHash,
		// Stored roles may be null or garbage; normalize on every read.
		Role: domain.NormalizeRole(mu.Role),
	}
}

// Create inserts a new user. The document ID is assigned here. A duplicate
// key on the unique email index maps to domain.ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := mongoUser{
		ID:           uuid.NewString(),
		Name:         user.Name,
		Email:        user.Email,
		Mobile:       user.Mobile,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := doc.toDomain()
	return created, nil
}

// FindByID fetches a user by document identifier.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return mu.toDomain(), nil
}

// FindByEmail fetches the user with the given normalized email. The query
// reads up to two documents so a unique-email violation is detected instead
// of silently picking one record.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"email": email}, options.Find().SetLimit(2))
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	var matches []mongoUser
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, domain.ErrUserNotFound
	case 1:
		return matches[0].toDomain(), nil
	default:
		return nil, domain.ErrDuplicateUser
	}
}

// FindByEmailOrMobile queries by whichever identifiers are non-empty and
// returns the first match.
func (r *UserRepository) FindByEmailOrMobile(ctx context.Context, email, mobile string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	clauses := bson.A{}
	if email != "" {
		clauses = append(clauses, bson.M{"email": email})
	}
	if mobile != "" {
		clauses = append(clauses, bson.M{"mobile": mobile})
	}
	if len(clauses) == 0 {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"$or": clauses}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by fallback: %w", err)
	}
	return mu.toDomain(), nil
}

// EnsureIndexes creates the unique email index on the users collection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
