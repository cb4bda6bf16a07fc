package mongo

import (
	"context"
	"errors"

	"filebox/internal/domain"
	"filebox/internal/store"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const userCollection = "users"

// UserStore is the MongoDB implementation of the store.UserStore interface.
type UserStore struct {
	db *mongo.Database
}

// NewUserStore creates a new UserStore.
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{db: db}
}

// EnsureIndexes creates the unique index on email. Pushing uniqueness down to
// the database closes the race between two concurrent registrations that both
// pass an application-level existence check.
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(userCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create inserts a new user document into the users collection.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	res, err := s.db.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrConflict
		}
		return err
	}
	user.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

// FindByEmail retrieves a user by their email address.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID retrieves a user by their unique ID.
func (s *UserStore) FindByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	var user domain.User
	err := s.db.Collection(userCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Count returns the number of user documents.
func (s *UserStore) Count(ctx context.Context) (int64, error) {
	return s.db.Collection(userCollection).CountDocuments(ctx, bson.M{})
}
