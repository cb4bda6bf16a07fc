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

const fileCollection = "files"

// FileStore is the MongoDB implementation of the store.FileStore interface.
type FileStore struct {
	db *mongo.Database
}

// NewFileStore creates a new FileStore.
func NewFileStore(db *mongo.Database) *FileStore {
	return &FileStore{db: db}
}

// Create inserts a new file-entity document into the files collection.
func (s *FileStore) Create(ctx context.Context, file *domain.FileEntity) error {
	res, err := s.db.Collection(fileCollection).InsertOne(ctx, file)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrConflict
		}
		return err
	}
	file.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

// GetByID finds an entity by its ID, ensuring it belongs to the specified
// owner. A foreign-owned entity yields store.ErrNotFound, indistinguishable
// from a nonexistent one.
func (s *FileStore) GetByID(ctx context.Context, ownerID, fileID bson.ObjectID) (*domain.FileEntity, error) {
	var file domain.FileEntity
	filter := bson.M{
		"_id":   fileID,
		"owner": ownerID,
	}

	err := s.db.Collection(fileCollection).FindOne(ctx, filter).Decode(&file)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &file, nil
}

// FindByID finds an entity by its ID without an owner filter. Creation uses
// it to resolve parent folders.
func (s *FileStore) FindByID(ctx context.Context, fileID bson.ObjectID) (*domain.FileEntity, error) {
	var file domain.FileEntity
	err := s.db.Collection(fileCollection).FindOne(ctx, bson.M{"_id": fileID}).Decode(&file)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &file, nil
}

// ListByParent retrieves one page of the owner's entities under parentID.
// ObjectIDs are monotonic, so sorting on _id preserves insertion order.
func (s *FileStore) ListByParent(ctx context.Context, ownerID bson.ObjectID, parentID string, page, pageSize int) ([]*domain.FileEntity, error) {
	filter := bson.M{
		"owner":  ownerID,
		"parent": parentID,
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(page) * int64(pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := s.db.Collection(fileCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var files []*domain.FileEntity
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}

	return files, nil
}

// SetPublic updates the isPublic flag on an owned entity and returns the
// updated document. No optimistic locking; last write wins.
func (s *FileStore) SetPublic(ctx context.Context, ownerID, fileID bson.ObjectID, public bool) (*domain.FileEntity, error) {
	filter := bson.M{
		"_id":   fileID,
		"owner": ownerID,
	}
	update := bson.M{"$set": bson.M{"isPublic": public}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var file domain.FileEntity
	err := s.db.Collection(fileCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&file)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &file, nil
}

// Count returns the number of file documents across all owners.
func (s *FileStore) Count(ctx context.Context) (int64, error) {
	return s.db.Collection(fileCollection).CountDocuments(ctx, bson.M{})
}
