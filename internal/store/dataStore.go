package store

import (
	"context"
	"errors"
	"time"

	"filebox/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Standard errors returned by the store layer. This allows the service layer
// to handle specific database errors without being coupled to the database
// implementation
var (
	ErrNotFound = errors.New("requested item not found")
	ErrConflict = errors.New("item already exists")
)

// DefaultPageSize is the fixed page size for file listings.
const DefaultPageSize = 20

// UserStore defines the interface for user data operations. Any struct that
// implements these methods can be used as a user database by the application
type UserStore interface {
	// Create inserts a new user. It must return store.ErrConflict if the
	// email is already taken; uniqueness is enforced by the store itself,
	// not by a caller-side pre-check.
	Create(ctx context.Context, user *domain.User) error

	// FindByEmail retrieves a user by their email address. It should return
	// store.ErrNotFound if no user is found
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID retrieves a user by their unique ID. It should return
	// store.ErrNotFound if no user is found
	FindByID(ctx context.Context, id bson.ObjectID) (*domain.User, error)

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}

// FileStore defines the interface for file-entity metadata operations. All
// read and mutate operations except FindByID are scoped to an owner: an
// entity owned by someone else is indistinguishable from one that does not
// exist.
type FileStore interface {
	Create(ctx context.Context, file *domain.FileEntity) error

	// GetByID finds an entity by ID, ensuring it belongs to the given owner.
	GetByID(ctx context.Context, ownerID, fileID bson.ObjectID) (*domain.FileEntity, error)

	// FindByID finds an entity by ID regardless of owner. Only used to
	// resolve parent folders at creation time.
	FindByID(ctx context.Context, fileID bson.ObjectID) (*domain.FileEntity, error)

	// ListByParent returns the owner's entities under parentID in insertion
	// order, skipping page*pageSize and taking up to pageSize. An
	// out-of-range page yields an empty slice, never an error.
	ListByParent(ctx context.Context, ownerID bson.ObjectID, parentID string, page, pageSize int) ([]*domain.FileEntity, error)

	// SetPublic flips the isPublic flag and returns the updated entity.
	// Last write wins under concurrent toggles.
	SetPublic(ctx context.Context, ownerID, fileID bson.ObjectID, public bool) (*domain.FileEntity, error)

	// Count returns the number of file entities across all owners.
	Count(ctx context.Context) (int64, error)
}

// SessionStore defines the expiring token -> user mapping owned by the
// session authority. No other component reads or writes it.
type SessionStore interface {
	// Set stores token -> userID with the given time-to-live.
	Set(ctx context.Context, token, userID string, ttl time.Duration) error

	// Get returns the userID for a token, or store.ErrNotFound if the token
	// is missing or has expired.
	Get(ctx context.Context, token string) (string, error)

	// Del removes a token and reports whether an entry existed.
	Del(ctx context.Context, token string) (bool, error)
}
