package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"filebox/internal/domain"
	"filebox/internal/storage"
	"filebox/internal/store"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// In-memory store implementations shared by the service tests.

type memUserStore struct {
	mu    sync.Mutex
	users []*domain.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{}
}

func (m *memUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return store.ErrConflict
		}
	}
	user.ID = bson.NewObjectID()
	stored := *user
	m.users = append(m.users, &stored)
	return nil
}

func (m *memUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memUserStore) FindByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memUserStore) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

type memFileStore struct {
	mu    sync.Mutex
	files []*domain.FileEntity
}

func newMemFileStore() *memFileStore {
	return &memFileStore{}
}

func (m *memFileStore) Create(ctx context.Context, file *domain.FileEntity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	file.ID = bson.NewObjectID()
	stored := *file
	m.files = append(m.files, &stored)
	return nil
}

func (m *memFileStore) GetByID(ctx context.Context, ownerID, fileID bson.ObjectID) (*domain.FileEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.files {
		if f.ID == fileID && f.OwnerID == ownerID {
			found := *f
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memFileStore) FindByID(ctx context.Context, fileID bson.ObjectID) (*domain.FileEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.files {
		if f.ID == fileID {
			found := *f
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memFileStore) ListByParent(ctx context.Context, ownerID bson.ObjectID, parentID string, page, pageSize int) ([]*domain.FileEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*domain.FileEntity
	for _, f := range m.files {
		if f.OwnerID == ownerID && f.ParentID == parentID {
			found := *f
			matched = append(matched, &found)
		}
	}

	start := page * pageSize
	if start >= len(matched) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (m *memFileStore) SetPublic(ctx context.Context, ownerID, fileID bson.ObjectID, public bool) (*domain.FileEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.files {
		if f.ID == fileID && f.OwnerID == ownerID {
			f.IsPublic = public
			found := *f
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memFileStore) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.files)), nil
}

type sessionEntry struct {
	userID    string
	expiresAt time.Time
}

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]sessionEntry)}
}

func (m *memSessionStore) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = sessionEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *memSessionStore) Get(ctx context.Context, token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.sessions[token]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", store.ErrNotFound
	}
	return entry.userID, nil
}

func (m *memSessionStore) Del(ctx context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[token]
	delete(m.sessions, token)
	return ok, nil
}

func (m *memSessionStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// memBlobStore hands out sequential locators and remembers every payload.
type memBlobStore struct {
	mu    sync.Mutex
	next  int
	blobs map[string][]byte
	err   error
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{blobs: make(map[string][]byte)}
}

func (m *memBlobStore) Store(ctx context.Context, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.next++
	location := fmt.Sprintf("blob-%d", m.next)
	m.blobs[location] = append([]byte(nil), data...)
	return location, nil
}

var _ store.UserStore = (*memUserStore)(nil)
var _ store.FileStore = (*memFileStore)(nil)
var _ store.SessionStore = (*memSessionStore)(nil)
var _ storage.BlobStore = (*memBlobStore)(nil)
