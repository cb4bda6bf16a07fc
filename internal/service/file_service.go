package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"filebox/internal/domain"
	"filebox/internal/storage"
	"filebox/internal/store"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UploadRequest carries the validated inputs for creating a file entity.
// Data holds the decoded payload; it is ignored for folders.
type UploadRequest struct {
	Name     string
	Kind     domain.Kind
	ParentID string
	IsPublic bool
	Data     []byte
}

// FileService is the access-controlled façade over the file-entity store.
// Every operation resolves the caller's token before touching any store, so
// an authorization failure is always reported ahead of not-found or
// validation outcomes.
type FileService interface {
	Upload(ctx context.Context, token string, req UploadRequest) (*domain.FileEntity, error)
	Get(ctx context.Context, token, fileID string) (*domain.FileEntity, error)
	List(ctx context.Context, token, parentID string, page int) ([]*domain.FileEntity, error)
	SetPublic(ctx context.Context, token, fileID string, public bool) (*domain.FileEntity, error)
}

// fileService is the concrete implementation of the FileService interface.
type fileService struct {
	fileStore store.FileStore
	blobStore storage.BlobStore
	authSvc   AuthService
}

// NewFileService creates a new instance of the file service.
func NewFileService(fileStore store.FileStore, blobStore storage.BlobStore, authSvc AuthService) FileService {
	return &fileService{
		fileStore: fileStore,
		blobStore: blobStore,
		authSvc:   authSvc,
	}
}

// Upload validates the request, resolves the parent folder, writes the
// payload to the blob store for non-folder kinds, and persists the metadata.
// The blob is written before the metadata insert; a failed insert can leave
// an orphaned blob, which is accepted and never compensated here.
func (s *fileService) Upload(ctx context.Context, token string, req UploadRequest) (*domain.FileEntity, error) {
	ownerID, err := s.authSvc.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	if !req.Kind.Valid() {
		return nil, ErrInvalidKind
	}
	if req.Kind != domain.KindFolder && len(req.Data) == 0 {
		return nil, ErrMissingPayload
	}

	parentID := req.ParentID
	if parentID == "" {
		parentID = domain.RootParentID
	}
	if parentID != domain.RootParentID {
		pID, err := bson.ObjectIDFromHex(parentID)
		if err != nil {
			return nil, ErrParentNotFound
		}
		parent, err := s.fileStore.FindByID(ctx, pID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, fmt.Errorf("failed to resolve parent folder: %w", err)
		}
		if parent.Kind != domain.KindFolder {
			return nil, ErrParentNotFolder
		}
	}

	file := &domain.FileEntity{
		OwnerID:   ownerID,
		Name:      req.Name,
		Kind:      req.Kind,
		IsPublic:  req.IsPublic,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}

	if req.Kind != domain.KindFolder {
		location, err := s.blobStore.Store(ctx, req.Data)
		if err != nil {
			return nil, err
		}
		file.ContentLocation = location
	}

	if err := s.fileStore.Create(ctx, file); err != nil {
		return nil, fmt.Errorf("failed to create file entity: %w", err)
	}

	return file, nil
}

// Get returns an entity's metadata if it exists and is owned by the caller.
func (s *fileService) Get(ctx context.Context, token, fileID string) (*domain.FileEntity, error) {
	ownerID, err := s.authSvc.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	id, err := bson.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, store.ErrNotFound
	}

	return s.fileStore.GetByID(ctx, ownerID, id)
}

// List returns one page of the caller's entities under parentID. An
// out-of-range page is an empty slice, not an error.
func (s *fileService) List(ctx context.Context, token, parentID string, page int) ([]*domain.FileEntity, error) {
	ownerID, err := s.authSvc.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if parentID == "" {
		parentID = domain.RootParentID
	}
	if page < 0 {
		page = 0
	}

	files, err := s.fileStore.ListByParent(ctx, ownerID, parentID, page, store.DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list files from store: %w", err)
	}

	return files, nil
}

// SetPublic flips the isPublic flag on an owned entity.
func (s *fileService) SetPublic(ctx context.Context, token, fileID string, public bool) (*domain.FileEntity, error) {
	ownerID, err := s.authSvc.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	id, err := bson.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, store.ErrNotFound
	}

	return s.fileStore.SetPublic(ctx, ownerID, id, public)
}
