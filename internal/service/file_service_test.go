package service

import (
	"context"
	"fmt"
	"testing"

	"filebox/internal/domain"
	"filebox/internal/platform/crypto"
	"filebox/internal/storage"
	"filebox/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fileServiceFixture struct {
	svc       FileService
	authSvc   AuthService
	fileStore *memFileStore
	blobStore *memBlobStore
	users     *memUserStore
	token     string
}

func newFileServiceFixture(t *testing.T) *fileServiceFixture {
	t.Helper()

	users := newMemUserStore()
	sessions := newMemSessionStore()
	fileStore := newMemFileStore()
	blobStore := newMemBlobStore()

	authSvc := NewAuthService(users, sessions, crypto.NewRandomTokenGenerator(), crypto.NewBcryptManager(bcrypt.MinCost))
	svc := NewFileService(fileStore, blobStore, authSvc)

	registerUser(t, users, "owner@x.com", "secret")
	sess, err := authSvc.Authenticate(context.Background(), "owner@x.com", "secret")
	require.NoError(t, err)

	return &fileServiceFixture{
		svc:       svc,
		authSvc:   authSvc,
		fileStore: fileStore,
		blobStore: blobStore,
		users:     users,
		token:     sess.Token,
	}
}

func (f *fileServiceFixture) secondToken(t *testing.T) string {
	t.Helper()
	registerUser(t, f.users, "other@x.com", "secret")
	sess, err := f.authSvc.Authenticate(context.Background(), "other@x.com", "secret")
	require.NoError(t, err)
	return sess.Token
}

func TestUpload_Folder(t *testing.T) {
	f := newFileServiceFixture(t)

	folder, err := f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name: "docs",
		Kind: domain.KindFolder,
	})
	require.NoError(t, err)

	assert.False(t, folder.ID.IsZero())
	assert.Equal(t, domain.KindFolder, folder.Kind)
	assert.Equal(t, domain.RootParentID, folder.ParentID)
	assert.False(t, folder.IsPublic)
	assert.Empty(t, folder.ContentLocation, "folders never carry a content locator")
	assert.Empty(t, f.blobStore.blobs, "folder creation must not touch the blob store")
}

func TestUpload_File(t *testing.T) {
	f := newFileServiceFixture(t)

	file, err := f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name: "a.txt",
		Kind: domain.KindFile,
		Data: []byte("Hello World"),
	})
	require.NoError(t, err)

	require.NotEmpty(t, file.ContentLocation)
	assert.Equal(t, []byte("Hello World"), f.blobStore.blobs[file.ContentLocation])

	// Re-storing the same payload yields a distinct locator.
	again, err := f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name: "b.txt",
		Kind: domain.KindFile,
		Data: []byte("Hello World"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, file.ContentLocation, again.ContentLocation)
}

func TestUpload_Validation(t *testing.T) {
	f := newFileServiceFixture(t)

	_, err := f.svc.Upload(context.Background(), f.token, UploadRequest{Kind: domain.KindFolder})
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)

	_, err = f.svc.Upload(context.Background(), f.token, UploadRequest{Name: "x", Kind: "archive"})
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = f.svc.Upload(context.Background(), f.token, UploadRequest{Name: "x", Kind: domain.KindFile})
	assert.ErrorIs(t, err, ErrMissingPayload)
}

func TestUpload_ParentChecks(t *testing.T) {
	f := newFileServiceFixture(t)

	// Nonexistent parent.
	_, err := f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name:     "a.txt",
		Kind:     domain.KindFile,
		ParentID: "507f1f77bcf86cd799439011",
		Data:     []byte("x"),
	})
	assert.ErrorIs(t, err, ErrParentNotFound)

	// Malformed parent ID is treated the same as a missing one.
	_, err = f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name:     "a.txt",
		Kind:     domain.KindFile,
		ParentID: "not-a-hex-id",
		Data:     []byte("x"),
	})
	assert.ErrorIs(t, err, ErrParentNotFound)

	// Parent exists but is not a folder.
	leaf, err := f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name: "leaf.txt",
		Kind: domain.KindFile,
		Data: []byte("x"),
	})
	require.NoError(t, err)

	_, err = f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name:     "b.txt",
		Kind:     domain.KindFile,
		ParentID: leaf.ID.Hex(),
		Data:     []byte("x"),
	})
	assert.ErrorIs(t, err, ErrParentNotFolder)

	// Valid folder parent.
	folder, err := f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name: "docs",
		Kind: domain.KindFolder,
	})
	require.NoError(t, err)

	nested, err := f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name:     "c.txt",
		Kind:     domain.KindFile,
		ParentID: folder.ID.Hex(),
		Data:     []byte("x"),
	})
	require.NoError(t, err)
	assert.Equal(t, folder.ID.Hex(), nested.ParentID)
}

func TestUpload_BlobFailure_NoMetadata(t *testing.T) {
	f := newFileServiceFixture(t)
	f.blobStore.err = storage.ErrUnavailable

	_, err := f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name: "a.txt",
		Kind: domain.KindFile,
		Data: []byte("x"),
	})
	assert.ErrorIs(t, err, storage.ErrUnavailable)

	// The blob is written first; if that fails, no metadata record exists.
	count, err := f.fileStore.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOperations_UnauthorizedBeforeStores(t *testing.T) {
	f := newFileServiceFixture(t)

	_, err := f.svc.Upload(context.Background(), "bad-token", UploadRequest{
		Name: "a.txt",
		Kind: domain.KindFile,
		Data: []byte("x"),
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, f.blobStore.blobs)

	_, err = f.svc.Get(context.Background(), "", "507f1f77bcf86cd799439011")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.svc.List(context.Background(), "bad-token", domain.RootParentID, 0)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.svc.SetPublic(context.Background(), "bad-token", "507f1f77bcf86cd799439011", true)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGet_OwnershipScope(t *testing.T) {
	f := newFileServiceFixture(t)

	file, err := f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name: "a.txt",
		Kind: domain.KindFile,
		Data: []byte("x"),
	})
	require.NoError(t, err)

	got, err := f.svc.Get(context.Background(), f.token, file.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, file.ID, got.ID)

	// Another identity sees not-found, even though the entity exists.
	otherToken := f.secondToken(t)
	_, err = f.svc.Get(context.Background(), otherToken, file.ID.Hex())
	assert.ErrorIs(t, err, store.ErrNotFound)

	// A malformed ID is also just not-found.
	_, err = f.svc.Get(context.Background(), f.token, "not-a-hex-id")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestList_Pagination(t *testing.T) {
	f := newFileServiceFixture(t)

	folder, err := f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name: "docs",
		Kind: domain.KindFolder,
	})
	require.NoError(t, err)

	for i := 0; i < 45; i++ {
		_, err := f.svc.Upload(context.Background(), f.token, UploadRequest{
			Name:     fmt.Sprintf("file-%02d.txt", i),
			Kind:     domain.KindFile,
			ParentID: folder.ID.Hex(),
			Data:     []byte("x"),
		})
		require.NoError(t, err)
	}

	page0, err := f.svc.List(context.Background(), f.token, folder.ID.Hex(), 0)
	require.NoError(t, err)
	require.Len(t, page0, 20)
	assert.Equal(t, "file-00.txt", page0[0].Name, "insertion order is preserved")

	page1, err := f.svc.List(context.Background(), f.token, folder.ID.Hex(), 1)
	require.NoError(t, err)
	assert.Len(t, page1, 20)

	page2, err := f.svc.List(context.Background(), f.token, folder.ID.Hex(), 2)
	require.NoError(t, err)
	assert.Len(t, page2, 5)

	page3, err := f.svc.List(context.Background(), f.token, folder.ID.Hex(), 3)
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestList_ScopedToOwnerAndParent(t *testing.T) {
	f := newFileServiceFixture(t)

	_, err := f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name: "mine.txt",
		Kind: domain.KindFile,
		Data: []byte("x"),
	})
	require.NoError(t, err)

	otherToken := f.secondToken(t)
	listed, err := f.svc.List(context.Background(), otherToken, domain.RootParentID, 0)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestSetPublic(t *testing.T) {
	f := newFileServiceFixture(t)

	file, err := f.svc.Upload(context.Background(), f.token, UploadRequest{
		Name: "a.txt",
		Kind: domain.KindFile,
		Data: []byte("x"),
	})
	require.NoError(t, err)
	require.False(t, file.IsPublic)

	published, err := f.svc.SetPublic(context.Background(), f.token, file.ID.Hex(), true)
	require.NoError(t, err)
	assert.True(t, published.IsPublic)

	unpublished, err := f.svc.SetPublic(context.Background(), f.token, file.ID.Hex(), false)
	require.NoError(t, err)
	assert.False(t, unpublished.IsPublic)

	// Ownership scoping matches Get.
	otherToken := f.secondToken(t)
	_, err = f.svc.SetPublic(context.Background(), otherToken, file.ID.Hex(), true)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
