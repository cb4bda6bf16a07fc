package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// RootParentID is the sentinel parent value meaning "no parent folder".
// It is reserved and never a valid FileEntity ID.
const RootParentID = "0"

// Kind classifies a FileEntity. Folders are pure metadata nodes; files and
// images carry a content payload persisted in the blob store.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
	KindImage  Kind = "image"
)

// Valid reports whether k is one of the three recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindFolder, KindFile, KindImage:
		return true
	}
	return false
}

// FileEntity represents a document in the 'files' collection. ParentID is
// either RootParentID or the hex ID of an existing folder entity.
// ContentLocation is the opaque blob-store locator; it is set exactly once at
// creation for non-folder kinds and is always empty for folders.
type FileEntity struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID         bson.ObjectID `bson:"owner" json:"ownerId"`
	Name            string        `bson:"name" json:"name"`
	Kind            Kind          `bson:"kind" json:"kind"`
	IsPublic        bool          `bson:"isPublic" json:"isPublic"`
	ParentID        string        `bson:"parent" json:"parentId"`
	ContentLocation string        `bson:"contentLocation,omitempty" json:"contentLocation,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
}
