package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered account in the 'users' collection.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password" json:"-"` // One-way digest, never the plaintext
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
}

// PublicUser is the subset of User fields that is safe to return to clients.
type PublicUser struct {
	ID    bson.ObjectID `json:"id"`
	Email string        `json:"email"`
}

// ToPublic strips the credential fields for API responses.
func (u *User) ToPublic() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Email: u.Email,
	}
}
