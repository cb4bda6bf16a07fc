package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Session binds an opaque token to a user identity until it expires or is
// revoked. The token carries no decodable information; resolution always
// goes through the session cache.
type Session struct {
	Token     string        `json:"token"`
	UserID    bson.ObjectID `json:"userId"`
	ExpiresAt time.Time     `json:"expiresAt"`
}
