package user

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultStatus is the status line a freshly registered account starts with.
const DefaultStatus = "I am new!"

// User is a registered account. PasswordHash is the argon2id encoding of
// the account secret; the plaintext never reaches this struct. Posts
// holds the references to the posts this account created, newest last.
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Email        string               `bson:"email"`
	Name         string               `bson:"name"`
	PasswordHash string               `bson:"password"`
	Status       string               `bson:"status"`
	Posts        []primitive.ObjectID `bson:"posts"`
}
