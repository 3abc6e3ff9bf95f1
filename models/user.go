package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User holds the structure for the users collection in mongo
type User struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	Password      string             `json:"-" bson:"password"`
	IsAdmin       bool               `json:"is_admin" bson:"is_admin"`
	Notifications []Notification     `json:"notifications,omitempty" bson:"notifications,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// UserSummary is the admin console projection of a user
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionUser is the user shape returned by login
type SessionUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// UserWithPets is a user's public details plus the listings they own
type UserWithPets struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Pets  []Pet  `json:"pets"`
}

// Summary returns the admin console projection of u
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID.Hex(), Name: u.Name, Email: u.Email}
}
