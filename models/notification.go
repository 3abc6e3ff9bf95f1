package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is embedded in a user document and is only ever appended
type Notification struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Message   string             `json:"message" bson:"message"`
	FromID    string             `json:"fromid" bson:"fromid"`
	PetID     string             `json:"petId" bson:"petId"`
	IsRead    bool               `json:"isRead" bson:"isRead"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// NewNotification builds an unread notification stamped with now
func NewNotification(message, fromID, petID string, now time.Time) Notification {
	return Notification{
		ID:        primitive.NewObjectID(),
		Message:   message,
		FromID:    fromID,
		PetID:     petID,
		IsRead:    false,
		CreatedAt: now,
	}
}
