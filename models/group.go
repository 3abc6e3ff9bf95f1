package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group holds the structure for the groups collection in mongo
type Group struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// Message holds the structure for the messages collection in mongo
type Message struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	GroupID   primitive.ObjectID `json:"groupId" bson:"groupId"`
	Sender    string             `json:"sender" bson:"sender"`
	Text      string             `json:"text" bson:"text"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// GroupWithMessages is a group and its messages in creation order
type GroupWithMessages struct {
	Group    Group     `json:"group"`
	Messages []Message `json:"messages"`
}
