package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chat holds the structure for the chats collection in mongo. One chat is
// intended per buyer, seller and pet.
type Chat struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BuyerID   string             `json:"buyerId" bson:"buyerId"`
	SellerID  string             `json:"sellerId" bson:"sellerId"`
	PetID     string             `json:"petId" bson:"petId"`
	MemberIDs []string           `json:"memberIds" bson:"memberIds"`
	Messages  []ChatMessage      `json:"messages" bson:"messages"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// ChatMessage is embedded in a chat document
type ChatMessage struct {
	Sender    string    `json:"sender" bson:"sender"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// DuplicateChat reports a buyer, seller and pet triple that owns more than one chat
type DuplicateChat struct {
	BuyerID  string               `bson:"buyerId"`
	SellerID string               `bson:"sellerId"`
	PetID    string               `bson:"petId"`
	ChatIDs  []primitive.ObjectID `bson:"chatIds"`
	Count    int                  `bson:"count"`
}
