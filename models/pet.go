package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing types a pet can be offered under
const (
	ListingTypeSale     = "Sale"
	ListingTypeAdoption = "Adoption"
)

// Pet holds the structure for the pets collection in mongo
type Pet struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Breed       string             `json:"breed" bson:"breed"`
	Image       string             `json:"image" bson:"image"`
	Price       float64            `json:"price" bson:"price"`
	ListingType string             `json:"listingType" bson:"listingType"`
	Description string             `json:"description" bson:"description"`
	OwnerID     string             `json:"ownerId" bson:"ownerId"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ValidListingType reports whether t is one of the supported listing types
func ValidListingType(t string) bool {
	return t == ListingTypeSale || t == ListingTypeAdoption
}
