package databases

// go generate: mockery --name PetDatabase

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petbazaar/petbazaar-api/models"
)

const petName = "pets"

// PetDatabase contains the methods to use with the pet database
type PetDatabase interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Pet, error)
	Find(ctx context.Context, ownerID string, limit, page int) ([]models.Pet, error)
	InsertOne(ctx context.Context, pet models.Pet) (primitive.ObjectID, error)
	Replace(ctx context.Context, id primitive.ObjectID, pet models.Pet) (*models.Pet, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type petDatabase struct {
	db DatabaseHelper
}

// NewPetDatabase initializes a new instance of pet database with the provided db connection
func NewPetDatabase(db DatabaseHelper) PetDatabase {
	return &petDatabase{
		db: db,
	}
}

func (p *petDatabase) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Pet, error) {
	pet := &models.Pet{}
	err := p.db.Collection(petName).FindOne(ctx, bson.M{"_id": id}).Decode(pet)
	if err != nil {
		return nil, errors.Wrapf(classify(err), "error finding pet with ID: %s", id.Hex())
	}
	return pet, nil
}

// Find lists pets, optionally only those owned by ownerID. A zero limit
// returns every match.
func (p *petDatabase) Find(ctx context.Context, ownerID string, limit, page int) ([]models.Pet, error) {
	filter := bson.M{}
	if ownerID != "" {
		filter["ownerId"] = ownerID
	}
	cursor, err := p.db.Collection(petName).Find(ctx, filter, newMongoPaginate(limit, page).getPaginatedOpts())
	if err != nil {
		return nil, errors.Wrapf(err, "error finding pets for owner: %q", ownerID)
	}
	defer cursor.Close(ctx)

	pets := []models.Pet{}
	if err = cursor.All(ctx, &pets); err != nil {
		return nil, errors.Wrap(err, "error decoding pets")
	}
	return pets, nil
}

func (p *petDatabase) InsertOne(ctx context.Context, pet models.Pet) (primitive.ObjectID, error) {
	res, err := p.db.Collection(petName).InsertOne(ctx, pet)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(err, "error inserting pet: %s", pet.Name)
	}
	id, ok := res.Decode().(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Errorf("unexpected inserted id %v", res.Decode())
	}
	return id, nil
}

// Replace overwrites the editable fields of a pet and returns the new document
func (p *petDatabase) Replace(ctx context.Context, id primitive.ObjectID, pet models.Pet) (*models.Pet, error) {
	updated := &models.Pet{}
	update := bson.M{"$set": bson.M{
		"name":        pet.Name,
		"breed":       pet.Breed,
		"image":       pet.Image,
		"price":       pet.Price,
		"listingType": pet.ListingType,
		"description": pet.Description,
		"updatedAt":   pet.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := p.db.Collection(petName).FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(updated)
	if err != nil {
		return nil, errors.Wrapf(classify(err), "error updating pet with ID: %s", id.Hex())
	}
	return updated, nil
}

func (p *petDatabase) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := p.db.Collection(petName).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "error deleting pet with ID: %s", id.Hex())
	}
	if deleted == 0 {
		return errors.Wrapf(ErrNotFound, "no pet with ID: %s", id.Hex())
	}
	return nil
}

func (p *petDatabase) EnsureIndexes(ctx context.Context) error {
	return p.db.Collection(petName).CreateIndexes(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
}
