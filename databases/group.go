package databases

// go generate: mockery --name GroupDatabase

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petbazaar/petbazaar-api/models"
)

const groupName = "groups"

// GroupDatabase contains the methods to use with the group database
type GroupDatabase interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
	InsertOne(ctx context.Context, group models.Group) (primitive.ObjectID, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type groupDatabase struct {
	db DatabaseHelper
}

// NewGroupDatabase initializes a new instance of group database with the provided db connection
func NewGroupDatabase(db DatabaseHelper) GroupDatabase {
	return &groupDatabase{
		db: db,
	}
}

func (g *groupDatabase) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Group, error) {
	group := &models.Group{}
	err := g.db.Collection(groupName).FindOne(ctx, bson.M{"_id": id}).Decode(group)
	if err != nil {
		return nil, errors.Wrapf(classify(err), "error finding group with ID: %s", id.Hex())
	}
	return group, nil
}

func (g *groupDatabase) List(ctx context.Context) ([]models.Group, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := g.db.Collection(groupName).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "error listing groups")
	}
	defer cursor.Close(ctx)

	groups := []models.Group{}
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, errors.Wrap(err, "error decoding groups")
	}
	return groups, nil
}

func (g *groupDatabase) InsertOne(ctx context.Context, group models.Group) (primitive.ObjectID, error) {
	res, err := g.db.Collection(groupName).InsertOne(ctx, group)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(err, "error inserting group: %s", group.Name)
	}
	id, ok := res.Decode().(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Errorf("unexpected inserted id %v", res.Decode())
	}
	return id, nil
}

func (g *groupDatabase) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := g.db.Collection(groupName).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "error deleting group with ID: %s", id.Hex())
	}
	if deleted == 0 {
		return errors.Wrapf(ErrNotFound, "no group with ID: %s", id.Hex())
	}
	return nil
}
