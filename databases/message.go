package databases

// go generate: mockery --name MessageDatabase

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petbazaar/petbazaar-api/models"
)

const messageName = "messages"

// MessageDatabase contains the methods to use with the group message database
type MessageDatabase interface {
	FindByGroup(ctx context.Context, groupID primitive.ObjectID) ([]models.Message, error)
	InsertOne(ctx context.Context, msg models.Message) (primitive.ObjectID, error)
	DeleteByGroup(ctx context.Context, groupID primitive.ObjectID) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type messageDatabase struct {
	db DatabaseHelper
}

// NewMessageDatabase initializes a new instance of message database with the provided db connection
func NewMessageDatabase(db DatabaseHelper) MessageDatabase {
	return &messageDatabase{
		db: db,
	}
}

// FindByGroup returns the group's messages oldest first
func (m *messageDatabase) FindByGroup(ctx context.Context, groupID primitive.ObjectID) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := m.db.Collection(messageName).Find(ctx, bson.M{"groupId": groupID}, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "error finding messages for group with ID: %s", groupID.Hex())
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, errors.Wrap(err, "error decoding messages")
	}
	return messages, nil
}

func (m *messageDatabase) InsertOne(ctx context.Context, msg models.Message) (primitive.ObjectID, error) {
	res, err := m.db.Collection(messageName).InsertOne(ctx, msg)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(err, "error inserting message for group with ID: %s", msg.GroupID.Hex())
	}
	id, ok := res.Decode().(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Errorf("unexpected inserted id %v", res.Decode())
	}
	return id, nil
}

func (m *messageDatabase) DeleteByGroup(ctx context.Context, groupID primitive.ObjectID) (int64, error) {
	deleted, err := m.db.Collection(messageName).DeleteMany(ctx, bson.M{"groupId": groupID})
	if err != nil {
		return 0, errors.Wrapf(err, "error deleting messages for group with ID: %s", groupID.Hex())
	}
	return deleted, nil
}

func (m *messageDatabase) EnsureIndexes(ctx context.Context) error {
	return m.db.Collection(messageName).CreateIndexes(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "groupId", Value: 1}, {Key: "createdAt", Value: 1}}},
	})
}
