package databases

// go generate: mockery --name ChatDatabase

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petbazaar/petbazaar-api/models"
)

const chatName = "chats"

// ChatDatabase contains the methods to use with the chat database
type ChatDatabase interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Chat, error)
	FindByParticipants(ctx context.Context, buyerID, sellerID, petID string) (*models.Chat, error)
	FindByMember(ctx context.Context, userID string) ([]models.Chat, error)
	InsertOne(ctx context.Context, chat models.Chat) (primitive.ObjectID, error)
	AppendMessage(ctx context.Context, id primitive.ObjectID, msg models.ChatMessage) error
	FindDuplicates(ctx context.Context) ([]models.DuplicateChat, error)
	EnsureIndexes(ctx context.Context) error
}

type chatDatabase struct {
	db DatabaseHelper
}

// NewChatDatabase initializes a new instance of chat database with the provided db connection
func NewChatDatabase(db DatabaseHelper) ChatDatabase {
	return &chatDatabase{
		db: db,
	}
}

func (c *chatDatabase) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Chat, error) {
	chat := &models.Chat{}
	err := c.db.Collection(chatName).FindOne(ctx, bson.M{"_id": id}).Decode(chat)
	if err != nil {
		return nil, errors.Wrapf(classify(err), "error finding chat with ID: %s", id.Hex())
	}
	return chat, nil
}

func (c *chatDatabase) FindByParticipants(ctx context.Context, buyerID, sellerID, petID string) (*models.Chat, error) {
	chat := &models.Chat{}
	filter := bson.M{"buyerId": buyerID, "sellerId": sellerID, "petId": petID}
	err := c.db.Collection(chatName).FindOne(ctx, filter).Decode(chat)
	if err != nil {
		return nil, errors.Wrapf(classify(err), "error finding chat for buyer %s, seller %s, pet %s", buyerID, sellerID, petID)
	}
	return chat, nil
}

// FindByMember returns the chats the user takes part in, newest first
func (c *chatDatabase) FindByMember(ctx context.Context, userID string) ([]models.Chat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := c.db.Collection(chatName).Find(ctx, bson.M{"memberIds": userID}, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "error finding chats for member: %s", userID)
	}
	defer cursor.Close(ctx)

	chats := []models.Chat{}
	if err = cursor.All(ctx, &chats); err != nil {
		return nil, errors.Wrap(err, "error decoding chats")
	}
	return chats, nil
}

func (c *chatDatabase) InsertOne(ctx context.Context, chat models.Chat) (primitive.ObjectID, error) {
	res, err := c.db.Collection(chatName).InsertOne(ctx, chat)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "error inserting chat")
	}
	id, ok := res.Decode().(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Errorf("unexpected inserted id %v", res.Decode())
	}
	return id, nil
}

func (c *chatDatabase) AppendMessage(ctx context.Context, id primitive.ObjectID, msg models.ChatMessage) error {
	update := bson.M{"$push": bson.M{"messages": msg}}
	res, err := c.db.Collection(chatName).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return errors.Wrapf(err, "error appending message to chat with ID: %s", id.Hex())
	}
	if res.MatchedCount == 0 {
		return errors.Wrapf(ErrNotFound, "no chat with ID: %s", id.Hex())
	}
	return nil
}

// FindDuplicates groups chats by buyer, seller and pet and returns every
// triple owning more than one chat
func (c *chatDatabase) FindDuplicates(ctx context.Context) ([]models.DuplicateChat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":     bson.M{"buyerId": "$buyerId", "sellerId": "$sellerId", "petId": "$petId"},
			"chatIds": bson.M{"$push": "$_id"},
			"count":   bson.M{"$sum": 1},
		}}},
		{{Key: "$match", Value: bson.M{"count": bson.M{"$gt": 1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":      0,
			"buyerId":  "$_id.buyerId",
			"sellerId": "$_id.sellerId",
			"petId":    "$_id.petId",
			"chatIds":  1,
			"count":    1,
		}}},
	}
	cursor, err := c.db.Collection(chatName).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "error aggregating duplicate chats")
	}
	defer cursor.Close(ctx)

	dups := []models.DuplicateChat{}
	if err = cursor.All(ctx, &dups); err != nil {
		return nil, errors.Wrap(err, "error decoding duplicate chats")
	}
	return dups, nil
}

// EnsureIndexes creates the lookup indexes. The buyer, seller and pet index is
// deliberately not unique.
func (c *chatDatabase) EnsureIndexes(ctx context.Context) error {
	return c.db.Collection(chatName).CreateIndexes(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "buyerId", Value: 1}, {Key: "sellerId", Value: 1}, {Key: "petId", Value: 1}}},
		{Keys: bson.D{{Key: "memberIds", Value: 1}}},
	})
}
