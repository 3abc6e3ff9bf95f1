package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petbazaar/petbazaar-api/databases"
	"github.com/petbazaar/petbazaar-api/databases/mocks"
	"github.com/petbazaar/petbazaar-api/models"
)

func newChatDB(t *testing.T) (databases.ChatDatabase, *mocks.CollectionHelper) {
	t.Helper()
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	db.On("Collection", "chats").Return(conn)
	return databases.NewChatDatabase(db), conn
}

func TestChatDatabase_FindByParticipants(t *testing.T) {
	cdb, conn := newChatDB(t)
	id := primitive.NewObjectID()

	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Chat).ID = id
	})
	conn.On("FindOne", mock.Anything, bson.M{"buyerId": "b", "sellerId": "s", "petId": "p"}).Return(sr)

	chat, err := cdb.FindByParticipants(context.Background(), "b", "s", "p")
	require.NoError(t, err)
	assert.Equal(t, id, chat.ID)
}

func TestChatDatabase_FindByParticipantsMissing(t *testing.T) {
	cdb, conn := newChatDB(t)

	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(sr)

	_, err := cdb.FindByParticipants(context.Background(), "b", "s", "p")
	assert.True(t, errors.Is(err, databases.ErrNotFound))
}

func TestChatDatabase_AppendMessage(t *testing.T) {
	cdb, conn := newChatDB(t)

	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil).Once()
	err := cdb.AppendMessage(context.Background(), primitive.NewObjectID(), models.ChatMessage{Text: "hi"})
	assert.True(t, errors.Is(err, databases.ErrNotFound))

	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("mocked-error")).Once()
	err = cdb.AppendMessage(context.Background(), primitive.NewObjectID(), models.ChatMessage{Text: "hi"})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, databases.ErrNotFound))
}

func TestChatDatabase_FindDuplicates(t *testing.T) {
	cdb, conn := newChatDB(t)

	cursor := &mocks.CursorHelper{}
	cursor.On("All", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(1).(*[]models.DuplicateChat)
		*arg = append(*arg, models.DuplicateChat{BuyerID: "b", SellerID: "s", PetID: "p", Count: 2})
	})
	cursor.On("Close", mock.Anything).Return(nil)
	conn.On("Aggregate", mock.Anything, mock.Anything).Return(cursor, nil)

	dups, err := cdb.FindDuplicates(context.Background())
	require.NoError(t, err)
	require.Len(t, dups, 1)
	assert.Equal(t, 2, dups[0].Count)
}

func TestChatDatabase_FindByMemberError(t *testing.T) {
	cdb, conn := newChatDB(t)
	conn.On("Find", mock.Anything, bson.M{"memberIds": "u1"}).Return(nil, errors.New("mocked-error"))

	chats, err := cdb.FindByMember(context.Background(), "u1")
	assert.Nil(t, chats)
	assert.Error(t, err)
}
