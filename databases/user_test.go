package databases_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

func newUserDB(t *testing.T) (databases.UserDatabase, *mocks.CollectionHelper) {
	t.Helper()
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	db.On("Collection", "users").Return(conn)
	return databases.NewUserDatabase(db), conn
}

func TestUserDatabase_FindByID(t *testing.T) {
	udb, conn := newUserDB(t)
	id := primitive.NewObjectID()

	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.User)
		arg.ID = id
		arg.Name = "Ada"
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(sr)

	user, err := udb.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, id, user.ID)
}

func TestUserDatabase_FindByEmailNotFound(t *testing.T) {
	udb, conn := newUserDB(t)

	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(sr)

	user, err := udb.FindByEmail(context.Background(), "nobody@example.com")
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, databases.ErrNotFound))
}

func TestUserDatabase_InsertOneDuplicate(t *testing.T) {
	udb, conn := newUserDB(t)

	dupErr := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	conn.On("InsertOne", mock.Anything, mock.Anything).Return(nil, dupErr)

	_, err := udb.InsertOne(context.Background(), models.User{Email: "a@b.com"})
	assert.True(t, errors.Is(err, databases.ErrDuplicate))
}

func TestUserDatabase_InsertOne(t *testing.T) {
	udb, conn := newUserDB(t)
	id := primitive.NewObjectID()

	res := &mocks.InsertOneResultHelper{}
	res.On("Decode").Return(id)
	conn.On("InsertOne", mock.Anything, mock.Anything).Return(res, nil)

	got, err := udb.InsertOne(context.Background(), models.User{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestUserDatabase_AppendNotification(t *testing.T) {
	udb, conn := newUserDB(t)
	id := primitive.NewObjectID()

	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once()

	err := udb.AppendNotification(context.Background(), id, models.Notification{Message: "hi"})
	assert.NoError(t, err)

	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil).Once()

	err = udb.AppendNotification(context.Background(), id, models.Notification{Message: "hi"})
	assert.True(t, errors.Is(err, databases.ErrNotFound))
}

func TestUserDatabase_AppendNotificationUsesPush(t *testing.T) {
	udb, conn := newUserDB(t)
	id := primitive.NewObjectID()
	n := models.NewNotification("hello", "buyer", "pet", time.Now())

	conn.On("UpdateOne", mock.Anything, bson.M{"_id": id}, bson.M{"$push": bson.M{"notifications": n}}).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil)

	assert.NoError(t, udb.AppendNotification(context.Background(), id, n))
	conn.AssertExpectations(t)
}

func TestUserDatabase_NotificationsEmpty(t *testing.T) {
	udb, conn := newUserDB(t)

	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(nil)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(sr)

	got, err := udb.Notifications(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestUserDatabase_NotificationsUnknownUser(t *testing.T) {
	udb, conn := newUserDB(t)

	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(sr)

	_, err := udb.Notifications(context.Background(), primitive.NewObjectID())
	assert.True(t, errors.Is(err, databases.ErrNotFound))
}

func TestUserDatabase_DeleteByID(t *testing.T) {
	udb, conn := newUserDB(t)

	conn.On("DeleteOne", mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	err := udb.DeleteByID(context.Background(), primitive.NewObjectID())
	assert.True(t, errors.Is(err, databases.ErrNotFound))

	conn.On("DeleteOne", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	assert.NoError(t, udb.DeleteByID(context.Background(), primitive.NewObjectID()))
}

func TestUserDatabase_List(t *testing.T) {
	udb, conn := newUserDB(t)

	cursor := &mocks.CursorHelper{}
	cursor.On("All", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(1).(*[]models.User)
		*arg = append(*arg, models.User{Name: "Ada"}, models.User{Name: "Grace"})
	})
	cursor.On("Close", mock.Anything).Return(nil)
	conn.On("Find", mock.Anything, mock.Anything).Return(cursor, nil)

	users, err := udb.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	cursor.AssertCalled(t, "Close", mock.Anything)
}

func TestUserDatabase_NotificationsKeepInsertionOrder(t *testing.T) {
	udb, conn := newUserDB(t)
	id := primitive.NewObjectID()

	raw, err := bson.Marshal(bson.M{
		"_id": id,
		"notifications": bson.A{
			bson.M{"_id": primitive.NewObjectID(), "message": "first", "fromid": "u1", "isRead": false},
			bson.M{"_id": primitive.NewObjectID(), "message": "second", "fromid": "u2", "isRead": false},
			bson.M{"_id": primitive.NewObjectID(), "message": "third", "fromid": "u3", "isRead": false},
		},
	})
	require.NoError(t, err)

	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		require.NoError(t, bson.Unmarshal(raw, args.Get(0)))
	})
	conn.On("FindOne", mock.Anything, bson.M{"_id": id}).Return(sr)

	got, err := udb.Notifications(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, msg := range []string{"first", "second", "third"} {
		assert.Equal(t, msg, got[i].Message)
		assert.False(t, got[i].IsRead)
	}
}
