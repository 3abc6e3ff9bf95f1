package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petbazaar/petbazaar-api/models"
)

// ChatDatabase is a mock type for the ChatDatabase type
type ChatDatabase struct {
	mock.Mock
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *ChatDatabase) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Chat, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Chat
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Chat)
	}
	return r0, ret.Error(1)
}

// FindByParticipants provides a mock function with given fields: ctx, buyerID, sellerID, petID
func (_m *ChatDatabase) FindByParticipants(ctx context.Context, buyerID, sellerID, petID string) (*models.Chat, error) {
	ret := _m.Called(ctx, buyerID, sellerID, petID)

	var r0 *models.Chat
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Chat)
	}
	return r0, ret.Error(1)
}

// FindByMember provides a mock function with given fields: ctx, userID
func (_m *ChatDatabase) FindByMember(ctx context.Context, userID string) ([]models.Chat, error) {
	ret := _m.Called(ctx, userID)

	var r0 []models.Chat
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Chat)
	}
	return r0, ret.Error(1)
}

// InsertOne provides a mock function with given fields: ctx, chat
func (_m *ChatDatabase) InsertOne(ctx context.Context, chat models.Chat) (primitive.ObjectID, error) {
	ret := _m.Called(ctx, chat)
	return ret.Get(0).(primitive.ObjectID), ret.Error(1)
}

// AppendMessage provides a mock function with given fields: ctx, id, msg
func (_m *ChatDatabase) AppendMessage(ctx context.Context, id primitive.ObjectID, msg models.ChatMessage) error {
	ret := _m.Called(ctx, id, msg)
	return ret.Error(0)
}

// FindDuplicates provides a mock function with given fields: ctx
func (_m *ChatDatabase) FindDuplicates(ctx context.Context) ([]models.DuplicateChat, error) {
	ret := _m.Called(ctx)

	var r0 []models.DuplicateChat
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.DuplicateChat)
	}
	return r0, ret.Error(1)
}

// EnsureIndexes provides a mock function with given fields: ctx
func (_m *ChatDatabase) EnsureIndexes(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}
