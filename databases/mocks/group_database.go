package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petbazaar/petbazaar-api/models"
)

// GroupDatabase is a mock type for the GroupDatabase type
type GroupDatabase struct {
	mock.Mock
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *GroupDatabase) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Group, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Group
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Group)
	}
	return r0, ret.Error(1)
}

// List provides a mock function with given fields: ctx
func (_m *GroupDatabase) List(ctx context.Context) ([]models.Group, error) {
	ret := _m.Called(ctx)

	var r0 []models.Group
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Group)
	}
	return r0, ret.Error(1)
}

// InsertOne provides a mock function with given fields: ctx, group
func (_m *GroupDatabase) InsertOne(ctx context.Context, group models.Group) (primitive.ObjectID, error) {
	ret := _m.Called(ctx, group)
	return ret.Get(0).(primitive.ObjectID), ret.Error(1)
}

// DeleteByID provides a mock function with given fields: ctx, id
func (_m *GroupDatabase) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// MessageDatabase is a mock type for the MessageDatabase type
type MessageDatabase struct {
	mock.Mock
}

// FindByGroup provides a mock function with given fields: ctx, groupID
func (_m *MessageDatabase) FindByGroup(ctx context.Context, groupID primitive.ObjectID) ([]models.Message, error) {
	ret := _m.Called(ctx, groupID)

	var r0 []models.Message
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Message)
	}
	return r0, ret.Error(1)
}

// InsertOne provides a mock function with given fields: ctx, msg
func (_m *MessageDatabase) InsertOne(ctx context.Context, msg models.Message) (primitive.ObjectID, error) {
	ret := _m.Called(ctx, msg)
	return ret.Get(0).(primitive.ObjectID), ret.Error(1)
}

// DeleteByGroup provides a mock function with given fields: ctx, groupID
func (_m *MessageDatabase) DeleteByGroup(ctx context.Context, groupID primitive.ObjectID) (int64, error) {
	ret := _m.Called(ctx, groupID)
	return ret.Get(0).(int64), ret.Error(1)
}

// EnsureIndexes provides a mock function with given fields: ctx
func (_m *MessageDatabase) EnsureIndexes(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}
