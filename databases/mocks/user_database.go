package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petbazaar/petbazaar-api/models"
)

// UserDatabase is a mock type for the UserDatabase type
type UserDatabase struct {
	mock.Mock
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *UserDatabase) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}
	return r0, ret.Error(1)
}

// FindByEmail provides a mock function with given fields: ctx, email
func (_m *UserDatabase) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ret := _m.Called(ctx, email)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}
	return r0, ret.Error(1)
}

// List provides a mock function with given fields: ctx
func (_m *UserDatabase) List(ctx context.Context) ([]models.User, error) {
	ret := _m.Called(ctx)

	var r0 []models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.User)
	}
	return r0, ret.Error(1)
}

// InsertOne provides a mock function with given fields: ctx, user
func (_m *UserDatabase) InsertOne(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	ret := _m.Called(ctx, user)
	return ret.Get(0).(primitive.ObjectID), ret.Error(1)
}

// UpdateDetails provides a mock function with given fields: ctx, id, name, email
func (_m *UserDatabase) UpdateDetails(ctx context.Context, id primitive.ObjectID, name, email string) (*models.User, error) {
	ret := _m.Called(ctx, id, name, email)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}
	return r0, ret.Error(1)
}

// DeleteByID provides a mock function with given fields: ctx, id
func (_m *UserDatabase) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// AppendNotification provides a mock function with given fields: ctx, id, n
func (_m *UserDatabase) AppendNotification(ctx context.Context, id primitive.ObjectID, n models.Notification) error {
	ret := _m.Called(ctx, id, n)
	return ret.Error(0)
}

// Notifications provides a mock function with given fields: ctx, id
func (_m *UserDatabase) Notifications(ctx context.Context, id primitive.ObjectID) ([]models.Notification, error) {
	ret := _m.Called(ctx, id)

	var r0 []models.Notification
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Notification)
	}
	return r0, ret.Error(1)
}

// EnsureIndexes provides a mock function with given fields: ctx
func (_m *UserDatabase) EnsureIndexes(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}
