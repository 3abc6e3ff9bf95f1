package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petbazaar/petbazaar-api/models"
)

// PetDatabase is a mock type for the PetDatabase type
type PetDatabase struct {
	mock.Mock
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *PetDatabase) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Pet, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Pet
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Pet)
	}
	return r0, ret.Error(1)
}

// Find provides a mock function with given fields: ctx, ownerID, limit, page
func (_m *PetDatabase) Find(ctx context.Context, ownerID string, limit, page int) ([]models.Pet, error) {
	ret := _m.Called(ctx, ownerID, limit, page)

	var r0 []models.Pet
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Pet)
	}
	return r0, ret.Error(1)
}

// InsertOne provides a mock function with given fields: ctx, pet
func (_m *PetDatabase) InsertOne(ctx context.Context, pet models.Pet) (primitive.ObjectID, error) {
	ret := _m.Called(ctx, pet)
	return ret.Get(0).(primitive.ObjectID), ret.Error(1)
}

// Replace provides a mock function with given fields: ctx, id, pet
func (_m *PetDatabase) Replace(ctx context.Context, id primitive.ObjectID, pet models.Pet) (*models.Pet, error) {
	ret := _m.Called(ctx, id, pet)

	var r0 *models.Pet
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Pet)
	}
	return r0, ret.Error(1)
}

// DeleteByID provides a mock function with given fields: ctx, id
func (_m *PetDatabase) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// EnsureIndexes provides a mock function with given fields: ctx
func (_m *PetDatabase) EnsureIndexes(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}
