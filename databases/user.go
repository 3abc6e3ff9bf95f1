package databases

// go generate: mockery --name UserDatabase

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petbazaar/petbazaar-api/models"
)

const userName = "users"

// UserDatabase contains the methods to use with the user database
type UserDatabase interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	InsertOne(ctx context.Context, user models.User) (primitive.ObjectID, error)
	UpdateDetails(ctx context.Context, id primitive.ObjectID, name, email string) (*models.User, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	AppendNotification(ctx context.Context, id primitive.ObjectID, n models.Notification) error
	Notifications(ctx context.Context, id primitive.ObjectID) ([]models.Notification, error)
	EnsureIndexes(ctx context.Context) error
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (u *userDatabase) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user := &models.User{}
	opts := options.FindOne().SetProjection(bson.M{"notifications": 0})
	err := u.db.Collection(userName).FindOne(ctx, bson.M{"_id": id}, opts).Decode(user)
	if err != nil {
		return nil, errors.Wrapf(classify(err), "error finding user with ID: %s", id.Hex())
	}
	return user, nil
}

func (u *userDatabase) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	opts := options.FindOne().SetProjection(bson.M{"notifications": 0})
	err := u.db.Collection(userName).FindOne(ctx, bson.M{"email": email}, opts).Decode(user)
	if err != nil {
		return nil, errors.Wrapf(classify(err), "error finding user with email: %s", email)
	}
	return user, nil
}

func (u *userDatabase) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "name": 1, "email": 1})
	cursor, err := u.db.Collection(userName).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "error listing users")
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "error decoding users")
	}
	return users, nil
}

func (u *userDatabase) InsertOne(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	res, err := u.db.Collection(userName).InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(classify(err), "error inserting user with email: %s", user.Email)
	}
	id, ok := res.Decode().(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Errorf("unexpected inserted id %v", res.Decode())
	}
	return id, nil
}

func (u *userDatabase) UpdateDetails(ctx context.Context, id primitive.ObjectID, name, email string) (*models.User, error) {
	user := &models.User{}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"_id": 1, "name": 1, "email": 1})
	update := bson.M{"$set": bson.M{"name": name, "email": email}}
	err := u.db.Collection(userName).FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(user)
	if err != nil {
		return nil, errors.Wrapf(classify(err), "error updating user with ID: %s", id.Hex())
	}
	return user, nil
}

func (u *userDatabase) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := u.db.Collection(userName).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "error deleting user with ID: %s", id.Hex())
	}
	if deleted == 0 {
		return errors.Wrapf(ErrNotFound, "no user with ID: %s", id.Hex())
	}
	return nil
}

// AppendNotification pushes n onto the user's notifications in a single update
func (u *userDatabase) AppendNotification(ctx context.Context, id primitive.ObjectID, n models.Notification) error {
	update := bson.M{"$push": bson.M{"notifications": n}}
	res, err := u.db.Collection(userName).UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(false))
	if err != nil {
		return errors.Wrapf(err, "error appending notification to user with ID: %s", id.Hex())
	}
	if res.MatchedCount == 0 {
		return errors.Wrapf(ErrNotFound, "no user with ID: %s", id.Hex())
	}
	return nil
}

// Notifications returns the user's notifications in insertion order
func (u *userDatabase) Notifications(ctx context.Context, id primitive.ObjectID) ([]models.Notification, error) {
	user := &models.User{}
	opts := options.FindOne().SetProjection(bson.M{"notifications": 1})
	err := u.db.Collection(userName).FindOne(ctx, bson.M{"_id": id}, opts).Decode(user)
	if err != nil {
		return nil, errors.Wrapf(classify(err), "error finding notifications for user with ID: %s", id.Hex())
	}
	if user.Notifications == nil {
		return []models.Notification{}, nil
	}
	return user.Notifications, nil
}

func (u *userDatabase) EnsureIndexes(ctx context.Context) error {
	return u.db.Collection(userName).CreateIndexes(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
}
