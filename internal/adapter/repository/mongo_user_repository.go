package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"filesmanager/internal/domain/entity"
	"filesmanager/pkg/errors"
)

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

func (d *userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.Password,
	}
}

type MongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		users: db.Collection("users"),
	}
}

// EnsureIndexes creates the unique email index. Called once at startup.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoUserRepository) Create(ctx context.Context, user *entity.User) error {
	doc := userDoc{
		Email:    user.Email,
		Password: user.PasswordHash,
	}

	res, err := r.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("Already exist")
		}
		return errors.Internal("Failed to create user", err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDoc
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Not found", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}
	return doc.toEntity(), nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NotFound("Not found", err)
	}

	var doc userDoc
	err = r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Not found", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}
	return doc.toEntity(), nil
}

func (r *MongoUserRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Internal("Failed to count users", err)
	}
	return count, nil
}
