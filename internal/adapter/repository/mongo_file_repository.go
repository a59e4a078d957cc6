package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"filesmanager/internal/domain/entity"
	"filesmanager/pkg/errors"
	"filesmanager/pkg/utils"
)

// fileDoc is the stored shape of an entry. parentId is kept as a hex
// string with "" meaning root so the domain never sees a magic value.
type fileDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type"`
	IsPublic  bool               `bson:"isPublic"`
	ParentID  string             `bson:"parentId"`
	LocalPath string             `bson:"localPath,omitempty"`
}

func (d *fileDoc) toEntity() *entity.File {
	return &entity.File{
		ID:        d.ID.Hex(),
		UserID:    d.UserID.Hex(),
		Name:      d.Name,
		Type:      d.Type,
		IsPublic:  d.IsPublic,
		ParentID:  d.ParentID,
		LocalPath: d.LocalPath,
	}
}

type MongoFileRepository struct {
	files *mongo.Collection
}

func NewMongoFileRepository(db *mongo.Database) *MongoFileRepository {
	return &MongoFileRepository{
		files: db.Collection("files"),
	}
}

// EnsureIndexes backs the listing query. Called once at startup.
func (r *MongoFileRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.files.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "parentId", Value: 1}},
	})
	return err
}

func (r *MongoFileRepository) Create(ctx context.Context, file *entity.File) error {
	userOID, err := primitive.ObjectIDFromHex(file.UserID)
	if err != nil {
		return errors.Internal("Failed to create file", err)
	}

	doc := fileDoc{
		UserID:    userOID,
		Name:      file.Name,
		Type:      file.Type,
		IsPublic:  file.IsPublic,
		ParentID:  file.ParentID,
		LocalPath: file.LocalPath,
	}

	res, err := r.files.InsertOne(ctx, doc)
	if err != nil {
		return errors.Internal("Failed to create file", err)
	}

	file.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *MongoFileRepository) GetByID(ctx context.Context, id string) (*entity.File, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NotFound("Not found", err)
	}

	var doc fileDoc
	err = r.files.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Not found", err)
		}
		return nil, errors.Internal("Failed to get file", err)
	}
	return doc.toEntity(), nil
}

func (r *MongoFileRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.File, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.BadRequest("Invalid ID format", err)
	}
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.NotFound("Not found", err)
	}

	var doc fileDoc
	err = r.files.FindOne(ctx, bson.M{"_id": oid, "userId": userOID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Not found", err)
		}
		return nil, errors.Internal("Failed to get file", err)
	}
	return doc.toEntity(), nil
}

func (r *MongoFileRepository) ListByUserAndParent(ctx context.Context, userID, parentID string, page int) ([]*entity.File, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.NotFound("Not found", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "userId", Value: userOID},
			{Key: "parentId", Value: parentID},
		}}},
		bson.D{{Key: "$skip", Value: int64(page * utils.PageSize)}},
		bson.D{{Key: "$limit", Value: int64(utils.PageSize)}},
	}

	cursor, err := r.files.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Internal("Failed to list files", err)
	}
	defer cursor.Close(ctx)

	var docs []fileDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Internal("Failed to list files", err)
	}

	files := make([]*entity.File, 0, len(docs))
	for i := range docs {
		files = append(files, docs[i].toEntity())
	}
	return files, nil
}

func (r *MongoFileRepository) SetPublic(ctx context.Context, id, userID string, value bool) (*entity.File, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.BadRequest("Invalid ID format", err)
	}
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.NotFound("Not found", err)
	}

	var doc fileDoc
	err = r.files.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "userId": userOID},
		bson.M{"$set": bson.M{"isPublic": value}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Not found", err)
		}
		return nil, errors.Internal("Failed to update file", err)
	}
	return doc.toEntity(), nil
}

func (r *MongoFileRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.files.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Internal("Failed to count files", err)
	}
	return count, nil
}
