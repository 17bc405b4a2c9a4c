package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fathima-sithara/files-manager/internal/models"
)

var ErrFileNotFound = errors.New("file not found")

type FileRepository interface {
	Create(ctx context.Context, f *models.File) error
	FindByID(ctx context.Context, id string) (*models.File, error)
	FindByIDAndUser(ctx context.Context, id, userID string) (*models.File, error)
	// FindChildren returns the files under parentID in insertion order,
	// skipping skip records and returning at most limit.
	FindChildren(ctx context.Context, parentID string, skip, limit int64) ([]*models.File, error)
	SetPublic(ctx context.Context, id string, public bool) error
	Count(ctx context.Context) (int64, error)
}

type mongoFileRepo struct {
	col *mongo.Collection
}

func NewMongoFileRepo(db *mongo.Database, collection string) FileRepository {
	return &mongoFileRepo{col: db.Collection(collection)}
}

func (r *mongoFileRepo) Create(ctx context.Context, f *models.File) error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, f)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		f.ID = id
	}
	return nil
}

func (r *mongoFileRepo) FindByID(ctx context.Context, id string) (*models.File, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrFileNotFound
	}
	return r.findOne(ctx, bson.M{"_id": objID})
}

func (r *mongoFileRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*models.File, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrFileNotFound
	}
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrFileNotFound
	}
	return r.findOne(ctx, bson.M{"_id": objID, "user_id": ownerID})
}

func (r *mongoFileRepo) findOne(ctx context.Context, filter bson.M) (*models.File, error) {
	var f models.File
	err := r.col.FindOne(ctx, filter).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *mongoFileRepo) FindChildren(ctx context.Context, parentID string, skip, limit int64) ([]*models.File, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"parent_id": parentID}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	files := []*models.File{}
	if err := cur.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (r *mongoFileRepo) SetPublic(ctx context.Context, id string, public bool) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrFileNotFound
	}
	res, err := r.col.UpdateByID(ctx, objID, bson.M{"$set": bson.M{"is_public": public}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrFileNotFound
	}
	return nil
}

func (r *mongoFileRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
