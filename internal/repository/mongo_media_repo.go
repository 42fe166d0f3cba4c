package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cloud-media-platform/internal/models"
)

type mongoMediaRepo struct {
	col *mongo.Collection
}

func NewMongoMediaRepo(col *mongo.Collection) MediaRepository {
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "uploadedAt", Value: -1}},
	})
	return &mongoMediaRepo{col: col}
}

func (r *mongoMediaRepo) Insert(ctx context.Context, m *models.Media) error {
	_, err := r.col.InsertOne(ctx, m)
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyExists
	}
	return err
}

func (r *mongoMediaRepo) FindByID(ctx context.Context, id, ownerID string) (*models.Media, error) {
	var m models.Media
	err := r.col.FindOne(ctx, bson.M{"_id": id, "userId": ownerID}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mongoMediaRepo) List(ctx context.Context, ownerID string, page, pageSize int, mediaType models.MediaType) ([]models.Media, int64, error) {
	return r.paged(ctx, listFilter(ownerID, mediaType), page, pageSize)
}

func (r *mongoMediaRepo) Search(ctx context.Context, ownerID, query string, page, pageSize int) ([]models.Media, int64, error) {
	return r.paged(ctx, searchFilter(ownerID, query), page, pageSize)
}

func (r *mongoMediaRepo) paged(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Media, int64, error) {
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "uploadedAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	items := make([]models.Media, 0, pageSize)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *mongoMediaRepo) Update(ctx context.Context, id, ownerID string, patch MediaPatch) (*models.Media, error) {
	set := bson.M{"updatedAt": patch.UpdatedAt}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m models.Media
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": ownerID},
		bson.M{"$set": set},
		opts,
	).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mongoMediaRepo) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "userId": ownerID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func listFilter(ownerID string, mediaType models.MediaType) bson.M {
	filter := bson.M{"userId": ownerID}
	if mediaType != "" {
		filter["mediaType"] = mediaType
	}
	return filter
}

func searchFilter(ownerID, query string) bson.M {
	quoted := regexp.QuoteMeta(query)
	contains := primitive.Regex{Pattern: quoted, Options: "i"}
	// exact tag membership, case-insensitive
	exact := primitive.Regex{Pattern: "^" + quoted + "$", Options: "i"}
	return bson.M{
		"userId": ownerID,
		"$or": []bson.M{
			{"originalFileName": contains},
			{"description": contains},
			{"tags": exact},
		},
	}
}
