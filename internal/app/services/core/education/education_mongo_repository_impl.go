package education

import (
	"context"
	"time"

	"dentassist-service/internal/app/contracts"
	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EducationMongoRepository struct {
	Collection *mongo.Collection
}

func NewEducationMongoRepository(client *mongo.Client, dbName string) contracts.EducationRepository {
	return &EducationMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionEducationalContent),
	}
}

func (r *EducationMongoRepository) CreateContent(ctx context.Context, content *models.EducationalContent) (string, error) {
	if content.ID == "" {
		content.ID = primitive.NewObjectID().Hex()
	}
	content.SetCreatedAtUpdatedAt()

	_, err := r.Collection.InsertOne(ctx, content)
	if err != nil {
		return "", exceptions.ErrDBFailedToInsertDocument(err)
	}
	return content.ID, nil
}

func (r *EducationMongoRepository) FindContentByID(ctx context.Context, contentID string) (*models.EducationalContent, error) {
	var content models.EducationalContent
	err := r.Collection.FindOne(ctx, bson.M{"_id": contentID}).Decode(&content)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	return &content, nil
}

func (r *EducationMongoRepository) ListContent(ctx context.Context, filter contracts.EducationFilter, pagination *requests.Pagination) ([]models.EducationalContent, int, error) {
	query := bson.M{}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = []bson.M{
			{"title": pattern},
			{"summary": pattern},
			{"tags": pattern},
		}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Level != "" {
		query["level"] = filter.Level
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrDBFailedToFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((pagination.Page - 1) * pagination.PageSize)).
		SetLimit(int64(pagination.PageSize))

	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrDBFailedToFindDocument(err)
	}
	defer cursor.Close(ctx)

	var contents []models.EducationalContent
	if err := cursor.All(ctx, &contents); err != nil {
		return nil, 0, exceptions.ErrDBFailedToIterateDocuments(err)
	}
	return contents, int(total), nil
}

func (r *EducationMongoRepository) UpdateContent(ctx context.Context, content *models.EducationalContent) error {
	update := bson.M{"$set": bson.M{
		"title":       content.Title,
		"summary":     content.Summary,
		"body":        content.Body,
		"category":    content.Category,
		"level":       content.Level,
		"status":      content.Status,
		"tags":        content.Tags,
		"materialKey": content.MaterialKey,
		"updatedAt":   time.Now(),
	}}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": content.ID}, update)
	if err != nil {
		return exceptions.ErrDBFailedToUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrContentNotFound(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *EducationMongoRepository) DeleteContent(ctx context.Context, contentID string) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": contentID})
	if err != nil {
		return exceptions.ErrDBFailedToDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrContentNotFound(mongo.ErrNoDocuments)
	}
	return nil
}
