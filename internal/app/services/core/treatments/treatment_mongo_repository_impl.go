package treatments

import (
	"context"

	"dentassist-service/internal/app/contracts"
	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TreatmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewTreatmentMongoRepository(client *mongo.Client, dbName string) contracts.TreatmentRepository {
	return &TreatmentMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionTreatments),
	}
}

func (r *TreatmentMongoRepository) FindAllTreatments(ctx context.Context) ([]models.Treatment, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	defer cursor.Close(ctx)

	var treatments []models.Treatment
	if err := cursor.All(ctx, &treatments); err != nil {
		return nil, exceptions.ErrDBFailedToIterateDocuments(err)
	}
	return treatments, nil
}

func (r *TreatmentMongoRepository) FindTreatmentByCode(ctx context.Context, code string) (*models.Treatment, error) {
	var treatment models.Treatment
	err := r.Collection.FindOne(ctx, bson.M{"code": code}).Decode(&treatment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	return &treatment, nil
}

func (r *TreatmentMongoRepository) UpsertTreatment(ctx context.Context, treatment *models.Treatment) error {
	treatment.SetCreatedAtUpdatedAt()
	update := bson.M{"$set": bson.M{
		"code":      treatment.Code,
		"name":      treatment.Name,
		"price":     treatment.Price,
		"updatedAt": treatment.UpdatedAt,
	}, "$setOnInsert": bson.M{
		"createdAt": treatment.CreatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"code": treatment.Code}, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrDBFailedToUpdateDocument(err)
	}
	return nil
}
