package profiles

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

type ProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewProfileMongoRepository(client *mongo.Client, dbName string) contracts.ProfileRepository {
	return &ProfileMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionProfiles),
	}
}

func (r *ProfileMongoRepository) CreateProfile(ctx context.Context, profile *models.Profile) (string, error) {
	if profile.ID == "" {
		profile.ID = primitive.NewObjectID().Hex()
	}
	if profile.Appointments == nil {
		profile.Appointments = []models.Appointment{}
	}
	if profile.MedicalHistory == nil {
		profile.MedicalHistory = []models.MedicalRecord{}
	}
	if profile.Payments == nil {
		profile.Payments = []models.Payment{}
	}
	profile.SetCreatedAtUpdatedAt()

	_, err := r.Collection.InsertOne(ctx, profile)
	if err != nil {
		return "", exceptions.ErrDBFailedToInsertDocument(err)
	}
	return profile.ID, nil
}

func (r *ProfileMongoRepository) FindProfileByID(ctx context.Context, profileID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.Collection.FindOne(ctx, bson.M{"_id": profileID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	return &profile, nil
}

func (r *ProfileMongoRepository) FindProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	return &profile, nil
}

func (r *ProfileMongoRepository) ListPatients(ctx context.Context, search string, pagination *requests.Pagination) ([]models.Profile, int, error) {
	filter := bson.M{"role": constvars.RolePatient}
	if search != "" {
		pattern := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = []bson.M{
			{"firstName": pattern},
			{"lastName": pattern},
			{"email": pattern},
		}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrDBFailedToFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}}).
		SetSkip(int64((pagination.Page - 1) * pagination.PageSize)).
		SetLimit(int64(pagination.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrDBFailedToFindDocument(err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, 0, exceptions.ErrDBFailedToIterateDocuments(err)
	}
	return profiles, int(total), nil
}

func (r *ProfileMongoRepository) FindPatientsWithAppointmentsOn(ctx context.Context, date string) ([]models.Profile, error) {
	filter := bson.M{
		"role": constvars.RolePatient,
		"appointments": bson.M{
			"$elemMatch": bson.M{
				"date":   date,
				"status": bson.M{"$in": []string{constvars.AppointmentStatusPending, constvars.AppointmentStatusConfirmed}},
			},
		},
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, exceptions.ErrDBFailedToIterateDocuments(err)
	}
	return profiles, nil
}

func (r *ProfileMongoRepository) FindPatientsWithPaymentsOn(ctx context.Context, date string) ([]models.Profile, error) {
	filter := bson.M{
		"role":          constvars.RolePatient,
		"payments.date": date,
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, exceptions.ErrDBFailedToIterateDocuments(err)
	}
	return profiles, nil
}

func (r *ProfileMongoRepository) ReplaceAppointments(ctx context.Context, profileID string, appointments []models.Appointment) error {
	return r.replaceField(ctx, profileID, "appointments", appointments)
}

func (r *ProfileMongoRepository) ReplaceHealthPlan(ctx context.Context, profileID string, plan *models.HealthPlan) error {
	return r.replaceField(ctx, profileID, "healthPlan", plan)
}

func (r *ProfileMongoRepository) ReplaceMedicalHistory(ctx context.Context, profileID string, history []models.MedicalRecord) error {
	return r.replaceField(ctx, profileID, "medicalHistory", history)
}

func (r *ProfileMongoRepository) ReplacePayments(ctx context.Context, profileID string, payments []models.Payment) error {
	return r.replaceField(ctx, profileID, "payments", payments)
}

// replaceField swaps one embedded field in a single UpdateOne so concurrent
// readers only ever see the list before or after the whole mutation.
func (r *ProfileMongoRepository) replaceField(ctx context.Context, profileID, field string, value interface{}) error {
	update := bson.M{"$set": bson.M{
		field:       value,
		"updatedAt": time.Now(),
	}}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": profileID}, update)
	if err != nil {
		return exceptions.ErrDBFailedToUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrProfileNotFound(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *ProfileMongoRepository) WatchProfile(ctx context.Context, profileID string) (<-chan *models.Profile, func(), error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"documentKey._id": profileID}}},
	}
	streamOptions := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := r.Collection.Watch(ctx, pipeline, streamOptions)
	if err != nil {
		return nil, nil, exceptions.ErrDBFailedToWatchDocument(err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	out := make(chan *models.Profile)

	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		for stream.Next(watchCtx) {
			var event struct {
				FullDocument *models.Profile `bson:"fullDocument"`
			}
			if err := stream.Decode(&event); err != nil {
				return
			}
			if event.FullDocument == nil {
				continue
			}
			select {
			case out <- event.FullDocument:
			case <-watchCtx.Done():
				return
			}
		}
	}()

	return out, cancel, nil
}
