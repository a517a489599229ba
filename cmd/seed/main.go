package main

import (
	"context"
	"time"

	"dentassist-service/internal/app/config"
	"dentassist-service/internal/app/drivers/database"
	"dentassist-service/internal/app/drivers/logger"
	"dentassist-service/internal/app/models"
	"dentassist-service/internal/app/services/core/education"
	"dentassist-service/internal/app/services/core/profiles"
	"dentassist-service/internal/app/services/core/treatments"
	"dentassist-service/internal/app/services/core/users"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/utils"
)

// Seeds the treatment catalogue, the default doctor account, and a couple of
// published articles so a fresh environment is usable right away. Safe to run
// repeatedly: treatments are upserted and the doctor is only created once.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	dbName := driverConfig.MongoDB.DbName

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	treatmentRepository := treatments.NewTreatmentMongoRepository(mongoClient, dbName)
	userRepository := users.NewUserMongoRepository(mongoClient, dbName)
	profileRepository := profiles.NewProfileMongoRepository(mongoClient, dbName)
	educationRepository := education.NewEducationMongoRepository(mongoClient, dbName)

	catalogue := []models.Treatment{
		{Code: "CONS01", Name: "Consultation", Price: 50},
		{Code: "CLEAN01", Name: "Cleaning", Price: 80},
		{Code: "FILL01", Name: "Filling (composite)", Price: 120},
		{Code: "FILL02", Name: "Filling (ceramic inlay)", Price: 180},
		{Code: "ROOT01", Name: "Root canal", Price: 300},
		{Code: "XRAY01", Name: "Panoramic X-ray", Price: 60},
	}
	for i := range catalogue {
		catalogue[i].SetCreatedAtUpdatedAt()
		if err := treatmentRepository.UpsertTreatment(ctx, &catalogue[i]); err != nil {
			log.Fatalf("seeding treatment %s: %v", catalogue[i].Code, err)
		}
	}
	log.Infof("seeded %d treatments", len(catalogue))

	doctorEmail := "doctor@dentassist.local"
	existing, err := userRepository.FindUserByEmail(ctx, doctorEmail)
	if err != nil {
		log.Fatalf("looking up doctor account: %v", err)
	}

	var doctorProfileID string
	if existing == nil {
		hashed, err := utils.HashPassword("ChangeMe123!")
		if err != nil {
			log.Fatalf("hashing doctor password: %v", err)
		}

		profile := &models.Profile{
			Email:          doctorEmail,
			FirstName:      "Default",
			LastName:       "Doctor",
			Role:           constvars.RoleDoctor,
			Appointments:   []models.Appointment{},
			MedicalHistory: []models.MedicalRecord{},
			Payments:       []models.Payment{},
		}
		profile.SetCreatedAtUpdatedAt()
		doctorProfileID, err = profileRepository.CreateProfile(ctx, profile)
		if err != nil {
			log.Fatalf("creating doctor profile: %v", err)
		}

		user := &models.User{
			Email:     doctorEmail,
			Password:  hashed,
			Role:      constvars.RoleDoctor,
			ProfileID: doctorProfileID,
		}
		user.SetCreatedAtUpdatedAt()
		if _, err := userRepository.CreateUser(ctx, user); err != nil {
			log.Fatalf("creating doctor user: %v", err)
		}
		log.Info("seeded default doctor account")
	} else {
		doctorProfileID = existing.ProfileID
		log.Info("doctor account already present, skipping")
	}

	articles := []models.EducationalContent{
		{
			Title:    "Brushing twice a day, done right",
			Summary:  "Two minutes, soft bristles, and the angles that actually reach the gum line.",
			Body:     "Hold the brush at a 45 degree angle to the gum line and use short strokes...",
			Category: "hygiene",
			Level:    "basic",
			Status:   constvars.ContentStatusPublished,
			Tags:     []string{"brushing", "daily-routine"},
			AuthorID: doctorProfileID,
		},
		{
			Title:    "What to expect after a filling",
			Summary:  "Sensitivity, eating, and when to call the practice.",
			Body:     "Mild sensitivity to hot and cold is normal for a few days after a filling...",
			Category: "aftercare",
			Level:    "basic",
			Status:   constvars.ContentStatusPublished,
			Tags:     []string{"filling", "aftercare"},
			AuthorID: doctorProfileID,
		},
	}
	for i := range articles {
		articles[i].SetCreatedAtUpdatedAt()
		if _, err := educationRepository.CreateContent(ctx, &articles[i]); err != nil {
			log.Fatalf("seeding article %q: %v", articles[i].Title, err)
		}
	}
	log.Infof("seeded %d articles", len(articles))

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Fatalf("closing mongo: %v", err)
	}
}
