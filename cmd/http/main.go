package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dentassist-service/internal/app/config"
	"dentassist-service/internal/app/delivery/http/controllers"
	"dentassist-service/internal/app/delivery/http/middlewares"
	"dentassist-service/internal/app/delivery/http/routers"
	"dentassist-service/internal/app/drivers/database"
	"dentassist-service/internal/app/drivers/logger"
	"dentassist-service/internal/app/drivers/mailer"
	"dentassist-service/internal/app/drivers/messaging"
	"dentassist-service/internal/app/drivers/storage"
	"dentassist-service/internal/app/services/core/appointments"
	"dentassist-service/internal/app/services/core/auth"
	"dentassist-service/internal/app/services/core/education"
	"dentassist-service/internal/app/services/core/healthplans"
	"dentassist-service/internal/app/services/core/payments"
	"dentassist-service/internal/app/services/core/profiles"
	"dentassist-service/internal/app/services/core/reminders"
	"dentassist-service/internal/app/services/core/session"
	"dentassist-service/internal/app/services/core/treatments"
	"dentassist-service/internal/app/services/core/users"
	"dentassist-service/internal/app/services/shared/locker"
	sharedmailer "dentassist-service/internal/app/services/shared/mailer"
	sharedredis "dentassist-service/internal/app/services/shared/redis"
	sharedstorage "dentassist-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	logrusLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	smtpClient := mailer.NewSMTPClient(driverConfig, logrusLogger)

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if err := bootstrapApp(bootstrap, smtpClient, logrusLogger); err != nil {
		zapLogger.Fatal("bootstrap failed", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Address + ":" + internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zapLogger.Info("shutdown signal received, draining in-flight requests")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error while closing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapApp(bootstrap *config.Bootstrap, smtpClient *mailer.SMTPClient, logrusLogger *logrus.Logger) error {
	internalConfig := bootstrap.InternalConfig

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	sessionService := session.NewSessionService(redisRepository)

	mailerService := sharedmailer.NewSMTPMailerService(smtpClient, logrusLogger)
	mailerQueue, err := sharedmailer.NewRabbitMQMailerQueue(bootstrap.RabbitMQ, internalConfig.RabbitMQ.MailerQueue)
	if err != nil {
		return err
	}

	// Repositories
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	userRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	profileRepository := profiles.NewProfileMongoRepository(bootstrap.MongoClient, dbName)
	treatmentRepository := treatments.NewTreatmentMongoRepository(bootstrap.MongoClient, dbName)
	educationRepository := education.NewEducationMongoRepository(bootstrap.MongoClient, dbName)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, profileRepository, sessionService, internalConfig, bootstrap.Logger)
	profileUsecase := profiles.NewProfileUsecase(profileRepository, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(profileRepository, lockerService, mailerQueue, internalConfig, bootstrap.Logger)
	healthPlanUsecase := healthplans.NewHealthPlanUsecase(profileRepository, bootstrap.Logger)
	paymentUsecase := payments.NewPaymentUsecase(profileRepository, treatmentRepository, bootstrap.Logger)
	educationUsecase := education.NewEducationUsecase(educationRepository, minioStorage, internalConfig, bootstrap.Logger)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	profileController := controllers.NewProfileController(bootstrap.Logger, profileUsecase)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)
	healthPlanController := controllers.NewHealthPlanController(bootstrap.Logger, healthPlanUsecase)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase, treatmentRepository)
	educationController := controllers.NewEducationController(bootstrap.Logger, educationUsecase, internalConfig.Minio.MaterialMaxUploadSizeInMB)

	// Background workers
	mailerWorker := sharedmailer.NewConsumerWorker(bootstrap.RabbitMQ, mailerService, internalConfig.RabbitMQ.MailerQueue, logrusLogger)
	mailerStop, err := mailerWorker.Start()
	if err != nil {
		return err
	}
	bootstrap.MailerWorkerStop = mailerStop

	reminderWorker := reminders.NewWorker(profileRepository, lockerService, mailerQueue, internalConfig, bootstrap.Logger)
	reminderStop, err := reminderWorker.Start()
	if err != nil {
		return err
	}
	bootstrap.ReminderWorkerStop = reminderStop

	middlewareSet := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewareSet,
		authController,
		profileController,
		appointmentController,
		healthPlanController,
		paymentController,
		educationController,
	)

	return nil
}
