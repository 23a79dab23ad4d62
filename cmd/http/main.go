package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"epic-connect-service/internal/app/config"
	"epic-connect-service/internal/app/delivery/http/middlewares"
	"epic-connect-service/internal/app/delivery/http/routers"
	"epic-connect-service/internal/app/drivers/database"
	"epic-connect-service/internal/app/drivers/logger"
	corePatients "epic-connect-service/internal/app/services/core/patients"
	"epic-connect-service/internal/app/services/core/users"
	epicAuth "epic-connect-service/internal/app/services/epic/auth"
	epicPatients "epic-connect-service/internal/app/services/epic/patients"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Failed to release resources during shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger)

	// Epic clients
	epicAuthClient := epicAuth.NewEpicAuthClient(bootstrap.InternalConfig.Epic, bootstrap.Logger)
	patientEpicClient := epicPatients.NewPatientEpicClient(
		bootstrap.InternalConfig.Epic.BaseUrl,
		epicAuthClient,
		bootstrap.Logger,
	)

	// User identifier store
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
		bootstrap.DriverConfig.MongoDB.UserCollection,
	)

	// Patient
	patientUsecase := corePatients.NewPatientUsecase(bootstrap.Logger, patientEpicClient, userMongoRepository)
	patientController := corePatients.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, patientController)
}
