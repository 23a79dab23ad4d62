package config

import (
	"epic-connect-service/internal/pkg/constvars"
	"epic-connect-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:           utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:           utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username:       utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password:       utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			DbName:         utils.GetEnvString("MONGODB_DB_NAME", "unitedwecare"),
			UserCollection: utils.GetEnvString("MONGODB_USER_COLLECTION", constvars.MongoCollectionUsers),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", "development"),
			Port:                    utils.GetEnvString("APP_PORT", ":8080"),
			Version:                 utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                 utils.GetEnvString("APP_ADDRESS", "localhost"),
			MaxRequests:             utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Epic: Epic{
			BaseUrl:        utils.GetEnvString("EPIC_BASE_URL", "https://fhir.epic.com/interconnect-fhir-oauth/api/FHIR/R4"),
			TokenUrl:       utils.GetEnvString("EPIC_TOKEN_URL", "https://fhir.epic.com/interconnect-fhir-oauth/oauth2/token"),
			ClientID:       utils.GetEnvString("EPIC_CLIENT_ID", "dummy"),
			PrivateKeyPath: utils.GetEnvString("EPIC_PRIVATE_KEY", ""),
		},
	}
}
