package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Logger  Logger
	}
	MongoDB struct {
		Port           string
		Host           string
		Username       string
		Password       string
		DbName         string
		UserCollection string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
