package config

type (
	InternalConfig struct {
		App  App
		Epic Epic
	}

	App struct {
		Env                     string
		Port                    string
		Version                 string
		Address                 string
		MaxRequests             int
		ShutdownTimeout         int
		RequestTimeoutInSeconds int
	}

	// Epic holds the remote FHIR endpoint and the SMART Backend Services
	// OAuth2 client registration.
	Epic struct {
		BaseUrl        string
		TokenUrl       string
		ClientID       string
		PrivateKeyPath string
	}
)
