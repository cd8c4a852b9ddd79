package config

type (
	InternalConfig struct {
		App      App
		Upstream Upstream
		JWT      JWT
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env             string
		Port            string
		Timezone        string
		MaxRequests     int
		ShutdownTimeout int
		UseMockClients  bool
	}

	// Upstream holds the base URLs of the two backend services the client
	// layer talks to.
	Upstream struct {
		HospitalBaseURL string
		UserBaseURL     string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
