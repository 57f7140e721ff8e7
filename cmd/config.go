package cmd

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// CloseRetention is how long a settled order stays visible before the
	// closing sweep moves it to Closed. CloseInterval is the sweep cadence.
	CloseRetention string
	CloseInterval  string
}
