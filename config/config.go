package config

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	DataBackend  string // "csv" or "postgres"
	DataDir      string
	DatabaseURL  string
	JWTSecret    string // optional; guards the Gemini coach route when set
	GeminiAPIKey string
	Addr         string
}

// AppConfig holds the application-wide configuration
var AppConfig Config
