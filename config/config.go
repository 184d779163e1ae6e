package config

import "os"

// Config carries everything the service needs from the environment. It is
// built once in main and handed to each component explicitly, so tests can
// construct their own with fake keys and httptest endpoints.
type Config struct {
	Port        string
	DatabaseURL string

	MakcorpsAPIKey  string
	MakcorpsBaseURL string

	GeminiAPIKey  string
	GeminiBaseURL string

	FrontendURLs string
}

const (
	defaultMakcorpsBaseURL = "https://api.makcorps.com"
	defaultGeminiBaseURL   = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash-latest:generateContent"
)

// Load reads the configuration from environment variables. Missing API keys
// are allowed: the hotel gateway and itinerary service degrade to their
// fallback/error paths instead of refusing to start.
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MakcorpsAPIKey:  os.Getenv("MAKCORPS_API_KEY"),
		MakcorpsBaseURL: getEnv("MAKCORPS_BASE_URL", defaultMakcorpsBaseURL),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:   getEnv("GEMINI_BASE_URL", defaultGeminiBaseURL),
		FrontendURLs:    os.Getenv("FRONTEND_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
