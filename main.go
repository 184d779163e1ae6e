package main

import (
	"log"
	"os"
	"strings"
	"time"

	"tripwise/config"
	"tripwise/database"
	"tripwise/handlers"
	"tripwise/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	cfg := config.Load()

	// Database is optional: without it the service runs stateless and only
	// PDF re-downloads are unavailable.
	var store handlers.ItineraryStore
	if cfg.DatabaseURL != "" {
		s, err := database.Open(cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️  Database unavailable: %v — itinerary downloads disabled", err)
		} else {
			defer s.Close()
			store = s
			log.Println("✅ Database connected and migrated")
		}
	} else {
		log.Println("⚠️  DATABASE_URL not set — itinerary downloads disabled")
	}

	hotelClient := services.NewHotelClient(cfg.MakcorpsBaseURL, cfg.MakcorpsAPIKey)
	if cfg.MakcorpsAPIKey == "" {
		log.Println("⚠️  MAKCORPS_API_KEY not set — hotel search will use curated data")
	}

	itineraryClient := services.NewItineraryClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey)
	if cfg.GeminiAPIKey != "" {
		log.Println("✅ Gemini itinerary generation enabled")
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set — itinerary requests will fail explicitly")
	}

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Trusted proxies (the host platform sits behind a proxy)
	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if cfg.FrontendURLs != "" {
		for _, u := range strings.Split(cfg.FrontendURLs, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Routes
	r.GET("/health", handlers.HealthHandler(store))
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler(store))
		api.POST("/hotels", handlers.HotelsHandler(hotelClient))
		api.POST("/hotels/proxy", handlers.HotelsProxyHandler(hotelClient))
		api.GET("/restaurants", handlers.RestaurantsHandler())
		api.GET("/transportation", handlers.TransportationHandler())
		api.POST("/itinerary", handlers.ItineraryHandler(itineraryClient, store))
		api.GET("/itineraries/:id/pdf", handlers.ItineraryPDFHandler(store))
	}

	log.Printf("🚀 Tripwise backend starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
