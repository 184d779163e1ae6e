package handlers

import (
	"log"
	"net/http"
	"time"

	"tripwise/database"
	"tripwise/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ItineraryStore is the slice of the database layer the itinerary handlers
// need. A nil store means the service runs stateless: generation still works,
// downloads do not.
type ItineraryStore interface {
	SaveItinerary(*database.Itinerary) error
	GetItinerary(id string) (*database.Itinerary, error)
	UpdateItineraryPDF(id string, pdfData []byte) error
}

type itineraryResponse struct {
	Success   bool   `json:"success"`
	Itinerary string `json:"itinerary,omitempty"`
	ID        string `json:"id,omitempty"`
	PDFURL    string `json:"pdf_url,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ItineraryHandler generates a day-by-day itinerary for a trip. Required
// fields are enforced here, before the generator is invoked.
func ItineraryHandler(client *services.ItineraryClient, store ItineraryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.TripRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, itineraryResponse{
				Success: false,
				Error:   "Invalid request: " + err.Error(),
			})
			return
		}

		narrative, err := client.Generate(req)
		if err != nil {
			log.Printf("⚠️  Itinerary generation failed: %v", err)
			c.JSON(http.StatusBadGateway, itineraryResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}

		resp := itineraryResponse{Success: true, Itinerary: narrative}

		if store != nil {
			id := uuid.New().String()
			itinerary := &database.Itinerary{
				ID:           id,
				City:         req.City,
				Budget:       req.Budget,
				Days:         req.Days,
				TravelerType: req.TravelerType,
				Preferences:  req.Preferences,
				Narrative:    narrative,
			}
			if err := store.SaveItinerary(itinerary); err != nil {
				// The itinerary was generated; losing the download link is
				// not worth failing the request over.
				log.Printf("❌ Failed to save itinerary: %v", err)
			} else {
				resp.ID = id
				resp.PDFURL = "/api/itineraries/" + id + "/pdf"
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// ItineraryPDFHandler streams a previously generated itinerary as a PDF.
// The PDF is rendered on first download and cached on the row.
func ItineraryPDFHandler(store ItineraryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Itinerary storage is not configured"})
			return
		}

		id := c.Param("id")
		itinerary, err := store.GetItinerary(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
			return
		}

		pdfData := itinerary.PDFData
		if len(pdfData) == 0 {
			pdfData, err = services.RenderItineraryPDF(services.ItineraryDocument{
				City:         itinerary.City,
				Budget:       itinerary.Budget,
				Days:         itinerary.Days,
				TravelerType: itinerary.TravelerType,
				Preferences:  itinerary.Preferences,
				Narrative:    itinerary.Narrative,
				GeneratedAt:  itinerary.CreatedAt,
			})
			if err != nil {
				log.Printf("❌ PDF generation failed for itinerary %s: %v", id, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
				return
			}
			if err := store.UpdateItineraryPDF(id, pdfData); err != nil {
				log.Printf("⚠️  Failed to cache PDF for itinerary %s: %v", id, err)
			}
		}

		c.Header("Content-Disposition", "attachment; filename=tripwise-itinerary.pdf")
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "application/pdf", pdfData)
	}
}

var startedAt = time.Now()

// HealthHandler reports liveness plus the state of the optional database.
func HealthHandler(store ItineraryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "disabled"
		if pinger, ok := store.(interface{ Ping() error }); ok {
			if err := pinger.Ping(); err != nil {
				dbStatus = "error: " + err.Error()
			} else {
				dbStatus = "ok"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"service":  "Tripwise API",
			"database": dbStatus,
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
		})
	}
}
