package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripwise/database"
	"tripwise/handlers"
	"tripwise/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore keeps itineraries in memory.
type fakeStore struct {
	saved   map[string]*database.Itinerary
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string]*database.Itinerary)}
}

func (f *fakeStore) SaveItinerary(i *database.Itinerary) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved[i.ID] = i
	return nil
}

func (f *fakeStore) GetItinerary(id string) (*database.Itinerary, error) {
	i, ok := f.saved[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return i, nil
}

func (f *fakeStore) UpdateItineraryPDF(id string, pdfData []byte) error {
	i, ok := f.saved[id]
	if !ok {
		return errors.New("not found")
	}
	i.PDFData = pdfData
	return nil
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ─── Hotels ───────────────────────────────────────────────────────────────────

func TestHotelsHandler_MissingCity(t *testing.T) {
	router := gin.New()
	client := services.NewHotelClient("http://127.0.0.1:0", "key")
	router.POST("/api/hotels", handlers.HotelsHandler(client))

	w := postJSON(t, router, "/api/hotels", map[string]any{
		"checkIn": "2026-10-01", "checkOut": "2026-10-05",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result services.HotelQueryResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestHotelsHandler_FallbackOnUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	router := gin.New()
	router.POST("/api/hotels", handlers.HotelsHandler(services.NewHotelClient(upstream.URL, "key")))

	w := postJSON(t, router, "/api/hotels", map[string]any{
		"city": "Paris", "checkIn": "2026-10-01", "checkOut": "2026-10-05", "guests": 2,
	})

	assert.Equal(t, http.StatusOK, w.Code, "fallback responses are still renderable")

	var result services.HotelQueryResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.True(t, result.Fallback)
	assert.NotEmpty(t, result.Hotels)
}

func TestHotelsHandler_LiveData(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hotels": [{"id": "h1", "name": "Live Hotel", "pricePerNight": 99}]}`))
	}))
	defer upstream.Close()

	router := gin.New()
	router.POST("/api/hotels", handlers.HotelsHandler(services.NewHotelClient(upstream.URL, "key")))

	w := postJSON(t, router, "/api/hotels", map[string]any{"city": "Valencia"})

	assert.Equal(t, http.StatusOK, w.Code)

	var result services.HotelQueryResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	require.Len(t, result.Hotels, 1)
	assert.Equal(t, "Live Hotel", result.Hotels[0].Name)
	assert.Equal(t, 1, result.TotalResults)
}

func TestHotelsProxyHandler_RelaysUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"subscription expired"}`))
	}))
	defer upstream.Close()

	router := gin.New()
	router.POST("/api/hotels/proxy", handlers.HotelsProxyHandler(services.NewHotelClient(upstream.URL, "key")))

	w := postJSON(t, router, "/api/hotels/proxy", map[string]any{"city": "Paris"})

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.JSONEq(t, `{"error":"subscription expired"}`, w.Body.String())
}

// ─── Restaurants / Transportation ─────────────────────────────────────────────

func TestRestaurantsHandler(t *testing.T) {
	router := gin.New()
	router.GET("/api/restaurants", handlers.RestaurantsHandler())

	tests := []struct {
		name       string
		query      string
		wantStatus int
		check      func(t *testing.T, body map[string]json.RawMessage)
	}{
		{
			name:       "missing city",
			query:      "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid minRating",
			query:      "?city=paris&minRating=abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unfiltered",
			query:      "?city=paris",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]json.RawMessage) {
				var restaurants []services.Restaurant
				require.NoError(t, json.Unmarshal(body["restaurants"], &restaurants))
				assert.Len(t, restaurants, 4)
			},
		},
		{
			name:       "rating floor",
			query:      "?city=paris&minRating=4.3",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]json.RawMessage) {
				var restaurants []services.Restaurant
				require.NoError(t, json.Unmarshal(body["restaurants"], &restaurants))
				require.NotEmpty(t, restaurants)
				for _, r := range restaurants {
					assert.GreaterOrEqual(t, r.Rating, 4.3)
				}
			},
		},
		{
			name:       "price band",
			query:      "?city=paris&minPrice=10&maxPrice=30",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]json.RawMessage) {
				var restaurants []services.Restaurant
				require.NoError(t, json.Unmarshal(body["restaurants"], &restaurants))
				require.NotEmpty(t, restaurants)
				for _, r := range restaurants {
					assert.GreaterOrEqual(t, r.AveragePrice, 10.0)
					assert.LessOrEqual(t, r.AveragePrice, 30.0)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getPath(router, "/api/restaurants"+tt.query)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.check != nil {
				var body map[string]json.RawMessage
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				tt.check(t, body)
			}
		})
	}
}

func TestTransportationHandler(t *testing.T) {
	router := gin.New()
	router.GET("/api/transportation", handlers.TransportationHandler())

	w := getPath(router, "/api/transportation?city=oslo&maxPrice=10")

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success        bool                      `json:"success"`
		Transportation []services.Transportation `json:"transportation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotEmpty(t, body.Transportation)
	for _, tr := range body.Transportation {
		assert.LessOrEqual(t, tr.BasePrice, 10.0)
	}
}

// ─── Itinerary ────────────────────────────────────────────────────────────────

func geminiStub(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestItineraryHandler_GeneratesAndPersists(t *testing.T) {
	upstream := geminiStub(t, "Day 1: Shibuya crossing...")
	defer upstream.Close()

	store := newFakeStore()
	router := gin.New()
	client := services.NewItineraryClient(upstream.URL, "key")
	router.POST("/api/itinerary", handlers.ItineraryHandler(client, store))

	w := postJSON(t, router, "/api/itinerary", map[string]any{
		"city": "Tokyo", "budget": "$100/day", "days": 3,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success   bool   `json:"success"`
		Itinerary string `json:"itinerary"`
		ID        string `json:"id"`
		PDFURL    string `json:"pdf_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Day 1: Shibuya crossing...", resp.Itinerary)
	require.NotEmpty(t, resp.ID)
	assert.Equal(t, "/api/itineraries/"+resp.ID+"/pdf", resp.PDFURL)

	saved := store.saved[resp.ID]
	require.NotNil(t, saved)
	assert.Equal(t, "Tokyo", saved.City)
	assert.Equal(t, 3, saved.Days)
	assert.Equal(t, "Day 1: Shibuya crossing...", saved.Narrative)
}

func TestItineraryHandler_ValidatesRequiredFields(t *testing.T) {
	router := gin.New()
	client := services.NewItineraryClient("http://127.0.0.1:0", "key")
	router.POST("/api/itinerary", handlers.ItineraryHandler(client, nil))

	tests := []map[string]any{
		{"budget": "$100/day", "days": 3},             // no city
		{"city": "Tokyo", "days": 3},                  // no budget
		{"city": "Tokyo", "budget": "$100/day"},       // no days
		{"city": "Tokyo", "budget": "$x", "days": 0},  // non-positive days
		{"city": "Tokyo", "budget": "$x", "days": 90}, // over the cap
	}

	for _, payload := range tests {
		w := postJSON(t, router, "/api/itinerary", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "payload %v", payload)
	}
}

func TestItineraryHandler_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	router := gin.New()
	client := services.NewItineraryClient(upstream.URL, "key")
	router.POST("/api/itinerary", handlers.ItineraryHandler(client, nil))

	w := postJSON(t, router, "/api/itinerary", map[string]any{
		"city": "Tokyo", "budget": "$100/day", "days": 3,
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestItineraryHandler_StatelessWithoutStore(t *testing.T) {
	upstream := geminiStub(t, "Plan text")
	defer upstream.Close()

	router := gin.New()
	client := services.NewItineraryClient(upstream.URL, "key")
	router.POST("/api/itinerary", handlers.ItineraryHandler(client, nil))

	w := postJSON(t, router, "/api/itinerary", map[string]any{
		"city": "Tokyo", "budget": "$100/day", "days": 3,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.ID, "no persistence, no download link")
}

func TestItineraryPDFHandler(t *testing.T) {
	store := newFakeStore()
	store.saved["abc"] = &database.Itinerary{
		ID: "abc", City: "Tokyo", Budget: "$100/day", Days: 3,
		Narrative: "Day 1: walk around.",
	}

	router := gin.New()
	router.GET("/api/itineraries/:id/pdf", handlers.ItineraryPDFHandler(store))

	w := getPath(router, "/api/itineraries/abc/pdf")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])
	assert.NotEmpty(t, store.saved["abc"].PDFData, "rendered PDF is cached on the row")

	// Second download reuses the cached bytes.
	w2 := getPath(router, "/api/itineraries/abc/pdf")
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, w.Body.Len(), w2.Body.Len())
}

func TestItineraryPDFHandler_NotFound(t *testing.T) {
	router := gin.New()
	router.GET("/api/itineraries/:id/pdf", handlers.ItineraryPDFHandler(newFakeStore()))

	w := getPath(router, "/api/itineraries/missing/pdf")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItineraryPDFHandler_NoStore(t *testing.T) {
	router := gin.New()
	router.GET("/api/itineraries/:id/pdf", handlers.ItineraryPDFHandler(nil))

	w := getPath(router, "/api/itineraries/abc/pdf")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// ─── Health ───────────────────────────────────────────────────────────────────

func TestHealthHandler(t *testing.T) {
	router := gin.New()
	router.GET("/health", handlers.HealthHandler(nil))

	w := getPath(router, "/health")

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Tripwise API", body["service"])
	assert.Equal(t, "disabled", body["database"])
}
