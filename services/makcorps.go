package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ─── Makcorps hotel pricing client ────────────────────────────────────────────

// HotelClient talks to the Makcorps hotel pricing API. It is stateless: each
// call is one outbound request with no retries and no caching. Construct it
// with the base URL and credential so tests can point it at a fake upstream.
type HotelClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewHotelClient(baseURL, apiKey string) *HotelClient {
	return &HotelClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type HotelQuery struct {
	City     string `json:"city" binding:"required"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
	Limit    int    `json:"limit"`
}

// HotelQueryResult is the structured outcome of a hotel lookup. Every failure
// path resolves into one of these; the client never panics and never returns
// an error to the caller.
type HotelQueryResult struct {
	Success      bool    `json:"success"`
	Hotels       []Hotel `json:"hotels"`
	City         string  `json:"city,omitempty"`
	TotalResults int     `json:"totalResults"`
	Fallback     bool    `json:"fallback,omitempty"`
	Error        string  `json:"error,omitempty"`
}

type makcorpsRequest struct {
	Destination string `json:"destination"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	Guests      int    `json:"guests"`
	Limit       int    `json:"limit"`
}

// Hotel entries come back in varying shapes depending on the underlying
// supplier, so they are decoded loosely and field-mapped defensively.
type makcorpsResponse struct {
	Hotels []map[string]any `json:"hotels"`
}

// FetchHotels queries the pricing upstream and always returns displayable
// data: on any upstream failure it substitutes curated hotels for the city
// and marks the result as fallback. A blank city fails fast without touching
// the network.
func (c *HotelClient) FetchHotels(q HotelQuery) HotelQueryResult {
	if normalizeCity(q.City) == "" {
		return HotelQueryResult{Success: false, Error: "city is required"}
	}
	if q.Guests <= 0 {
		q.Guests = 2
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}

	status, body, err := c.callUpstream(q)
	if err != nil {
		return c.fallbackResult(q.City, err.Error())
	}
	if status < 200 || status >= 300 {
		return c.fallbackResult(q.City, fmt.Sprintf("makcorps API error: %d - %s", status, string(body)))
	}

	var resp makcorpsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return c.fallbackResult(q.City, "failed to parse makcorps response: "+err.Error())
	}

	hotels := make([]Hotel, 0, len(resp.Hotels))
	for _, raw := range resp.Hotels {
		hotels = append(hotels, normalizeHotel(raw, q.City))
	}

	return HotelQueryResult{
		Success:      true,
		Hotels:       hotels,
		City:         q.City,
		TotalResults: len(hotels),
	}
}

// ProxyHotels forwards the query and relays the upstream status and body
// verbatim, along with any transport error. No normalization, no fallback.
func (c *HotelClient) ProxyHotels(q HotelQuery) (int, []byte, error) {
	if q.Guests <= 0 {
		q.Guests = 2
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	return c.callUpstream(q)
}

func (c *HotelClient) callUpstream(q HotelQuery) (int, []byte, error) {
	payload, err := json.Marshal(makcorpsRequest{
		Destination: q.City,
		CheckIn:     q.CheckIn,
		CheckOut:    q.CheckOut,
		Guests:      q.Guests,
		Limit:       q.Limit,
	})
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequest("POST", c.baseURL+"/hotels", bytes.NewBuffer(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body, nil
}

func (c *HotelClient) fallbackResult(city, errMsg string) HotelQueryResult {
	hotels := ResolveHotels(city)
	return HotelQueryResult{
		Success:      false,
		Hotels:       hotels,
		City:         city,
		TotalResults: len(hotels),
		Fallback:     true,
		Error:        errMsg,
	}
}

// ─── Normalization ────────────────────────────────────────────────────────────

// Defaults applied when an upstream record is missing a field under every
// known key.
const (
	defaultRating   = 4.0
	defaultCurrency = "USD"
	defaultImage    = "https://images.unsplash.com/photo-1566073771259-6a8506099945"
)

var defaultAmenities = []string{"WiFi", "Pool", "Gym"}

// normalizeHotel maps one untrusted upstream record into the canonical Hotel
// shape. Each target field is resolved through an ordered list of candidate
// source keys, falling back to a documented default.
func normalizeHotel(raw map[string]any, city string) Hotel {
	h := Hotel{
		ID:       firstString(raw, "id", "hotelId"),
		Name:     firstString(raw, "name", "hotelName"),
		Rating:   firstFloat(raw, "rating", "starRating"),
		Price:    hotelPrice(raw),
		Currency: hotelCurrency(raw),
		Image:    firstString(raw, "image"),
		Location: firstString(raw, "address", "location"),
	}

	if h.ID == "" {
		h.ID = "hotel-" + uuid.NewString()[:8]
	}
	if h.Name == "" {
		h.Name = "Hotel Name Not Available"
	}
	if h.Rating == 0 {
		h.Rating = defaultRating
	}
	if h.Image == "" {
		h.Image = firstPhoto(raw)
	}
	if h.Image == "" {
		h.Image = defaultImage
	}
	if h.Location == "" {
		h.Location = city
	}

	h.Amenities = stringList(raw, "amenities")
	if h.Amenities == nil {
		h.Amenities = append([]string(nil), defaultAmenities...)
	}

	h.Description = firstString(raw, "description")
	if h.Description == "" {
		h.Description = "Comfortable accommodation in " + city
	}

	// Available unless the upstream explicitly says otherwise.
	h.Availability = raw["availability"] != false

	return h
}

func hotelPrice(raw map[string]any) float64 {
	if price, ok := raw["price"].(map[string]any); ok {
		if amount := firstFloat(price, "amount"); amount != 0 {
			return amount
		}
	}
	return firstFloat(raw, "totalPrice", "pricePerNight", "price")
}

func hotelCurrency(raw map[string]any) string {
	if price, ok := raw["price"].(map[string]any); ok {
		if cur := firstString(price, "currency"); cur != "" {
			return cur
		}
	}
	if cur := firstString(raw, "currency"); cur != "" {
		return cur
	}
	return defaultCurrency
}

func firstPhoto(raw map[string]any) string {
	photos, ok := raw["photos"].([]any)
	if !ok || len(photos) == 0 {
		return ""
	}
	url, _ := photos[0].(string)
	return url
}

// firstString returns the first candidate key whose value is a non-empty
// string.
func firstString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := raw[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstFloat returns the first candidate key holding a usable number. Numeric
// strings count: suppliers frequently quote prices and ratings as strings.
func firstFloat(raw map[string]any, keys ...string) float64 {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case float64:
			if v != 0 {
				return v
			}
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil && f != 0 {
				return f
			}
		}
	}
	return 0
}

func stringList(raw map[string]any, key string) []string {
	items, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			list = append(list, s)
		}
	}
	if len(list) == 0 {
		return nil
	}
	return list
}
