package services

import (
	"regexp"
	"strings"
	"unicode"
)

// ─── Destination catalog ──────────────────────────────────────────────────────
//
// Curated travel options used whenever no live upstream exists for a category
// (restaurants, transportation) or the live upstream is unavailable (hotels).
// Lookups are pure and deterministic: the same city string always resolves to
// the same records, so re-renders and tests see stable data.

type curatedDestination struct {
	keys   []string // normalized match keys, aliases included
	hotels []Hotel
}

// Ordered table of known destinations. Matching is substring containment over
// the normalized input, first entry wins.
var hotelCatalog = []curatedDestination{
	{
		keys: []string{"lucknow"},
		hotels: []Hotel{
			{ID: "lucknow-1", Name: "Clarks Avadh Hotel", Rating: 4.3, Price: 4500, Currency: "INR", Image: "https://images.unsplash.com/photo-1566073771259-6a8506099945", Location: "Gomti Nagar, Lucknow", Amenities: []string{"WiFi", "Pool", "Restaurant", "Spa"}, Description: "Luxury hotel in the heart of Lucknow with modern amenities", Availability: true},
			{ID: "lucknow-2", Name: "Hotel Taj Residency", Rating: 4.1, Price: 3200, Currency: "INR", Image: "https://images.unsplash.com/photo-1571896349842-33c89424de2d", Location: "Hazratganj, Lucknow", Amenities: []string{"WiFi", "Restaurant", "Parking", "Room Service"}, Description: "Comfortable accommodation in the historic center of Lucknow", Availability: true},
			{ID: "lucknow-3", Name: "Novotel Lucknow", Rating: 4.5, Price: 6800, Currency: "INR", Image: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4", Location: "Gomti Nagar, Lucknow", Amenities: []string{"WiFi", "Pool", "Gym", "Restaurant", "Spa"}, Description: "International standard hotel with premium facilities", Availability: true},
		},
	},
	{
		keys: []string{"paris"},
		hotels: []Hotel{
			{ID: "paris-1", Name: "Hotel Ritz Paris", Rating: 4.8, Price: 100000, Currency: "INR", Image: "https://images.unsplash.com/photo-1566073771259-6a8506099945", Location: "Place Vendôme, Paris", Amenities: []string{"WiFi", "Pool", "Restaurant", "Spa", "Concierge"}, Description: "Iconic luxury hotel in the heart of Paris", Availability: true},
			{ID: "paris-2", Name: "Le Meurice", Rating: 4.7, Price: 85000, Currency: "INR", Image: "https://images.unsplash.com/photo-1571896349842-33c89424de2d", Location: "Rue de Rivoli, Paris", Amenities: []string{"WiFi", "Restaurant", "Spa", "Room Service"}, Description: "Elegant palace hotel with stunning city views", Availability: true},
		},
	},
	{
		keys: []string{"tokyo"},
		hotels: []Hotel{
			{ID: "tokyo-1", Name: "Park Hyatt Tokyo", Rating: 4.6, Price: 65000, Currency: "INR", Image: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4", Location: "Shinjuku, Tokyo", Amenities: []string{"WiFi", "Pool", "Gym", "Restaurant", "Spa"}, Description: "Luxury hotel with panoramic city views", Availability: true},
			{ID: "tokyo-2", Name: "Aman Tokyo", Rating: 4.9, Price: 95000, Currency: "INR", Image: "https://images.unsplash.com/photo-1566073771259-6a8506099945", Location: "Otemachi, Tokyo", Amenities: []string{"WiFi", "Spa", "Restaurant", "Concierge"}, Description: "Ultra-luxury urban resort in central Tokyo", Availability: true},
		},
	},
	{
		keys: []string{"new york", "newyork"},
		hotels: []Hotel{
			{ID: "nyc-1", Name: "The Plaza Hotel", Rating: 4.7, Price: 65000, Currency: "INR", Image: "https://images.unsplash.com/photo-1566073771259-6a8506099945", Location: "Central Park South, NYC", Amenities: []string{"WiFi", "Restaurant", "Spa", "Concierge", "Valet"}, Description: "Historic luxury hotel overlooking Central Park", Availability: true},
			{ID: "nyc-2", Name: "The Standard High Line", Rating: 4.4, Price: 25000, Currency: "INR", Image: "https://images.unsplash.com/photo-1571896349842-33c89424de2d", Location: "Meatpacking District, NYC", Amenities: []string{"WiFi", "Rooftop Bar", "Restaurant", "Gym"}, Description: "Modern boutique hotel in trendy neighborhood", Availability: true},
		},
	},
	{
		keys: []string{"london"},
		hotels: []Hotel{
			{ID: "london-1", Name: "The Ritz London", Rating: 4.8, Price: 65000, Currency: "INR", Image: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4", Location: "Piccadilly, London", Amenities: []string{"WiFi", "Afternoon Tea", "Restaurant", "Concierge"}, Description: "Iconic luxury hotel in the heart of London", Availability: true},
			{ID: "london-2", Name: "The Savoy", Rating: 4.6, Price: 58000, Currency: "INR", Image: "https://images.unsplash.com/photo-1566073771259-6a8506099945", Location: "Strand, London", Amenities: []string{"WiFi", "Pool", "Restaurant", "Spa", "Bar"}, Description: "Historic luxury hotel on the River Thames", Availability: true},
		},
	},
	{
		keys: []string{"barcelona"},
		hotels: []Hotel{
			{ID: "barcelona-1", Name: "Hotel Arts Barcelona", Rating: 4.5, Price: 38000, Currency: "INR", Image: "https://images.unsplash.com/photo-1571896349842-33c89424de2d", Location: "Port Olímpic, Barcelona", Amenities: []string{"WiFi", "Pool", "Restaurant", "Spa", "Beach Access"}, Description: "Luxury beachfront hotel with stunning sea views", Availability: true},
			{ID: "barcelona-2", Name: "W Barcelona", Rating: 4.3, Price: 32000, Currency: "INR", Image: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4", Location: "Barceloneta Beach, Barcelona", Amenities: []string{"WiFi", "Rooftop Pool", "Restaurant", "Nightclub"}, Description: "Modern design hotel with vibrant atmosphere", Availability: true},
		},
	},
	{
		keys: []string{"mumbai", "bombay"},
		hotels: []Hotel{
			{ID: "mumbai-1", Name: "The Taj Mahal Palace", Rating: 4.8, Price: 15000, Currency: "INR", Image: "https://images.unsplash.com/photo-1566073771259-6a8506099945", Location: "Apollo Bunder, Mumbai", Amenities: []string{"WiFi", "Pool", "Spa", "Restaurant", "Heritage"}, Description: "Historic luxury hotel overlooking the Gateway of India", Availability: true},
			{ID: "mumbai-2", Name: "Trident Bandra Kurla", Rating: 4.4, Price: 8500, Currency: "INR", Image: "https://images.unsplash.com/photo-1571896349842-33c89424de2d", Location: "Bandra East, Mumbai", Amenities: []string{"WiFi", "Pool", "Gym", "Business Center"}, Description: "Modern business hotel in the financial district", Availability: true},
		},
	},
	{
		keys: []string{"delhi"},
		hotels: []Hotel{
			{ID: "delhi-1", Name: "The Leela Palace New Delhi", Rating: 4.7, Price: 12000, Currency: "INR", Image: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4", Location: "Chanakyapuri, New Delhi", Amenities: []string{"WiFi", "Spa", "Pool", "Restaurant", "Butler Service"}, Description: "Luxury hotel near diplomatic quarter", Availability: true},
			{ID: "delhi-2", Name: "ITC Maurya", Rating: 4.5, Price: 9500, Currency: "INR", Image: "https://images.unsplash.com/photo-1566073771259-6a8506099945", Location: "Sardar Patel Marg, New Delhi", Amenities: []string{"WiFi", "Spa", "Pool", "Multiple Restaurants"}, Description: "Award-winning luxury hotel with world-class amenities", Availability: true},
		},
	},
	{
		keys: []string{"dubai"},
		hotels: []Hotel{
			{ID: "dubai-1", Name: "Burj Al Arab Jumeirah", Rating: 4.9, Price: 210000, Currency: "INR", Image: "https://images.unsplash.com/photo-1566073771259-6a8506099945", Location: "Jumeirah Beach, Dubai", Amenities: []string{"WiFi", "Private Beach", "Spa", "Helicopter Pad"}, Description: "Iconic sail-shaped luxury hotel", Availability: true},
			{ID: "dubai-2", Name: "Atlantis The Palm", Rating: 4.6, Price: 68000, Currency: "INR", Image: "https://images.unsplash.com/photo-1571896349842-33c89424de2d", Location: "Palm Jumeirah, Dubai", Amenities: []string{"WiFi", "Aquarium", "Water Park", "Beach"}, Description: "Resort with underwater suites and aquarium views", Availability: true},
		},
	},
	{
		keys: []string{"singapore"},
		hotels: []Hotel{
			{ID: "singapore-1", Name: "Marina Bay Sands", Rating: 4.4, Price: 38000, Currency: "INR", Image: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4", Location: "Marina Bay, Singapore", Amenities: []string{"WiFi", "Infinity Pool", "Casino", "Shopping"}, Description: "Iconic hotel with rooftop infinity pool", Availability: true},
			{ID: "singapore-2", Name: "Raffles Singapore", Rating: 4.7, Price: 55000, Currency: "INR", Image: "https://images.unsplash.com/photo-1566073771259-6a8506099945", Location: "Beach Road, Singapore", Amenities: []string{"WiFi", "Spa", "Heritage", "Butler Service"}, Description: "Historic colonial hotel, birthplace of Singapore Sling", Availability: true},
		},
	},
	{
		keys: []string{"rome"},
		hotels: []Hotel{
			{ID: "rome-1", Name: "Hotel de Russie", Rating: 4.7, Price: 45000, Currency: "INR", Image: "https://images.unsplash.com/photo-1566073771259-6a8506099945", Location: "Via del Babuino, Rome", Amenities: []string{"WiFi", "Garden", "Restaurant", "Spa", "Concierge"}, Description: "Elegant hotel near the Spanish Steps", Availability: true},
			{ID: "rome-2", Name: "The St. Regis Rome", Rating: 4.6, Price: 58000, Currency: "INR", Image: "https://images.unsplash.com/photo-1571896349842-33c89424de2d", Location: "Via Vittorio Emanuele Orlando, Rome", Amenities: []string{"WiFi", "Restaurant", "Bar", "Concierge", "Butler"}, Description: "Luxury hotel in the heart of historic Rome", Availability: true},
		},
	},
}

// ResolveHotels returns curated hotel records for a city. Known destinations
// get their hand-picked set; anything else gets a three-entry set templated
// from the city name, differentiated by tier (upscale / budget / business).
// Blank input yields nil.
func ResolveHotels(city string) []Hotel {
	normalized := normalizeCity(city)
	if normalized == "" {
		return nil
	}

	for _, dest := range hotelCatalog {
		for _, key := range dest.keys {
			if strings.Contains(normalized, key) {
				return append([]Hotel(nil), dest.hotels...)
			}
		}
	}

	display := displayCity(city)
	slug := citySlug(normalized)
	return []Hotel{
		{
			ID: slug + "-fallback-1", Name: "Grand " + display + " Hotel", Rating: 4.5, Price: 8500, Currency: "INR",
			Image:    "https://images.unsplash.com/photo-1566073771259-6a8506099945",
			Location: display + " City Center", Amenities: []string{"WiFi", "Pool", "Gym", "Restaurant"},
			Description: "Luxurious hotel in the heart of " + display, Availability: true,
		},
		{
			ID: slug + "-fallback-2", Name: display + " Comfort Inn & Suites", Rating: 4.0, Price: 6000, Currency: "INR",
			Image:    "https://images.unsplash.com/photo-1571896349842-33c89424de2d",
			Location: display + " Downtown", Amenities: []string{"WiFi", "Breakfast", "Parking"},
			Description: "Comfortable and affordable accommodation in " + display, Availability: true,
		},
		{
			ID: slug + "-fallback-3", Name: display + " Business Hotel", Rating: 4.2, Price: 7000, Currency: "INR",
			Image:    "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4",
			Location: display + " Business District", Amenities: []string{"WiFi", "Business Center", "Conference Rooms", "Gym"},
			Description: "Modern business hotel perfect for corporate travelers in " + display, Availability: true,
		},
	}
}

// ResolveRestaurants returns the curated dining options for a city. There is
// no live restaurant upstream, so every city gets the same four-tier set with
// ids and locations derived from the city name. Blank input yields nil.
func ResolveRestaurants(city string) []Restaurant {
	normalized := normalizeCity(city)
	if normalized == "" {
		return nil
	}

	display := displayCity(city)
	slug := citySlug(normalized)
	return []Restaurant{
		{
			ID: slug + "-restaurant-1", Name: "Local Flavors Bistro", Cuisine: "Local", PriceRange: "$$",
			AveragePrice: 25, Rating: 4.5, Reviews: 234, Location: "Downtown, " + display,
			OpenHours:   "11:00 AM - 10:00 PM",
			Specialties: []string{"Traditional dishes", "Fresh seafood", "Local wine"},
			Image:       "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4",
		},
		{
			ID: slug + "-restaurant-2", Name: "Street Food Paradise", Cuisine: "Street Food", PriceRange: "$",
			AveragePrice: 8, Rating: 4.2, Reviews: 456, Location: "Market District, " + display,
			OpenHours:   "6:00 AM - 11:00 PM",
			Specialties: []string{"Quick bites", "Local snacks", "Fresh juices"},
			Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b",
		},
		{
			ID: slug + "-restaurant-3", Name: "Fine Dining Experience", Cuisine: "International", PriceRange: "$$$",
			AveragePrice: 75, Rating: 4.7, Reviews: 128, Location: "Uptown, " + display,
			OpenHours:   "6:00 PM - 12:00 AM",
			Specialties: []string{"Gourmet cuisine", "Wine pairing", "Chef specials"},
			Image:       "https://images.unsplash.com/photo-1414235077428-338989a2e8c0",
		},
		{
			ID: slug + "-restaurant-4", Name: "Family Corner Cafe", Cuisine: "Cafe", PriceRange: "$",
			AveragePrice: 12, Rating: 4.1, Reviews: 167, Location: "Residential Area, " + display,
			OpenHours:   "7:00 AM - 6:00 PM",
			Specialties: []string{"Coffee", "Pastries", "Light meals"},
			Image:       "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb",
		},
	}
}

// ResolveTransportation returns the curated transport options for a city.
// Blank input yields nil.
func ResolveTransportation(city string) []Transportation {
	normalized := normalizeCity(city)
	if normalized == "" {
		return nil
	}

	slug := citySlug(normalized)
	return []Transportation{
		{ID: slug + "-transport-1", Name: "City Taxi", Type: TransportTaxi, BasePrice: 5, PerKmPrice: 2, Rating: 4.0, Reviews: 892, Capacity: 4, EstimatedWaitTime: "5-10 min"},
		{ID: slug + "-transport-2", Name: "Ride Hailing", Type: TransportRideshare, BasePrice: 4, PerKmPrice: 1.8, Rating: 4.3, Reviews: 1234, Capacity: 4, EstimatedWaitTime: "3-7 min"},
		{ID: slug + "-transport-3", Name: "Local Ride Share", Type: TransportLocal, BasePrice: 3, PerKmPrice: 1.5, Rating: 3.9, Reviews: 456, Capacity: 6, EstimatedWaitTime: "8-15 min"},
		{ID: slug + "-transport-4", Name: "Car Rental", Type: TransportRental, BasePrice: 35, PerKmPrice: 0, Rating: 4.2, Reviews: 324, Capacity: 5, EstimatedWaitTime: "Pick up anytime"},
	}
}

// ─── Normalization helpers ────────────────────────────────────────────────────

var whitespaceRun = regexp.MustCompile(`\s+`)

func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// displayCity capitalizes the first letter and lowercases the rest, matching
// how templated names and locations present the city.
func displayCity(city string) string {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return ""
	}
	runes := []rune(strings.ToLower(trimmed))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func citySlug(normalized string) string {
	return whitespaceRun.ReplaceAllString(normalized, "-")
}
