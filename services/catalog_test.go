package services_test

import (
	"testing"

	"tripwise/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHotels_CaseAndWhitespaceInsensitive(t *testing.T) {
	base := services.ResolveHotels("Paris")
	require.NotEmpty(t, base)

	assert.Equal(t, base, services.ResolveHotels("paris"))
	assert.Equal(t, base, services.ResolveHotels("  PARIS  "))
}

func TestResolveHotels_KnownCityAliases(t *testing.T) {
	assert.Equal(t, services.ResolveHotels("Mumbai"), services.ResolveHotels("Bombay"))
	assert.Equal(t, services.ResolveHotels("New York"), services.ResolveHotels("NewYork"))
}

func TestResolveHotels_UnknownCityTemplated(t *testing.T) {
	hotels := services.ResolveHotels("Zanzibar")

	require.Len(t, hotels, 3)
	for _, h := range hotels {
		assert.Contains(t, h.Name+h.Location, "Zanzibar")
		assert.Contains(t, h.ID, "zanzibar-fallback")
	}
}

func TestResolveHotels_MultiWordCitySlug(t *testing.T) {
	hotels := services.ResolveHotels("Addis Ababa")

	require.Len(t, hotels, 3)
	assert.Equal(t, "addis-ababa-fallback-1", hotels[0].ID)
	assert.Contains(t, hotels[0].Name, "Addis ababa")
}

func TestResolveHotels_AllRecordsWithinBounds(t *testing.T) {
	cities := []string{
		"Lucknow", "Paris", "Tokyo", "New York", "London", "Barcelona",
		"Mumbai", "Delhi", "Dubai", "Singapore", "Rome", "Zanzibar", "Ulaanbaatar",
	}

	for _, city := range cities {
		hotels := services.ResolveHotels(city)
		require.NotEmpty(t, hotels, "city %q", city)
		for _, h := range hotels {
			assert.GreaterOrEqual(t, h.Rating, 0.0, "city %q hotel %s", city, h.ID)
			assert.LessOrEqual(t, h.Rating, 5.0, "city %q hotel %s", city, h.ID)
			assert.GreaterOrEqual(t, h.Price, 0.0, "city %q hotel %s", city, h.ID)
			assert.NotEmpty(t, h.ID, "city %q", city)
			assert.NotEmpty(t, h.Name, "city %q", city)
		}
	}
}

func TestResolveHotels_Deterministic(t *testing.T) {
	assert.Equal(t, services.ResolveHotels("Tokyo"), services.ResolveHotels("Tokyo"))
	assert.Equal(t, services.ResolveHotels("Quito"), services.ResolveHotels("Quito"))
}

func TestResolveHotels_BlankInput(t *testing.T) {
	assert.Empty(t, services.ResolveHotels(""))
	assert.Empty(t, services.ResolveHotels("   "))
}

func TestResolveRestaurants(t *testing.T) {
	restaurants := services.ResolveRestaurants("Lisbon")

	require.Len(t, restaurants, 4)
	for _, r := range restaurants {
		assert.Contains(t, r.ID, "lisbon-restaurant")
		assert.Contains(t, r.Location, "Lisbon")
		assert.GreaterOrEqual(t, r.Rating, 0.0)
		assert.LessOrEqual(t, r.Rating, 5.0)
		assert.Greater(t, r.AveragePrice, 0.0)
	}

	assert.Equal(t, restaurants, services.ResolveRestaurants("  lisbon "))
	assert.Empty(t, services.ResolveRestaurants(" "))
}

func TestResolveTransportation(t *testing.T) {
	transport := services.ResolveTransportation("Oslo")

	require.Len(t, transport, 4)
	modes := make([]string, 0, len(transport))
	for _, tr := range transport {
		assert.Contains(t, tr.ID, "oslo-transport")
		assert.GreaterOrEqual(t, tr.Rating, 0.0)
		assert.LessOrEqual(t, tr.Rating, 5.0)
		assert.GreaterOrEqual(t, tr.BasePrice, 0.0)
		assert.Positive(t, tr.Capacity)
		modes = append(modes, tr.Type)
	}
	assert.ElementsMatch(t, []string{
		services.TransportTaxi,
		services.TransportRideshare,
		services.TransportLocal,
		services.TransportRental,
	}, modes)

	assert.Empty(t, services.ResolveTransportation(""))
}
