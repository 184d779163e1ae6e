package services_test

import (
	"testing"
	"time"

	"tripwise/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderItineraryPDF(t *testing.T) {
	data, err := services.RenderItineraryPDF(services.ItineraryDocument{
		City:         "Tokyo",
		Budget:       "$100/day",
		Days:         3,
		TravelerType: "Solo",
		Preferences:  "Street food, temples",
		Narrative:    "# Day 1\nArrive and explore Shinjuku.\n\n# Day 2\nDay trip to Kamakura.",
		GeneratedAt:  time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderItineraryPDF_MinimalDocument(t *testing.T) {
	data, err := services.RenderItineraryPDF(services.ItineraryDocument{
		City:      "Quito",
		Budget:    "$50/day",
		Days:      1,
		Narrative: "One short day.",
	})

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
