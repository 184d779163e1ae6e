package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"tripwise/services"

	"github.com/gin-gonic/gin"
)

// RestaurantsHandler serves curated dining options for a city, narrowed by
// the optional price/rating query parameters.
func RestaurantsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		city := c.Query("city")
		if city == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "city is required"})
			return
		}

		criteria, err := filterCriteriaFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		restaurants := services.Filter(services.ResolveRestaurants(city), criteria)
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"restaurants":  restaurants,
			"city":         city,
			"totalResults": len(restaurants),
		})
	}
}

// TransportationHandler serves curated transport options for a city, narrowed
// by the optional price/rating query parameters.
func TransportationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		city := c.Query("city")
		if city == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "city is required"})
			return
		}

		criteria, err := filterCriteriaFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		transport := services.Filter(services.ResolveTransportation(city), criteria)
		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"transportation": transport,
			"city":           city,
			"totalResults":   len(transport),
		})
	}
}

func filterCriteriaFromQuery(c *gin.Context) (services.FilterCriteria, error) {
	criteria := services.FilterCriteria{MaxPrice: math.MaxFloat64}

	var err error
	if criteria.MinPrice, err = floatQuery(c, "minPrice", 0); err != nil {
		return criteria, err
	}
	if criteria.MaxPrice, err = floatQuery(c, "maxPrice", math.MaxFloat64); err != nil {
		return criteria, err
	}
	if criteria.MinRating, err = floatQuery(c, "minRating", 0); err != nil {
		return criteria, err
	}
	return criteria, nil
}

func floatQuery(c *gin.Context, name string, fallback float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}
