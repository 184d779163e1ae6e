package handlers

import (
	"net/http"

	"tripwise/services"

	"github.com/gin-gonic/gin"
)

// HotelsHandler serves the resilient hotel aggregation endpoint. The response
// always carries displayable hotel data: live prices when the upstream
// cooperates, curated fallback records (marked as such) when it does not.
func HotelsHandler(client *services.HotelClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query services.HotelQuery
		if err := c.ShouldBindJSON(&query); err != nil {
			c.JSON(http.StatusBadRequest, services.HotelQueryResult{
				Success: false,
				Error:   "Invalid request: " + err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, client.FetchHotels(query))
	}
}

// HotelsProxyHandler forwards the query to the pricing upstream and relays
// the upstream status and body verbatim, so callers see exactly what the
// provider returned.
func HotelsProxyHandler(client *services.HotelClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query services.HotelQuery
		if err := c.ShouldBindJSON(&query); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		status, body, err := client.ProxyHotels(query)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.Data(status, "application/json", body)
	}
}
