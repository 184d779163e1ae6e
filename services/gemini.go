package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ─── Gemini itinerary client ──────────────────────────────────────────────────

// ItineraryClient generates day-by-day travel itineraries through the Gemini
// generateContent API. Unlike the hotel path there is no fallback narrative:
// when the upstream fails, the caller gets an explicit error and nothing is
// invented locally.
type ItineraryClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewItineraryClient(baseURL, apiKey string) *ItineraryClient {
	return &ItineraryClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// TripRequest describes the trip the itinerary is generated for. City, budget
// and days are required; the caller validates them before handing the request
// over.
type TripRequest struct {
	City         string `json:"city" binding:"required"`
	Budget       string `json:"budget" binding:"required"`
	Days         int    `json:"days" binding:"required,gt=0,lte=30"`
	TravelerType string `json:"travelerType"`
	Preferences  string `json:"preferences"`
}

// ItineraryResult carries either the generated narrative or an error
// description, never both.
type ItineraryResult struct {
	Success   bool   `json:"success"`
	Itinerary string `json:"itinerary,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Placeholder returned when the upstream call succeeds but the response holds
// no usable text.
const emptyItineraryText = "Unable to generate itinerary. Please try again."

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate renders the itinerary prompt, sends it to Gemini and extracts the
// first candidate's first text segment.
func (c *ItineraryClient) Generate(req TripRequest) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini API key not configured")
	}

	prompt := BuildItineraryPrompt(req)

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+"?key="+c.apiKey, bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, string(body))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse gemini response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 ||
		len(geminiResp.Candidates[0].Content.Parts) == 0 ||
		geminiResp.Candidates[0].Content.Parts[0].Text == "" {
		// The call itself succeeded, so surface a placeholder instead of
		// failing.
		return emptyItineraryText, nil
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// BuildItineraryPrompt renders the structured planning prompt for a trip.
// Deterministic: the same request always produces the same prompt.
func BuildItineraryPrompt(req TripRequest) string {
	travelerType := req.TravelerType
	if travelerType == "" {
		travelerType = "General"
	}
	preferences := req.Preferences
	if preferences == "" {
		preferences = "General tourism"
	}

	return fmt.Sprintf(`You are an expert travel planner and local guide. Generate a detailed, day-by-day travel itinerary based on these inputs:

City: %s
Budget: %s (per day or total, mention accordingly)
Number of Days: %d
Traveler Type: %s
Preferences: %s

Create a structured daily itinerary for %d days in %s, optimized for the given budget %s.

Each day must include:
- Morning activity (with estimated cost & time)
- Afternoon activity (with estimated cost & time)
- Evening activity (with estimated cost & time)
- Dining recommendations (breakfast, lunch, dinner, and 1 unique local snack or café)
- Suggested transportation options
- Daily budget breakdown

Add maps or landmark references for clarity. Provide daily summaries (2-3 sentences) that capture the overall experience. Ensure budget tracking per day. Highlight at least one hidden gem or local-only recommendation per day.

End with an overall summary of the trip, estimated total cost, and any tips (safety, best local apps, cultural etiquette).

Format with clear headings and structure. Be friendly, engaging, and travel-magazine style.`,
		req.City, req.Budget, req.Days, travelerType, preferences,
		req.Days, req.City, req.Budget)
}
