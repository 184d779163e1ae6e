package services

// ─── Travel option types ──────────────────────────────────────────────────────

// TravelOption is the shape shared by hotels, restaurants and transportation
// records. Each category nominates one comparable price figure (hotels use the
// nightly price, restaurants the average per-person cost, transportation the
// base fare) so the same filter applies to any of them.
type TravelOption interface {
	OptionID() string
	PricePoint() float64
	StarRating() float64
}

type Hotel struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Rating       float64  `json:"rating"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	Image        string   `json:"image"`
	Location     string   `json:"location"`
	Amenities    []string `json:"amenities"`
	Description  string   `json:"description"`
	Availability bool     `json:"availability"`
	Reviews      int      `json:"reviews,omitempty"`
}

func (h Hotel) OptionID() string    { return h.ID }
func (h Hotel) PricePoint() float64 { return h.Price }
func (h Hotel) StarRating() float64 { return h.Rating }

type Restaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Cuisine      string   `json:"cuisine"`
	PriceRange   string   `json:"priceRange"` // $, $$ or $$$
	AveragePrice float64  `json:"averagePrice"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Location     string   `json:"location"`
	OpenHours    string   `json:"openHours"`
	Specialties  []string `json:"specialties"`
	Image        string   `json:"image"`
}

func (r Restaurant) OptionID() string    { return r.ID }
func (r Restaurant) PricePoint() float64 { return r.AveragePrice }
func (r Restaurant) StarRating() float64 { return r.Rating }

// Transportation modes.
const (
	TransportTaxi      = "taxi"
	TransportRideshare = "rideshare"
	TransportLocal     = "local"
	TransportRental    = "rental"
)

type Transportation struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	BasePrice         float64 `json:"basePrice"`
	PerKmPrice        float64 `json:"perKmPrice"`
	Rating            float64 `json:"rating"`
	Reviews           int     `json:"reviews"`
	Capacity          int     `json:"capacity"`
	EstimatedWaitTime string  `json:"estimatedWaitTime"`
}

func (t Transportation) OptionID() string    { return t.ID }
func (t Transportation) PricePoint() float64 { return t.BasePrice }
func (t Transportation) StarRating() float64 { return t.Rating }
