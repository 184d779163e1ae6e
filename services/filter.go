package services

// FilterCriteria narrows a list of travel options by price and rating.
// The price range is inclusive on both ends; MinRating is an inclusive floor.
type FilterCriteria struct {
	MinPrice  float64 `json:"minPrice"`
	MaxPrice  float64 `json:"maxPrice"`
	MinRating float64 `json:"minRating"`
}

// Filter returns the options whose price falls inside the criteria's range
// and whose rating meets the threshold. Input order is preserved and the
// input slice is never modified.
func Filter[T TravelOption](options []T, c FilterCriteria) []T {
	matched := make([]T, 0, len(options))
	for _, opt := range options {
		price := opt.PricePoint()
		if price < c.MinPrice || price > c.MaxPrice {
			continue
		}
		if opt.StarRating() < c.MinRating {
			continue
		}
		matched = append(matched, opt)
	}
	return matched
}
