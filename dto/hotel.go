package dto

// HotelSummary is the search projection of a hotel.
type HotelSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// HotelSearchResult is the response body of the hotel search endpoint.
type HotelSearchResult struct {
	Hotels  []HotelSummary `json:"hotels"`
	Message string         `json:"message"`
}
