package amadeus

import (
	"context"
	"net/url"
)

// FlightDatesQuery describes one Flight Cheapest Date Search call.
type FlightDatesQuery struct {
	Origin        string
	Destination   string
	DepartureDate string // YYYY-MM-DD
	Duration      string // optional range in days, e.g. "1-7"
}

// FlightDatesResponse wraps the API response for flight-dates searches.
// Data is ordered by the provider's own fare ranking.
type FlightDatesResponse struct {
	Data []FlightDate `json:"data"`
}

// FlightDate is one candidate date pair for a route. Amadeus populates
// these records sparsely; optional fields are pointers so absence stays
// observable instead of collapsing into zero values.
type FlightDate struct {
	Type          string     `json:"type"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureDate *string    `json:"departureDate"`
	ReturnDate    *string    `json:"returnDate"`
	Price         *DatePrice `json:"price"`
}

// DatePrice is the fare attached to a FlightDate.
type DatePrice struct {
	Total    *string `json:"total"`
	Currency *string `json:"currency"`
}

// SearchFlightDates queries the Flight Cheapest Date Search API. The
// duration parameter is sent only when set; Amadeus otherwise searches
// across durations.
func (c *Client) SearchFlightDates(ctx context.Context, q FlightDatesQuery) (*FlightDatesResponse, error) {
	v := url.Values{}
	v.Set("origin", q.Origin)
	v.Set("destination", q.Destination)
	v.Set("departureDate", q.DepartureDate)
	if q.Duration != "" {
		v.Set("duration", q.Duration)
	}

	var result FlightDatesResponse
	if err := c.getJSON(ctx, "/v1/shopping/flight-dates", v, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
