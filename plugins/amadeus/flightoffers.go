package amadeus

import (
	"context"
	"net/url"
	"strconv"
)

// Provider-side defaults. Optional query fields that match these values are
// omitted from the outgoing request entirely rather than sent explicitly.
const (
	DefaultTravelClass = "ECONOMY"
	DefaultCurrency    = "USD"
	DefaultMaxResults  = 5
)

// FlightOffersQuery describes one Flight Offers Search call.
type FlightOffersQuery struct {
	Origin        string
	Destination   string
	DepartureDate string // YYYY-MM-DD, required
	ReturnDate    string // optional; presence makes the search round-trip
	Adults        int    // defaults to 1
	TravelClass   string // sent only when different from ECONOMY
	MaxResults    int    // defaults to DefaultMaxResults
	NonStop       bool   // sent only when true
	Currency      string // defaults to USD
}

func (q FlightOffersQuery) adults() int {
	if q.Adults <= 0 {
		return 1
	}
	return q.Adults
}

func (q FlightOffersQuery) max() int {
	if q.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return q.MaxResults
}

func (q FlightOffersQuery) currency() string {
	if q.Currency == "" {
		return DefaultCurrency
	}
	return q.Currency
}

// values builds the request parameters, leaving out every optional field
// that still holds its provider default.
func (q FlightOffersQuery) values() url.Values {
	v := url.Values{}
	v.Set("originLocationCode", q.Origin)
	v.Set("destinationLocationCode", q.Destination)
	v.Set("departureDate", q.DepartureDate)
	v.Set("adults", strconv.Itoa(q.adults()))
	v.Set("currencyCode", q.currency())
	v.Set("max", strconv.Itoa(q.max()))

	if q.ReturnDate != "" {
		v.Set("returnDate", q.ReturnDate)
	}
	if q.NonStop {
		v.Set("nonStop", "true")
	}
	if q.TravelClass != "" && q.TravelClass != DefaultTravelClass {
		v.Set("travelClass", q.TravelClass)
	}

	return v
}

// FlightOffersResponse wraps the API response for flight-offer searches.
type FlightOffersResponse struct {
	Data []FlightOffer `json:"data"`
}

// FlightOffer is one priced offer. Every nested field may be absent; the
// provider guarantees nothing about record shape, so optional fields are
// pointers and must be checked before use.
type FlightOffer struct {
	ID                     string      `json:"id"`
	OneWay                 bool        `json:"oneWay"`
	NumberOfBookableSeats  int         `json:"numberOfBookableSeats"`
	Itineraries            []Itinerary `json:"itineraries"`
	Price                  *Price      `json:"price"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes"`
}

// Itinerary is one directional leg (outbound or return) of an offer,
// composed of one or more segments.
type Itinerary struct {
	Duration *string   `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is one non-stop flight leg within an itinerary.
type Segment struct {
	Departure     *FlightEndpoint `json:"departure"`
	Arrival       *FlightEndpoint `json:"arrival"`
	CarrierCode   *string         `json:"carrierCode"`
	Number        string          `json:"number"`
	Duration      *string         `json:"duration"`
	NumberOfStops int             `json:"numberOfStops"`
}

// FlightEndpoint is a departure or arrival point of a segment.
type FlightEndpoint struct {
	IataCode *string `json:"iataCode"`
	Terminal *string `json:"terminal"`
	At       *string `json:"at"`
}

// Price is the fare attached to an offer.
type Price struct {
	Currency   *string `json:"currency"`
	Total      *string `json:"total"`
	Base       *string `json:"base"`
	GrandTotal *string `json:"grandTotal"`
}

// SearchFlightOffers queries the Flight Offers Search API.
func (c *Client) SearchFlightOffers(ctx context.Context, q FlightOffersQuery) (*FlightOffersResponse, error) {
	var result FlightOffersResponse
	if err := c.getJSON(ctx, "/v2/shopping/flight-offers", q.values(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
