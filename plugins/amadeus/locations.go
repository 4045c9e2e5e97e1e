package amadeus

import (
	"context"
	"net/url"
	"strconv"
)

// LocationSearchResponse wraps the API response for location searches.
type LocationSearchResponse struct {
	Data []Location `json:"data"`
}

// Location is a single airport result. Name and address details are
// optional; the address block in particular is frequently incomplete.
type Location struct {
	SubType  string   `json:"subType"`
	Name     *string  `json:"name"`
	IataCode *string  `json:"iataCode"`
	Address  *Address `json:"address"`
}

// Address contains location details
type Address struct {
	CityName    *string `json:"cityName"`
	CityCode    *string `json:"cityCode"`
	CountryName *string `json:"countryName"`
	CountryCode *string `json:"countryCode"`
}

// SearchAirports searches airports by city or airport name. Results are
// restricted to the AIRPORT subtype and capped at the display limit; the
// provider orders them by relevance.
func (c *Client) SearchAirports(ctx context.Context, keyword string) (*LocationSearchResponse, error) {
	v := url.Values{}
	v.Set("keyword", keyword)
	v.Set("subType", "AIRPORT")
	v.Set("page[limit]", strconv.Itoa(maxListedResults))

	var result LocationSearchResponse
	if err := c.getJSON(ctx, "/v1/reference-data/locations", v, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
