package amadeus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAmadeusServer creates a test server that mocks Amadeus endpoints and
// records the query parameters of the last search request.
func mockAmadeusServer(lastQuery *map[string][]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v1/security/oauth2/token":
			json.NewEncoder(w).Encode(AuthToken{
				AccessToken: "test_token",
				ExpiresIn:   1800,
				TokenType:   "Bearer",
			})
		case "/v1/shopping/flight-dates":
			if lastQuery != nil {
				*lastQuery = r.URL.Query()
			}
			json.NewEncoder(w).Encode(FlightDatesResponse{
				Data: []FlightDate{{
					DepartureDate: strPtr("2026-07-01"),
					Price:         &DatePrice{Total: strPtr("450"), Currency: strPtr("USD")},
				}},
			})
		case "/v2/shopping/flight-offers":
			if lastQuery != nil {
				*lastQuery = r.URL.Query()
			}
			json.NewEncoder(w).Encode(FlightOffersResponse{
				Data: []FlightOffer{{ID: "1"}},
			})
		case "/v1/reference-data/locations":
			if lastQuery != nil {
				*lastQuery = r.URL.Query()
			}
			json.NewEncoder(w).Encode(LocationSearchResponse{
				Data: []Location{{
					SubType:  "AIRPORT",
					Name:     strPtr("CHARLES DE GAULLE"),
					IataCode: strPtr("CDG"),
					Address: &Address{
						CityName:    strPtr("PARIS"),
						CountryName: strPtr("FRANCE"),
					},
				}},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func strPtr(s string) *string { return &s }

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient("id", "secret", false)
	require.NoError(t, err)
	client.BaseURL = baseURL
	return client
}

func TestNewClient_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		secret string
	}{
		{"KeyAbsent", "", "secret"},
		{"SecretAbsent", "key", ""},
		{"BothAbsent", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.key, tt.secret, false)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, ErrMissingCredentials)
		})
	}
}

func TestNewClient_NoNetworkCall(t *testing.T) {
	// Construction only validates credentials; the first request performs
	// authentication.
	var hits int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer ts.Close()

	client, err := NewClient("id", "secret", false)
	require.NoError(t, err)
	client.BaseURL = ts.URL

	assert.Zero(t, hits)
}

func TestClient_Authenticate(t *testing.T) {
	ts := mockAmadeusServer(nil)
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	err := client.Authenticate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "test_token", client.token.AccessToken)
}

func TestSearchFlightDates(t *testing.T) {
	var query map[string][]string
	ts := mockAmadeusServer(&query)
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	resp, err := client.SearchFlightDates(context.Background(), FlightDatesQuery{
		Origin:        "LAX",
		Destination:   "CDG",
		DepartureDate: "2026-07-01",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Data)
	assert.Equal(t, "2026-07-01", *resp.Data[0].DepartureDate)

	assert.Equal(t, "LAX", query["origin"][0])
	assert.Equal(t, "CDG", query["destination"][0])
	// The optional duration must not be sent when unset.
	assert.NotContains(t, query, "duration")
}

func TestSearchFlightOffers_DefaultParamsOmitted(t *testing.T) {
	var query map[string][]string
	ts := mockAmadeusServer(&query)
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	_, err := client.SearchFlightOffers(context.Background(), FlightOffersQuery{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2026-06-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "JFK", query["originLocationCode"][0])
	assert.Equal(t, "1", query["adults"][0])
	assert.Equal(t, "USD", query["currencyCode"][0])
	assert.Equal(t, "5", query["max"][0])

	// Default-valued optionals stay out of the request.
	assert.NotContains(t, query, "returnDate")
	assert.NotContains(t, query, "nonStop")
	assert.NotContains(t, query, "travelClass")
}

func TestSearchFlightOffers_NonDefaultParamsIncluded(t *testing.T) {
	var query map[string][]string
	ts := mockAmadeusServer(&query)
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	_, err := client.SearchFlightOffers(context.Background(), FlightOffersQuery{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2026-06-15",
		ReturnDate:    "2026-06-22",
		Adults:        2,
		TravelClass:   "BUSINESS",
		NonStop:       true,
		Currency:      "EUR",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-06-22", query["returnDate"][0])
	assert.Equal(t, "2", query["adults"][0])
	assert.Equal(t, "BUSINESS", query["travelClass"][0])
	assert.Equal(t, "true", query["nonStop"][0])
	assert.Equal(t, "EUR", query["currencyCode"][0])
}

func TestSearchAirports(t *testing.T) {
	var query map[string][]string
	ts := mockAmadeusServer(&query)
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	resp, err := client.SearchAirports(context.Background(), "Paris")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Data)
	assert.Equal(t, "CDG", *resp.Data[0].IataCode)

	assert.Equal(t, "Paris", query["keyword"][0])
	assert.Equal(t, "AIRPORT", query["subType"][0])
}

// apiErrorServer authenticates successfully and rejects every search with a
// standard Amadeus error envelope.
func apiErrorServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/v1/security/oauth2/token" {
			json.NewEncoder(w).Encode(AuthToken{AccessToken: "t", ExpiresIn: 1800})
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"status":400,"code":477,"title":"INVALID FORMAT","detail":"origin must be a valid IATA code"}]}`))
	}))
}

func TestGetJSON_APIError(t *testing.T) {
	ts := apiErrorServer()
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	_, err := client.SearchFlightDates(context.Background(), FlightDatesQuery{
		Origin:        "XXXX",
		Destination:   "CDG",
		DepartureDate: "2026-07-01",
	})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "origin must be a valid IATA code", apiErr.Description())
}

func TestClientSource_SingleFlight(t *testing.T) {
	var builds int
	source := &ClientSource{
		build: func() (*Client, error) {
			builds++
			return NewClient("id", "secret", false)
		},
	}

	const callers = 16
	clients := make([]*Client, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := source.Get()
			assert.NoError(t, err)
			clients[i] = c
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, builds)
	for i := 1; i < callers; i++ {
		assert.Same(t, clients[0], clients[i])
	}
}

func TestClientSource_ConstructionFailureShared(t *testing.T) {
	source := NewClientSource("", "", false)

	c1, err1 := source.Get()
	c2, err2 := source.Get()

	assert.Nil(t, c1)
	assert.Nil(t, c2)
	assert.ErrorIs(t, err1, ErrMissingCredentials)
	assert.ErrorIs(t, err2, ErrMissingCredentials)
}
