package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/faredesk/faredesk/log"
	"github.com/faredesk/faredesk/tools"
)

// Toolset holds the Amadeus search tools, all sharing one client source.
type Toolset struct {
	CheapestDates *CheapestDateTool
	FlightOffers  *FlightOffersTool
	Airports      *AirportSearchTool
}

// NewToolset wires the three search tools to a shared client source and
// registers them. The client itself is constructed lazily on the first
// tool call; a credential problem surfaces there, as an error, and is the
// only failure a tool propagates instead of rendering to text.
func NewToolset(source *ClientSource, gk *genkit.Genkit, registry *tools.Registry) *Toolset {
	return &Toolset{
		CheapestDates: NewCheapestDateTool(source, gk, registry),
		FlightOffers:  NewFlightOffersTool(source, gk, registry),
		Airports:      NewAirportSearchTool(source, gk, registry),
	}
}

func decodeArgs[T any](args map[string]interface{}) (*T, error) {
	in := new(T)
	b, _ := json.Marshal(args)
	if err := json.Unmarshal(b, in); err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}
	return in, nil
}

// --- Cheapest Date Tool ---

// CheapestDateInput are the arguments for the cheapest-dates search.
type CheapestDateInput struct {
	Origin        string `json:"origin" description:"IATA code of the departure city (e.g. 'LAX')"`
	Destination   string `json:"destination" description:"IATA code of the arrival city (e.g. 'CDG')"`
	DepartureDate string `json:"departure_date,omitempty" description:"Optional departure date (YYYY-MM-DD). Defaults to 30 days from now."`
	Duration      string `json:"duration,omitempty" description:"Optional trip duration range in days (e.g. '1-7')"`
}

// CheapestDateTool finds the cheapest dates to fly a route.
type CheapestDateTool struct {
	Source *ClientSource
	Now    func() time.Time
}

func NewCheapestDateTool(source *ClientSource, gk *genkit.Genkit, registry *tools.Registry) *CheapestDateTool {
	t := &CheapestDateTool{Source: source, Now: time.Now}
	if gk == nil || registry == nil {
		return t
	}
	registry.Register(genkit.DefineTool[*CheapestDateInput, string](
		gk,
		t.Name(),
		t.Description(),
		func(ctx *ai.ToolContext, input *CheapestDateInput) (string, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		in, err := decodeArgs[CheapestDateInput](args)
		if err != nil {
			return nil, err
		}
		return t.Execute(ctx, in)
	})
	return t
}

func (t *CheapestDateTool) Name() string {
	return "amadeus_cheapest_dates"
}

func (t *CheapestDateTool) Description() string {
	return "Finds the cheapest travel dates for a route. Arguments: origin (IATA code), destination (IATA code), optional departure_date (YYYY-MM-DD), optional duration range (e.g. '1-7')."
}

// Execute runs one cheapest-date search and returns the formatted result.
// When no departure date is given, the search starts a month out rather
// than from today.
func (t *CheapestDateTool) Execute(ctx context.Context, input *CheapestDateInput) (string, error) {
	inputJSON, _ := json.Marshal(input)
	log.Debugf(ctx, "CheapestDateTool executing with input: %s", string(inputJSON))

	client, err := t.Source.Get()
	if err != nil {
		return "", err
	}

	if input == nil || input.Origin == "" || input.Destination == "" {
		return formatToolError(t.action(), fmt.Errorf("origin and destination are required")), nil
	}

	departureDate := input.DepartureDate
	if departureDate == "" {
		departureDate = t.Now().AddDate(0, 0, 30).Format("2006-01-02")
	}

	resp, err := client.SearchFlightDates(ctx, FlightDatesQuery{
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureDate: departureDate,
		Duration:      input.Duration,
	})
	if err != nil {
		log.Errorf(ctx, "CheapestDateTool failed: %v", err)
		return formatToolError(t.action(), err), nil
	}

	log.Debugf(ctx, "CheapestDateTool completed successfully. Found %d date pairs.", len(resp.Data))
	return renderCheapestDates(input.Origin, input.Destination, resp.Data), nil
}

func (t *CheapestDateTool) action() string {
	return "searching for cheapest travel days"
}

// --- Flight Offers Tool ---

// FlightOffersInput are the arguments for the flight-offers search.
type FlightOffersInput struct {
	Origin        string `json:"origin" description:"IATA code of the departure airport (e.g. 'JFK')"`
	Destination   string `json:"destination" description:"IATA code of the arrival airport (e.g. 'LAX')"`
	DepartureDate string `json:"departure_date" description:"Departure date (YYYY-MM-DD)"`
	ReturnDate    string `json:"return_date,omitempty" description:"Optional return date (YYYY-MM-DD) for round trips"`
	Adults        int    `json:"adults,omitempty" description:"Number of adult passengers (default 1)"`
	TravelClass   string `json:"travel_class,omitempty" description:"Cabin class: ECONOMY, PREMIUM_ECONOMY, BUSINESS or FIRST"`
	MaxResults    int    `json:"max_results,omitempty" description:"Maximum number of offers to return (default 5)"`
	NonStop       bool   `json:"non_stop,omitempty" description:"Only return non-stop flights"`
	Currency      string `json:"currency,omitempty" description:"Preferred currency code (default USD)"`
}

// FlightOffersTool searches priced flight offers with full details.
type FlightOffersTool struct {
	Source *ClientSource
}

func NewFlightOffersTool(source *ClientSource, gk *genkit.Genkit, registry *tools.Registry) *FlightOffersTool {
	t := &FlightOffersTool{Source: source}
	if gk == nil || registry == nil {
		return t
	}
	registry.Register(genkit.DefineTool[*FlightOffersInput, string](
		gk,
		t.Name(),
		t.Description(),
		func(ctx *ai.ToolContext, input *FlightOffersInput) (string, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		in, err := decodeArgs[FlightOffersInput](args)
		if err != nil {
			return nil, err
		}
		return t.Execute(ctx, in)
	})
	return t
}

func (t *FlightOffersTool) Name() string {
	return "amadeus_flight_offers"
}

func (t *FlightOffersTool) Description() string {
	return "Searches for flight offers with prices, times and airlines. Arguments: origin (IATA), destination (IATA), departure_date (YYYY-MM-DD), optional return_date, adults, travel_class, max_results, non_stop, currency."
}

// Execute runs one flight-offers search and returns the formatted result.
func (t *FlightOffersTool) Execute(ctx context.Context, input *FlightOffersInput) (string, error) {
	inputJSON, _ := json.Marshal(input)
	log.Debugf(ctx, "FlightOffersTool executing with input: %s", string(inputJSON))

	client, err := t.Source.Get()
	if err != nil {
		return "", err
	}

	if input == nil || input.Origin == "" || input.Destination == "" || input.DepartureDate == "" {
		return formatToolError(t.action(), fmt.Errorf("origin, destination and departure_date are required")), nil
	}

	query := FlightOffersQuery{
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		ReturnDate:    input.ReturnDate,
		Adults:        input.Adults,
		TravelClass:   input.TravelClass,
		MaxResults:    input.MaxResults,
		NonStop:       input.NonStop,
		Currency:      input.Currency,
	}

	resp, err := client.SearchFlightOffers(ctx, query)
	if err != nil {
		log.Errorf(ctx, "FlightOffersTool failed: %v", err)
		return formatToolError(t.action(), err), nil
	}

	log.Debugf(ctx, "FlightOffersTool completed successfully. Found %d offers.", len(resp.Data))
	return renderFlightOffers(query, resp.Data), nil
}

func (t *FlightOffersTool) action() string {
	return "searching for flight offers"
}

// --- Airport Search Tool ---

// AirportSearchInput are the arguments for the airport lookup.
type AirportSearchInput struct {
	Keyword string `json:"keyword" description:"City or airport name to search for (e.g. 'Paris'). Use the full name, not abbreviations."`
}

// AirportSearchTool resolves city or airport names to IATA codes.
type AirportSearchTool struct {
	Source *ClientSource
}

func NewAirportSearchTool(source *ClientSource, gk *genkit.Genkit, registry *tools.Registry) *AirportSearchTool {
	t := &AirportSearchTool{Source: source}
	if gk == nil || registry == nil {
		return t
	}
	registry.Register(genkit.DefineTool[*AirportSearchInput, string](
		gk,
		t.Name(),
		t.Description(),
		func(ctx *ai.ToolContext, input *AirportSearchInput) (string, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		keyword, ok := args["keyword"].(string)
		if !ok {
			return nil, fmt.Errorf("keyword is required")
		}
		return t.Execute(ctx, &AirportSearchInput{Keyword: keyword})
	})
	return t
}

func (t *AirportSearchTool) Name() string {
	return "amadeus_airport_search"
}

func (t *AirportSearchTool) Description() string {
	return "Finds IATA airport codes for a city or airport name. Arguments: keyword (string, e.g. 'Paris')."
}

// Execute runs one airport lookup and returns the formatted result.
func (t *AirportSearchTool) Execute(ctx context.Context, input *AirportSearchInput) (string, error) {
	inputJSON, _ := json.Marshal(input)
	log.Debugf(ctx, "AirportSearchTool executing with input: %s", string(inputJSON))

	client, err := t.Source.Get()
	if err != nil {
		return "", err
	}

	if input == nil || input.Keyword == "" {
		return formatToolError(t.action(), fmt.Errorf("keyword is required")), nil
	}

	resp, err := client.SearchAirports(ctx, input.Keyword)
	if err != nil {
		log.Errorf(ctx, "AirportSearchTool failed: %v", err)
		return formatToolError(t.action(), err), nil
	}

	log.Debugf(ctx, "AirportSearchTool completed successfully. Found %d airports.", len(resp.Data))
	return renderAirports(input.Keyword, resp.Data), nil
}

func (t *AirportSearchTool) action() string {
	return "searching for airports"
}
