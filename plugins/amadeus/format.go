package amadeus

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// maxListedResults caps every rendered list. Truncation happens in provider
// order: Amadeus ranks by relevance (or fare, for date searches) and
// re-sorting here would discard that ranking.
const maxListedResults = 5

// amadeusTimestamp is the shape Amadeus uses for local flight times. There
// is no zone designator; times are local to the airport.
const amadeusTimestamp = "2006-01-02T15:04:05"

// formatToolError converts a failed call into the user-facing string that
// crosses the tool boundary. Provider-reported failures keep the provider's
// own description; anything else is summarized with the action that was
// being attempted. Tools never surface these as errors.
func formatToolError(action string, err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return "Amadeus API error: " + apiErr.Description()
	}
	return fmt.Sprintf("Error %s: %v", action, err)
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// renderPrice joins currency and amount, tolerating either being absent.
func renderPrice(currency, total string) string {
	return strings.TrimSpace(currency + " " + total)
}

// splitTimestamp breaks a provider timestamp into display date and clock
// parts. The value is parsed rather than sliced by character offset: if the
// provider ever adds fractional seconds or a zone offset, the raw string is
// shown instead of a silently wrong substring.
func splitTimestamp(at string) (date, clock string) {
	if at == "" {
		return "N/A", "N/A"
	}
	t, err := time.Parse(amadeusTimestamp, at)
	if err != nil {
		return at, at
	}
	return t.Format("2006-01-02"), t.Format("15:04")
}

// renderCheapestDates formats a flight-dates result list. Zero results is
// an informative sentence, not an error.
func renderCheapestDates(origin, destination string, dates []FlightDate) string {
	if len(dates) == 0 {
		return fmt.Sprintf("No flight data found for route %s to %s.", origin, destination)
	}
	if len(dates) > maxListedResults {
		dates = dates[:maxListedResults]
	}

	lines := []string{fmt.Sprintf("Cheapest travel dates from %s to %s:", origin, destination)}
	for i, d := range dates {
		date := stringOr(d.DepartureDate, "N/A")

		total, currency := "N/A", ""
		if d.Price != nil {
			total = stringOr(d.Price.Total, "N/A")
			currency = stringOr(d.Price.Currency, "")
		}
		price := renderPrice(currency, total)

		if d.ReturnDate != nil && *d.ReturnDate != "" {
			lines = append(lines, fmt.Sprintf("%d. %s to %s: %s", i+1, date, *d.ReturnDate, price))
		} else {
			lines = append(lines, fmt.Sprintf("%d. %s (one-way): %s", i+1, date, price))
		}
	}

	return strings.Join(lines, "\n")
}

// renderFlightOffers formats a flight-offers result list. The trip type in
// the header reflects whether the caller asked for a return date, not
// whether the provider actually returned a return itinerary.
func renderFlightOffers(q FlightOffersQuery, offers []FlightOffer) string {
	if len(offers) == 0 {
		return fmt.Sprintf("No flight offers found for route %s to %s on %s.",
			q.Origin, q.Destination, q.DepartureDate)
	}

	tripType := "one-way"
	if q.ReturnDate != "" {
		tripType = "round-trip"
	}

	if max := q.max(); len(offers) > max {
		offers = offers[:max]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Flight offers (%s) from %s to %s:\n", tripType, q.Origin, q.Destination)

	for i, offer := range offers {
		total, currency := "N/A", q.currency()
		if offer.Price != nil {
			total = stringOr(offer.Price.Total, "N/A")
			currency = stringOr(offer.Price.Currency, q.currency())
		}

		fmt.Fprintf(&b, "\nOption %d: %s\n", i+1, renderPrice(currency, total))

		for j, itin := range offer.Itineraries {
			leg := "Outbound"
			if j > 0 {
				leg = "Return"
			}
			if len(itin.Segments) == 0 {
				continue
			}

			first := itin.Segments[0]
			last := itin.Segments[len(itin.Segments)-1]

			depCode, depAt := q.Origin, ""
			if first.Departure != nil {
				depCode = stringOr(first.Departure.IataCode, q.Origin)
				depAt = stringOr(first.Departure.At, "")
			}
			arrCode := q.Destination
			if last.Arrival != nil {
				arrCode = stringOr(last.Arrival.IataCode, q.Destination)
			}

			airline := stringOr(first.CarrierCode, "N/A")
			depDate, depClock := splitTimestamp(depAt)

			stops := len(itin.Segments) - 1
			stopsText := "non-stop"
			if stops > 0 {
				stopsText = fmt.Sprintf("%d stop(s)", stops)
			}

			fmt.Fprintf(&b, "  %s: %s → %s on %s at %s (Airline: %s, %s)\n",
				leg, depCode, arrCode, depDate, depClock, airline, stopsText)
			fmt.Fprintf(&b, "  Duration: %s\n", stringOr(itin.Duration, "N/A"))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderAirports formats an airport lookup result list. The city/country
// clause is emitted only when both parts are present; a lone country would
// render as a stray ", Country" fragment.
func renderAirports(keyword string, locations []Location) string {
	if len(locations) == 0 {
		return fmt.Sprintf("No airports found for '%s'.", keyword)
	}
	if len(locations) > maxListedResults {
		locations = locations[:maxListedResults]
	}

	lines := []string{fmt.Sprintf("Airports for '%s':", keyword)}
	for i, l := range locations {
		line := fmt.Sprintf("%d. %s - %s", i+1,
			stringOr(l.IataCode, "N/A"), stringOr(l.Name, "N/A"))

		if l.Address != nil {
			city := stringOr(l.Address.CityName, "")
			country := stringOr(l.Address.CountryName, "")
			if city != "" && country != "" {
				line = fmt.Sprintf("%s (%s, %s)", line, city, country)
			}
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
