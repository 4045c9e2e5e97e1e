package core

import (
	"context"
	"fmt"
	"time"

	"github.com/faredesk/faredesk/tools"
)

// TimeContextProvider tells the agent what time it is. It is consulted
// before every turn so the model can resolve relative dates ("next Friday",
// "in two weeks") against the real clock. The output is never cached: it is
// time-sensitive by definition.
type TimeContextProvider struct {
	Now func() time.Time
}

// NewTimeContextProvider creates the provider and registers it for per-turn
// context injection.
func NewTimeContextProvider(registry *tools.Registry) *TimeContextProvider {
	p := &TimeContextProvider{Now: time.Now}
	if registry != nil {
		registry.RegisterInstructions(p)
	}
	return p
}

// Instructions returns one sentence group naming the local date, the local
// clock time with its zone label, and the UTC clock time. When the runtime
// cannot name the zone the label degrades to "Local".
func (p *TimeContextProvider) Instructions(ctx context.Context) string {
	now := p.Now()

	zone, _ := now.Zone()
	if zone == "" {
		zone = "Local"
	}

	return fmt.Sprintf(
		"Today is %s. The current local time is %s %s. The current UTC time is %s.",
		now.Format("Monday, January 2, 2006"),
		now.Format("3:04 PM"), zone,
		now.UTC().Format("3:04 PM"),
	)
}
