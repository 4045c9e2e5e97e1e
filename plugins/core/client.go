package core

import (
	"github.com/firebase/genkit/go/genkit"

	"github.com/faredesk/faredesk/tools"
)

// Client manages the core set of tools and context providers
type Client struct {
	DateTool     *DateTool
	CurrencyTool *CurrencyTool
	TimeContext  *TimeContextProvider
}

// NewClient initializes the core plugin and registers its tools
func NewClient(gk *genkit.Genkit, registry *tools.Registry) *Client {
	return &Client{
		DateTool:     NewDateTool(gk, registry),
		CurrencyTool: NewCurrencyTool(gk, registry),
		TimeContext:  NewTimeContextProvider(registry),
	}
}
