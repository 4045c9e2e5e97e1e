package amadeus

import "sync"

// ClientSource hands out the single process-wide Amadeus client,
// constructing it on the first request. Concurrent first callers are
// single-flighted: exactly one construction runs and every caller observes
// the same client, or the same construction error. Tools take a source
// rather than a client so that tests can substitute a prebuilt fake.
type ClientSource struct {
	build func() (*Client, error)

	once   sync.Once
	client *Client
	err    error
}

// NewClientSource defers client construction until the first Get. A missing
// credential therefore surfaces on the first tool invocation, not at wiring
// time.
func NewClientSource(apiKey, apiSecret string, isProduction bool) *ClientSource {
	return &ClientSource{
		build: func() (*Client, error) {
			return NewClient(apiKey, apiSecret, isProduction)
		},
	}
}

// NewStaticSource wraps an already-constructed client.
func NewStaticSource(c *Client) *ClientSource {
	return &ClientSource{
		build: func() (*Client, error) {
			return c, nil
		},
	}
}

// Get returns the shared client, constructing it exactly once.
func (s *ClientSource) Get() (*Client, error) {
	s.once.Do(func() {
		s.client, s.err = s.build()
	})
	return s.client, s.err
}
