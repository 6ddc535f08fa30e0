package postcode

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/misbahyunus/python-gems/internal/fetch"
)

const DefaultBaseURL = "http://v0.postcodeapi.com.au"

type State struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// Locality is one suburb matching a postcode.
type Locality struct {
	Name      string  `json:"name"`
	Postcode  int     `json:"postcode"`
	State     State   `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (l Locality) Slug() string {
	return strings.ReplaceAll(strings.ToLower(l.Name), " ", "-")
}

func (l Locality) StateCode() string {
	return strings.ToLower(l.State.Abbreviation)
}

type Client struct {
	fetcher fetch.Fetcher
	baseURL string
}

func NewClient(fetcher fetch.Fetcher, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) URL(postCode int) string {
	return fmt.Sprintf("%s/suburbs/%d.json", c.baseURL, postCode)
}

// Lookup returns the localities sharing postCode. A lookup answered with a
// non-200 status is reported as no localities.
func (c *Client) Lookup(ctx context.Context, postCode int) ([]Locality, error) {
	req := fetch.NewRequest(c.URL(postCode)).WithJSONContentType()

	localities, err := fetch.FetchAndExtract[[]Locality](ctx, c.fetcher, req, fetch.JSONExtractor[[]Locality]{})
	if err != nil {
		var statusErr *fetch.StatusError
		if errors.As(err, &statusErr) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to look up postcode %d: %w", postCode, err)
	}

	return localities, nil
}
