package bom

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/misbahyunus/python-gems/internal/fetch"
)

const (
	DefaultBaseURL = "http://m.bom.gov.au"

	SelectorLocationName = ".location-name"
	SelectorCurrentTemp  = ".current-temp"
	SelectorFeelsLike    = ".feels-like p"
	SelectorCurrentTime  = ".current-time"
)

var ErrInvalidLocation = errors.New("invalid location")

// Reading holds the current conditions shown on a location page.
type Reading struct {
	LocationName string
	CurrentTemp  string
	FeelsLike    string
	ObservedAt   string
}

// PageExtractor pulls a Reading out of a mobile location page.
type PageExtractor struct{}

func (PageExtractor) Extract(resp *fetch.RawResponse) (Reading, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return Reading{}, fetch.NewUnexpectedShapeError(resp, "unparsable HTML document", err)
	}

	var reading Reading
	fields := []struct {
		selector string
		dest     *string
		clean    func(string) string
	}{
		{SelectorLocationName, &reading.LocationName, strings.TrimSpace},
		{SelectorCurrentTemp, &reading.CurrentTemp, strings.TrimSpace},
		{SelectorFeelsLike, &reading.FeelsLike, strings.TrimSpace},
		{SelectorCurrentTime, &reading.ObservedAt, collapseSpace},
	}

	for _, field := range fields {
		sel := doc.Find(field.selector).First()
		if sel.Length() == 0 {
			return Reading{}, fetch.NewUnexpectedShapeError(resp, fmt.Sprintf("no element matches %q", field.selector), nil)
		}
		*field.dest = field.clean(sel.Text())
	}

	return reading, nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
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

func (c *Client) URL(stateCode string, citySlug string) string {
	return fmt.Sprintf("%s/%s/%s/", c.baseURL, url.PathEscape(stateCode), url.PathEscape(citySlug))
}

// Current fetches the location page. Any HTTP error status is reported as
// ErrInvalidLocation; extraction is not attempted in that case.
func (c *Client) Current(ctx context.Context, stateCode string, citySlug string) (Reading, error) {
	req := fetch.NewRequest(c.URL(stateCode, citySlug))

	reading, err := fetch.FetchAndExtract[Reading](ctx, c.fetcher, req, PageExtractor{})
	if err != nil {
		var statusErr *fetch.StatusError
		if errors.As(err, &statusErr) {
			return Reading{}, fmt.Errorf("%w: %w", ErrInvalidLocation, err)
		}

		return Reading{}, err
	}

	return reading, nil
}
