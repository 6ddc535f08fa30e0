package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/misbahyunus/python-gems/internal/fetch"

// Fetcher performs a single request-response cycle.
type Fetcher interface {
	Fetch(ctx context.Context, request Request) (*RawResponse, error)
}

// RawResponse is the successful payload of a fetch.
type RawResponse struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// StatusError is returned when the remote answered with anything but 200.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

type httpClient interface {
	Do(request *http.Request) (*http.Response, error)
}

type HTTPFetcher struct {
	httpClient httpClient
	tracer     trace.Tracer
}

func NewHTTPFetcher(client httpClient) *HTTPFetcher {
	if client == nil {
		client = &http.Client{}
	}

	return &HTTPFetcher{
		httpClient: client,
		tracer:     otel.Tracer(tracerName),
	}
}

// Fetch issues the request once. A non-200 status yields a *StatusError;
// transport failures are returned unchanged.
func (f *HTTPFetcher) Fetch(ctx context.Context, request Request) (*RawResponse, error) {
	ctx, span := f.tracer.Start(ctx, "fetch")
	defer span.End()

	req, err := newRequestBuilder(request).build(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("http.url", req.URL.String()))

	resp, err := f.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		err := &StatusError{URL: req.URL.String(), StatusCode: resp.StatusCode}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &RawResponse{
		URL:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// FetchAndExtract runs one fetch and hands the payload to the extractor.
func FetchAndExtract[T any](ctx context.Context, fetcher Fetcher, request Request, extractor Extractor[T]) (T, error) {
	var zero T

	resp, err := fetcher.Fetch(ctx, request)
	if err != nil {
		return zero, err
	}

	return extractor.Extract(resp)
}
