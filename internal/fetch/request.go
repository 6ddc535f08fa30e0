package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

var ErrEmptyURL = errors.New("request url is empty")

type Request struct {
	Method string
	URL    string
	Header http.Header
	Query  url.Values
}

func NewRequest(rawURL string) Request {
	return Request{
		Method: http.MethodGet,
		URL:    rawURL,
		Header: http.Header{},
		Query:  url.Values{},
	}
}

func (r Request) WithHeader(key string, value string) Request {
	header := r.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	header.Add(key, value)
	r.Header = header

	return r
}

func (r Request) WithJSONContentType() Request {
	return r.WithHeader("Content-Type", "application/json")
}

func (r Request) WithQueryParameter(key string, value string) Request {
	query := url.Values{}
	for k, values := range r.Query {
		query[k] = append([]string(nil), values...)
	}
	query.Add(key, value)
	r.Query = query

	return r
}

type requestBuilder struct {
	request Request
	err     error
}

func newRequestBuilder(request Request) *requestBuilder {
	b := &requestBuilder{request: request}
	if request.URL == "" {
		b.err = ErrEmptyURL
	}
	if b.request.Method == "" {
		b.request.Method = http.MethodGet
	}

	return b
}

func (b *requestBuilder) build(ctx context.Context) (*http.Request, error) {
	if b.err != nil {
		return nil, b.err
	}

	u, err := b.makeUrl()
	if err != nil {
		return nil, err
	}

	return b.makeRequest(ctx, u)
}

func (b *requestBuilder) makeUrl() (*url.URL, error) {
	u, err := url.Parse(b.request.URL)
	if err != nil {
		return nil, err
	}

	if len(b.request.Query) > 0 {
		query := u.Query()
		for key, values := range b.request.Query {
			for _, value := range values {
				query.Add(key, value)
			}
		}
		u.RawQuery = query.Encode()
	}

	return u, nil
}

func (b *requestBuilder) makeRequest(ctx context.Context, u *url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, b.request.Method, u.String(), nil)
	if err != nil {
		return nil, err
	}

	for header, values := range b.request.Header {
		for _, value := range values {
			req.Header.Add(header, value)
		}
	}

	return req, nil
}
