package fetch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type document struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestJSONExtractor_Extract(t *testing.T) {
	resp := &RawResponse{URL: "http://example.test/doc.json", StatusCode: 200, Body: []byte(`{"name":"x","count":3}`)}

	actual, err := JSONExtractor[document]{}.Extract(resp)

	assert.Nil(t, err)
	assert.Equal(t, document{Name: "x", Count: 3}, actual)
}

func TestJSONExtractor_Extract_Malformed(t *testing.T) {
	resp := &RawResponse{URL: "http://example.test/doc.json", StatusCode: 200, Body: []byte(`<html>`)}

	_, err := JSONExtractor[document]{}.Extract(resp)

	var shapeErr *UnexpectedShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "http://example.test/doc.json", shapeErr.URL)
	assert.Contains(t, err.Error(), "malformed JSON document")
}

func TestFetchAndExtract(t *testing.T) {
	client := new(httpClientMock)
	client.On("Do", mock.Anything).Return(makeResponse(200, `{"name":"y"}`), nil)

	actual, err := FetchAndExtract[document](
		context.Background(),
		NewHTTPFetcher(client),
		NewRequest("http://example.test/doc.json"),
		JSONExtractor[document]{},
	)

	assert.Nil(t, err)
	assert.Equal(t, "y", actual.Name)
}

func TestFetchAndExtract_SkipsExtractionOnFailure(t *testing.T) {
	client := new(httpClientMock)
	client.On("Do", mock.Anything).Return(makeResponse(404, ""), nil)

	called := false
	extractor := ExtractorFunc[string](func(resp *RawResponse) (string, error) {
		called = true
		return "", nil
	})

	_, err := FetchAndExtract[string](context.Background(), NewHTTPFetcher(client), NewRequest("http://example.test/"), extractor)

	var statusErr *StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.False(t, called)
}
