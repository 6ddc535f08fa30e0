package resolve

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/misbahyunus/python-gems/internal/api/postcode"
	"github.com/misbahyunus/python-gems/internal/config"
)

type localityFinderMock struct {
	mock.Mock
}

func (m *localityFinderMock) Lookup(ctx context.Context, postCode int) ([]postcode.Locality, error) {
	result := m.Called(postCode)

	localities, _ := result.Get(0).([]postcode.Locality)
	return localities, result.Error(1)
}

func newTestResolver(input string, finder LocalityFinder) (*Resolver, *bytes.Buffer) {
	out := &bytes.Buffer{}

	return NewResolver(NewPrompter(strings.NewReader(input), out), finder), out
}

func locality(name string, state string) postcode.Locality {
	return postcode.Locality{Name: name, State: postcode.State{Abbreviation: state}}
}

func TestNormalizeState(t *testing.T) {
	for _, input := range []string{"vic", "NSW", "Wa", "sA", "NT", "tas"} {
		code, ok := NormalizeState(input)

		assert.True(t, ok, input)
		assert.Equal(t, strings.ToLower(input), code)
	}

	for _, input := range []string{"", "qld", "act", "victoria", " vic"} {
		_, ok := NormalizeState(input)

		assert.False(t, ok, input)
	}
}

func TestFromSettings(t *testing.T) {
	actual, err := FromSettings(config.Settings{URL: "http://example.test/{0}", Key: "abc"})

	require.NoError(t, err)
	assert.Equal(t, Parameters{BaseURL: "http://example.test/{0}", AccessKey: "abc", Source: SourceSettings}, actual)

	for _, settings := range []config.Settings{
		{URL: config.Sentinel, Key: "abc"},
		{URL: "http://example.test/{0}", Key: config.Sentinel},
		{URL: config.Sentinel, Key: config.Sentinel},
	} {
		_, err := FromSettings(settings)

		assert.ErrorIs(t, err, ErrConfigurationMissing)
	}
}

func TestResolver_Resolve_Args(t *testing.T) {
	finder := new(localityFinderMock)
	r, _ := newTestResolver("", finder)

	actual, err := r.Resolve(context.Background(), []string{"NSW", "sydney"})

	require.NoError(t, err)
	assert.Equal(t, Parameters{StateCode: "nsw", CitySlug: "sydney", Source: SourceArgs}, actual)
	finder.AssertNotCalled(t, "Lookup", mock.Anything)
}

func TestResolver_Resolve_ArgsInvalidState(t *testing.T) {
	r, _ := newTestResolver("", new(localityFinderMock))

	_, err := r.Resolve(context.Background(), []string{"qld", "brisbane"})

	assert.ErrorIs(t, err, ErrInvalidState)

	var stateErr *InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.False(t, stateErr.Interactive)
	assert.Equal(t, "qld", stateErr.Input)
}

func TestResolver_Resolve_Usage(t *testing.T) {
	for _, args := range [][]string{{"vic"}, {"vic", "melbourne", "extra"}} {
		r, _ := newTestResolver("", new(localityFinderMock))

		_, err := r.Resolve(context.Background(), args)

		assert.ErrorIs(t, err, ErrUsage)
	}
}

func TestResolver_Resolve_Prompt(t *testing.T) {
	r, out := newTestResolver("melbourne\nVIC\n", new(localityFinderMock))

	actual, err := r.Resolve(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, Parameters{StateCode: "vic", CitySlug: "melbourne", Source: SourcePrompt}, actual)
	assert.Equal(t, cityPrompt+statePrompt, out.String())
}

func TestResolver_Resolve_PromptInvalidState(t *testing.T) {
	r, _ := newTestResolver("brisbane\nqld\n", new(localityFinderMock))

	_, err := r.Resolve(context.Background(), nil)

	var stateErr *InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.True(t, stateErr.Interactive)
}

func TestResolver_Resolve_PromptClosedInput(t *testing.T) {
	r, _ := newTestResolver("", new(localityFinderMock))

	_, err := r.Resolve(context.Background(), nil)

	assert.ErrorIs(t, err, io.EOF)
}

func TestResolver_Resolve_PostcodeSingle(t *testing.T) {
	finder := new(localityFinderMock)
	finder.On("Lookup", 2026).Return([]postcode.Locality{locality("Bondi Beach", "NSW")}, nil)

	r, _ := newTestResolver("2026\n", finder)

	actual, err := r.Resolve(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "bondi-beach", actual.CitySlug)
	assert.Equal(t, "nsw", actual.StateCode)
	assert.Equal(t, SourcePostcode, actual.Source)
	require.NotNil(t, actual.PostCode)
	assert.Equal(t, 2026, *actual.PostCode)
	finder.AssertExpectations(t)
}

func TestResolver_Resolve_PostcodeNone(t *testing.T) {
	finder := new(localityFinderMock)
	finder.On("Lookup", 9999).Return([]postcode.Locality{}, nil)

	r, out := newTestResolver("9999\n", finder)

	_, err := r.Resolve(context.Background(), nil)

	assert.ErrorIs(t, err, ErrInvalidPostcode)
	assert.Equal(t, cityPrompt, out.String())
}

func TestResolver_Resolve_PostcodeLookupError(t *testing.T) {
	lookupErr := errors.New("connection reset")
	finder := new(localityFinderMock)
	finder.On("Lookup", 3000).Return(nil, lookupErr)

	r, _ := newTestResolver("3000\n", finder)

	_, err := r.Resolve(context.Background(), nil)

	assert.ErrorIs(t, err, lookupErr)
}

func TestResolver_Resolve_PostcodeMultiple(t *testing.T) {
	finder := new(localityFinderMock)
	finder.On("Lookup", 2026).Return([]postcode.Locality{
		locality("Bondi", "NSW"),
		locality("Bondi Beach", "NSW"),
		locality("Tamarama", "NSW"),
	}, nil)

	r, out := newTestResolver("2026\nabc\n7\n\n2\n", finder)

	actual, err := r.Resolve(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "bondi-beach", actual.CitySlug)
	assert.Equal(t, "nsw", actual.StateCode)

	expected := cityPrompt +
		"Multiple locations found!\n" +
		"1. Bondi\n" +
		"2. Bondi Beach\n" +
		"3. Tamarama\n" +
		strings.Repeat(choicePrompt, 4)
	assert.Equal(t, expected, out.String())
}

func TestResolver_Resolve_PostcodeMultipleCancelled(t *testing.T) {
	params := []string{"0\n", "9\n"}

	for _, input := range params {
		finder := new(localityFinderMock)
		finder.On("Lookup", 2026).Return([]postcode.Locality{
			locality("Bondi", "NSW"),
			locality("Bondi Beach", "NSW"),
		}, nil)

		r, _ := newTestResolver("2026\n"+input, finder)

		_, err := r.Resolve(context.Background(), nil)

		assert.ErrorIs(t, err, ErrSelectionCancelled, input)
	}
}
