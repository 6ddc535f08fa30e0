package resolve

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/misbahyunus/python-gems/internal/config"
)

var (
	ErrConfigurationMissing = errors.New("configuration missing")
	ErrUsage                = errors.New("wrong number of arguments")
	ErrInvalidState         = errors.New("invalid state code")
	ErrInvalidPostcode      = errors.New("invalid postcode")
	ErrSelectionCancelled   = errors.New("selection cancelled")
)

// States are the state codes served by the weather site.
var States = []string{"vic", "nsw", "wa", "sa", "nt", "tas"}

// Source tells how the parameters of a run were obtained.
type Source int

const (
	SourceSettings Source = iota
	SourceArgs
	SourcePrompt
	SourcePostcode
)

// Parameters are built once per run and not modified afterwards.
type Parameters struct {
	BaseURL   string
	AccessKey string
	StateCode string
	CitySlug  string
	PostCode  *int
	Source    Source
}

type InvalidStateError struct {
	Input       string
	Interactive bool
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidState, e.Input)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// NormalizeState lowercases input and checks it against States.
func NormalizeState(input string) (string, bool) {
	code := strings.ToLower(input)

	return code, slices.Contains(States, code)
}

// FromSettings builds the parameters of the exchange rate tool.
func FromSettings(settings config.Settings) (Parameters, error) {
	if !settings.IsComplete() {
		return Parameters{}, ErrConfigurationMissing
	}

	return Parameters{
		BaseURL:   settings.URL,
		AccessKey: settings.Key,
		Source:    SourceSettings,
	}, nil
}
