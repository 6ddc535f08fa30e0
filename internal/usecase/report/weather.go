package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/misbahyunus/python-gems/internal/api/bom"
	"github.com/misbahyunus/python-gems/internal/api/postcode"
	"github.com/misbahyunus/python-gems/internal/fetch"
	"github.com/misbahyunus/python-gems/internal/present"
	"github.com/misbahyunus/python-gems/internal/resolve"
)

const (
	invalidChoiceWarning = "WARNING : Invalid choice!"
	invalidStateWarning  = "Invalid State code supplied. Please choose from (VIC, NSW, WA, SA, NT, TAS)."
	invalidCityWarning   = "WARNING : Invalid City name. Please try again."
)

type WeatherUseCase struct {
	fetcher   fetch.Fetcher
	endpoints Endpoints
	console   *present.Console
	logger    *slog.Logger
}

func NewWeatherUseCase(fetcher fetch.Fetcher, endpoints Endpoints, console *present.Console, logger *slog.Logger) *WeatherUseCase {
	return &WeatherUseCase{
		fetcher:   fetcher,
		endpoints: endpoints,
		console:   console,
		logger:    logger,
	}
}

// Report resolves the location from req.Args or prompter and prints the
// current conditions. Only an unexpected page structure or a transport
// failure is returned as an error.
func (uc *WeatherUseCase) Report(ctx context.Context, req *WeatherRequest, prompter *resolve.Prompter) error {
	resolver := resolve.NewResolver(prompter, postcode.NewClient(uc.fetcher, uc.endpoints.PostcodeBaseURL))

	params, err := resolver.Resolve(ctx, req.Args)
	if err != nil {
		var stateErr *resolve.InvalidStateError
		switch {
		case errors.Is(err, resolve.ErrUsage):
			uc.console.Stampf("Usage: %s <state> <city>", req.Program)
			return nil
		case errors.As(err, &stateErr):
			uc.logger.Debug("rejected state code", "input", stateErr.Input)
			if stateErr.Interactive {
				uc.console.Println(invalidChoiceWarning)
			} else {
				uc.console.Println(invalidStateWarning)
			}
			return nil
		case errors.Is(err, resolve.ErrInvalidPostcode):
			uc.console.Println("Invalid postcode!")
			return nil
		case errors.Is(err, resolve.ErrSelectionCancelled), errors.Is(err, io.EOF):
			uc.logger.Debug("no location selected", "err", err)
			return nil
		default:
			return err
		}
	}

	if params.Source != resolve.SourceArgs {
		uc.console.Println("Fetching weather... ")
	}

	client := bom.NewClient(uc.fetcher, uc.endpoints.BOMBaseURL)
	uc.logger.Debug("fetching weather page", "url", client.URL(params.StateCode, params.CitySlug))

	reading, err := client.Current(ctx, params.StateCode, params.CitySlug)
	if err != nil {
		if errors.Is(err, bom.ErrInvalidLocation) {
			uc.logger.Warn("weather page not available", "err", err)
			uc.console.Println(invalidCityWarning)
			return nil
		}

		return err
	}

	uc.console.Weather(reading)

	return nil
}
