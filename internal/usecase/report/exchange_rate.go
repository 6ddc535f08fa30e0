package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/misbahyunus/python-gems/internal/api/fixer"
	"github.com/misbahyunus/python-gems/internal/config"
	"github.com/misbahyunus/python-gems/internal/fetch"
	"github.com/misbahyunus/python-gems/internal/present"
	"github.com/misbahyunus/python-gems/internal/resolve"
)

const configWarning = "Warning : Config file not found or not set up correctly. " +
	"Please ensure a config file is set up with required connection parameters."

type ExchangeRateUseCase struct {
	fetcher fetch.Fetcher
	console *present.Console
	logger  *slog.Logger
}

func NewExchangeRateUseCase(fetcher fetch.Fetcher, console *present.Console, logger *slog.Logger) *ExchangeRateUseCase {
	return &ExchangeRateUseCase{
		fetcher: fetcher,
		console: console,
		logger:  logger,
	}
}

// Report prints the latest rates relative to AUD. Missing configuration,
// failed requests and unsuccessful responses are reported on the console
// and are not errors.
func (uc *ExchangeRateUseCase) Report(ctx context.Context, req *ExchangeRateRequest) error {
	uc.console.Stampf("Checking config file.")

	settings, err := config.LoadSettings(req.SettingsPath)
	if err != nil {
		uc.logger.Error("failed to read config file", "path", req.SettingsPath, "err", err)
		uc.console.Println("No config file found!")
		return nil
	}

	params, err := resolve.FromSettings(settings)
	if err != nil {
		uc.logger.Warn("config file is incomplete", "path", req.SettingsPath)
		uc.console.Stampf(configWarning)
		return nil
	}

	uc.console.Stampf("Retrieving latest data.")

	client := fixer.NewClient(uc.fetcher, params.BaseURL, params.AccessKey)
	body, err := client.Latest(ctx)
	if err != nil {
		var remoteErr *fixer.RemoteError
		switch {
		case errors.Is(err, fixer.ErrRequestFailed):
			uc.logger.Warn("exchange rate request failed", "err", err)
			uc.console.Println("[!] Request Failed")
			return nil
		case errors.As(err, &remoteErr):
			uc.logger.Warn("exchange rate service reported an error", "info", remoteErr.Info)
			uc.console.Stampf("Error : %s", remoteErr.Info)
			return nil
		default:
			return err
		}
	}

	rates, err := body.RelativeTo(fixer.BaseCurrency)
	if err != nil {
		return err
	}

	uc.console.Stampf("Displaying Currency Rates.")
	uc.console.Rates(rates)

	uc.logger.Debug("displayed currency rates", "count", len(rates), "date", body.Date)

	return nil
}
