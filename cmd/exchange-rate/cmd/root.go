package cmd

import (
	"log/slog"
	"time"

	"github.com/samber/do"
	"github.com/spf13/cobra"

	"github.com/misbahyunus/python-gems/internal/fetch"
	"github.com/misbahyunus/python-gems/internal/present"
	usecase "github.com/misbahyunus/python-gems/internal/usecase/report"
)

const SettingsPathKey = "settings-path"

func NewRootCmd(injector *do.Injector) *cobra.Command {
	c := &cobra.Command{
		Use:           "exchange-rate",
		Short:         "print the latest currency exchange rates relative to AUD",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return applyVerbose(c, injector)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return newExchangeRateCommand(c, injector).Execute()
		},
	}

	c.Flags().String("config", "", "settings file with the url and key of the rates service")
	c.PersistentFlags().Bool("verbose", false, "write debug records to the log")

	return c
}

func applyVerbose(c *cobra.Command, injector *do.Injector) error {
	verbose, err := c.Flags().GetBool("verbose")
	if err != nil {
		return err
	}

	if verbose {
		do.MustInvoke[*slog.LevelVar](injector).Set(slog.LevelDebug)
	}

	return nil
}

type exchangeRateCommand struct {
	cmd      *cobra.Command
	injector *do.Injector
}

func newExchangeRateCommand(cmd *cobra.Command, injector *do.Injector) *exchangeRateCommand {
	return &exchangeRateCommand{cmd: cmd, injector: injector}
}

func (c *exchangeRateCommand) Execute() error {
	settingsPath, err := c.settingsPath()
	if err != nil {
		return err
	}

	fetcher := do.MustInvoke[fetch.Fetcher](c.injector)
	logger := do.MustInvoke[*slog.Logger](c.injector)
	console := present.NewConsole(c.cmd.OutOrStdout(), time.Now)

	uc := usecase.NewExchangeRateUseCase(fetcher, console, logger)

	return uc.Report(c.cmd.Context(), &usecase.ExchangeRateRequest{SettingsPath: settingsPath})
}

func (c *exchangeRateCommand) settingsPath() (string, error) {
	if c.cmd.Flags().Changed("config") {
		return c.cmd.Flags().GetString("config")
	}

	return do.MustInvokeNamed[string](c.injector, SettingsPathKey), nil
}
