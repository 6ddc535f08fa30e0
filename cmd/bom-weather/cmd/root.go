package cmd

import (
	"log/slog"
	"time"

	"github.com/samber/do"
	"github.com/spf13/cobra"

	"github.com/misbahyunus/python-gems/internal/fetch"
	"github.com/misbahyunus/python-gems/internal/present"
	"github.com/misbahyunus/python-gems/internal/resolve"
	usecase "github.com/misbahyunus/python-gems/internal/usecase/report"
)

func NewRootCmd(injector *do.Injector) *cobra.Command {
	c := &cobra.Command{
		Use:   "bom-weather [state city]",
		Short: "print the current conditions for an Australian location",
		Long: "Prints the current conditions reported by the Bureau of Meteorology.\n" +
			"Without arguments the city name or postcode and the state are asked for.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return newWeatherCommand(c, injector).Execute(args)
		},
	}

	c.Flags().Bool("verbose", false, "write debug records to stderr")

	return c
}

type weatherCommand struct {
	cmd      *cobra.Command
	injector *do.Injector
}

func newWeatherCommand(cmd *cobra.Command, injector *do.Injector) *weatherCommand {
	return &weatherCommand{cmd: cmd, injector: injector}
}

func (c *weatherCommand) Execute(args []string) error {
	verbose, err := c.cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	if verbose {
		do.MustInvoke[*slog.LevelVar](c.injector).Set(slog.LevelDebug)
	}

	fetcher := do.MustInvoke[fetch.Fetcher](c.injector)
	endpoints := do.MustInvoke[usecase.Endpoints](c.injector)
	logger := do.MustInvoke[*slog.Logger](c.injector)

	out := c.cmd.OutOrStdout()
	console := present.NewConsole(out, time.Now)
	prompter := resolve.NewPrompter(c.cmd.InOrStdin(), out)

	uc := usecase.NewWeatherUseCase(fetcher, endpoints, console, logger)

	req := &usecase.WeatherRequest{
		Program: c.cmd.Root().Name(),
		Args:    args,
	}

	return uc.Report(c.cmd.Context(), req, prompter)
}
