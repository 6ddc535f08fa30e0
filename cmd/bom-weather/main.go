package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/samber/do"

	"github.com/misbahyunus/python-gems/cmd/bom-weather/cmd"
	"github.com/misbahyunus/python-gems/internal/fetch"
	"github.com/misbahyunus/python-gems/internal/logging"
	"github.com/misbahyunus/python-gems/internal/tracing"
	usecase "github.com/misbahyunus/python-gems/internal/usecase/report"
)

const (
	appName = "bom-weather"
	envFile = "./cmd/bom-weather/.env"
)

var version = "dev"

type envVars struct {
	BOMBaseURL      string `env:"BOM_BASE_URL" envDefault:"http://m.bom.gov.au"`
	PostcodeBaseURL string `env:"POSTCODE_BASE_URL" envDefault:"http://v0.postcodeapi.com.au"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"warn"`
	ZipkinURL       string `env:"ZIPKIN_URL"`
}

var ev envVars

func init() {
	_, err := os.Stat(envFile)
	if err == nil {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Printf("failed to load .env file: %v\n", err)
			os.Exit(1)
		}
	} else if !os.IsNotExist(err) {
		fmt.Printf("failed to check env file existence: %v\n", err)
		os.Exit(1)
	}

	ev, err = env.ParseAs[envVars]()
	if err != nil {
		fmt.Printf("failed to parse environment variables: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	ctx := context.Background()

	shutdown, err := tracing.Init(ev.ZipkinURL, appName, version)
	if err != nil {
		fmt.Printf("failed to initialize tracing: %v\n", err)
		os.Exit(1)
	}

	level := new(slog.LevelVar)
	level.Set(logging.ParseLevel(ev.LogLevel))

	injector := do.New()
	do.ProvideValue(injector, level)
	do.ProvideValue(injector, logging.New(os.Stderr, level, appName, false))
	do.ProvideValue(injector, usecase.Endpoints{
		BOMBaseURL:      ev.BOMBaseURL,
		PostcodeBaseURL: ev.PostcodeBaseURL,
	})
	do.Provide(injector, func(i *do.Injector) (fetch.Fetcher, error) {
		return fetch.NewHTTPFetcher(&http.Client{}), nil
	})

	command := cmd.NewRootCmd(injector)
	command.SetContext(ctx)

	err = command.Execute()

	shutdown(ctx)

	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
}
