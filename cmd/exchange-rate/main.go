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

	"github.com/misbahyunus/python-gems/cmd/exchange-rate/cmd"
	"github.com/misbahyunus/python-gems/internal/fetch"
	"github.com/misbahyunus/python-gems/internal/logging"
	"github.com/misbahyunus/python-gems/internal/tracing"
)

const (
	appName = "exchange-rate"
	envFile = "./cmd/exchange-rate/.env"
)

var version = "dev"

type envVars struct {
	ConfigFile string `env:"EXCHANGE_RATE_CONFIG" envDefault:"config.ini"`
	LogFile    string `env:"EXCHANGE_RATE_LOG_FILE" envDefault:"exchange_rate_info.log"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	ZipkinURL  string `env:"ZIPKIN_URL"`
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

	logFile, err := logging.OpenFile(ev.LogFile)
	if err != nil {
		fmt.Printf("failed to open log file: %v\n", err)
		os.Exit(1)
	}

	shutdown, err := tracing.Init(ev.ZipkinURL, appName, version)
	if err != nil {
		fmt.Printf("failed to initialize tracing: %v\n", err)
		os.Exit(1)
	}

	level := new(slog.LevelVar)
	level.Set(logging.ParseLevel(ev.LogLevel))

	injector := do.New()
	do.ProvideValue(injector, level)
	do.ProvideValue(injector, logging.New(logFile, level, appName, true))
	do.ProvideNamedValue(injector, cmd.SettingsPathKey, ev.ConfigFile)
	do.Provide(injector, func(i *do.Injector) (fetch.Fetcher, error) {
		return fetch.NewHTTPFetcher(&http.Client{}), nil
	})

	command := cmd.NewRootCmd(injector)
	command.SetContext(ctx)

	err = command.Execute()

	shutdown(ctx)
	logFile.Close()

	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
}
