package cmd

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/malusev998/coinavg"
	"github.com/malusev998/coinavg/fetchers"
	"github.com/malusev998/coinavg/services"
)

const version = "v1.0.0"

type (
	// ServiceFactory builds the averaging service once settings are known.
	ServiceFactory func(settings Settings) coinavg.Service

	Config struct {
		Ctx        context.Context
		NewService ServiceFactory
	}
)

func NewCoinGeckoService(settings Settings) coinavg.Service {
	return services.Service{
		Fetcher: fetchers.NewFetcher(fetchers.Config{
			URL:      settings.URL,
			Currency: settings.Currency,
			Days:     settings.Days,
			Interval: settings.Interval,
			Timeout:  settings.Timeout,
		}),
	}
}

func NewRootCommand(config *Config) *cobra.Command {
	var configFile string

	v := viper.New()
	setDefaults(v)

	interval := fetchers.DefaultInterval

	rootCmd := &cobra.Command{
		Use:           "coinavg",
		Short:         "Average daily coin prices from CoinGecko",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfig(v, configFile, cmd.Flags().Changed("config")); err != nil {
				return err
			}

			settings, err := loadSettings(v)

			if err != nil {
				return err
			}

			logger := log.New(cmd.OutOrStdout(), "", 0)
			debugLogger := log.New(io.Discard, "", 0)

			if settings.Debug {
				debugLogger = log.New(cmd.ErrOrStderr(), "coinavg-debug ", log.LstdFlags)
			}

			factory := config.NewService
			if factory == nil {
				factory = NewCoinGeckoService
			}

			ctx := config.Ctx
			if ctx == nil {
				ctx = cmd.Context()
			}

			debugLogger.Printf("averaging %d ids over %d days in %s (interval %s) from %s", len(settings.IDs), settings.Days, settings.Currency, settings.Interval, settings.URL)
			reports := factory(settings).AverageAll(ctx, settings.IDs)
			writeReports(logger, debugLogger, settings.Days, reports)

			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", defaultConfigFile, "Path to config file")
	flags.Bool("debug", false, "Debug flag")
	flags.StringSlice("ids", coinavg.DefaultIDs, "CoinGecko coin ids to average")
	flags.String("currency", fetchers.DefaultCurrency, "Quote currency")
	flags.Int("days", fetchers.DefaultDays, "Number of days of history")
	flags.Var(&interval, "interval", "Price granularity: daily, hourly or auto")
	flags.String("url", fetchers.CoinGeckoURL, "CoinGecko API base URL")
	flags.Duration("timeout", fetchers.DefaultTimeout, "HTTP request timeout")

	if err := bindFlags(v, flags, "debug", "ids", "currency", "days", "interval", "url", "timeout"); err != nil {
		panic(err)
	}

	return rootCmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		flag := flags.Lookup(name)

		if flag == nil {
			return fmt.Errorf("flag %s is not defined", name)
		}

		if err := v.BindPFlag(name, flag); err != nil {
			return fmt.Errorf("error while binding flag %s: %w", name, err)
		}
	}

	return nil
}

func Execute(config *Config) error {
	return NewRootCommand(config).ExecuteContext(config.Ctx)
}
