package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/malusev998/coinavg"
	"github.com/malusev998/coinavg/fetchers"
)

const (
	envPrefix         = "COINAVG"
	defaultConfigFile = "./coinavg.yml"
)

type Settings struct {
	IDs      []string
	URL      string
	Currency string
	Days     int
	Interval coinavg.Interval
	Timeout  time.Duration
	Debug    bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ids", coinavg.DefaultIDs)
	v.SetDefault("url", fetchers.CoinGeckoURL)
	v.SetDefault("currency", fetchers.DefaultCurrency)
	v.SetDefault("days", fetchers.DefaultDays)
	v.SetDefault("interval", string(fetchers.DefaultInterval))
	v.SetDefault("timeout", fetchers.DefaultTimeout)
	v.SetDefault("debug", false)
}

// readConfig loads .env and the YAML config file. A missing file is only an
// error when the path was given explicitly.
func readConfig(v *viper.Viper, configFile string, explicit bool) error {
	_ = godotenv.Load()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError

		if !explicit && (errors.As(err, &pathErr) || errors.As(err, &viper.ConfigFileNotFoundError{})) {
			return nil
		}

		return fmt.Errorf("error while reading config file %s: %w", configFile, err)
	}

	return nil
}

func loadSettings(v *viper.Viper) (Settings, error) {
	interval, err := coinavg.ConvertToIntervalFromString(v.GetString("interval"))

	if err != nil {
		return Settings{}, err
	}

	ids := make([]string, 0)

	for _, id := range v.GetStringSlice("ids") {
		for _, part := range strings.Split(id, ",") {
			if part = strings.TrimSpace(part); part != "" {
				ids = append(ids, part)
			}
		}
	}

	if len(ids) == 0 {
		return Settings{}, coinavg.ErrNoIdentifiers
	}

	days := v.GetInt("days")

	if days <= 0 {
		return Settings{}, fmt.Errorf("%w: %d", coinavg.ErrInvalidDays, days)
	}

	return Settings{
		IDs:      ids,
		URL:      v.GetString("url"),
		Currency: strings.ToLower(v.GetString("currency")),
		Days:     days,
		Interval: interval,
		Timeout:  v.GetDuration("timeout"),
		Debug:    v.GetBool("debug"),
	}, nil
}
