package coinavg

import (
	"errors"
	"fmt"
	"strings"
)

type Interval string

const (
	DailyInterval  Interval = "daily"
	HourlyInterval Interval = "hourly"
	AutoInterval   Interval = ""
)

var ErrInvalidInterval = errors.New("interval is not valid")

func ConvertToIntervalFromString(str string) (Interval, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "daily":
		return DailyInterval, nil
	case "hourly":
		return HourlyInterval, nil
	case "", "auto":
		return AutoInterval, nil
	}

	return "", fmt.Errorf("value %s: %w", str, ErrInvalidInterval)
}

func (i Interval) String() string {
	if i == AutoInterval {
		return "auto"
	}

	return string(i)
}

func (i *Interval) Set(str string) error {
	interval, err := ConvertToIntervalFromString(str)

	if err != nil {
		return err
	}

	*i = interval

	return nil
}

func (i *Interval) Type() string {
	return "interval"
}
