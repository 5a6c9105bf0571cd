package cmd

import (
	"fmt"
	"time"

	"github.com/dedene/metricool-cli/internal/config"
	"github.com/dedene/metricool-cli/internal/output"
)

func resolveOutputMode(flags *RootFlags) (output.Mode, error) {
	cfg, err := config.ReadConfig()
	if err != nil {
		return output.Mode{}, err
	}

	mode := output.Mode{}

	switch cfg.DefaultOutput {
	case "json":
		mode.JSON = true
	case "plain":
		mode.Plain = true
	}

	envMode := output.FromEnv()
	if envMode.JSON {
		mode.JSON = true
		mode.Plain = false
	}

	if envMode.Plain {
		mode.Plain = true
		mode.JSON = false
	}

	if flags.JSON {
		mode.JSON = true
		mode.Plain = false
	}

	if flags.Plain {
		mode.Plain = true
		mode.JSON = false
	}

	if flags.JSON && flags.Plain {
		return output.Mode{}, fmt.Errorf("cannot use both JSON and plain output")
	}

	return mode, nil
}

// resolveLocation returns the timezone from the CLI config file.
func resolveLocation() (*time.Location, error) {
	cfg, err := config.ReadConfig()
	if err != nil {
		return nil, err
	}

	return cfg.Location()
}
