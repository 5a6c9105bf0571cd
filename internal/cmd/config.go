package cmd

import (
	"fmt"

	"github.com/dedene/metricool-cli/internal/config"
)

type ConfigCmd struct {
	Path ConfigPathCmd `cmd:"" help:"Show configuration and credential source paths"`
}

type ConfigPathCmd struct{}

func (c *ConfigPathCmd) Run() error {
	configPath, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	moltbotPath, err := config.MoltbotConfigPath()
	if err != nil {
		return fmt.Errorf("resolve moltbot config path: %w", err)
	}

	exists, err := config.ConfigExists()
	if err != nil {
		return err
	}

	state := "not found"
	if exists {
		state = "found"
	}

	fmt.Fprintf(stdout, "Config file:    %s (%s)\n", configPath, state)
	fmt.Fprintf(stdout, "Moltbot config: %s\n", moltbotPath)
	fmt.Fprintf(stdout, "Dotenv file:    %s\n", config.DotenvPath())

	return nil
}
