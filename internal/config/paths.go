package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const AppName = "metricoolcli"

const (
	// DotenvFile is read relative to the working directory.
	DotenvFile   = ".env"
	DotenvEnvVar = "METRICOOL_DOTENV"
)

func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}

	return filepath.Join(base, AppName), nil
}

func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.yaml"), nil
}

// MoltbotConfigPath returns <home>/.moltbot/moltbot.json.
func MoltbotConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}

	return filepath.Join(home, ".moltbot", "moltbot.json"), nil
}

// DotenvPath returns the dotenv file to read, honouring METRICOOL_DOTENV.
func DotenvPath() string {
	if p := strings.TrimSpace(os.Getenv(DotenvEnvVar)); p != "" {
		if expanded, err := ExpandPath(p); err == nil {
			return expanded
		}

		return p
	}

	return DotenvFile
}

// ExpandPath expands ~ at the beginning of a path to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand home dir: %w", err)
		}

		return home, nil
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand home dir: %w", err)
		}

		return filepath.Join(home, path[2:]), nil
	}

	return path, nil
}
