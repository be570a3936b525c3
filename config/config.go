package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) GetWindowWidth() int {
	return c.getInt("WINDOW_WIDTH", "window.width")
}

func (c *Config) GetWindowHeight() int {
	return c.getInt("WINDOW_HEIGHT", "window.height")
}

// GetPanelHeight is the height of the control area drawn below the play canvas.
func (c *Config) GetPanelHeight() int {
	return c.getInt("PANEL_HEIGHT", "window.panelheight")
}

func (c *Config) GetWindowTitle() string {
	return c.getString("WINDOW_TITLE", "window.title")
}

func (c *Config) GetRoundDuration() int {
	return c.getInt("ROUND_DURATION_SECONDS", "game.roundduration_seconds")
}

func (c *Config) GetCountdownDuration() int {
	return c.getInt("COUNTDOWN_SECONDS", "game.countdown_seconds")
}

func (c *Config) GetTargetRadius() int {
	return c.getInt("TARGET_RADIUS", "game.targetradius")
}

func (c *Config) GetDifficulty() string {
	return c.getString("DIFFICULTY", "game.difficulty")
}

func (c *Config) GetMediumRelocateInterval() int {
	return c.getInt("MEDIUM_RELOCATE_MS", "game.medium_relocate_ms")
}

func (c *Config) GetHardRelocateInterval() int {
	return c.getInt("HARD_RELOCATE_MS", "game.hard_relocate_ms")
}

func (c *Config) GetAudioEnabled() bool {
	if c.config.IsSet("AUDIO_ENABLED") {
		return c.config.GetBool("AUDIO_ENABLED")
	}

	return c.config.GetBool("audio.enabled")
}

// GetFrontend selects the user interface: "window" or "terminal".
func (c *Config) GetFrontend() string {
	return c.getString("FRONTEND", "frontend")
}

func (c *Config) GetLogLevel() string {
	return c.getString("LOG_LEVEL", "log.level")
}

func (c *Config) getInt(envKey, fileKey string) int {
	value := c.config.GetInt(envKey)
	if value == 0 {
		value = c.config.GetInt(fileKey)
	}

	return value
}

func (c *Config) getString(envKey, fileKey string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(fileKey)
	}

	return value
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
