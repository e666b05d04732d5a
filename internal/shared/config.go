package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
//
// Credentials and layout values may be overridden from the environment via
// [Config.ApplyEnv]; after that the Config is treated as immutable.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Layout      LayoutConfig      `toml:"layout"`
	Database    DatabaseConfig    `toml:"database"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	Flickr FlickrConfig `toml:"flickr"`
	Miro   MiroConfig   `toml:"miro"`
}

// FlickrConfig contains Flickr API credentials and the source album.
type FlickrConfig struct {
	APIKey     string `toml:"api_key"`
	UserID     string `toml:"user_id"`     // owner NSID, e.g. "12345678@N00"
	PhotosetID string `toml:"photoset_id"` // album (photoset) ID
}

// MiroConfig contains the Miro OAuth token and the target board.
type MiroConfig struct {
	Token   string `toml:"token"` // needs boards:write
	BoardID string `toml:"board_id"`
}

// LayoutConfig contains the tile grid geometry and overlay styling.
type LayoutConfig struct {
	ImagesPerRow  int     `toml:"images_per_row"`
	CellWidth     float64 `toml:"cell_width"`
	CellHeight    float64 `toml:"cell_height"`
	StartX        float64 `toml:"start_x"`
	StartY        float64 `toml:"start_y"`
	OverlayHeight float64 `toml:"overlay_height"`
	OverlayMargin float64 `toml:"overlay_margin"`
	OverlayColor  string  `toml:"overlay_color"`
	TextSize      int     `toml:"text_size"`
	TextPaddingX  float64 `toml:"text_padding_x"`
	ProgressWidth int     `toml:"progress_width"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides configuration values from environment variables.
// Environment values take precedence over config.toml so deployments can
// inject credentials without writing them to disk.
func (c *Config) ApplyEnv() {
	envString(&c.Credentials.Flickr.APIKey, "FLICKR_API_KEY")
	envString(&c.Credentials.Flickr.UserID, "FLICKR_USER_ID")
	envString(&c.Credentials.Flickr.PhotosetID, "FLICKR_PHOTOSET_ID")
	envString(&c.Credentials.Miro.Token, "MIRO_TOKEN")
	envString(&c.Credentials.Miro.BoardID, "MIRO_BOARD_ID")

	envInt(&c.Layout.ImagesPerRow, "IMAGES_PER_ROW")
	envFloat(&c.Layout.CellWidth, "CELL_W")
	envFloat(&c.Layout.CellHeight, "CELL_H")
	envFloat(&c.Layout.StartX, "START_X")
	envFloat(&c.Layout.StartY, "START_Y")
	envFloat(&c.Layout.OverlayHeight, "OVERLAY_HEIGHT")
	envFloat(&c.Layout.OverlayMargin, "OVERLAY_MARGIN")
	envString(&c.Layout.OverlayColor, "OVERLAY_COLOR")
	envInt(&c.Layout.TextSize, "TEXT_SIZE")
	envFloat(&c.Layout.TextPaddingX, "TEXT_PADDING_X")
	envInt(&c.Layout.ProgressWidth, "PROGRESS_WIDTH")
}

// Validate checks that every required credential is present.
// All missing names are reported in one error so the user can fix them together.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"FLICKR_API_KEY", c.Credentials.Flickr.APIKey},
		{"FLICKR_USER_ID", c.Credentials.Flickr.UserID},
		{"FLICKR_PHOTOSET_ID", c.Credentials.Flickr.PhotosetID},
		{"MIRO_TOKEN", c.Credentials.Miro.Token},
		{"MIRO_BOARD_ID", c.Credentials.Miro.BoardID},
	}

	var missing []string
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	return nil
}

func envString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func envInt(target *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}

func envFloat(target *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*target = f
		}
	}
}
