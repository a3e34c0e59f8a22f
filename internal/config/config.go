package config

import (
	_ "embed"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

type Config struct {
	Immich  ImmichConfig
	Web     WebConfig
	Presets PresetsConfig
}

type ImmichConfig struct {
	URL     string // base URL of the Immich server (e.g., http://immich:2283)
	APIKey  string // API key created under Account Settings -> API Keys
	Timeout int    // outbound request timeout in seconds
}

type WebConfig struct {
	AllowedOrigins []string // CORS origin whitelist; localhost is always allowed
}

type PresetsConfig struct {
	Presets map[string]Preset `yaml:"presets"`
}

type Preset struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envList reads a comma-separated environment variable into a slice,
// trimming whitespace and dropping empty entries.
func envList(key string) []string {
	var out []string
	for part := range strings.SplitSeq(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func Load() *Config {
	var presets PresetsConfig
	if err := yaml.Unmarshal(presetsYAML, &presets); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded presets.yaml: " + err.Error())
	}

	return &Config{
		Immich: ImmichConfig{
			URL:     os.Getenv("IMMICH_URL"),
			APIKey:  os.Getenv("IMMICH_API_KEY"),
			Timeout: envInt("IMMICH_TIMEOUT", 10),
		},
		Web: WebConfig{
			AllowedOrigins: envList("WEB_ALLOWED_ORIGINS"),
		},
		Presets: presets,
	}
}

// GetPreset returns the named frame size preset and whether it exists.
func (c *Config) GetPreset(name string) (Preset, bool) {
	p, ok := c.Presets.Presets[name]
	return p, ok
}

// PresetNames returns all preset names in sorted order.
func (c *Config) PresetNames() []string {
	return slices.Sorted(maps.Keys(c.Presets.Presets))
}
