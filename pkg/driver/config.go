package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up from the working directory upwards.
const ConfigFileName = "touchgrass.yml"

// ConfigEnvVar names an explicit config path, used when no -c flag is given.
const ConfigEnvVar = "TOUCHGRASS_CONFIG"

var ErrConfigNotFound = errors.New("touchgrass.yml not found")

// ColorMode controls ANSI colour in diagnostics.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether the mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Enabled resolves the mode; terminal is what auto falls back to.
func (m ColorMode) Enabled(terminal bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}

// Config holds host settings for the CLI and REPL.
type Config struct {
	Path    string
	Prompt  string
	History string
	Color   ColorMode
	Banner  bool
}

type configFile struct {
	Prompt  *string `yaml:"prompt"`
	History *string `yaml:"history"`
	Color   *string `yaml:"color"`
	Banner  *bool   `yaml:"banner"`
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Prompt:  "🌱 >> ",
		History: "~/.touchgrass_history",
		Color:   ColorAuto,
		Banner:  true,
	}
}

// LoadConfig parses a YAML config file. Keys left out keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.History, err = expandHome(cfg.History); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (raw configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	if raw.History != nil {
		cfg.History = strings.TrimSpace(*raw.History)
	}
	if raw.Color != nil {
		cfg.Color = ColorMode(strings.ToLower(strings.TrimSpace(*raw.Color)))
	}
	if raw.Banner != nil {
		cfg.Banner = *raw.Banner
	}
	return cfg
}

func (c *Config) validate() error {
	var errs ValidationError
	if c.Prompt == "" {
		errs.Issues = append(errs.Issues, "prompt must not be empty")
	}
	if !c.Color.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("color must be one of auto, always, never (got %q)", c.Color))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// FindConfig walks from start towards the filesystem root looking for
// touchgrass.yml.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found from %s upwards: %w", ConfigFileName, origin, ErrConfigNotFound)
		}
		dir = parent
	}
}

// ResolveConfig picks the config in priority order: the explicit path, then
// $TOUCHGRASS_CONFIG, then the nearest touchgrass.yml above workDir, then
// the defaults.
func ResolveConfig(explicit, workDir string) (*Config, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return LoadConfig(explicit)
	}
	if env := strings.TrimSpace(os.Getenv(ConfigEnvVar)); env != "" {
		return LoadConfig(env)
	}
	found, err := FindConfig(workDir)
	switch {
	case err == nil:
		return LoadConfig(found)
	case errors.Is(err, ErrConfigNotFound):
		cfg := DefaultConfig()
		if cfg.History, err = expandHome(cfg.History); err != nil {
			cfg.History = ""
		}
		return cfg, nil
	default:
		return nil, fmt.Errorf("config: %w", err)
	}
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
