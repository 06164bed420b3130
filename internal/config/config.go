package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// DefaultFile is looked up in the working directory when no --config is given.
const DefaultFile = "pubchem.json5"

const (
	envBaseURL      = "PUBCHEM_BASE_URL"
	envTimeout      = "PUBCHEM_TIMEOUT"
	envOtlpEndpoint = "PUBCHEM_OTLP_ENDPOINT"
)

type OtlpConfig struct {
	HttpEndpoint string            `json:"http_endpoint"`
	Headers      map[string]string `json:"headers"`
}

// Config is the on-disk configuration of the pubchem CLI. Zero fields are
// left to the client defaults.
type Config struct {
	BaseURL   string `json:"base_url"`
	Timeout   string `json:"timeout"`
	UserAgent string `json:"user_agent"`
	Namespace string `json:"namespace"`
	Output    string `json:"output"`

	Otlp OtlpConfig `json:"otlp"`
}

// RequestTimeout parses Timeout. An empty value yields 0, meaning "use the default".
func (c Config) RequestTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config: timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: timeout %q is negative", c.Timeout)
	}
	return d, nil
}

// Load resolves the CLI configuration, by increasing priority:
// 1. path, or DefaultFile when path is empty
// 2. its .local. sibling
// 3. PUBCHEM_BASE_URL, PUBCHEM_TIMEOUT and PUBCHEM_OTLP_ENDPOINT
//
// A missing DefaultFile is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	name := path
	if name == "" {
		name = DefaultFile
	}
	cfg, err := Read[Config](name)
	if err != nil && !(errors.Is(err, os.ErrNotExist) && path == "") {
		return Config{}, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(envBaseURL)); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envTimeout)); v != "" {
		c.Timeout = v
	}
	if v := strings.TrimSpace(os.Getenv(envOtlpEndpoint)); v != "" {
		c.Otlp.HttpEndpoint = v
	}
}

// localName turns pubchem.json5 into pubchem.local.json5.
func localName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + ".local" + ext
}

// Read decodes the json5 file name into T and merges name's .local.
// sibling over it. os.ErrNotExist is returned when neither exists.
func Read[T any](name string) (out T, err error) {
	found := false

	for _, file := range []string{name, localName(name)} {
		content, err := os.ReadFile(file)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return out, err
		}
		found = true
		if len(content) == 0 {
			continue
		}

		var layer T
		if err = json5.Unmarshal(content, &layer); err != nil {
			return out, fmt.Errorf("config: %s: %w", file, err)
		}
		if err = mergo.Merge(&out, layer, mergo.WithOverride); err != nil {
			return out, fmt.Errorf("config: %s: %w", file, err)
		}
		slog.Debug("config layer loaded", "file", file)
	}

	if !found {
		return out, os.ErrNotExist
	}
	return out, nil
}
