package config

import (
	"errors"
	"os"
	"strings"

	"picarc/internal/domain"
)

type Config struct {
	OutputFile         string
	Sources            []string
	IncludedExtensions []string
	NameMonths         bool
	Recursive          bool
	OrderedMonths      bool
	Debug              bool
}

// ApplyEnv fills unset fields from the environment.
func (c *Config) ApplyEnv() {
	if len(c.Sources) == 0 {
		if raw := envOrEmpty("PICARC_SOURCES"); raw != "" {
			for _, source := range strings.Split(raw, ",") {
				if source = strings.TrimSpace(source); source != "" {
					c.Sources = append(c.Sources, source)
				}
			}
		}
	}
	if !c.Debug {
		c.Debug = envTruthy("PICARC_DEBUG")
	}
}

func (c Config) Validate() error {
	if c.OutputFile == "" {
		return errors.New("output file is required")
	}
	if len(c.Sources) == 0 {
		return errors.New("at least one source is required")
	}
	return nil
}

// Options returns the scan-time options derived from this config.
func (c Config) Options() domain.Options {
	return domain.NewOptions(c.Recursive, c.NameMonths, c.OrderedMonths, c.IncludedExtensions)
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
