package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bft-labs/ffblink/pkg/ffb"
)

// Config holds CLI configuration for ffbctl.
type Config struct {
	Endpoint     string
	WriteTimeout time.Duration
	SerialBaud   int
	LogLevel     string

	Wait        bool
	WaitTimeout time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	lib := ffb.DefaultConfig()
	return Config{
		Endpoint:     lib.Endpoint,
		WriteTimeout: lib.WriteTimeout,
		SerialBaud:   lib.SerialBaud,
		LogLevel:     "info",
		WaitTimeout:  30 * time.Second,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.ServiceConfig().Validate(); err != nil {
		return err
	}
	if c.Wait && c.WaitTimeout <= 0 {
		return fmt.Errorf("wait timeout must be positive")
	}
	return nil
}

// ServiceConfig converts the CLI configuration to the library configuration.
func (c *Config) ServiceConfig() ffb.Config {
	return ffb.Config{
		Endpoint:     c.Endpoint,
		WriteTimeout: c.WriteTimeout,
		SerialBaud:   c.SerialBaud,
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
