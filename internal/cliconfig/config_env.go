package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (FFBLINK_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("endpoint", os.Getenv("FFBLINK_ENDPOINT"), &cfg.Endpoint)
	s.setString("log-level", os.Getenv("FFBLINK_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("write-timeout", os.Getenv("FFBLINK_WRITE_TIMEOUT"), &cfg.WriteTimeout); err != nil {
		return err
	}
	if err := s.setDuration("wait-timeout", os.Getenv("FFBLINK_WAIT_TIMEOUT"), &cfg.WaitTimeout); err != nil {
		return err
	}
	if err := s.setIntFromString("serial-baud", os.Getenv("FFBLINK_SERIAL_BAUD"), &cfg.SerialBaud); err != nil {
		return err
	}

	s.setBoolFromString("wait", os.Getenv("FFBLINK_WAIT"), &cfg.Wait)

	return nil
}
