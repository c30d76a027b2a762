package cliconfig

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/ffblink/pkg/log"
)

// Logger returns the CLI's console logger.
func Logger() zerolog.Logger {
	return log.NewConsoleLogger(os.Stderr)
}
