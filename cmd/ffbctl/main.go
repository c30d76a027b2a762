package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/ffblink/internal/cliconfig"
	"github.com/bft-labs/ffblink/pkg/log"
)

const longHelp = `
Send force-feedback frames to a haptic glove provider, or run a reference
provider that prints the frames it receives.

Endpoints:
  application/ffb        well-known name, socket in $XDG_RUNTIME_DIR
  unix:/path/to/sock     explicit Unix socket
  serial:/dev/ttyACM0    glove firmware over a serial port

Configuration is read from ~/.ffblink/config.toml, then FFBLINK_* environment
variables, then flags.
`

var exampleUsage = strings.TrimSpace(`
  ffbctl listen
  ffbctl prime --hand right --curls 1000 --hold 2s
  ffbctl prime --hand left --curls 0,800,800,800,600 --hold 0
  ffbctl relax --hand left --endpoint serial:/dev/ttyACM0
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// cli carries state shared by every subcommand.
type cli struct {
	cfg     cliconfig.Config
	cfgPath string
	logger  *log.ZerologAdapter
}

func main() {
	c := &cli{cfg: cliconfig.DefaultConfig()}
	root := newRootCommand(c)

	if err := root.Execute(); err != nil {
		zl := cliconfig.Logger()
		zl.Error().Err(err).Msg("ffbctl")
		os.Exit(1)
	}
}

func newRootCommand(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:               "ffbctl",
		Short:             "Drive and inspect the force-feedback transport",
		Long:              strings.TrimSpace(longHelp),
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.load,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.ffblink/config.toml)")
	flags.StringVar(&c.cfg.Endpoint, "endpoint", c.cfg.Endpoint, "provider endpoint: name, unix:<path> or serial:<device>")
	flags.DurationVar(&c.cfg.WriteTimeout, "write-timeout", c.cfg.WriteTimeout, "deadline for each frame write (0 disables)")
	flags.IntVar(&c.cfg.SerialBaud, "serial-baud", c.cfg.SerialBaud, "baud rate for serial endpoints")
	flags.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.BoolVar(&c.cfg.Wait, "wait", c.cfg.Wait, "wait for the provider endpoint to appear before connecting")
	flags.DurationVar(&c.cfg.WaitTimeout, "wait-timeout", c.cfg.WaitTimeout, "how long --wait blocks before giving up")

	root.AddCommand(
		newPrimeCommand(c),
		newRelaxCommand(c),
		newListenCommand(c),
	)
	return root
}

// load resolves configuration (file, then env, then flags) and builds the
// logger before any subcommand runs.
func (c *cli) load(cmd *cobra.Command, _ []string) error {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return err
	}

	if err := c.cfg.Validate(); err != nil {
		return err
	}

	logger, err := log.NewZerologAdapterWithLogger(cliconfig.Logger()).WithLevel(c.cfg.LogLevel)
	if err != nil {
		return err
	}
	c.logger = logger

	c.logger.Debug("configuration",
		log.String("endpoint", c.cfg.Endpoint),
		log.Duration("write_timeout", c.cfg.WriteTimeout),
		log.Int("serial_baud", c.cfg.SerialBaud),
		log.Bool("wait", c.cfg.Wait),
	)
	return nil
}
