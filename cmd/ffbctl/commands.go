package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bft-labs/ffblink/internal/adapters/ipc"
	"github.com/bft-labs/ffblink/internal/domain"
	"github.com/bft-labs/ffblink/pkg/ffb"
	"github.com/bft-labs/ffblink/pkg/log"
	"github.com/bft-labs/ffblink/pkg/transport"
)

func newPrimeCommand(c *cli) *cobra.Command {
	var (
		handName string
		curlSpec string
		hold     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "prime",
		Short: "Prime a hand, hold, then relax both hands",
		Long: `Send one prime frame for --hand, keep the connection for --hold, then shut
down, which relaxes both hands. A --hold of 0 waits for SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hand, err := ffb.ParseHand(handName)
			if err != nil {
				return err
			}
			curls, err := parseCurls(curlSpec)
			if err != nil {
				return err
			}
			if err := curls.Validate(); err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			svc, err := c.connect(ctx)
			if err != nil {
				return err
			}
			defer svc.Shutdown()

			if err := svc.Prime(hand, curls); err != nil {
				return err
			}
			c.logger.Info("hand primed", log.Stringer("hand", hand), log.Duration("hold", hold))

			if hold > 0 {
				timer := time.NewTimer(hold)
				defer timer.Stop()
				select {
				case <-ctx.Done():
				case <-timer.C:
				}
			} else {
				<-ctx.Done()
			}
			return svc.Shutdown()
		},
	}
	cmd.Flags().StringVar(&handName, "hand", "right", "hand to prime (left or right)")
	cmd.Flags().StringVar(&curlSpec, "curls", "full", "curl targets: one value or five comma-separated (thumb..pinky)")
	cmd.Flags().DurationVar(&hold, "hold", time.Second, "how long to hold before relaxing (0 waits for a signal)")
	return cmd
}

func newRelaxCommand(c *cli) *cobra.Command {
	var handName string
	cmd := &cobra.Command{
		Use:   "relax",
		Short: "Release a hand left engaged by another process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hand, err := ffb.ParseHand(handName)
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			svc, err := c.connect(ctx)
			if err != nil {
				return err
			}
			if err := svc.ForceRelax(hand); err != nil {
				_ = svc.Shutdown()
				return err
			}
			c.logger.Info("hand relaxed", log.Stringer("hand", hand))
			return svc.Shutdown()
		},
	}
	cmd.Flags().StringVar(&handName, "hand", "right", "hand to relax (left or right)")
	return cmd
}

func newListenCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Run a reference provider that logs every frame it receives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ep, err := transport.ParseEndpoint(c.cfg.Endpoint)
			if err != nil {
				return err
			}
			if ep.Scheme == transport.SchemeSerial {
				return fmt.Errorf("listen: %s is a serial endpoint; only socket endpoints can be served", ep)
			}
			path, err := ffb.EndpointPath(c.cfg.Endpoint)
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			ln, err := ipc.Listen(path, c.logger)
			if err != nil {
				return err
			}
			defer ln.Close()

			c.logger.Info("listening", log.String("endpoint", ep.String()), log.String("path", ln.Path()))
			return ln.Serve(ctx, c.logFrame)
		},
	}
}

// connect waits for the endpoint when asked to, then starts a service. A
// start failure is returned so the command exits non-zero.
func (c *cli) connect(ctx context.Context) (*ffb.Service, error) {
	if c.cfg.Wait {
		waitCtx, cancel := context.WithTimeout(ctx, c.cfg.WaitTimeout)
		defer cancel()
		c.logger.Info("waiting for endpoint", log.String("endpoint", c.cfg.Endpoint))
		if err := ffb.WaitForEndpoint(waitCtx, c.cfg.Endpoint); err != nil {
			return nil, fmt.Errorf("wait for endpoint: %w", err)
		}
	}

	svc, err := ffb.New(c.cfg.ServiceConfig(), ffb.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}
	if err := svc.Start(ctx); err != nil {
		_ = svc.Shutdown()
		return nil, fmt.Errorf("connect: %w", err)
	}
	return svc, nil
}

func (c *cli) logFrame(f domain.Frame) {
	c.logger.Info("frame",
		log.Stringer("hand", f.Hand),
		log.Int16("thumb", f.ThumbCurl),
		log.Int16("index", f.IndexCurl),
		log.Int16("middle", f.MiddleCurl),
		log.Int16("ring", f.RingCurl),
		log.Int16("pinky", f.PinkyCurl),
		log.Bool("relax", f.IsRelax()),
	)
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
