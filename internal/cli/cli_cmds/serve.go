package cli_cmds

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/cli"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/config"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func NewServe(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the ledger HTTP API",
		Long:  "Run the ledger HTTP API until SIGINT or SIGTERM, then drain in-flight requests.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(params.ConfigFile)
			if err != nil {
				return err
			}

			log, _, err := logger.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log, nil)
		},
	}
}

// serve runs the API until ctx is done. When ready is non-nil it receives
// the bound address once the listener is open.
func serve(ctx context.Context, cfg *config.Config, log *zap.Logger, ready chan<- string) (err error) {
	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close adapters: %w", cerr))
		}
	}()

	ln, err := net.Listen("tcp", cfg.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.HTTP.Addr, err)
	}

	srv := &http.Server{
		Handler:      a.server.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	log.Info("ledger listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("lock", cfg.Lock.Driver),
	)
	if ready != nil {
		ready <- ln.Addr().String()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		log.Info("ledger shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
