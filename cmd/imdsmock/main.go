package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tareqmohamed/instanceinfo/internal/app/imdshttp"
	"github.com/tareqmohamed/instanceinfo/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cobra.Command{
		Use:           "imdsmock",
		Short:         "Run a local IMDSv2-compatible metadata emulator",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.ValidateMock(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg.Mock)
		},
	}

	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Mock) error {
	h, srv := imdshttp.New(imdshttp.Options{
		InstanceID: cfg.InstanceID,
		RateLimit:  cfg.RateLimit,
	})

	stopPrune := imdshttp.StartPrune(srv.Tokens(), cfg.PruneEvery)
	defer stopPrune()

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("IMDS shutdown error: %v", err)
		}
	}()

	log.Printf("IMDS emulator listening on %s (instance_id=%s, rate_limit=%d/s)", cfg.ListenAddr, cfg.InstanceID, cfg.RateLimit)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
