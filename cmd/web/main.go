package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/spf13/cobra"

	"github.com/tareqmohamed/instanceinfo/internal/app/webhttp"
	"github.com/tareqmohamed/instanceinfo/internal/config"
	"github.com/tareqmohamed/instanceinfo/internal/usecase/instancesvc"
)

// main запускает веб-сервис и обеспечивает корректное завершение по сигналу.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "web",
		Short:         "Serve the instance ID page and static files from the working directory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log.Default())
		},
	}
	root.AddCommand(instanceIDCmd())

	return root
}

// instanceIDCmd печатает тот же текст, что встраивается в ответ GET /.
func instanceIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instance-id",
		Short: "Query the metadata service once and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			res := instancesvc.NewFromConfig(cfg).FetchInstanceID(cmd.Context())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Text())
			return err
		},
	}
}

// serve блокируется до отмены ctx. Ошибка bind возвращается наружу и в main становится фатальной.
func serve(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	handler, _, err := webhttp.NewServer(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          logger,
	}

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return err
	}

	// Сценарий graceful shutdown при получении SIGTERM/SIGINT.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("web shutdown error: %v", err)
		}
	}()

	logger.Printf("Server running on port %s", listenPort(ln.Addr()))
	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		logger.Printf("sd_notify: %v", err)
	}

	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// listenPort возвращает фактический порт слушателя (важно для ":0").
func listenPort(addr net.Addr) string {
	_, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}

	return port
}
