package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/docframe/internal/presentation/tui"
	"github.com/aretw0/docframe/internal/renderstub"
	"github.com/spf13/cobra"
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Serve a fake docframe engine",
	Long:  `Starts a local engine stand-in that decodes documents and answers with placeholder output. Useful for trying the CLI without an engine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		stub := renderstub.New(
			renderstub.WithToken(state.cfg.Token),
			renderstub.WithLogger(state.logger),
		)

		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           stub.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			tui.PrintBanner(cmd.OutOrStdout())
			tui.NewStatus(cmd.OutOrStdout()).Info("stub listening on %s%s", srv.Addr, renderstub.APIPath)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case sig := <-shutdown:
			state.logger.Info("Shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				state.logger.Error("Graceful shutdown did not complete", "error", err)
				return srv.Close()
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(stubCmd)
	stubCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
