package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/algolab/internal/api"
	"github.com/san-kum/algolab/internal/experiment"
	"github.com/san-kum/algolab/internal/playback"
)

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	accounts, err := accountStore(cfg)
	if err != nil {
		return err
	}
	user, err := currentUser(accounts)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("addr") && cfg.Server.Addr != "" {
		addr = cfg.Server.Addr
	}

	logger := newLogger(os.Stderr)
	registry := experiment.NewRegistry()
	ctrl := playback.New(playback.Options{
		Registry:  registry,
		Lang:      cfg.GetLang(),
		Logger:    logger,
		Category:  cfg.GetCategory(),
		Algorithm: cfg.Algorithm,
		Size:      cfg.Size,
		Speed:     cfg.Speed,
	})
	defer ctrl.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(ctrl, registry, user, logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	fmt.Printf("serving on http://%s\n", addr)
	logger.Info("server started", slog.String("addr", addr), slog.String("user", user.Email))

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
