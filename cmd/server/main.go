package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/fleetgate/fleetgate/fleet"
	"github.com/fleetgate/fleetgate/internal/config"
	"github.com/fleetgate/fleetgate/server"
	"github.com/fleetgate/fleetgate/server/sessionstore"
	"github.com/fleetgate/fleetgate/server/statestore"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c, err := config.New()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	setupLogging(c.GetEnv())
	displayAppname(c.GetAppName())

	states := statestore.NewInMemoryRepo()
	defer states.Stop()

	srv := server.New(c, sessionstore.NewInMemoryRepo(), states, fleet.NewClient(c.GetFleetAPIURL()))
	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}

	go listenAndServe(httpServer, c.GetAppURL())
	waitForStopSignal()
	return shutdown(httpServer)
}

func setupLogging(env string) {
	if env == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func listenAndServe(server *http.Server, appURL string) {
	log.Info().Str("addr", server.Addr).Msg("server listening")
	log.Info().Str("app_url", appURL).Msg("Tesla must be able to reach the app at this URL (e.g. via an ngrok tunnel)")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
