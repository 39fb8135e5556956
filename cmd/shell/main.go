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
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/Trading-auto-pilot/astra-web-sub001/guard"
	"github.com/Trading-auto-pilot/astra-web-sub001/identity"
	"github.com/Trading-auto-pilot/astra-web-sub001/internal/config"
	"github.com/Trading-auto-pilot/astra-web-sub001/marketdata"
	"github.com/Trading-auto-pilot/astra-web-sub001/routes"
	"github.com/Trading-auto-pilot/astra-web-sub001/server"
	"github.com/Trading-auto-pilot/astra-web-sub001/session"
)

func main() {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	for {
		if err := run(); err != nil {
			zlog.Error().Err(err).Msg("Error running shell")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	zlog.Info().Msg("Shell stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			zlog.Error().Interface("panic", r).Msg("Recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	log := zlog.Logger

	store := session.NewFileStore(c.GetSessionFile(), log)
	gateway := identity.NewClient(c.GetBackendBaseURL(), log)
	market := marketdata.NewClient(c.GetProviderBaseURL(), c.GetProviderAPIKey(), log)

	controller := guard.New(store, gateway, func(route routes.RouteID) {
		log.Info().Str("route", string(route)).Msg("route committed")
	}, log)
	controller.Start(context.Background())

	srv := &http.Server{Addr: c.GetPort(), Handler: server.New(c, controller, market, log)}
	go listenAndServe(srv)
	waitForStopSignal()
	returnError = shutdown(srv)
	return returnError
}

func listenAndServe(srv *http.Server) {
	zlog.Info().Str("addr", srv.Addr).Msg("Shell listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
