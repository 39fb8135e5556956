package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/Trading-auto-pilot/astra-web-sub001/identity"
	"github.com/Trading-auto-pilot/astra-web-sub001/internal/config"
	"github.com/Trading-auto-pilot/astra-web-sub001/stubapi"
)

func main() {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	port := config.GetEnv("STUBAPI_PORT", "8080")
	if port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	secret := config.GetEnv("STUBAPI_SECRET", "dev-only-secret")

	ana, err := stubapi.SeedUser("ana@example.com", "ana", "password123", []identity.NavigationEntry{
		{Page: "dashboard", Label: "Dashboard", Order: 1},
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("seeding users")
	}
	guest, err := stubapi.SeedUser("guest@example.com", "guest", "guest", nil)
	if err != nil {
		zlog.Fatal().Err(err).Msg("seeding users")
	}

	srv := stubapi.New([]byte(secret), []stubapi.User{ana, guest}, zlog.Logger)

	zlog.Info().Str("addr", port).Msg("Stub backend listening")
	if err := http.ListenAndServe(port, srv); err != nil {
		zlog.Fatal().Err(err).Msg("http.ListenAndServe")
	}
}
