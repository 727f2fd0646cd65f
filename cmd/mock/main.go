package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"esgweb/internal/env"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	env.LoadEnv()
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	addr := flag.String("addr", ":8081", "Listen address")
	password := flag.String("password", env.GetEnv("MOCK_PASSWORD", "esg"), "Password accepted for every email")
	latency := flag.Duration("latency", 300*time.Millisecond, "Artificial latency of DART lookups")
	flag.Parse()

	b := newBackend(*password, *latency)

	log.Info().Str("addr", *addr).Msg("mock backend running")
	server := &http.Server{Addr: *addr, Handler: b.routes(), ReadHeaderTimeout: 5 * time.Second}
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("mock backend crashed")
	}
}
