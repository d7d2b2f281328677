package main

import (
	"net/http"
	"os"
	"time"

	"vaccine-reminder/internal/platform/logger"
	"vaccine-reminder/internal/router"
)

// @title Vaccine Reminder API
// @version 0.1
// @description Calendario de vacunación infantil: registra niños, calcula las dosis recomendadas y deriva el estado de cada una contra la fecha actual.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{AuthVerifier: nil}) // sin verifier para modo dev

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
