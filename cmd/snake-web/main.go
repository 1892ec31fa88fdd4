package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"berry-snake/game"
	"berry-snake/storage"
	"berry-snake/web"
)

func main() {
	highscorePath := flag.String("highscore", storage.DefaultPath, "Highscore file shared by all players")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}

	server := &http.Server{
		Addr:        ":" + port,
		Handler:     web.NewServer(storage.NewFileStore(*highscorePath), game.DefaultConfig()),
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	shutdown := make(chan struct{})
	go handleSignals(server, shutdown)

	log.WithField("addr", server.Addr).Info("server starting")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server failed")
	}
	<-shutdown
	log.Info("server stopped")
}

func handleSignals(server *http.Server, shutdown chan struct{}) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	log.Info("shutdown requested")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("shutdown incomplete")
	}
	close(shutdown)
}
