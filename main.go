package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"quadrant-board/board"
	"quadrant-board/config"
	"quadrant-board/utils"
)

var configPath = flag.String("config", "quadrant.yaml", "path to YAML config file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := utils.OpenDB(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	b, err := board.New(utils.NewStorage(db, cfg.Storage.Key))
	if err != nil {
		log.Fatalf("Failed to load board: %v", err)
	}
	log.Printf("Loaded %d tasks from %s", b.Snapshot().Count(), cfg.Storage.Path)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: setupRouter(b, gin.Logger(), gin.Recovery()),
		// Request contexts end with ctx so open event streams close on shutdown.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		log.Printf("Listening on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown failed: %v", err)
	}
}
