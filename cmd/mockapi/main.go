package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studydeck/internal/config"
	"studydeck/internal/mockapi"
)

func main() {
	log.Println("🚀 Starting studydeck mock API...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Build Fixture Dataset ────
	apiServer := mockapi.NewServer(cfg.MockAPISecret, nil)
	log.Println("✓ Fixture dataset generated")
	log.Printf("  Demo login: %s / %s", mockapi.FixtureEmail, mockapi.FixturePassword)

	// ──── Step 3: Start HTTP Server ────
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.MockAPIPort),
		Handler:      apiServer.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Mock API ready on http://localhost:%s", cfg.MockAPIPort)
	log.Printf("  API: http://localhost:%s/api", cfg.MockAPIPort)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("✗ Server failed: %v", err)
	}
}
