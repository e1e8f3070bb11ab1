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

	"craftpad-backend/internal/config"
	"craftpad-backend/internal/handlers"
	"craftpad-backend/internal/router"
	"craftpad-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Craftpad Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize OpenAI Client ────
	openaiClient := services.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIAPIURL)
	relayService := services.NewRelayService(openaiClient)
	log.Println("✓ OpenAI relay initialized")

	// ──── Step 3: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(relayService)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, cfg.StaticDir, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Craftpad Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
