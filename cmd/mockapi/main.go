package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/edusphere/admin-client/mockapi"
	"github.com/edusphere/admin-client/utils"
)

// Runs the in-memory admin API stand-in for local development. Point
// API_BASE_URL at it and use MOCKAPI_TOKEN as the access token.
func main() {
	logger := utils.NewLogger()

	token := os.Getenv("MOCKAPI_TOKEN")
	if token == "" {
		token = "dev-token"
	}
	addr := os.Getenv("MOCKAPI_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8000"
	}

	server := mockapi.NewServer(token)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Log("Shutting down mock API...")
		if err := server.Shutdown(); err != nil {
			logger.Logf("shutdown: %v", err)
		}
	}()

	logger.Logf("Mock admin API listening on %s (token %q)", addr, token)
	if err := server.Start(addr); err != nil {
		logger.Logf("server stopped: %v", err)
		os.Exit(1)
	}
}
