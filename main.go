package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-reservation/config"
	"hotel-reservation/controllers"
	"hotel-reservation/routes"
	"hotel-reservation/services"
	"hotel-reservation/store"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// In-memory state; the inventory starts empty unless seeding is enabled
	db := store.New()

	// Initialize services
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	reportService := services.NewReportService(db)

	if config.EnvOrDefault("SEED_ROOMS", "true") != "false" {
		config.SeedRooms(roomService)
	}

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	reportController := controllers.NewReportController(reportService)
	roomTypeController := controllers.NewRoomTypeController(config.RoomTypes())

	// Build router
	router := routes.SetupRouter(roomController, bookingController, reportController, roomTypeController)

	addr := ":" + config.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
