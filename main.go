package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "sleeperbooking/internal/config"
	"sleeperbooking/internal/domain/models"
	router "sleeperbooking/internal/http"
	"sleeperbooking/internal/http/handlers"
	"sleeperbooking/internal/repositories"
	"sleeperbooking/internal/scoring"
	"sleeperbooking/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	weights, err := scoring.LoadWeights(env.ModelPath)
	if err != nil {
		log.Fatalf("failed to load scoring weights: %v", err)
	}

	catalog := repositories.NewCatalog()
	inventory := repositories.NewSeatInventory(models.SeedBookedSeats)
	ledger := repositories.NewBookingLedger()
	reservations := services.NewReservationService(inventory, ledger, catalog, time.Now)

	api := &handlers.API{
		Reservations: reservations,
		Availability: services.AvailabilityService{Catalog: catalog, Reservations: reservations},
		Estimator: services.EstimateService{
			Scorer:  scoring.NewHeuristicScorer(weights),
			Timeout: env.ScoringTimeout,
		},
		Catalog: catalog,
	}

	r := router.NewRouter(env, api)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
