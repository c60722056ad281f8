package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clinicore/clinic-api/internal/config"
	doctorHandler "github.com/clinicore/clinic-api/internal/handler/doctor"
	"github.com/clinicore/clinic-api/internal/handler/health"
	patientHandler "github.com/clinicore/clinic-api/internal/handler/patient"
	reservationHandler "github.com/clinicore/clinic-api/internal/handler/reservation"
	statsHandler "github.com/clinicore/clinic-api/internal/handler/stats"
	"github.com/clinicore/clinic-api/internal/repository/postgres"
	"github.com/clinicore/clinic-api/internal/router"
	doctorService "github.com/clinicore/clinic-api/internal/service/doctor"
	medicalService "github.com/clinicore/clinic-api/internal/service/medical"
	patientService "github.com/clinicore/clinic-api/internal/service/patient"
	"github.com/clinicore/clinic-api/internal/service/scheduling"
	"github.com/clinicore/clinic-api/pkg/logger"
	"github.com/clinicore/clinic-api/pkg/metrics"
	"github.com/clinicore/clinic-api/pkg/validator"
)

func main() {
	log := logger.NewLogger(nil)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	m := metrics.NewMetrics("clinic")

	// Initialize repositories
	store := postgres.NewStore(db, m)
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	recordRepo := postgres.NewMedicalRecordRepository(db)

	// Build the daily slot template from config
	schedule, err := scheduling.FromConfig(cfg.Clinic)
	if err != nil {
		log.Fatal(err, "invalid clinic schedule configuration")
	}

	// Initialize services
	patientSvc := patientService.NewService(patientRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	medicalSvc := medicalService.NewService(recordRepo, reservationRepo, patientRepo)
	schedulingSvc := scheduling.NewService(store, patientRepo, doctorRepo, reservationRepo, recordRepo, schedule, m)

	// Register clinic-specific binding rules
	if err := validator.RegisterCustom(); err != nil {
		log.Fatal(err, "failed to register validators")
	}

	// Setup router
	r := router.NewRouter(
		router.Config{
			RateLimit:     100,
			RateBurst:     200,
			MetricsPrefix: "clinic_http",
		},
		health.NewHandler(db),
		patientHandler.NewHandler(patientSvc, schedulingSvc, medicalSvc),
		doctorHandler.NewHandler(doctorSvc, schedulingSvc),
		reservationHandler.NewHandler(schedulingSvc, medicalSvc),
		statsHandler.NewHandler(medicalSvc),
	)
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	// Start server
	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
