package bootstrap

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clinicdev/clinic-api/config"
	deliveryhttp "github.com/clinicdev/clinic-api/internal/delivery/http"
	"github.com/clinicdev/clinic-api/internal/delivery/http/handler"
	"github.com/clinicdev/clinic-api/internal/delivery/http/middleware"
	"github.com/clinicdev/clinic-api/internal/infrastructure/cache"
	"github.com/clinicdev/clinic-api/internal/infrastructure/database"
	"github.com/clinicdev/clinic-api/internal/repository"
	"github.com/clinicdev/clinic-api/internal/service"
	"github.com/clinicdev/clinic-api/internal/usecase"
	"github.com/clinicdev/clinic-api/pkg/jwt"
	"github.com/clinicdev/clinic-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Run builds the dependency graph, starts the HTTP server and blocks until
// shutdown.
func Run() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %+v", err)
	}

	if cfg.App.Env == "production" {
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := database.RunMigrations(cfg); err != nil {
		log.Fatalf("Failed to run migrations: %+v", err)
	}

	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %+v", err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %+v", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT)
	tokenStore := cache.NewTokenStore(redisClient)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	specialtyRepo := repository.NewSpecialtyRepository()
	secretaryRepo := repository.NewSecretaryRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	examRepo := repository.NewExamRepository()
	paymentRepo := repository.NewPaymentRepository()
	insuranceRepo := repository.NewInsuranceRepository()
	medicalRecordRepo := repository.NewMedicalRecordRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, tokenStore, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, specialtyRepo, auditService)
	specialtyUsecase := usecase.NewSpecialtyUsecase(db, log, specialtyRepo)
	secretaryUsecase := usecase.NewSecretaryUsecase(db, log, secretaryRepo, doctorRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, auditService)
	examUsecase := usecase.NewExamUsecase(db, log, examRepo, appointmentRepo)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, paymentRepo, appointmentRepo, insuranceRepo)
	insuranceUsecase := usecase.NewInsuranceUsecase(db, log, insuranceRepo)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(db, log, medicalRecordRepo, patientRepo, doctorRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Delivery
	authMiddleware := middleware.NewAuthMiddleware(log, jwtService, tokenStore)

	router := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		AuthMiddleware: authMiddleware,
		Health:         handler.NewHealthHandler(db, redisClient),
		Auth:           handler.NewAuthHandler(log, authUsecase, customValidator),
		Patient:        handler.NewPatientHandler(log, patientUsecase, customValidator),
		Doctor:         handler.NewDoctorHandler(log, doctorUsecase, appointmentUsecase, customValidator),
		Specialty:      handler.NewSpecialtyHandler(log, specialtyUsecase, customValidator),
		Secretary:      handler.NewSecretaryHandler(log, secretaryUsecase, customValidator),
		Appointment:    handler.NewAppointmentHandler(log, appointmentUsecase, customValidator),
		Exam:           handler.NewExamHandler(log, examUsecase, customValidator),
		Payment:        handler.NewPaymentHandler(log, paymentUsecase, customValidator),
		Insurance:      handler.NewInsuranceHandler(log, insuranceUsecase, customValidator),
		MedicalRecord:  handler.NewMedicalRecordHandler(log, medicalRecordUsecase, customValidator),
		AuditLog:       handler.NewAuditLogHandler(log, auditLogUsecase),
	})

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      middleware.Logging(log)(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Server listening on port %s", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %+v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Forced shutdown: %+v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	redisClient.Close()

	log.Info("Server stopped")
}
