package http

import (
	"net/http"

	"github.com/clinicdev/clinic-api/internal/delivery/http/handler"
	"github.com/clinicdev/clinic-api/internal/delivery/http/middleware"
	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	AuthMiddleware *middleware.AuthMiddleware

	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	Patient       *handler.PatientHandler
	Doctor        *handler.DoctorHandler
	Specialty     *handler.SpecialtyHandler
	Secretary     *handler.SecretaryHandler
	Appointment   *handler.AppointmentHandler
	Exam          *handler.ExamHandler
	Payment       *handler.PaymentHandler
	Insurance     *handler.InsuranceHandler
	MedicalRecord *handler.MedicalRecordHandler
	AuditLog      *handler.AuditLogHandler
}

// NewRouter wires every route. Reads require authentication; writes require
// ADMIN or MASTER; deletions, privileged registration and the audit trail are
// MASTER only.
func NewRouter(cfg RouterConfig) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.CORS)
	router.Use(middleware.Metrics)

	router.HandleFunc("/health", cfg.Health.Check).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public auth routes.
	api.HandleFunc("/auth/register", cfg.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", cfg.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", cfg.Auth.RefreshToken).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(cfg.AuthMiddleware.Handle)

	admin := middleware.RequireRole(entity.RoleAdmin, entity.RoleMaster)
	master := middleware.RequireRole(entity.RoleMaster)

	authed.HandleFunc("/auth/logout", cfg.Auth.Logout).Methods(http.MethodPost)
	authed.HandleFunc("/auth/me", cfg.Auth.Me).Methods(http.MethodGet)
	authed.Handle("/auth/register-privileged", admin(http.HandlerFunc(cfg.Auth.RegisterPrivileged))).Methods(http.MethodPost)

	// Patients
	authed.HandleFunc("/patients", cfg.Patient.List).Methods(http.MethodGet)
	authed.HandleFunc("/patients/{id}", cfg.Patient.Get).Methods(http.MethodGet)
	authed.Handle("/patients", admin(http.HandlerFunc(cfg.Patient.Create))).Methods(http.MethodPost)
	authed.Handle("/patients/{id}", admin(http.HandlerFunc(cfg.Patient.Update))).Methods(http.MethodPatch)
	authed.Handle("/patients/{id}", master(http.HandlerFunc(cfg.Patient.Delete))).Methods(http.MethodDelete)

	// Doctors
	authed.HandleFunc("/doctors", cfg.Doctor.List).Methods(http.MethodGet)
	authed.HandleFunc("/doctors/{id}", cfg.Doctor.Get).Methods(http.MethodGet)
	authed.HandleFunc("/doctors/{id}/appointments", cfg.Doctor.ListAppointments).Methods(http.MethodGet)
	authed.Handle("/doctors", admin(http.HandlerFunc(cfg.Doctor.Create))).Methods(http.MethodPost)
	authed.Handle("/doctors/{id}", admin(http.HandlerFunc(cfg.Doctor.Update))).Methods(http.MethodPatch)
	authed.Handle("/doctors/{id}", master(http.HandlerFunc(cfg.Doctor.Delete))).Methods(http.MethodDelete)

	// Specialties
	authed.HandleFunc("/specialties", cfg.Specialty.List).Methods(http.MethodGet)
	authed.HandleFunc("/specialties/{id}", cfg.Specialty.Get).Methods(http.MethodGet)
	authed.Handle("/specialties", admin(http.HandlerFunc(cfg.Specialty.Create))).Methods(http.MethodPost)
	authed.Handle("/specialties/{id}", admin(http.HandlerFunc(cfg.Specialty.Update))).Methods(http.MethodPatch)
	authed.Handle("/specialties/{id}", master(http.HandlerFunc(cfg.Specialty.Delete))).Methods(http.MethodDelete)

	// Secretaries
	authed.HandleFunc("/secretaries", cfg.Secretary.List).Methods(http.MethodGet)
	authed.HandleFunc("/secretaries/{id}", cfg.Secretary.Get).Methods(http.MethodGet)
	authed.Handle("/secretaries", admin(http.HandlerFunc(cfg.Secretary.Create))).Methods(http.MethodPost)
	authed.Handle("/secretaries/{id}", admin(http.HandlerFunc(cfg.Secretary.Update))).Methods(http.MethodPatch)
	authed.Handle("/secretaries/{id}", master(http.HandlerFunc(cfg.Secretary.Delete))).Methods(http.MethodDelete)

	// Appointments
	authed.HandleFunc("/appointments", cfg.Appointment.List).Methods(http.MethodGet)
	authed.HandleFunc("/appointments/{id}", cfg.Appointment.Get).Methods(http.MethodGet)
	authed.Handle("/appointments", admin(http.HandlerFunc(cfg.Appointment.Create))).Methods(http.MethodPost)
	authed.Handle("/appointments/{id}", admin(http.HandlerFunc(cfg.Appointment.Update))).Methods(http.MethodPatch)
	authed.Handle("/appointments/{id}/status", admin(http.HandlerFunc(cfg.Appointment.UpdateStatus))).Methods(http.MethodPatch)
	authed.Handle("/appointments/{id}", admin(http.HandlerFunc(cfg.Appointment.Cancel))).Methods(http.MethodDelete)

	// Exams
	authed.HandleFunc("/exams", cfg.Exam.List).Methods(http.MethodGet)
	authed.HandleFunc("/exams/{id}", cfg.Exam.Get).Methods(http.MethodGet)
	authed.Handle("/exams", admin(http.HandlerFunc(cfg.Exam.Create))).Methods(http.MethodPost)
	authed.Handle("/exams/{id}", admin(http.HandlerFunc(cfg.Exam.Update))).Methods(http.MethodPatch)
	authed.Handle("/exams/{id}/status", admin(http.HandlerFunc(cfg.Exam.UpdateStatus))).Methods(http.MethodPatch)
	authed.Handle("/exams/{id}/result", admin(http.HandlerFunc(cfg.Exam.SetResult))).Methods(http.MethodPatch)
	authed.Handle("/exams/{id}", admin(http.HandlerFunc(cfg.Exam.Cancel))).Methods(http.MethodDelete)

	// Payments
	authed.HandleFunc("/payments", cfg.Payment.List).Methods(http.MethodGet)
	authed.HandleFunc("/payments/{id}", cfg.Payment.Get).Methods(http.MethodGet)
	authed.Handle("/payments", admin(http.HandlerFunc(cfg.Payment.Create))).Methods(http.MethodPost)
	authed.Handle("/payments/{id}", admin(http.HandlerFunc(cfg.Payment.Update))).Methods(http.MethodPatch)
	authed.Handle("/payments/{id}/status", admin(http.HandlerFunc(cfg.Payment.UpdateStatus))).Methods(http.MethodPatch)
	authed.Handle("/payments/{id}", master(http.HandlerFunc(cfg.Payment.Cancel))).Methods(http.MethodDelete)

	// Insurances
	authed.HandleFunc("/insurances", cfg.Insurance.List).Methods(http.MethodGet)
	authed.HandleFunc("/insurances/{id}", cfg.Insurance.Get).Methods(http.MethodGet)
	authed.Handle("/insurances", admin(http.HandlerFunc(cfg.Insurance.Create))).Methods(http.MethodPost)
	authed.Handle("/insurances/{id}", admin(http.HandlerFunc(cfg.Insurance.Update))).Methods(http.MethodPatch)
	authed.Handle("/insurances/{id}", master(http.HandlerFunc(cfg.Insurance.Delete))).Methods(http.MethodDelete)

	// Medical records: append-only, no update or delete routes.
	authed.HandleFunc("/medical-records", cfg.MedicalRecord.List).Methods(http.MethodGet)
	authed.HandleFunc("/medical-records/{id}", cfg.MedicalRecord.Get).Methods(http.MethodGet)
	authed.Handle("/medical-records", admin(http.HandlerFunc(cfg.MedicalRecord.Create))).Methods(http.MethodPost)

	// Audit trail
	authed.Handle("/audit-logs", master(http.HandlerFunc(cfg.AuditLog.List))).Methods(http.MethodGet)
	authed.Handle("/audit-logs/{id}", master(http.HandlerFunc(cfg.AuditLog.Get))).Methods(http.MethodGet)

	return router
}
