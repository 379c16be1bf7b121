package handler

import (
	"net/http"

	"github.com/clinicdev/clinic-api/pkg/response"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:    db,
		redis: redisClient,
	}
}

// Check reports the liveness of the service and its backing stores.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"service":  "ok",
		"database": "ok",
		"redis":    "ok",
	}
	healthy := true

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(r.Context()) != nil {
		status["database"] = "unavailable"
		healthy = false
	}

	if err := h.redis.Ping(r.Context()).Err(); err != nil {
		status["redis"] = "unavailable"
		healthy = false
	}

	if !healthy {
		response.Error(w, http.StatusServiceUnavailable, "Service degraded", status)
		return
	}

	response.Success(w, http.StatusOK, "Service healthy", status)
}
