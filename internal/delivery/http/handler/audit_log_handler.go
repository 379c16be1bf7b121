package handler

import (
	"net/http"

	"github.com/clinicdev/clinic-api/internal/domain/entity"
	"github.com/clinicdev/clinic-api/internal/usecase"
	"github.com/clinicdev/clinic-api/pkg/query"
	"github.com/clinicdev/clinic-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type AuditLogHandler struct {
	log     *logrus.Logger
	usecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(log *logrus.Logger, uc usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		log:     log,
		usecase: uc,
	}
}

func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.From(r.URL.Query())
	filter := &entity.AuditLogFilter{
		UserID: params.Uint("user_id", 0),
		Action: params.String("action", ""),
		Page:   params.Page(),
		Limit:  params.Limit(),
	}

	logs, total, err := h.usecase.List(r.Context(), filter)
	if err != nil {
		response.FromError(w, err, "Failed to list audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", logs,
		response.NewMeta(total, filter.Page, filter.Limit))
}

func (h *AuditLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID64(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid audit log id", nil)
		return
	}

	auditLog, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to retrieve audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}
