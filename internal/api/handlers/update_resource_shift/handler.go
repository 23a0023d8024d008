package update_resource_shift

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/shifts"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidResourceID  = "некорректный ID ресурса"
	msgInvalidYear        = "некорректный год"
	msgInvalidMonth       = "некорректный месяц"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные смены"
	msgUnauthorized       = "требуется авторизация"
	msgCompanyNotFound    = "компания не найдена"
	msgResourceNotFound   = "ресурс не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service ShiftsService
	logger  Logger
}

func NewHandler(service ShiftsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/companies/{companyId}/resources/{resourceId}/shifts/{year}/{month}
// Требует X-User-ID header (только менеджеры компании)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /companies/{id}/resources/{id}/shifts - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /companies/{id}/resources/{id}/shifts - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("PUT /companies/{id}/resources/{id}/shifts - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("PUT /companies/{id}/resources/{id}/shifts - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /companies/{id}/resources/{id}/shifts - Missing user ID in context: company_id=%d", companyID)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpdateResourceShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /companies/{id}/resources/{id}/shifts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertMonth(r.Context(), companyID, resourceID, year, time.Month(month), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, shifts.ErrCompanyNotFound):
			h.logger.Warn("PUT /companies/{id}/resources/{id}/shifts - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, shifts.ErrResourceNotFound):
			h.logger.Warn("PUT /companies/{id}/resources/{id}/shifts - Resource not found: company_id=%d, resource_id=%d",
				companyID, resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, shifts.ErrAccessDenied):
			h.logger.Warn("PUT /companies/{id}/resources/{id}/shifts - Access denied: company_id=%d, user_id=%d",
				companyID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, shifts.ErrInvalidInput):
			h.logger.Warn("PUT /companies/{id}/resources/{id}/shifts - Invalid data: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /companies/{id}/resources/{id}/shifts - Failed to save shift: company_id=%d, resource_id=%d, error=%v",
				companyID, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /companies/{id}/resources/{id}/shifts - Shift saved successfully: company_id=%d, resource_id=%d",
		companyID, resourceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
