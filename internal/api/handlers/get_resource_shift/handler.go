package get_resource_shift

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
	msgInvalidCompanyID  = "некорректный ID компании"
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidYear       = "некорректный год"
	msgInvalidMonth      = "некорректный месяц"
	msgInvalidRequest    = "некорректные параметры запроса"
	msgUnauthorized      = "требуется авторизация"
	msgCompanyNotFound   = "компания не найдена"
	msgResourceNotFound  = "ресурс не найден"
	msgForbidden         = "доступ запрещен"
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

// Handle GET /api/v1/companies/{companyId}/resources/{resourceId}/shifts/{year}/{month}
// Требует X-User-ID header (только менеджеры компании)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/resources/{id}/shifts - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/resources/{id}/shifts - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /companies/{id}/resources/{id}/shifts - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /companies/{id}/resources/{id}/shifts - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /companies/{id}/resources/{id}/shifts - Missing user ID in context: company_id=%d", companyID)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetMonthGrid(r.Context(), userID, companyID, resourceID, year, time.Month(month))
	if err != nil {
		switch {
		case errors.Is(err, shifts.ErrCompanyNotFound):
			h.logger.Warn("GET /companies/{id}/resources/{id}/shifts - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, shifts.ErrResourceNotFound):
			h.logger.Warn("GET /companies/{id}/resources/{id}/shifts - Resource not found: company_id=%d, resource_id=%d",
				companyID, resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, shifts.ErrAccessDenied):
			h.logger.Warn("GET /companies/{id}/resources/{id}/shifts - Access denied: company_id=%d, user_id=%d",
				companyID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, shifts.ErrInvalidInput):
			h.logger.Warn("GET /companies/{id}/resources/{id}/shifts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /companies/{id}/resources/{id}/shifts - Failed to build grid: company_id=%d, resource_id=%d, error=%v",
				companyID, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{id}/resources/{id}/shifts - Grid built successfully: company_id=%d, resource_id=%d, days=%d",
		companyID, resourceID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
