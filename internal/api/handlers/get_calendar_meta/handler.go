package get_calendar_meta

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getCalendarMeta "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_calendar_meta"
)

const (
	msgInvalidCompanyID  = "некорректный ID компании"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgInvalidResourceID = "некорректный ID ресурса"
	msgMissingYear       = "год обязателен"
	msgMissingMonth      = "месяц обязателен"
	msgInvalidYear       = "некорректный год"
	msgInvalidMonth      = "некорректный месяц"
	msgInvalidRequest    = "некорректные параметры запроса"
	msgCompanyNotFound   = "компания не найдена"
	msgServiceNotFound   = "услуга не найдена"
	msgResourceNotFound  = "ресурс не найден"
)

type Handler struct {
	useCase GetCalendarMetaUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarMetaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/services/{serviceId}/calendar-meta
// Query params: year (required), month (required), resourceId (optional), timezone (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/services/{id}/calendar-meta - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/services/{id}/calendar-meta - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /companies/{id}/services/{id}/calendar-meta - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/services/{id}/calendar-meta - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /companies/{id}/services/{id}/calendar-meta - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/services/{id}/calendar-meta - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	useCaseReq := &getCalendarMeta.GetCalendarMetaRequest{
		CompanyID: companyID,
		ServiceID: serviceID,
		Year:      year,
		Month:     month,
		Timezone:  r.URL.Query().Get("timezone"),
	}

	if resourceIDStr := r.URL.Query().Get("resourceId"); resourceIDStr != "" {
		resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /companies/{id}/services/{id}/calendar-meta - Invalid resource ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidResourceID)
			return
		}
		useCaseReq.ResourceID = &resourceID
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendarMeta.ErrCompanyNotFound):
			h.logger.Warn("GET /companies/{id}/services/{id}/calendar-meta - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, getCalendarMeta.ErrServiceNotFound):
			h.logger.Warn("GET /companies/{id}/services/{id}/calendar-meta - Service not found: company_id=%d, service_id=%d",
				companyID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getCalendarMeta.ErrResourceNotFound):
			h.logger.Warn("GET /companies/{id}/services/{id}/calendar-meta - Resource not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getCalendarMeta.ErrInvalidInput):
			h.logger.Warn("GET /companies/{id}/services/{id}/calendar-meta - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /companies/{id}/services/{id}/calendar-meta - Failed to build summary: company_id=%d, service_id=%d, error=%v",
				companyID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{id}/services/{id}/calendar-meta - Summary built successfully: company_id=%d, service_id=%d, days=%d",
		companyID, serviceID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
