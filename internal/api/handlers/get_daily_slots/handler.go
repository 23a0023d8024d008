package get_daily_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getDailySlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_daily_slots"
)

const (
	msgInvalidCompanyID  = "некорректный ID компании"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgInvalidResourceID = "некорректный ID ресурса"
	msgMissingDate       = "дата обязательна"
	msgInvalidRequest    = "некорректные параметры запроса"
	msgCompanyNotFound   = "компания не найдена"
	msgServiceNotFound   = "услуга не найдена"
	msgResourceNotFound  = "ресурс не найден"
)

type Handler struct {
	useCase GetDailySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDailySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/services/{serviceId}/daily-slots
// Query params: date (required, YYYY-MM-DD), resourceId (optional), timezone (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/services/{id}/daily-slots - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/services/{id}/daily-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /companies/{id}/services/{id}/daily-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq := &getDailySlots.GetDailySlotsRequest{
		CompanyID: companyID,
		ServiceID: serviceID,
		Date:      dateStr,
		Timezone:  r.URL.Query().Get("timezone"),
	}

	if resourceIDStr := r.URL.Query().Get("resourceId"); resourceIDStr != "" {
		resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /companies/{id}/services/{id}/daily-slots - Invalid resource ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidResourceID)
			return
		}
		useCaseReq.ResourceID = &resourceID
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDailySlots.ErrCompanyNotFound):
			h.logger.Warn("GET /companies/{id}/services/{id}/daily-slots - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, getDailySlots.ErrServiceNotFound):
			h.logger.Warn("GET /companies/{id}/services/{id}/daily-slots - Service not found: company_id=%d, service_id=%d",
				companyID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getDailySlots.ErrResourceNotFound):
			h.logger.Warn("GET /companies/{id}/services/{id}/daily-slots - Resource not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getDailySlots.ErrInvalidInput):
			h.logger.Warn("GET /companies/{id}/services/{id}/daily-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /companies/{id}/services/{id}/daily-slots - Failed to get slots: company_id=%d, service_id=%d, error=%v",
				companyID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{id}/services/{id}/daily-slots - Slots retrieved successfully: company_id=%d, service_id=%d, slots_count=%d",
		companyID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
