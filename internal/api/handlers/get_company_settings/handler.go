package get_company_settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/settings
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/settings - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	result, err := h.service.GetByCompany(r.Context(), companyID)
	if err != nil {
		// Если настройки не сохранены - возвращаем дефолтные значения
		if errors.Is(err, settings.ErrSettingsNotFound) {
			h.logger.Info("GET /companies/{id}/settings - Settings not found, returning defaults: company_id=%d",
				companyID)
			handlers.RespondJSON(w, http.StatusOK, GetDefaultSettingsResponse(companyID))
			return
		}

		h.logger.Error("GET /companies/{id}/settings - Failed to get settings: company_id=%d, error=%v",
			companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /companies/{id}/settings - Settings retrieved successfully: company_id=%d, settings_id=%d",
		companyID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
