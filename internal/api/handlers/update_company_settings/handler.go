package update_company_settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgCompanyNotFound    = "компания не найдена"
	msgForbidden          = "доступ запрещен"
	msgInvalidData        = "некорректные данные настроек"
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

// Handle PUT /api/v1/companies/{companyId}/settings
// Требует X-User-ID header (только менеджеры компании)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /companies/{id}/settings - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /companies/{id}/settings - Missing user ID in context: company_id=%d", companyID)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpdateCompanySettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /companies/{id}/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), companyID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrCompanyNotFound):
			h.logger.Warn("PUT /companies/{id}/settings - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("PUT /companies/{id}/settings - Access denied: company_id=%d, user_id=%d",
				companyID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /companies/{id}/settings - Invalid data: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /companies/{id}/settings - Failed to update settings: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /companies/{id}/settings - Settings updated successfully: company_id=%d, settings_id=%d",
		companyID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
