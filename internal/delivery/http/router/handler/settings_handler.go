package handler

import (
	"log/slog"
	"net/http"

	"accounthub/internal/delivery/http/response"
	"accounthub/internal/domain/entity"
	"accounthub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingsHandler holds dependencies for settings-related handlers.
type SettingsHandler struct {
	uc     usecase.SettingsUsecase
	logger *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get handles the settings retrieval request.
func (h *SettingsHandler) Get(c echo.Context) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	settings, err := h.uc.GetSettings(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingsResponse(settings), "Settings retrieved successfully")
}

// Update handles the merge-update of settings. Fields absent from the body
// keep their stored values.
func (h *SettingsHandler) Update(c echo.Context) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var input *usecase.UpdateSettingsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	settings, err := h.uc.UpdateSettings(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingsResponse(settings), "Settings updated successfully")
}

// UpdateNotifications handles the overwrite of the notification preference group.
func (h *SettingsHandler) UpdateNotifications(c echo.Context) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var input *usecase.NotificationPreferencesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification preferences input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	settings, err := h.uc.UpdateNotificationPreferences(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingsResponse(settings), "Notification preferences updated successfully")
}

// UpdatePrivacy handles the overwrite of the privacy preference group.
func (h *SettingsHandler) UpdatePrivacy(c echo.Context) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var input *usecase.PrivacyPreferencesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid privacy preferences input")
	}

	settings, err := h.uc.UpdatePrivacyPreferences(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingsResponse(settings), "Privacy preferences updated successfully")
}

// UpdateSecurity handles the overwrite of the security preference group.
func (h *SettingsHandler) UpdateSecurity(c echo.Context) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var input *usecase.SecurityPreferencesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid security preferences input")
	}

	settings, err := h.uc.UpdateSecurityPreferences(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingsResponse(settings), "Security preferences updated successfully")
}

// ByTheme handles the listing of ACTIVE accounts by settings theme.
func (h *SettingsHandler) ByTheme(c echo.Context) error {
	theme := entity.Theme(c.Param("theme"))

	accounts, err := h.uc.AccountsByTheme(c.Request().Context(), theme)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponseList(accounts), "Accounts retrieved successfully")
}

// Analytics handles the settings analytics request.
func (h *SettingsHandler) Analytics(c echo.Context) error {
	analytics, err := h.uc.Analytics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, analytics, "Settings analytics computed successfully")
}
