// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"accounthub/internal/delivery/http/response"
	"accounthub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the account creation request. The new account comes back
// with its default profile and settings attached.
func (h *AccountHandler) Create(c echo.Context) error {
	var input *usecase.CreateAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.CreateWithDefaults(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(account), "Account created successfully")
}

// GetByIdentifier handles the lookup of an account by username or email.
func (h *AccountHandler) GetByIdentifier(c echo.Context) error {
	identifier := c.Param("identifier")
	if identifier == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Identifier is required")
	}

	account, err := h.uc.FindByIdentifier(c.Request().Context(), identifier)
	if err != nil {
		return errors.WithStack(err)
	}
	if account == nil {
		return response.NotFound(c, "ACCOUNT_NOT_FOUND", "Account not found")
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Account retrieved successfully")
}

// ChangeStatus handles the account status change request.
func (h *AccountHandler) ChangeStatus(c echo.Context) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var input *usecase.ChangeStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.ChangeStatus(c.Request().Context(), accountID, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Account status updated successfully")
}

// Delete handles the account deletion request.
func (h *AccountHandler) Delete(c echo.Context) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	if err := h.uc.Delete(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": accountID.String()}, "Account deleted successfully")
}

// ListActivePublic handles the listing of ACTIVE accounts with public profiles.
func (h *AccountHandler) ListActivePublic(c echo.Context) error {
	accounts, err := h.uc.ListActiveWithPublicProfiles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponseList(accounts), "Accounts retrieved successfully")
}

// Statistics handles the aggregate statistics request.
func (h *AccountHandler) Statistics(c echo.Context) error {
	stats, err := h.uc.Statistics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics computed successfully")
}

// parseAccountID extracts the account UUID from the :id path parameter.
func parseAccountID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
