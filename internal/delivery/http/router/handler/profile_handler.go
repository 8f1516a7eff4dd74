package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"accounthub/internal/delivery/http/response"
	"accounthub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get handles the profile retrieval request.
func (h *ProfileHandler) Get(c echo.Context) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Profile retrieved successfully")
}

// Update handles the merge-update of a profile. Fields absent from the body
// keep their stored values.
func (h *ProfileHandler) Update(c echo.Context) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Profile updated successfully")
}

// UpdateVisibility handles the profile visibility toggle request.
func (h *ProfileHandler) UpdateVisibility(c echo.Context) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var input *usecase.UpdateVisibilityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visibility input")
	}

	profile, err := h.uc.UpdateVisibility(c.Request().Context(), accountID, input.IsPublic)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Profile visibility updated successfully")
}

// Search handles the public profile search request. An empty or missing name
// parameter returns all public profiles of active accounts.
func (h *ProfileHandler) Search(c echo.Context) error {
	term := c.QueryParam("name")

	profiles, err := h.uc.SearchPublic(c.Request().Context(), term)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponseList(profiles), "Profiles retrieved successfully")
}

// AgeRange handles the search of public profiles by age window.
func (h *ProfileHandler) AgeRange(c echo.Context) error {
	minAge, err := strconv.Atoi(c.QueryParam("minAge"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "minAge must be an integer")
	}
	maxAge, err := strconv.Atoi(c.QueryParam("maxAge"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "maxAge must be an integer")
	}

	profiles, err := h.uc.ProfilesByAgeRange(c.Request().Context(), minAge, maxAge)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponseList(profiles), "Profiles retrieved successfully")
}

// Completion handles the profile completion statistics request.
func (h *ProfileHandler) Completion(c echo.Context) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	stats, err := h.uc.CompletionStats(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Profile completion computed successfully")
}
