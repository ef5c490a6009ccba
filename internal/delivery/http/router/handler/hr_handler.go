package handler

import (
	"log/slog"
	"net/http"

	"assetverse/internal/delivery/http/response"
	"assetverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HRHandler holds dependencies for HR application handlers.
type HRHandler struct {
	uc     usecase.HRUsecase
	logger *slog.Logger
}

// NewHRHandler is the constructor for HRHandler, injected by Fx.
func NewHRHandler(uc usecase.HRUsecase, logger *slog.Logger) *HRHandler {
	return &HRHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterApplication handles the HR application submission.
func (h *HRHandler) RegisterApplication(c echo.Context) error {
	var input *usecase.RegisterHRInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	application, err := h.uc.RegisterApplication(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, application, "Application submitted successfully")
}

// ListApplications handles the application listing request.
func (h *HRHandler) ListApplications(c echo.Context) error {
	applications, err := h.uc.ListApplications(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, applications, "Applications retrieved successfully")
}

// Approve handles the approval of a pending application.
func (h *HRHandler) Approve(c echo.Context) error {
	if err := h.uc.Approve(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Application approved")
}

// Reject handles the rejection of a pending application.
func (h *HRHandler) Reject(c echo.Context) error {
	if err := h.uc.Reject(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Application rejected")
}
