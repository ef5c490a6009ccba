package handler

import (
	"log/slog"
	"net/http"

	"assetverse/internal/delivery/http/response"
	"assetverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestHandler holds dependencies for asset request handlers.
type RequestHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListRequests handles the request listing, optionally filtered by the
// requestStatus query parameter.
func (h *RequestHandler) ListRequests(c echo.Context) error {
	requests, err := h.uc.ListRequests(c.Request().Context(), c.QueryParam("requestStatus"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Requests retrieved successfully")
}

// CreateRequest handles the asset request creation.
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var input *usecase.CreateRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.CreateRequest(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Request created successfully")
}

// UpdateRequestStatus handles the request status transition.
func (h *RequestHandler) UpdateRequestStatus(c echo.Context) error {
	input := new(usecase.UpdateRequestStatusInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	input.RequestID = c.Param("id")
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateRequestStatus(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Request status updated successfully")
}
