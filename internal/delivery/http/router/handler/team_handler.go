package handler

import (
	"log/slog"
	"net/http"

	"assetverse/internal/delivery/http/response"
	"assetverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TeamHandler holds dependencies for team roster handlers.
type TeamHandler struct {
	uc     usecase.TeamUsecase
	logger *slog.Logger
}

// NewTeamHandler is the constructor for TeamHandler, injected by Fx.
func NewTeamHandler(uc usecase.TeamUsecase, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddMember handles adding a user to the team roster.
func (h *TeamHandler) AddMember(c echo.Context) error {
	var input *usecase.AddTeamMemberInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid team member input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	member, err := h.uc.AddMember(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, member, "Team member added successfully")
}

// ListMembers handles the roster listing request.
func (h *TeamHandler) ListMembers(c echo.Context) error {
	members, err := h.uc.ListMembers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, members, "Team members retrieved successfully")
}

// RemoveMember handles removing a roster entry.
func (h *TeamHandler) RemoveMember(c echo.Context) error {
	if err := h.uc.RemoveMember(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Team member removed successfully")
}
