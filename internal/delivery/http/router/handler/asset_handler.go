// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"assetverse/internal/delivery/http/response"
	"assetverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssetHandler holds dependencies for inventory-related handlers.
type AssetHandler struct {
	uc     usecase.AssetUsecase
	logger *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler, injected by Fx.
func NewAssetHandler(uc usecase.AssetUsecase, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListAssets handles the asset listing request.
func (h *AssetHandler) ListAssets(c echo.Context) error {
	assets, err := h.uc.ListAssets(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assets, "Assets retrieved successfully")
}

// CreateAsset handles the asset creation request.
func (h *AssetHandler) CreateAsset(c echo.Context) error {
	var input *usecase.CreateAssetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid asset input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	asset, err := h.uc.CreateAsset(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, asset, "Asset created successfully")
}

// AdjustQuantity handles the quantity patch request. The raw match/modify
// counts are returned as data even when nothing matched.
func (h *AssetHandler) AdjustQuantity(c echo.Context) error {
	input := new(usecase.AdjustQuantityInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	input.AssetID = c.Param("id")
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.AdjustQuantity(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Asset quantity updated")
}

// DeleteAsset handles the asset deletion request.
func (h *AssetHandler) DeleteAsset(c echo.Context) error {
	if err := h.uc.DeleteAsset(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Asset deleted successfully")
}
