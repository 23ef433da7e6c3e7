package geo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/nearby-hospitals", h.Nearby)
}

func (h *Handler) Nearby(c echo.Context) error {
	var req NearbyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hospitals, err := h.svc.Nearby(c.Request().Context(), req)
	if errors.Is(err, ErrInvalidCoordinates) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "failed to fetch nearby hospitals")
	}
	return c.JSON(http.StatusOK, hospitals)
}
