package triage

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safelink/safelink/internal/platform/auth"
	"github.com/safelink/safelink/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/symptom-check", h.Check)

	protected := api.Group("", auth.RequireUser())
	protected.GET("/symptom-history", h.History)
}

func (h *Handler) Check(c echo.Context) error {
	var in CheckInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accountID, hasUser := auth.UserIDFromContext(c.Request().Context())
	result, err := h.svc.Check(c.Request().Context(), accountID, hasUser, in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) History(c echo.Context) error {
	accountID, _ := auth.UserIDFromContext(c.Request().Context())
	params := pagination.FromContext(c)

	items, err := h.svc.History(c.Request().Context(), accountID, params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load history")
	}
	return c.JSON(http.StatusOK, items)
}
