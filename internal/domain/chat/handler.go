package chat

import (
	"net/http"
	"strings"

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
	api.POST("/chat", h.Chat)

	protected := api.Group("", auth.RequireUser())
	protected.GET("/chat-history", h.History)
}

func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	text := req.Text()
	if strings.TrimSpace(text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	accountID, hasUser := auth.UserIDFromContext(c.Request().Context())
	reply, err := h.svc.Reply(c.Request().Context(), accountID, hasUser, text)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "assistant unavailable")
	}
	return c.JSON(http.StatusOK, ChatResponse{Reply: reply})
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
