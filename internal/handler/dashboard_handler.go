package handler

import (
	"net/http"

	"cardapio/internal/config"
	"cardapio/internal/middleware"
	"cardapio/internal/repository"
	"cardapio/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	e.GET("/api/admin/dashboard/metrics", h.metrics,
		middleware.AuthJWT(cfg),
		middleware.TokenVersionGuard(userRepo),
		middleware.AdminRoleGuard(),
	)
}

// query: order_date=YYYY-MM-DD, defaults to today
func (h *DashboardHandler) metrics(c echo.Context) error {
	out, err := h.uc.DailySummary(c.Request().Context(), c.QueryParam("order_date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
