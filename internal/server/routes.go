package server

import (
	"net/http"

	"cardapio/internal/config"
	"cardapio/internal/handler"
	"cardapio/internal/repository"

	"github.com/labstack/echo/v4"
)

// Handlers groups everything mounted under /api.
type Handlers struct {
	Orders      *handler.OrderHandler
	AdminOrders *handler.AdminOrderHandler
	Delivery    *handler.DeliveryHandler
	Dashboard   *handler.DashboardHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository, h Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.AdminOrders.RegisterRoutes(e, cfg, userRepo)
	h.Orders.RegisterRoutes(e, cfg, userRepo)
	h.Delivery.RegisterRoutes(e, cfg, userRepo)
	h.Dashboard.RegisterRoutes(e, cfg, userRepo)
}
