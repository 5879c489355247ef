package handler

import (
	"context"
	"net/http"

	"cardapio/internal/config"
	"cardapio/internal/middleware"
	"cardapio/internal/repository"
	"cardapio/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminOrderHandler struct {
	uc *usecase.AdminOrderUsecase
}

func NewAdminOrderHandler(uc *usecase.AdminOrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	admin := e.Group("/api/orders/admin",
		middleware.AuthJWT(cfg),
		middleware.TokenVersionGuard(userRepo),
		middleware.AdminRoleGuard(),
	)

	admin.GET("", h.list)
	admin.GET("/:id", h.detail)
	admin.GET("/:id/history", h.history)
	admin.PATCH("/:id/status", h.updateStatus)
	admin.PATCH("/:id/approve_cancellation", h.approveCancellation)
	admin.PATCH("/:id/reject_cancellation", h.rejectCancellation)
}

func (h *AdminOrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), usecase.OrderListQuery{
		Status:    c.QueryParam("status"),
		StartDate: c.QueryParam("data_inicio"),
		EndDate:   c.QueryParam("data_fim"),
		ClientID:  c.QueryParam("cliente_id"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "invalid id")
	}

	out, err := h.uc.Detail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) history(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "invalid id")
	}

	out, err := h.uc.History(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) updateStatus(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "invalid id")
	}

	var req usecase.AdminUpdateOrderStatusInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), adminID, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) approveCancellation(c echo.Context) error {
	return h.cancellationDecision(c, h.uc.ApproveCancellation)
}

func (h *AdminOrderHandler) rejectCancellation(c echo.Context) error {
	return h.cancellationDecision(c, h.uc.RejectCancellation)
}

type cancellationFunc func(ctx context.Context, adminID, orderID int64) (usecase.OrderOutput, error)

func (h *AdminOrderHandler) cancellationDecision(c echo.Context, decide cancellationFunc) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "invalid id")
	}

	out, err := decide(c.Request().Context(), adminID, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
