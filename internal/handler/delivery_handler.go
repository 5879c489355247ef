package handler

import (
	"net/http"

	"cardapio/internal/config"
	"cardapio/internal/middleware"
	"cardapio/internal/repository"
	"cardapio/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DeliveryHandler struct {
	uc *usecase.DeliveryAreaUsecase
}

func NewDeliveryHandler(uc *usecase.DeliveryAreaUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

type DeliveryFeeCalculateRequest struct {
	AddressID int64 `json:"address_id"`
}

func (h *DeliveryHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	admin := e.Group("/api/admin/delivery_areas",
		middleware.AuthJWT(cfg),
		middleware.TokenVersionGuard(userRepo),
		middleware.AdminRoleGuard(),
	)
	admin.POST("", h.create)
	admin.GET("", h.list)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)

	e.POST("/api/delivery_fee/calculate", h.calculate,
		middleware.AuthJWT(cfg),
		middleware.TokenVersionGuard(userRepo),
	)
}

func (h *DeliveryHandler) create(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.DeliveryAreaInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.Create(c.Request().Context(), adminID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *DeliveryHandler) list(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	out, err := h.uc.List(c.Request().Context(), adminID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DeliveryHandler) update(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "invalid id")
	}

	var req usecase.DeliveryAreaPatch
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.Update(c.Request().Context(), adminID, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DeliveryHandler) delete(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := parseIDParam(c)
	if !ok {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), adminID, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Delivery area deleted successfully."})
}

func (h *DeliveryHandler) calculate(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req DeliveryFeeCalculateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.CalculateForAddress(c.Request().Context(), userID, req.AddressID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
