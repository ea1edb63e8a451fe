package order

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/esley2005/FE-EV-Rental-sub001/app/echoServer/jwtx"
	"github.com/esley2005/FE-EV-Rental-sub001/model"
	ordersvc "github.com/esley2005/FE-EV-Rental-sub001/service/order"
)

type Controller struct {
	Svc ordersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/orders/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	out, err := h.Svc.Get(c.Request().Context(), jwtx.Session(c), id)
	if err != nil {
		return h.fail(c, "order detail", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// POST /v1/orders/:id/cancel
func (h *Controller) Cancel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	out, err := h.Svc.Cancel(c.Request().Context(), jwtx.Session(c), id)
	if err != nil {
		return h.fail(c, "order cancel", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":          out.Order,
		"within_1_hour": out.Within1Hour,
		"penalty_point": out.PenaltyPoint,
	})
}

// PATCH /v1/orders/:id/status
func (h *Controller) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.UpdateStatus(c.Request().Context(), jwtx.Session(c), id, model.OrderStatus(req.Status))
	if err != nil {
		return h.fail(c, "order status update", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

func (h *Controller) fail(c echo.Context, op string, err error) error {
	switch ordersvc.Code(err) {
	case ordersvc.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "order not found"})
	case ordersvc.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	case ordersvc.ErrIllegalTransition:
		return c.JSON(http.StatusConflict, echo.Map{"message": "illegal status transition"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "order store unavailable"})
	}
}
