package car

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	carsvc "github.com/esley2005/FE-EV-Rental-sub001/service/car"
)

type Controller struct {
	Svc carsvc.Service
	Log *slog.Logger
}

// GET /v1/cars
func (h *Controller) List(c echo.Context) error {
	cars, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("car list", "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "order store unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": cars})
}

// GET /v1/cars/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	car, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, carsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		}
		h.Log.Error("car detail", "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "order store unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": car})
}
