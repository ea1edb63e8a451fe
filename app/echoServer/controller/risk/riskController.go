package risk

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esley2005/FE-EV-Rental-sub001/app/echoServer/jwtx"
	risksvc "github.com/esley2005/FE-EV-Rental-sub001/service/risk"
)

type Controller struct {
	Svc risksvc.Service
	Log *slog.Logger
}

// GET /v1/admin/risk
func (h *Controller) List(c echo.Context) error {
	if !jwtx.Session(c).IsStaff() {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}

	profiles, err := h.Svc.Assess(c.Request().Context())
	if err != nil {
		h.Log.Error("risk assessment", "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "order store unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": profiles})
}
