package payment

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esley2005/FE-EV-Rental-sub001/app/echoServer/jwtx"
	"github.com/esley2005/FE-EV-Rental-sub001/model"
	paymentsvc "github.com/esley2005/FE-EV-Rental-sub001/service/payment"
)

type Controller struct {
	Svc paymentsvc.Service
	Log *slog.Logger
}

// GET /v1/payment/vnpay/return
func (h *Controller) VNPayReturn(c echo.Context) error {
	return h.handle(c, model.GatewayVNPay)
}

// GET /v1/payment/momo/return
func (h *Controller) MoMoReturn(c echo.Context) error {
	return h.handle(c, model.GatewayMoMo)
}

func (h *Controller) handle(c echo.Context, gw model.Gateway) error {
	params := make(map[string]string, len(c.QueryParams()))
	for k, vs := range c.QueryParams() {
		if len(vs) > 0 {
			params[k] = vs[0]
		}
	}

	res, err := h.Svc.Process(c.Request().Context(), jwtx.Session(c), gw, params)
	if err != nil {
		switch paymentsvc.Code(err) {
		case paymentsvc.ErrMissingParams:
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"message": "missing payment parameters",
			})
		case paymentsvc.ErrGatewayFailure:
			// The request was well-formed; this is a result page, not an
			// API error.
			return c.JSON(http.StatusOK, echo.Map{
				"success": false,
				"message": paymentsvc.GatewayMessage(err),
			})
		default:
			h.Log.Error("payment callback", "gateway", gw, "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"order_id": res.OrderID,
		"message":  res.Message,
		"degraded": res.Degraded,
		"order":    res.Order,
	})
}
