// model/payment.go
package model

import "time"

// Gateway identifies which payment provider redirected the browser back to us.
type Gateway string

const (
	GatewayVNPay Gateway = "VNPAY"
	GatewayMoMo  Gateway = "MOMO"
)

// SuccessSentinel is the gateway-specific result code that means "paid".
func (g Gateway) SuccessSentinel() string {
	if g == GatewayMoMo {
		return "0"
	}
	return "00"
}

// PaymentConfirmation is the decoded, validated result of one gateway
// callback. It lives for a single callback invocation; the order store
// persists the effect.
type PaymentConfirmation struct {
	Gateway    Gateway
	TxnRef     string
	ResultCode string
	Message    string
	Amount     string
	TransID    string
	RequestID  string
	PaidAt     *time.Time
}

func (p PaymentConfirmation) Succeeded() bool {
	return p.ResultCode == p.Gateway.SuccessSentinel()
}
