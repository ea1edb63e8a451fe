package paymentsvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/esley2005/FE-EV-Rental-sub001/model"
	ledgerrepo "github.com/esley2005/FE-EV-Rental-sub001/repository/ledger"
	"github.com/esley2005/FE-EV-Rental-sub001/repository/orderstore"
	"github.com/esley2005/FE-EV-Rental-sub001/service/license"
)

// errors used by controllers

type ErrCode string

const (
	ErrMissingParams  ErrCode = "MISSING_PARAMETERS"
	ErrGatewayFailure ErrCode = "GATEWAY_FAILURE"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string {
	if e.msg != "" {
		return string(e.code) + ": " + e.msg
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode          { return e.code }
func (e codedError) GatewayMessage() string { return e.msg }

func makeErr(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// GatewayMessage returns the gateway's own failure text, when present.
func GatewayMessage(err error) string {
	var ge interface{ GatewayMessage() string }
	if errors.As(err, &ge) {
		return ge.GatewayMessage()
	}
	return ""
}

// Result is the user-visible outcome of one callback.
type Result struct {
	OrderID  int64              `json:"order_id"`
	Message  string             `json:"message"`
	Degraded bool               `json:"degraded,omitempty"`
	Order    *model.RentalOrder `json:"order,omitempty"`
}

// Service turns an untrusted gateway redirect into at most one confirmed
// state change. The asymmetric-trust rule governs everything after the
// sentinel check: the gateway has already taken the customer's money, so once
// its success code has been observed no downstream failure may flip the
// outcome back to a failure screen. Anything that goes wrong after that point
// degrades to a qualified success plus a log line.
type Service interface {
	Process(ctx context.Context, sess model.Session, gw model.Gateway, params map[string]string) (*Result, error)
}

type service struct {
	store  orderstore.Repo
	ledger ledgerrepo.Repo
	lic    license.Service
	log    *slog.Logger
}

func New(store orderstore.Repo, ledger ledgerrepo.Repo, lic license.Service, log *slog.Logger) Service {
	return &service{store: store, ledger: ledger, lic: lic, log: log}
}

// ---- parameter extraction ----

// Key aliases vary by gateway and by which of its redirect flavors fired;
// first present key wins.
var (
	vnpayRefKeys  = []string{"vnp_TxnRef", "TxnRef", "txnRef"}
	vnpayCodeKeys = []string{"vnp_ResponseCode", "ResponseCode", "responseCode"}

	momoRefKeys  = []string{"orderId", "OrderId"}
	momoCodeKeys = []string{"resultCode", "ResultCode"}
	momoReqKeys  = []string{"requestId", "momoOrderId"}
	momoMsgKeys  = []string{"message", "Message"}
)

func firstPresent(params map[string]string, keys []string) string {
	for _, k := range keys {
		if v, ok := params[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Decode validates the raw query parameters into a PaymentConfirmation.
// It fails only on a missing transaction reference or result code.
func Decode(gw model.Gateway, params map[string]string) (model.PaymentConfirmation, error) {
	conf := model.PaymentConfirmation{Gateway: gw}

	switch gw {
	case model.GatewayMoMo:
		conf.TxnRef = firstPresent(params, momoRefKeys)
		conf.ResultCode = firstPresent(params, momoCodeKeys)
		conf.RequestID = firstPresent(params, momoReqKeys)
		conf.Message = firstPresent(params, momoMsgKeys)
		conf.Amount = params["amount"]
		conf.TransID = params["transId"]
		if ms, err := strconv.ParseInt(params["responseTime"], 10, 64); err == nil && ms > 0 {
			t := time.UnixMilli(ms).UTC()
			conf.PaidAt = &t
		}
	default:
		conf.TxnRef = firstPresent(params, vnpayRefKeys)
		conf.ResultCode = firstPresent(params, vnpayCodeKeys)
		conf.Amount = params["vnp_Amount"]
		conf.TransID = params["vnp_TransactionNo"]
	}

	if conf.TxnRef == "" || conf.ResultCode == "" {
		return conf, makeErr(ErrMissingParams, "transaction reference or result code missing")
	}
	return conf, nil
}

// refOrderID recovers the order id embedded in a transaction reference, e.g.
// "4521" or "EV-4521". Zero means unknown.
func refOrderID(ref string) int64 {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return id
	}
	end := len(ref)
	for end > 0 && ref[end-1] >= '0' && ref[end-1] <= '9' {
		end--
	}
	if end == len(ref) {
		return 0
	}
	id, err := strconv.ParseInt(ref[end:], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// ---- reconciliation ----

func (s *service) Process(ctx context.Context, sess model.Session, gw model.Gateway, params map[string]string) (*Result, error) {
	conf, err := Decode(gw, params)
	if err != nil {
		return nil, err
	}

	if !conf.Succeeded() {
		msg := conf.Message
		if msg == "" {
			msg = fmt.Sprintf("gateway reported failure code %s", conf.ResultCode)
		}
		return nil, makeErr(ErrGatewayFailure, msg)
	}

	// Everything below runs under the asymmetric-trust rule: the sentinel
	// matched, so the result is success from here on.

	first, err := s.ledger.Record(ctx, string(gw), conf.TxnRef, conf.ResultCode)
	if err != nil {
		// Advisory dedupe only; the store's confirm is idempotent too.
		s.log.Warn("callback ledger unavailable", "txn_ref", conf.TxnRef, "err", err)
		first = true
	}

	res := &Result{OrderID: refOrderID(conf.TxnRef), Message: "payment confirmed"}

	if !first {
		res.Message = "payment already recorded"
	} else {
		confirmed, err := s.store.ConfirmDeposit(ctx, conf.TxnRef, conf.ResultCode)
		switch {
		case err != nil:
			s.log.Error("confirm deposit unreachable after gateway success",
				"txn_ref", conf.TxnRef, "gateway", gw, "err", err)
			res.Degraded = true
			res.Message = "payment acknowledged by gateway, order processing"
			return res, nil
		case !confirmed.Success:
			s.log.Error("store rejected confirmation after gateway success",
				"txn_ref", conf.TxnRef, "store_message", confirmed.Message)
			res.Degraded = true
			res.Message = "payment acknowledged by gateway, order processing"
			return res, nil
		default:
			if confirmed.OrderID > 0 {
				res.OrderID = confirmed.OrderID
			}
			if confirmed.AlreadyConfirmed {
				res.Message = "payment already recorded"
			}
		}
	}

	s.autoAdvance(ctx, sess, res)
	return res, nil
}

// autoAdvance moves a confirmed order to renting once the customer's license
// checks out. Every failure here is logged and swallowed: the customer has
// paid, and a stale snapshot or an already-advanced order must not surface as
// a payment error.
func (s *service) autoAdvance(ctx context.Context, sess model.Session, res *Result) {
	if res.OrderID == 0 {
		return
	}
	order, err := s.store.GetOrder(ctx, res.OrderID)
	if err != nil {
		s.log.Warn("order snapshot unavailable after confirmation", "order_id", res.OrderID, "err", err)
		return
	}
	res.Order = order

	verdict := s.lic.Verify(ctx, sess, order.CustomerID)
	if !verdict.Verified {
		return
	}
	if !model.CanTransition(order.Status, model.StatusRenting) {
		s.log.Info("auto-advance skipped, order already past check-in",
			"order_id", order.ID, "status", order.Status.String())
		return
	}
	upd, err := s.store.UpdateOrderStatus(ctx, order.ID, model.StatusRenting)
	if err != nil {
		s.log.Warn("auto-advance failed", "order_id", order.ID, "err", err)
		return
	}
	if !upd.Success {
		s.log.Warn("auto-advance rejected by store", "order_id", order.ID, "store_error", upd.Error)
		return
	}
	order.Status = model.StatusRenting
}
