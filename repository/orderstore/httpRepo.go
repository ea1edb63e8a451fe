package orderstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/esley2005/FE-EV-Rental-sub001/model"
	"github.com/esley2005/FE-EV-Rental-sub001/util/httpx"
)

type httpRepo struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

// NewHTTP builds the REST client for the external order store. apiToken is
// the service credential; user-scoped calls override it with the session
// token.
func NewHTTP(baseURL, apiToken string) Repo {
	return &httpRepo{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiToken: apiToken,
		client:   httpx.Client(),
	}
}

// ---- wire shapes ----

type orderPayload struct {
	ID                 int64   `json:"id"`
	CustomerID         int64   `json:"customerId"`
	CarID              int64   `json:"carId"`
	LocationID         int64   `json:"locationId"`
	Status             int     `json:"status"`
	OrderDate          string  `json:"orderDate"`
	PickupTime         string  `json:"pickupTime"`
	ExpectedReturnTime string  `json:"expectedReturnTime"`
	ActualReturnTime   string  `json:"actualReturnTime,omitempty"`
	CancelledAt        string  `json:"cancelledAt,omitempty"`
	Total              float64 `json:"total"`
	Deposit            float64 `json:"deposit"`
}

func (p orderPayload) toModel() (*model.RentalOrder, error) {
	orderDate, err := parseStoreTime(p.OrderDate)
	if err != nil {
		return nil, err
	}
	pickup, err := parseStoreTime(p.PickupTime)
	if err != nil {
		return nil, err
	}
	expected, err := parseStoreTime(p.ExpectedReturnTime)
	if err != nil {
		return nil, err
	}
	return &model.RentalOrder{
		ID:                 p.ID,
		CustomerID:         p.CustomerID,
		CarID:              p.CarID,
		LocationID:         p.LocationID,
		Status:             model.OrderStatus(p.Status),
		OrderDate:          orderDate,
		PickupTime:         pickup,
		ExpectedReturnTime: expected,
		ActualReturnTime:   parseOptionalTime(p.ActualReturnTime),
		CancelledAt:        parseOptionalTime(p.CancelledAt),
		Total:              p.Total,
		Deposit:            p.Deposit,
	}, nil
}

type customerPayload struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Point    *int   `json:"point"`
}

func (p customerPayload) toModel() model.Customer {
	return model.Customer{
		ID:       p.ID,
		FullName: p.FullName,
		Email:    p.Email,
		Role:     p.Role,
		Point:    p.Point,
	}
}

type carPayload struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Seats        int     `json:"seats"`
	RangeKm      int     `json:"rangeKm"`
	PricePerDay  float64 `json:"pricePerDay"`
	DepositRate  float64 `json:"depositRate"`
	LocationID   int64   `json:"locationId"`
	Status       string  `json:"status"`
	ThumbnailURL string  `json:"thumbnailUrl"`
}

func (p carPayload) toModel() model.Car {
	return model.Car{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Seats:        p.Seats,
		RangeKm:      p.RangeKm,
		PricePerDay:  p.PricePerDay,
		DepositRate:  p.DepositRate,
		LocationID:   p.LocationID,
		Status:       model.CarStatus(p.Status),
		ThumbnailURL: p.ThumbnailURL,
	}
}

// ---- plumbing ----

func (r *httpRepo) do(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token == "" {
		token = r.apiToken
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("order store %s %s: %s", method, path, resp.Status)
	}
	return raw, nil
}

// ---- operations ----

func (r *httpRepo) ConfirmDeposit(ctx context.Context, txnRef, resultCode string) (*ConfirmResult, error) {
	raw, err := r.do(ctx, http.MethodPost, "/api/payments/confirm-deposit", "", map[string]string{
		"txnRef":     txnRef,
		"resultCode": resultCode,
	})
	if err != nil {
		return nil, err
	}
	var out struct {
		Success bool   `json:"success"`
		OrderID int64  `json:"orderId"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	res := &ConfirmResult{Success: out.Success, OrderID: out.OrderID, Message: out.Message}
	if !out.Success && strings.Contains(strings.ToLower(out.Message), "already confirmed") {
		res.Success = true
		res.AlreadyConfirmed = true
	}
	return res, nil
}

func (r *httpRepo) GetOrder(ctx context.Context, id int64) (*model.RentalOrder, error) {
	raw, err := r.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), "", nil)
	if err != nil {
		return nil, err
	}
	var p orderPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return p.toModel()
}

func (r *httpRepo) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*UpdateStatusResult, error) {
	raw, err := r.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", id), "", map[string]int{
		"status": int(status),
	})
	if err != nil {
		return nil, err
	}
	var out UpdateStatusResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) GetCustomerProfile(ctx context.Context, sess model.Session) (*model.CustomerProfile, error) {
	raw, err := r.do(ctx, http.MethodGet, "/api/users/me", sess.Token, nil)
	if err != nil {
		return nil, err
	}
	var p struct {
		CustomerID          int64  `json:"customerId"`
		FullName            string `json:"fullName"`
		DriverLicenseStatus any    `json:"driverLicenseStatus"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &model.CustomerProfile{
		CustomerID:          p.CustomerID,
		FullName:            p.FullName,
		DriverLicenseStatus: model.ParseLicenseStatus(p.DriverLicenseStatus),
	}, nil
}

func (r *httpRepo) GetCurrentLicense(ctx context.Context, customerID int64) (*model.LicenseRecord, error) {
	raw, err := r.do(ctx, http.MethodGet, fmt.Sprintf("/api/customers/%d/license", customerID), "", nil)
	if err != nil {
		return nil, err
	}
	var p struct {
		CustomerID int64 `json:"customerId"`
		Status     any   `json:"status"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &model.LicenseRecord{
		CustomerID: p.CustomerID,
		Status:     model.ParseLicenseStatus(p.Status),
	}, nil
}

func (r *httpRepo) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	raw, err := r.do(ctx, http.MethodGet, "/api/customers", "", nil)
	if err != nil {
		return nil, err
	}
	arr, err := listPayload(raw)
	if err != nil {
		return nil, err
	}
	var payloads []customerPayload
	if err := json.Unmarshal(arr, &payloads); err != nil {
		return nil, err
	}
	out := make([]model.Customer, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.toModel())
	}
	return out, nil
}

func (r *httpRepo) ListOrders(ctx context.Context) ([]model.RentalOrder, error) {
	raw, err := r.do(ctx, http.MethodGet, "/api/orders", "", nil)
	if err != nil {
		return nil, err
	}
	arr, err := listPayload(raw)
	if err != nil {
		return nil, err
	}
	var payloads []orderPayload
	if err := json.Unmarshal(arr, &payloads); err != nil {
		return nil, err
	}
	out := make([]model.RentalOrder, 0, len(payloads))
	for _, p := range payloads {
		o, err := p.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, nil
}

func (r *httpRepo) ListCars(ctx context.Context) ([]model.Car, error) {
	raw, err := r.do(ctx, http.MethodGet, "/api/cars", "", nil)
	if err != nil {
		return nil, err
	}
	arr, err := listPayload(raw)
	if err != nil {
		return nil, err
	}
	var payloads []carPayload
	if err := json.Unmarshal(arr, &payloads); err != nil {
		return nil, err
	}
	out := make([]model.Car, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.toModel())
	}
	return out, nil
}

func (r *httpRepo) GetCar(ctx context.Context, id int64) (*model.Car, error) {
	raw, err := r.do(ctx, http.MethodGet, fmt.Sprintf("/api/cars/%d", id), "", nil)
	if err != nil {
		return nil, err
	}
	var p carPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	car := p.toModel()
	return &car, nil
}
