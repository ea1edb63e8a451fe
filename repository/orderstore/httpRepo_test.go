package orderstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esley2005/FE-EV-Rental-sub001/model"
)

func TestConfirmDeposit_AlreadyConfirmedIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/payments/confirm-deposit", r.URL.Path)
		require.Equal(t, "Bearer svc-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"orderId":4521,"message":"Order already confirmed"}`))
	}))
	defer srv.Close()

	repo := NewHTTP(srv.URL, "svc-token")
	res, err := repo.ConfirmDeposit(context.Background(), "4521", "00")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.True(t, res.AlreadyConfirmed)
	require.Equal(t, int64(4521), res.OrderID)
}

func TestGetOrder_ParsesZonelessTimestamps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/4521", r.URL.Path)
		w.Write([]byte(`{
			"id":4521,"customerId":7,"carId":3,"locationId":1,"status":3,
			"orderDate":"2024-05-01T10:00:00",
			"pickupTime":"2024-05-02T09:00:00",
			"expectedReturnTime":"2024-05-04T09:00:00",
			"total":1500000,"deposit":500000
		}`))
	}))
	defer srv.Close()

	repo := NewHTTP(srv.URL, "")
	order, err := repo.GetOrder(context.Background(), 4521)
	require.NoError(t, err)
	require.Equal(t, model.StatusConfirmed, order.Status)
	require.Equal(t, int64(7), order.CustomerID)
	require.Nil(t, order.CancelledAt)
	require.False(t, order.OrderDate.IsZero())
}

func TestGetOrder_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	repo := NewHTTP(srv.URL, "")
	_, err := repo.GetOrder(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListCustomers_WrappedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"$values":[
			{"id":1,"fullName":"An Nguyen","role":"Customer","point":45},
			{"id":2,"fullName":"Binh Tran","role":"Staff"}
		]}`))
	}))
	defer srv.Close()

	repo := NewHTTP(srv.URL, "")
	customers, err := repo.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	require.Equal(t, 45, customers[0].PointOrDefault())
	require.Nil(t, customers[1].Point)
}

// The store mixes numeric and string license encodings across endpoints; the
// client normalizes both at the boundary.
func TestLicenseNormalizedAtBoundary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/me":
			require.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
			w.Write([]byte(`{"customerId":7,"fullName":"An Nguyen","driverLicenseStatus":1}`))
		case "/api/customers/7/license":
			w.Write([]byte(`{"customerId":7,"status":"Approved"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	repo := NewHTTP(srv.URL, "svc-token")

	profile, err := repo.GetCustomerProfile(context.Background(), model.Session{UserID: 7, Token: "user-token"})
	require.NoError(t, err)
	require.Equal(t, model.LicenseApproved, profile.DriverLicenseStatus)

	rec, err := repo.GetCurrentLicense(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, model.LicenseApproved, rec.Status)
}

func TestUpdateOrderStatus_SendsNumericCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/orders/4521/status", r.URL.Path)
		var body struct {
			Status int `json:"status"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, int(model.StatusRenting), body.Status)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	repo := NewHTTP(srv.URL, "")
	res, err := repo.UpdateOrderStatus(context.Background(), 4521, model.StatusRenting)
	require.NoError(t, err)
	require.True(t, res.Success)
}
