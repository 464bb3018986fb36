package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postPurchase(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, PurchaseHTTPResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/tickets/purchase", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp PurchaseHTTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec, resp
}

func TestHTTPPurchase_Success(t *testing.T) {
	svc, fake, logger, _ := newService()
	mux := NewHTTPHandler(svc, logger).Routes()

	rec, resp := postPurchase(t, mux, `{"account_id": 5, "tickets": [
		{"type": "ADULT", "count": 2},
		{"type": "child", "count": 1},
		{"type": "INFANT", "count": 1}
	]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.SeatsReserved)
	assert.Equal(t, 50, resp.AmountCharged)

	assert.Equal(t, 3, fake.reserved[5])
	assert.Equal(t, 50, fake.charged[5])
}

func TestHTTPPurchase_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"account_id": `},
		{"missing account", `{"tickets": [{"type": "ADULT", "count": 1}]}`},
		{"missing tickets", `{"account_id": 1}`},
		{"null tickets", `{"account_id": 1, "tickets": null}`},
		{"unknown type", `{"account_id": 1, "tickets": [{"type": "SENIOR", "count": 1}]}`},
		{"zero count", `{"account_id": 1, "tickets": [{"type": "ADULT", "count": 0}]}`},
		{"negative count", `{"account_id": 1, "tickets": [{"type": "ADULT", "count": -2}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fake, logger, _ := newService()
			mux := NewHTTPHandler(svc, logger).Routes()

			rec, resp := postPurchase(t, mux, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, resp.Success)
			assert.Empty(t, resp.Reason)
			assert.Zero(t, fake.calls())
		})
	}
}

func TestHTTPPurchase_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		reason string
	}{
		{"empty batch", `{"account_id": 1, "tickets": []}`, "no_tickets"},
		{"too many", `{"account_id": 1, "tickets": [{"type": "ADULT", "count": 21}]}`, "too_many_tickets"},
		{"infant alone", `{"account_id": 1, "tickets": [{"type": "INFANT", "count": 1}]}`, "too_many_infant_tickets"},
		{"child alone", `{"account_id": 1, "tickets": [{"type": "CHILD", "count": 1}]}`, "too_many_child_tickets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fake, logger, _ := newService()
			mux := NewHTTPHandler(svc, logger).Routes()

			rec, resp := postPurchase(t, mux, tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.reason, resp.Reason)
			assert.NotEmpty(t, resp.Message)
			assert.Zero(t, fake.calls())
		})
	}
}

func TestHTTPPurchase_CollaboratorFailure(t *testing.T) {
	svc, fake, logger, hook := newService()
	fake.err = errors.New("redis down")
	mux := NewHTTPHandler(svc, logger).Routes()

	rec, resp := postPurchase(t, mux, `{"account_id": 1, "tickets": [{"type": "ADULT", "count": 1}]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", resp.Message)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "http purchase failed", hook.LastEntry().Message)
}

func TestHTTPPurchase_NilLoggerFallsBack(t *testing.T) {
	svc, fake, _, _ := newService()
	fake.err = errors.New("redis down")
	mux := NewHTTPHandler(svc, nil).Routes()

	var rec *httptest.ResponseRecorder
	require.NotPanics(t, func() {
		rec, _ = postPurchase(t, mux, `{"account_id": 1, "tickets": [{"type": "ADULT", "count": 1}]}`)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHTTPPurchase_MethodNotAllowed(t *testing.T) {
	svc, _, logger, _ := newService()
	mux := NewHTTPHandler(svc, logger).Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/tickets/purchase", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	svc, _, logger, _ := newService()
	mux := NewHTTPHandler(svc, logger).Routes()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
