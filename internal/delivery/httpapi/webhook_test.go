package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
)

func TestPaymentWebhook_Payrail(t *testing.T) {
	payments := &stubPayments{}
	h := newTestHandler(t, func(h *Handler) { h.payments = payments })
	router := h.SetupRouter()

	body := []byte(`{"reference":"pr-001","status":"succeeded"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payrail", bytes.NewReader(body))
	req.Header.Set("X-Payrail-Signature", payrailSign(body, "payrail-secret"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, payments.handled, 1)
	assert.Equal(t, "payrail", payments.handled[0].Provider)
	assert.Equal(t, "pr-001", payments.handled[0].ExternalRef)
	assert.True(t, payments.handled[0].Succeeded)
}

func TestPaymentWebhook_PayrailBadSignature(t *testing.T) {
	payments := &stubPayments{}
	h := newTestHandler(t, func(h *Handler) { h.payments = payments })
	router := h.SetupRouter()

	body := []byte(`{"reference":"pr-001","status":"succeeded"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payrail", bytes.NewReader(body))
	req.Header.Set("X-Payrail-Signature", "deadbeef")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, payments.handled)
}

func TestPaymentWebhook_Quickpay(t *testing.T) {
	payments := &stubPayments{}
	h := newTestHandler(t, func(h *Handler) { h.payments = payments })
	router := h.SetupRouter()

	body := []byte(`{"reference":"qp-001","status":"failed"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/quickpay", bytes.NewReader(body))
	req.Header.Set("X-Quickpay-Token", "quickpay-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, payments.handled, 1)
	assert.False(t, payments.handled[0].Succeeded)
}

func TestPaymentWebhook_QuickpayBadToken(t *testing.T) {
	payments := &stubPayments{}
	h := newTestHandler(t, func(h *Handler) { h.payments = payments })
	router := h.SetupRouter()

	body := []byte(`{"reference":"qp-001","status":"failed"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/quickpay", bytes.NewReader(body))
	req.Header.Set("X-Quickpay-Token", "guess")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, payments.handled)
}

func TestPaymentWebhook_Stellarpay(t *testing.T) {
	payments := &stubPayments{}
	h := newTestHandler(t, func(h *Handler) { h.payments = payments })
	router := h.SetupRouter()

	body := []byte(`{"reference":"sp-001","status":"SUCCEEDED"}`)
	timestamp := "1756713600"
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stellarpay", bytes.NewReader(body))
	req.Header.Set("Stellar-Signature", "t="+timestamp+",v1="+stellarpaySign(timestamp, body, "stellar-secret"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, payments.handled, 1)
	// статус провайдера сравнивается без учета регистра
	assert.True(t, payments.handled[0].Succeeded)
}

func TestPaymentWebhook_UnknownProvider(t *testing.T) {
	h := newTestHandler(t)
	router := h.SetupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/cashly", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPaymentWebhook_MalformedPayload(t *testing.T) {
	payments := &stubPayments{}
	h := newTestHandler(t, func(h *Handler) { h.payments = payments })
	router := h.SetupRouter()

	// подпись валидна, но тело не содержит reference
	body := []byte(`{"status":"succeeded"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payrail", bytes.NewReader(body))
	req.Header.Set("X-Payrail-Signature", payrailSign(body, "payrail-secret"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, payments.handled)
}

func TestPaymentWebhook_UnknownReference(t *testing.T) {
	payments := &stubPayments{err: domain.ErrPaymentNotFound}
	h := newTestHandler(t, func(h *Handler) { h.payments = payments })
	router := h.SetupRouter()

	body := []byte(`{"reference":"ghost","status":"succeeded"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payrail", bytes.NewReader(body))
	req.Header.Set("X-Payrail-Signature", payrailSign(body, "payrail-secret"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
