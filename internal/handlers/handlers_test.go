package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/goldshop-gateway/internal/goldrate"
	"github.com/example/goldshop-gateway/internal/payment"
)

type stubProvider struct {
	rate decimal.Decimal
	err  error
}

func (p *stubProvider) TroyOuncePrice(ctx context.Context) (decimal.Decimal, error) {
	if p.err != nil {
		return decimal.Zero, p.err
	}
	return p.rate, nil
}

type stubGateway struct {
	order payment.GatewayOrder
	err   error
}

func (g *stubGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (payment.GatewayOrder, error) {
	if g.err != nil {
		return payment.GatewayOrder{}, g.err
	}
	out := g.order
	if out.Amount == 0 {
		out.Amount = amountMinor
	}
	return out, nil
}

func testDeps(provider goldrate.Provider, gw payment.Gateway) Deps {
	return Deps{
		Rates:    goldrate.NewService(provider, goldrate.DefaultTTL),
		Payments: payment.NewService(gw, "rzp_test_123", "test-secret"),
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response is not valid JSON")
	return body
}

func TestGoldRate_ReturnsQuote(t *testing.T) {
	deps := testDeps(&stubProvider{rate: decimal.NewFromInt(311035)}, &stubGateway{})

	req := httptest.NewRequest(http.MethodGet, "/api/gold-rate", nil)
	w := httptest.NewRecorder()
	GoldRateHandler(deps)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "10000.00", body["ratePerGram"])
	assert.Equal(t, "100000.00", body["ratePer10Grams"])
}

func TestGoldRate_UpstreamFailureIsGeneric500(t *testing.T) {
	deps := testDeps(&stubProvider{err: errors.New("provider exploded: key=sk_live_secret")}, &stubGateway{})

	req := httptest.NewRequest(http.MethodGet, "/api/gold-rate", nil)
	w := httptest.NewRecorder()
	GoldRateHandler(deps)(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "something went wrong", body["error"])
	assert.NotContains(t, w.Body.String(), "sk_live_secret", "upstream detail must not leak")
}

func TestCreateOrder_Success(t *testing.T) {
	deps := testDeps(&stubProvider{}, &stubGateway{order: payment.GatewayOrder{ID: "order_abc", Currency: "INR"}})

	req := httptest.NewRequest(http.MethodPost, "/api/payments/order", strings.NewReader(`{"amount": 150.5}`))
	w := httptest.NewRecorder()
	CreateOrderHandler(deps)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "order_abc", body["orderId"])
	assert.Equal(t, "INR", body["currency"])
	assert.EqualValues(t, 15050, body["amount"])
	assert.Equal(t, "rzp_test_123", body["key"])
}

func TestCreateOrder_RejectsBadAmounts(t *testing.T) {
	deps := testDeps(&stubProvider{}, &stubGateway{order: payment.GatewayOrder{ID: "order_abc", Currency: "INR"}})

	for name, payload := range map[string]string{
		"zero":        `{"amount": 0}`,
		"negative":    `{"amount": -5}`,
		"missing":     `{}`,
		"non-numeric": `{"amount": "ten"}`,
		"not json":    `amount=10`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/payments/order", strings.NewReader(payload))
		w := httptest.NewRecorder()
		CreateOrderHandler(deps)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, name)
		body := decodeBody(t, w)
		assert.NotEmpty(t, body["error"], name)
	}
}

func TestCreateOrder_GatewayFailureIsGeneric500(t *testing.T) {
	deps := testDeps(&stubProvider{}, &stubGateway{err: errors.New("dial tcp: connection refused")})

	req := httptest.NewRequest(http.MethodPost, "/api/payments/order", strings.NewReader(`{"amount": 10}`))
	w := httptest.NewRecorder()
	CreateOrderHandler(deps)(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "something went wrong", body["error"])
}

func verifyPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	sig := hex.EncodeToString(mac.Sum(nil))

	b, _ := json.Marshal(map[string]string{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  sig,
	})
	return string(b)
}

func TestVerify_ValidSignature(t *testing.T) {
	deps := testDeps(&stubProvider{}, &stubGateway{})

	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(verifyPayload("test-secret", "order_1", "pay_1")))
	w := httptest.NewRecorder()
	VerifyHandler(deps)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["verified"])
}

func TestVerify_WrongSignatureIs400(t *testing.T) {
	deps := testDeps(&stubProvider{}, &stubGateway{})

	// signed with a different secret than the service holds
	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(verifyPayload("other-secret", "order_1", "pay_1")))
	w := httptest.NewRecorder()
	VerifyHandler(deps)(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "payment verification failed", body["error"])
}

func TestVerify_MissingFieldsIs400(t *testing.T) {
	deps := testDeps(&stubProvider{}, &stubGateway{})

	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(`{"razorpay_order_id": "order_1"}`))
	w := httptest.NewRecorder()
	VerifyHandler(deps)(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
