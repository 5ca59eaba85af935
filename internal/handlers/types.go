// goldshop-gateway/internal/handlers/types.go
package handlers

type CreateOrderIn struct {
	Amount *float64 `json:"amount"`
}

type CreateOrderOut struct {
	OrderID  string `json:"orderId"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
	Key      string `json:"key"`
}

type VerifyIn struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

type VerifyOut struct {
	Verified bool `json:"verified"`
}

type ErrorOut struct {
	Error string `json:"error"`
}
