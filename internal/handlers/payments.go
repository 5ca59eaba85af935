package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderHandler serves POST /api/payments/order. It hands the widget
// everything it needs to open a checkout: the gateway order id, the echoed
// amount, and the publishable key.
func CreateOrderHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in CreateOrderIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Amount == nil {
			// missing or non-numeric amounts are the same client mistake
			writeJSON(w, http.StatusBadRequest, ErrorOut{Error: "amount must be a positive number"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := d.Payments.CreateOrder(ctx, decimal.NewFromFloat(*in.Amount))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, CreateOrderOut{
			OrderID:  order.OrderID,
			Currency: order.Currency,
			Amount:   order.AmountMinor,
			Key:      order.KeyID,
		})
	}
}

// VerifyHandler serves POST /api/payments/verify. A valid signature only
// confirms authenticity; marking the shop order paid happens elsewhere.
func VerifyHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in VerifyIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorOut{Error: "invalid request body"})
			return
		}
		if in.RazorpayOrderID == "" || in.RazorpayPaymentID == "" || in.RazorpaySignature == "" {
			writeJSON(w, http.StatusBadRequest, ErrorOut{Error: "razorpay_order_id, razorpay_payment_id and razorpay_signature are required"})
			return
		}

		if err := d.Payments.VerifyCallback(in.RazorpayOrderID, in.RazorpayPaymentID, in.RazorpaySignature); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, VerifyOut{Verified: true})
	}
}
