package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/example/goldshop-gateway/internal/goldrate"
	"github.com/example/goldshop-gateway/internal/payment"
)

// Deps carries the units the API routes are built on.
type Deps struct {
	Rates    *goldrate.Service
	Payments *payment.Service
}

// GoldRateHandler serves GET /api/gold-rate.
func GoldRateHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		quote, err := d.Rates.Quote(ctx)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, quote)
	}
}
