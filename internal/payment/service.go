package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperr "github.com/example/goldshop-gateway/pkg/errors"
)

// All orders are settled in INR; the gateway wants paise.
const orderCurrency = "INR"

var minorUnitsPerRupee = decimal.NewFromInt(100)

// Service bridges checkout to the payment gateway: it creates payment
// orders and authenticates the gateway's confirmation callbacks.
type Service struct {
	gateway   Gateway
	keyID     string
	keySecret string
}

func NewService(gw Gateway, keyID, keySecret string) *Service {
	return &Service{gateway: gw, keyID: keyID, keySecret: keySecret}
}

// Order is what the client-side checkout widget needs to open a payment.
type Order struct {
	OrderID     string
	Currency    string
	AmountMinor int64
	KeyID       string
}

// CreateOrder registers a payment order with the gateway for the given
// amount in rupees. The amount must be strictly positive; nothing is sent
// to the gateway otherwise.
func (s *Service) CreateOrder(ctx context.Context, amount decimal.Decimal) (Order, error) {
	if s.keyID == "" || s.keySecret == "" {
		return Order{}, apperr.New(apperr.CodeConfig, "razorpay credentials not set")
	}
	if !amount.IsPositive() {
		return Order{}, apperr.New(apperr.CodeInvalidAmount, "amount must be greater than zero")
	}

	amountMinor := amount.Mul(minorUnitsPerRupee).Round(0).IntPart()
	receipt := "rcpt_" + uuid.NewString()

	created, err := s.gateway.CreateOrder(ctx, amountMinor, orderCurrency, receipt)
	if err != nil {
		return Order{}, err
	}
	return Order{
		OrderID:     created.ID,
		Currency:    created.Currency,
		AmountMinor: created.Amount,
		KeyID:       s.keyID,
	}, nil
}

// VerifyCallback checks that a payment confirmation was signed with our
// gateway secret. It only authenticates; recording the payment against an
// order is the caller's responsibility.
func (s *Service) VerifyCallback(orderID, paymentID, signature string) error {
	if s.keySecret == "" {
		return apperr.New(apperr.CodeConfig, "razorpay secret not set")
	}

	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return apperr.New(apperr.CodeSignatureMismatch, "signature mismatch")
	}
	return nil
}
