package goldrate

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// troyOunceGrams is the divisor the upstream pricing assumes. The exact
// conversion is 31.1034768 g per troy ounce; the rounded figure is kept for
// parity with the rates already being served.
var troyOunceGrams = decimal.RequireFromString("31.1035")

var ten = decimal.NewFromInt(10)

const DefaultTTL = 600 * time.Second

// Service memoizes the per-gram gold rate for a TTL so the paid upstream
// API is hit at most once per window. The cache slot is process-lifetime
// and never cleared, only overwritten.
type Service struct {
	provider Provider
	ttl      time.Duration
	now      func() time.Time

	group singleflight.Group

	mu        sync.RWMutex
	value     decimal.Decimal
	fetchedAt time.Time
}

func NewService(p Provider, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{provider: p, ttl: ttl, now: time.Now}
}

// PerGram returns the current INR price of one gram of gold. Readers inside
// the TTL are served from the cache and never wait on network I/O; concurrent
// misses coalesce into a single upstream fetch. A failed fetch leaves the
// cache untouched and fails only the calls that needed the refresh.
func (s *Service) PerGram(ctx context.Context) (decimal.Decimal, error) {
	if v, ok := s.cached(); ok {
		return v, nil
	}

	out, err, _ := s.group.Do("spot", func() (interface{}, error) {
		// a coalesced caller may land here after the flight that
		// queued it already refreshed the slot
		if v, ok := s.cached(); ok {
			return v, nil
		}

		ounce, err := s.provider.TroyOuncePrice(ctx)
		if err != nil {
			return decimal.Zero, err
		}
		perGram := ounce.Div(troyOunceGrams)

		s.mu.Lock()
		s.value = perGram
		s.fetchedAt = s.now()
		s.mu.Unlock()

		return perGram, nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return out.(decimal.Decimal), nil
}

func (s *Service) cached() (decimal.Decimal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fetchedAt.IsZero() || s.now().Sub(s.fetchedAt) >= s.ttl {
		return decimal.Zero, false
	}
	return s.value, true
}

// Quote is the shape the pricing endpoint serves to the storefront.
type Quote struct {
	RatePerGram    string `json:"ratePerGram"`
	RatePer10Grams string `json:"ratePer10Grams"`
}

// Quote formats the per-gram rate and its 10-gram multiple to two decimal
// places. The 10-gram figure is purely presentational and shares the cache.
func (s *Service) Quote(ctx context.Context) (Quote, error) {
	perGram, err := s.PerGram(ctx)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		RatePerGram:    perGram.StringFixed(2),
		RatePer10Grams: perGram.Mul(ten).StringFixed(2),
	}, nil
}
