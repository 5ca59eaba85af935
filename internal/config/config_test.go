package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/example/goldshop-gateway/pkg/errors"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("GOLD_API_URL", "https://rates.example.com/latest")
	t.Setenv("GOLD_API_KEY", "test-key")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_123")
	t.Setenv("RAZORPAY_KEY_SECRET", "secret")
}

func TestLoad_AppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 600*time.Second, cfg.GoldRateTTL)
	assert.Equal(t, "rzp_test_123", cfg.RazorpayKeyID)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("GOLD_RATE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.GoldRateTTL)
}

func TestLoad_MissingCredentialsNamesThem(t *testing.T) {
	t.Setenv("GOLD_API_URL", "https://rates.example.com/latest")
	// everything else unset

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConfig, apperr.CodeOf(err))
	assert.Contains(t, err.Error(), "GOLD_API_KEY")
	assert.Contains(t, err.Error(), "RAZORPAY_KEY_ID")
	assert.Contains(t, err.Error(), "RAZORPAY_KEY_SECRET")
	assert.NotContains(t, err.Error(), "GOLD_API_URL")
}
