package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	apperr "github.com/example/goldshop-gateway/pkg/errors"
)

// Config holds everything the server reads from the environment.
// Credentials have no defaults; a deploy without them must die loudly
// instead of silently serving errors.
type Config struct {
	HTTPAddr string

	GoldAPIURL  string
	GoldAPIKey  string
	GoldRateTTL time.Duration

	RazorpayKeyID     string
	RazorpayKeySecret string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("GOLD_RATE_TTL", "600s")

	cfg := &Config{
		HTTPAddr:          v.GetString("HTTP_ADDR"),
		GoldAPIURL:        v.GetString("GOLD_API_URL"),
		GoldAPIKey:        v.GetString("GOLD_API_KEY"),
		GoldRateTTL:       v.GetDuration("GOLD_RATE_TTL"),
		RazorpayKeyID:     v.GetString("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: v.GetString("RAZORPAY_KEY_SECRET"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing required variable at once.
func (c *Config) Validate() error {
	var missing []string
	if c.GoldAPIURL == "" {
		missing = append(missing, "GOLD_API_URL")
	}
	if c.GoldAPIKey == "" {
		missing = append(missing, "GOLD_API_KEY")
	}
	if c.RazorpayKeyID == "" {
		missing = append(missing, "RAZORPAY_KEY_ID")
	}
	if c.RazorpayKeySecret == "" {
		missing = append(missing, "RAZORPAY_KEY_SECRET")
	}
	if len(missing) > 0 {
		return apperr.New(apperr.CodeConfig, "missing required env: "+strings.Join(missing, ", "))
	}
	return nil
}
