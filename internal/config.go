package internal

import (
	"flag"
	"fmt"
	"os"
	"time"
)

const (
	RunAddress              = "RUN_ADDRESS"
	DatabaseURI             = "DATABASE_URI"
	PayoutProviderAddress   = "PAYOUT_PROVIDER_ADDRESS"
	PayoutProviderSecretKey = "PAYOUT_PROVIDER_SECRET_KEY"
	PayoutCallbackToken     = "PAYOUT_CALLBACK_TOKEN"
	PayoutTimeout           = "PAYOUT_TIMEOUT"
	PaymentInfoSecret       = "PAYMENT_INFO_SECRET"
	JWTSecret               = "JWT_SECRET"
)

const (
	defaultRunAddress            = "localhost:8080"
	defaultPayoutProviderAddress = "https://api.xendit.co"
	defaultPayoutTimeout         = 30 * time.Second
)

const (
	host     = "localhost"
	port     = 5432
	user     = "postgres"
	password = "12345"
)

type Config struct {
	RunAddress              string
	DatabaseURI             string
	PayoutProviderAddress   string
	PayoutProviderSecretKey string
	PayoutCallbackToken     string
	PayoutTimeout           time.Duration
	PaymentInfoSecret       string
	JWTSecret               string
}

// DefaultDatabaseURI points at a local postgres.
func DefaultDatabaseURI() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s sslmode=disable", host, port, user, password)
}

// NewConfig reads flags, falling back to the environment and then to defaults.
func NewConfig() (*Config, error) {
	c := new(Config)

	timeout, err := durationEnvOrDefault(PayoutTimeout, defaultPayoutTimeout)
	if err != nil {
		return nil, err
	}

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, DefaultDatabaseURI()), "postgres connection path")
	flag.StringVar(&c.PayoutProviderAddress, "p", setEnvOrDefault(PayoutProviderAddress, defaultPayoutProviderAddress), "payout provider address")
	flag.StringVar(&c.PayoutProviderSecretKey, "k", setEnvOrDefault(PayoutProviderSecretKey, ""), "payout provider secret key")
	flag.StringVar(&c.PayoutCallbackToken, "t", setEnvOrDefault(PayoutCallbackToken, ""), "token expected on payout status callbacks")
	flag.DurationVar(&c.PayoutTimeout, "timeout", timeout, "payout provider request timeout")
	flag.StringVar(&c.PaymentInfoSecret, "s", setEnvOrDefault(PaymentInfoSecret, ""), "secret the payment info encryption key is derived from")
	flag.StringVar(&c.JWTSecret, "j", setEnvOrDefault(JWTSecret, ""), "HS256 secret of the identity provider tokens")

	flag.Parse()

	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.PaymentInfoSecret == "" {
		return fmt.Errorf("%s is required", PaymentInfoSecret)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("%s is required", JWTSecret)
	}
	if c.PayoutTimeout <= 0 {
		return fmt.Errorf("%s must be positive", PayoutTimeout)
	}
	return nil
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}

func durationEnvOrDefault(env string, def time.Duration) (time.Duration, error) {
	res, e := os.LookupEnv(env)
	if !e {
		return def, nil
	}
	d, err := time.ParseDuration(res)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", env, err)
	}
	return d, nil
}
