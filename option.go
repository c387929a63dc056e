package iothubsas

import (
	"errors"
	"time"
)

// Option configures Credentials during New.
// Options return errors to enable validation during construction.
type Option func(*Credentials) error

// WithSigner replaces the default signature builder. Useful for tests and
// for callers that keep key material behind an HSM or remote signing
// service.
func WithSigner(s Signer) Option {
	return func(c *Credentials) error {
		if s == nil {
			return errors.New("signer cannot be nil")
		}
		c.signer = s
		return nil
	}
}

// WithTokenTTL sets the lifetime requested for freshly computed
// signatures.
//
// Default: DefaultTokenTTL (1 hour)
func WithTokenTTL(ttl time.Duration) Option {
	return func(c *Credentials) error {
		if ttl <= 0 {
			return errors.New("token ttl must be positive")
		}
		c.tokenTTL = ttl
		return nil
	}
}

// WithLogger sets an optional logger for construction and issuance
// diagnostics. Signing failures are never logged; they propagate to the
// caller unchanged.
//
// Default: no logging
func WithLogger(l Logger) Option {
	return func(c *Credentials) error {
		c.logger = l
		return nil
	}
}

// WithTracer sets the tracer used to span token issuance.
//
// Default: NoopTracer
func WithTracer(t Tracer) Option {
	return func(c *Credentials) error {
		if t == nil {
			return errors.New("tracer cannot be nil")
		}
		c.tracer = t
		return nil
	}
}

// WithMetrics sets the metrics sink for issuance counters and durations.
//
// Default: NoopMetrics
func WithMetrics(m Metrics) Option {
	return func(c *Credentials) error {
		if m == nil {
			return errors.New("metrics cannot be nil")
		}
		c.metrics = m
		return nil
	}
}

// WithClock replaces the time source used for token expiry stamps. Tests
// use this to pin "now".
//
// Default: time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Credentials) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		c.now = now
		return nil
	}
}
