package iothubsas

import (
	"context"
	"time"
)

// TokenType identifies the kind of token presented during a CBS
// negotiation.
type TokenType string

// TokenTypeIoTHubSAS is the CBS token type for IoT Hub shared access
// signature tokens.
const TokenTypeIoTHubSAS TokenType = "azure-devices.net:sastoken"

// MaxExpiry is the expiry reported for tokens built from a pre-issued
// signature: such tokens never expire from this package's perspective.
var MaxExpiry = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)

// Token carries the information needed to negotiate claims-based
// security on an AMQP connection.
type Token struct {
	// Value is the signature string presented to the $cbs node.
	Value string

	// Type is the CBS token type, always TokenTypeIoTHubSAS here.
	Type TokenType

	// Expiry is the UTC instant the token stops being valid.
	Expiry time.Time
}

// GetToken issues a token for a CBS negotiation.
//
// namespaceAddress, appliesTo and requiredClaims are accepted for
// compatibility with the CBS provider contract but do not influence the
// result: the token is always scoped by this credential's own resolved
// target, never by the caller-supplied appliesTo. The work is performed
// eagerly before GetToken returns; ctx is accepted for the same
// compatibility reason and is never awaited.
//
// With a pre-issued signature the token carries that signature verbatim
// and MaxExpiry. Otherwise a fresh signature is computed and the expiry
// is now plus the lifetime it was issued with.
func (c *Credentials) GetToken(ctx context.Context, namespaceAddress, appliesTo string, requiredClaims []string) (*Token, error) {
	span := c.tracer.StartSpan("iothubsas.get_token")
	defer span.Finish()
	span.SetTag("mode", c.cred.mode())

	start := time.Now()
	token, err := c.cred.token(c)
	if err != nil {
		return nil, err
	}

	tags := map[string]string{"mode": c.cred.mode()}
	c.metrics.IncCounter("iothubsas_tokens_issued_total", tags)
	c.metrics.ObserveHistogram("iothubsas_token_issue_duration_seconds", time.Since(start).Seconds(), tags)
	if c.logger != nil {
		c.logger.Debugf("token issued: mode=%s expiry=%s", c.cred.mode(), token.Expiry.Format(time.RFC3339))
	}
	return token, nil
}
