package iothubsas

import (
	"net/url"
	"time"
)

// resolve computes a fresh signature for this credential's target resource
// and reports the lifetime it was issued with. Signer failures (missing or
// malformed key material) propagate unchanged; the resolver never retries.
func (c *Credentials) resolve(k keyCredential) (string, time.Duration, error) {
	signature, err := c.signer.Sign(k.name, k.key, c.tokenTTL, c.targetResource())
	if err != nil {
		return "", 0, err
	}
	return signature, c.tokenTTL, nil
}

// targetResource builds the resource string a signature is computed for.
// The base is always the hub host, narrowed to the device and, when a
// device is present, the module. A module without a device is ignored.
func (c *Credentials) targetResource() string {
	target := c.audience
	if c.deviceID == "" {
		return target
	}
	target += "/devices/" + url.PathEscape(c.deviceID)
	if c.moduleID != "" {
		target += "/modules/" + url.PathEscape(c.moduleID)
	}
	return target
}
