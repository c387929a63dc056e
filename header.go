package iothubsas

// User returns the identity for a basic-auth style header:
// "{sharedAccessKeyName}@sas.root.{iotHubName}". No escaping is applied;
// empty fields produce empty segments and are left to the caller to
// reject downstream.
func (c *Credentials) User() string {
	return c.sharedAccessKeyName + "@sas.root." + c.iotHubName
}

// Password returns the value for a basic-auth style header. A pre-issued
// SharedAccessSignature is returned unchanged; otherwise a fresh signature
// is computed for this credential's target resource with the configured
// lifetime.
func (c *Credentials) Password() (string, error) {
	return c.cred.password(c)
}

// AuthorizationHeader returns the authorization header value, which in
// this scheme is the same string Password produces.
func (c *Credentials) AuthorizationHeader() (string, error) {
	return c.Password()
}
