package iothubsas

// credential is the active signing mode of a Credentials value. Both the
// authorization-header path and the CBS token path dispatch through it,
// keeping the pre-signed/computed branching in one place.
type credential interface {
	mode() string
	password(c *Credentials) (string, error)
	token(c *Credentials) (*Token, error)
}

// presignedCredential carries a pre-issued SharedAccessSignature. The
// signature is used verbatim; any expiry is embedded in its own fields and
// opaque to this package.
type presignedCredential struct {
	signature string
}

func (presignedCredential) mode() string { return "presigned" }

func (p presignedCredential) password(*Credentials) (string, error) {
	return p.signature, nil
}

func (p presignedCredential) token(*Credentials) (*Token, error) {
	return &Token{Value: p.signature, Type: TokenTypeIoTHubSAS, Expiry: MaxExpiry}, nil
}

// keyCredential computes a fresh signature from the shared access key on
// every call.
type keyCredential struct {
	name string
	key  string
}

func (keyCredential) mode() string { return "key" }

func (k keyCredential) password(c *Credentials) (string, error) {
	signature, _, err := c.resolve(k)
	return signature, err
}

func (k keyCredential) token(c *Credentials) (*Token, error) {
	signature, ttl, err := c.resolve(k)
	if err != nil {
		return nil, err
	}
	return &Token{
		Value:  signature,
		Type:   TokenTypeIoTHubSAS,
		Expiry: c.now().UTC().Add(ttl),
	}, nil
}
