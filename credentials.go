package iothubsas

import (
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jasperlg/iothub-sas/connstring"
	"github.com/jasperlg/iothub-sas/sas"
)

// DefaultTokenTTL is the lifetime requested for freshly computed signatures.
const DefaultTokenTTL = time.Hour

// amqpSecurePort is the default port for AMQP over TLS.
const amqpSecurePort = 5671

// Signer computes a shared access signature for a target resource.
// Implementations must fail when the key material is unusable; errors are
// propagated to callers unchanged. The sas package provides the default
// implementation.
type Signer interface {
	Sign(keyName, key string, ttl time.Duration, target string) (string, error)
}

// Credentials holds the resolved connection fields and derived endpoints
// for one IoT Hub connection. All fields are set during New and never
// mutated afterwards, so a single value is safe for concurrent use by
// multiple transport layers.
type Credentials struct {
	iotHubName          string
	hostName            string
	audience            string
	sharedAccessKeyName string
	gatewayHostName     string
	deviceID            string
	moduleID            string

	httpsEndpoint url.URL
	amqpEndpoint  url.URL

	// cred selects the active signing mode: a pre-issued signature used
	// verbatim, or key material signed per call. Exactly one is active.
	cred credential

	signer   Signer
	tokenTTL time.Duration
	now      func() time.Time

	logger  Logger
	tracer  Tracer
	metrics Metrics
}

// New creates Credentials from parsed connection-string properties.
//
// The host a client connects to is the gateway host when one is present,
// otherwise the hub host. The signing audience is always the hub host,
// even when the connection traverses a gateway. Passing nil properties
// fails with a CredentialError wrapping ErrNilProperties.
//
// Example:
//
//	props, err := connstring.Parse(cs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	creds, err := iothubsas.New(props,
//	    iothubsas.WithTokenTTL(30*time.Minute),
//	)
func New(props *connstring.Properties, opts ...Option) (*Credentials, error) {
	if props == nil {
		return nil, NewCredentialError(
			ErrorCodePropertiesNil,
			"connection properties are required",
			ErrNilProperties,
		)
	}

	c := &Credentials{
		iotHubName:          props.HubName,
		hostName:            props.HostName,
		audience:            props.HostName,
		sharedAccessKeyName: props.SharedAccessKeyName,
		gatewayHostName:     props.GatewayHostName,
		deviceID:            props.DeviceID,
		moduleID:            props.ModuleID,
		signer:              sas.NewBuilder(),
		tokenTTL:            DefaultTokenTTL,
		now:                 time.Now,
		tracer:              &NoopTracer{},
		metrics:             &NoopMetrics{},
	}
	if c.iotHubName == "" {
		c.iotHubName, _, _ = strings.Cut(props.HostName, ".")
	}
	if props.GatewayHostName != "" {
		c.hostName = props.GatewayHostName
	}

	if strings.TrimSpace(props.SharedAccessSignature) != "" {
		c.cred = presignedCredential{signature: props.SharedAccessSignature}
	} else {
		c.cred = keyCredential{name: props.SharedAccessKeyName, key: props.SharedAccessKey}
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, NewCredentialError(ErrorCodeInvalidOption, "applying option", err)
		}
	}

	c.httpsEndpoint = url.URL{Scheme: "https", Host: c.hostName}
	// The AMQP endpoint binds to the hub host, not the gateway host:
	// link addressing targets the underlying hub identity even when the
	// transport connection traverses a gateway.
	c.amqpEndpoint = url.URL{
		Scheme: "amqps",
		Host:   net.JoinHostPort(c.audience, strconv.Itoa(amqpSecurePort)),
	}

	if c.logger != nil {
		c.logger.Debugf("credentials resolved: host=%s audience=%s mode=%s",
			c.hostName, c.audience, c.cred.mode())
	}
	return c, nil
}

// IoTHubName returns the logical hub identifier.
func (c *Credentials) IoTHubName() string { return c.iotHubName }

// HostName returns the host a client connects to: the gateway host when
// one was configured, otherwise the hub host.
func (c *Credentials) HostName() string { return c.hostName }

// Audience returns the hub host used as the base signing resource.
func (c *Credentials) Audience() string { return c.audience }

// GatewayHostName returns the configured gateway host, if any. It is
// retained for diagnostics and propagation and never used in signing.
func (c *Credentials) GatewayHostName() string { return c.gatewayHostName }

// SharedAccessKeyName returns the configured key name, if any.
func (c *Credentials) SharedAccessKeyName() string { return c.sharedAccessKeyName }

// DeviceID returns the device scope, if any.
func (c *Credentials) DeviceID() string { return c.deviceID }

// ModuleID returns the module scope, if any. A module scope is only
// meaningful together with a device scope.
func (c *Credentials) ModuleID() string { return c.moduleID }

// HTTPSEndpoint returns https://{hostName}.
func (c *Credentials) HTTPSEndpoint() *url.URL {
	u := c.httpsEndpoint
	return &u
}

// AMQPEndpoint returns amqps://{hubHost}:5671.
func (c *Credentials) AMQPEndpoint() *url.URL {
	u := c.amqpEndpoint
	return &u
}

// BuildLinkAddress returns the AMQP endpoint with its path component
// replaced by path, leaving scheme, host and port untouched.
func (c *Credentials) BuildLinkAddress(path string) *url.URL {
	u := c.amqpEndpoint
	u.Path = path
	return &u
}
