/*
Package iothubsas derives IoT Hub connection credentials from parsed
connection-string fields.

Given the fields of an IoT Hub connection string (host, shared access key,
optional pre-issued signature, optional device/module scope), the package
resolves the endpoints a client connects to, produces a basic-auth style
user/password pair, and issues time-bounded shared access signature (SAS)
tokens for claims-based security (CBS) negotiation. Connection-string
parsing lives in the connstring subpackage and the HMAC signature builder
in the sas subpackage; transport (HTTPS/AMQP sockets) is out of scope.

# Quick Start

	import (
	    iothubsas "github.com/jasperlg/iothub-sas"
	    "github.com/jasperlg/iothub-sas/connstring"
	)

	func main() {
	    props, err := connstring.Parse(os.Getenv("IOTHUB_CONNECTION_STRING"))
	    if err != nil {
	        log.Fatal(err)
	    }

	    creds, err := iothubsas.New(props)
	    if err != nil {
	        log.Fatal(err)
	    }

	    // Basic-auth style header values for HTTPS requests.
	    user := creds.User()
	    password, err := creds.Password()
	    if err != nil {
	        log.Fatal(err)
	    }

	    // CBS token for an AMQP $cbs negotiation.
	    token, err := creds.GetToken(context.Background(), "", "", nil)
	    if err != nil {
	        log.Fatal(err)
	    }
	    _ = token.Expiry

	    // AMQP link addressing.
	    addr := creds.BuildLinkAddress("/messages/events")
	    _ = addr
	}

# Credential Modes

A connection string carries either a shared access key pair or a pre-issued
SharedAccessSignature. When a signature is present it is used verbatim by
every capability and no key-based computation occurs; its token never
expires from this package's perspective. Otherwise each call computes a
fresh signature scoped to the hub, device, or module, valid for
DefaultTokenTTL.

Credentials is immutable after New returns and is safe for concurrent use.
Every call recomputes from the stored fields; there is no caching or
refresh.
*/
package iothubsas
