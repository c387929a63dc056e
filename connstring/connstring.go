// Package connstring parses IoT Hub connection strings into the field set
// consumed by the iothubsas package.
//
// A connection string is a semicolon-separated list of key=value pairs,
// for example:
//
//	HostName=myhub.azure-devices.net;SharedAccessKeyName=service;SharedAccessKey=c2VjcmV0
//
// Values are taken verbatim after the first '=' of each pair, so base64
// padding and embedded '=' characters survive parsing.
package connstring

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty is returned when Parse is called with a blank string.
	ErrEmpty = errors.New("connection string is empty")

	// ErrNoHostName is returned when the connection string has no HostName pair.
	ErrNoHostName = errors.New("connection string has no HostName")
)

// Properties is the parsed field set of one connection string.
type Properties struct {
	// HostName is the hub host, e.g. "myhub.azure-devices.net".
	HostName string

	// HubName is the logical hub identifier, the first label of HostName.
	HubName string

	// GatewayHostName, when set, is the edge gateway a client connects
	// through instead of HostName.
	GatewayHostName string

	SharedAccessKeyName string
	SharedAccessKey     string

	// SharedAccessSignature is a pre-issued signature. When present it is
	// used verbatim and the key pair is not consulted.
	SharedAccessSignature string

	DeviceID string
	ModuleID string
}

// Parse splits a connection string into Properties. Unknown keys are
// rejected; empty pairs (trailing or doubled semicolons) are skipped.
// HostName is required.
func Parse(cs string) (*Properties, error) {
	if strings.TrimSpace(cs) == "" {
		return nil, ErrEmpty
	}

	p := &Properties{}
	for _, pair := range strings.Split(cs, ";") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed pair %q", pair)
		}
		switch strings.TrimSpace(key) {
		case "HostName":
			p.HostName = value
		case "GatewayHostName":
			p.GatewayHostName = value
		case "SharedAccessKeyName":
			p.SharedAccessKeyName = value
		case "SharedAccessKey":
			p.SharedAccessKey = value
		case "SharedAccessSignature":
			p.SharedAccessSignature = value
		case "DeviceId":
			p.DeviceID = value
		case "ModuleId":
			p.ModuleID = value
		default:
			return nil, fmt.Errorf("unknown connection string key %q", strings.TrimSpace(key))
		}
	}

	if p.HostName == "" {
		return nil, ErrNoHostName
	}
	p.HubName, _, _ = strings.Cut(p.HostName, ".")
	return p, nil
}
