package bus

import "errors"

var (
	// ErrHubClosed is returned when subscribing to or posting on a closed hub.
	ErrHubClosed = errors.New("bus: hub is closed")

	// ErrEncodePayload is returned by the Redis adapter when a payload
	// cannot be serialized for transport.
	ErrEncodePayload = errors.New("bus: failed to encode payload")

	// ErrRedisConnect is returned when the Redis adapter cannot establish
	// or verify its connection.
	ErrRedisConnect = errors.New("bus: failed to connect to redis")
)
