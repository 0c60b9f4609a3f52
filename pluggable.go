package ksoft

import "sync"

var (
	plugged   = NewSyncMap[Host, *Client]()
	pluggedMu sync.Mutex // pluggedMu serializes the check-then-create in Pluggable.
)

// Pluggable returns the client bound to the given host, creating and
// binding a new one on first use.
//
// The binding is keyed by host identity, so repeated calls with the same
// host return the existing instance instead of creating another one.
// Hosts are expected to be pointer values.
//
// The returned client has its ban updater armed; the host application
// still decides when to call [Client.Start].
//
// Args:
//   - host: The host application to bind to.
//   - config: The configuration for the client. APIKey is required.
//
// Returns:
//   - *Client: The client bound to the host.
//   - error: ErrNoHost or ErrNoAPIKey when an argument is missing.
func Pluggable(host Host, config *Config) (*Client, error) {
	if host == nil {
		return nil, ErrNoHost
	}

	pluggedMu.Lock()
	defer pluggedMu.Unlock()

	if client, ok := plugged.Get(host); ok {
		return client, nil
	}

	client, err := New(config)
	if err != nil {
		return nil, err
	}
	client.host = host

	plugged.Set(host, client)

	return client, nil
}

// Unplug removes the binding between a host and its client.
// The client itself is left running; stop it via [Client.Stop].
func Unplug(host Host) {
	plugged.Del(host)
}
