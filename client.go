package ksoft

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Host represents a long-running application the client can be plugged
// into, typically a chat bot.
//
// The ban updater waits for Ready before its first cycle and exits once
// Done is closed. Both channels are usually backed by the host's own
// lifecycle signals.
type Host interface {
	Ready() <-chan struct{} // Ready is closed once the host has finished starting up.
	Done() <-chan struct{}  // Done is closed when the host is shutting down.
}

// Client represents a connection to the KSoft.Si API.
//
// It provides the stateless sub-APIs through [Client.Bans] and
// [Client.Images] and, when a [Host] is attached, a background poller
// that turns the incremental ban update feed into [Event] values
// delivered to the registered hooks.
type Client struct {
	Config *Config // Config holds the configuration for the client.

	http   *HttpClient   // http performs the authenticated requests.
	bans   *BanAPI       // bans is the bans sub-API.
	images *ImageAPI     // images is the images sub-API.
	hooks  *hookRegistry // hooks contains the registered ban hooks.
	host   Host          // host gates the ban updater; nil disables it.

	lastUpdate time.Time  // lastUpdate is the watermark of the ban update feed.
	updateMu   sync.Mutex // updateMu guards lastUpdate.

	context   context.Context    // Context for running the ban updater.
	cancelCtx context.CancelFunc // Function for stopping the ban updater.
	started   bool               // started indicates whether the client has been started.
	mu        sync.Mutex         // mu guards the lifecycle fields.
}

// New creates a new instance of the [Client] with the provided configuration.
//
// Args:
//   - config: The configuration for the client. APIKey is required.
//
// Returns:
//   - *Client: A new instance of the [Client].
//   - error: ErrNoAPIKey when the API key is missing.
func New(config *Config) (*Client, error) {
	if config == nil || config.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	httpClient := NewHttpClient(config.APIKey, config.BaseURL, config.timeout())

	return &Client{
		Config:     config,
		http:       httpClient,
		bans:       &BanAPI{http: httpClient},
		images:     &ImageAPI{http: httpClient},
		hooks:      newHookRegistry(),
		lastUpdate: time.Now().Add(-BAN_UPDATE_BACKLOG),
	}, nil
}

// Bans returns the bans sub-API.
func (c *Client) Bans() *BanAPI {
	return c.bans
}

// Images returns the images sub-API.
func (c *Client) Images() *ImageAPI {
	return c.images
}

// RegisterBanHook registers a hook for ban feed events.
// Registering the same hook twice is a no-op.
func (c *Client) RegisterBanHook(hook Hook) {
	c.hooks.Register(hook)
}

// UnregisterBanHook removes a previously registered hook.
// Removing an unknown hook is a no-op.
func (c *Client) UnregisterBanHook(hook Hook) {
	c.hooks.Unregister(hook)
}

// Start starts the client.
//
// When a [Host] is attached the ban updater goroutine is launched; a
// client without a host has nothing to run in the background and Start
// only arms the context for [Client.Stop].
//
// Args:
//   - ctx: The parent context; context.Background() when nil.
//
// Returns:
//   - error: ErrAlreadyActive when the client is already started.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return ErrAlreadyActive
	}

	if ctx == nil {
		ctx = context.Background()
	}
	c.context, c.cancelCtx = context.WithCancel(ctx)
	c.started = true

	if c.host != nil {
		go c.banUpdater(c.context)
	}

	return nil
}

// Stop stops the client.
//
// A running poll cycle is not aborted; the updater observes the stop
// before it would begin the next cycle.
func (c *Client) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}

	c.cancelCtx()
	c.started = false
}

// watermark returns the current feed watermark.
func (c *Client) watermark() time.Time {
	c.updateMu.Lock()
	defer c.updateMu.Unlock()

	return c.lastUpdate
}

// advanceWatermark moves the feed watermark forward.
func (c *Client) advanceWatermark(t time.Time) {
	c.updateMu.Lock()
	defer c.updateMu.Unlock()

	c.lastUpdate = t
}

// banUpdater periodically polls the ban update feed and dispatches the
// resulting events to the registered hooks.
//
// The updater waits for the host to become ready, then alternates
// between one poll cycle and a fixed-interval sleep until the host shuts
// down or the client is stopped. The sleep follows every cycle, whether
// it dispatched events, skipped or failed.
func (c *Client) banUpdater(ctx context.Context) {
	select {
	case <-c.host.Ready():
	case <-c.host.Done():
		return
	case <-ctx.Done():
		return
	}

	log.Debug().Msg("Ban updater started.")
	defer log.Debug().Msg("Ban updater stopped.")

	for {
		select {
		case <-c.host.Done():
			return
		case <-ctx.Done():
			return
		default:
		}

		c.pollBans(ctx)

		select {
		case <-time.After(c.Config.pollInterval()):
		case <-c.host.Done():
			return
		case <-ctx.Done():
			return
		}
	}
}

// pollBans runs a single fetch-and-dispatch cycle.
//
// With no hooks registered the cycle is skipped without touching the
// network or the watermark. Fetch and decode errors are logged and
// contained here, they never terminate the updater.
func (c *Client) pollBans(ctx context.Context) {
	if c.hooks.Len() == 0 {
		return
	}

	since := c.watermark()
	// The watermark moves at the start of the attempt, not after
	// success. A failed cycle loses its window, but one bad response can
	// never make the updater refetch the same window forever.
	c.advanceWatermark(time.Now())

	updates, err := c.bans.Updates(ctx, since)
	if err != nil {
		log.Error().Err(err).Time("Since", since).Msg("Ban update cycle failed.")
		return
	}

	for i := range updates {
		c.hooks.Dispatch(NewBanEvent(&updates[i]))
	}
}
