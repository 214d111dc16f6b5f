package transmission

import (
	"context"
	"encoding/base64"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultRequestTimeout bounds a single HTTP attempt when the caller does not
// configure one.
const DefaultRequestTimeout = 30 * time.Second

// Config contains runtime client settings and credentials.
type Config struct {
	// URL is the full RPC endpoint, e.g. "http://localhost:9091/transmission/rpc".
	URL string

	// Username and Password enable HTTP basic auth when Username is non-empty.
	// The Authorization header is computed once at construction.
	Username string
	Password string

	// SessionID seeds the session token. Normally left empty: the daemon
	// hands out the real token via the first 409 response.
	SessionID string

	RequestTimeout time.Duration

	// RequestsPerSecond throttles outgoing calls when > 0. Useful for
	// pollers that share a daemon with interactive clients.
	RequestsPerSecond float64

	// Logger receives debug-level request/session events. Defaults to a
	// no-op logger.
	Logger *zap.Logger
}

// Client is a Transmission RPC client. A single instance is safe for
// concurrent use: the tag counter and session ID are guarded internally.
type Client struct {
	mu     sync.Mutex
	config Config
	client *http.Client
	logger *zap.Logger

	limiter    *rate.Limiter
	authHeader string

	sessionID string
	tag       int64
}

// New creates a client for the daemon at config.URL.
func New(config Config) (*Client, error) {
	if config.URL == "" {
		return nil, errors.New("config.URL is required")
	}

	if config.RequestTimeout <= 0 {
		config.RequestTimeout = DefaultRequestTimeout
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		config:    config,
		client:    &http.Client{Timeout: config.RequestTimeout},
		logger:    logger,
		sessionID: config.SessionID,
	}

	if config.Username != "" {
		credential := config.Username + ":" + config.Password
		c.authHeader = "Basic " + base64.StdEncoding.EncodeToString([]byte(credential))
	}

	if config.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1)
	}

	return c, nil
}

// SessionID returns the session token currently in use. Empty until the
// first 409 handshake completes (unless seeded via Config.SessionID).
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Close issues the session-close RPC. It is optional; dropping the client
// without calling it leaks nothing on the client side.
func (c *Client) Close() error {
	return c.SessionClose(context.Background())
}
