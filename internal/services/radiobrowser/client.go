package radiobrowser

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/mauiplayer/radio-api/internal/logging"
)

const (
	// DefaultFallbackURL lets the directory's DNS round-robin pick a server
	DefaultFallbackURL = "https://all.api.radio-browser.info"
	DefaultUserAgent   = "MauiPlayer/1.0 (api-server)"
	DefaultTimeout     = 8 * time.Second
)

// Observer receives one call per host attempt
type Observer interface {
	HostAttempt(host string, ok bool, elapsed time.Duration)
}

// Config holds configuration for the directory client
type Config struct {
	Hosts             []string
	FallbackURL       string
	UserAgent         string
	Timeout           time.Duration // per host attempt
	RequestsPerSecond int           // 0 disables throttling
	Burst             int
	ShuffleHosts      bool
	Rand              *rand.Rand // used for the startup shuffle
	Observer          Observer
}

// Client queries radio-browser across a list of mirrors, moving to the next
// host when one fails. The last host that answered is tried first next time.
type Client struct {
	http     *resty.Client
	hosts    []string
	fallback string
	timeout  time.Duration
	limiter  *rate.Limiter
	observer Observer
	logger   zerolog.Logger

	mu        sync.RWMutex
	preferred string
}

// NewClient creates a new directory client
func NewClient(cfg Config) *Client {
	if cfg.FallbackURL == "" {
		cfg.FallbackURL = DefaultFallbackURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	hosts := make([]string, 0, len(cfg.Hosts))
	for _, h := range cfg.Hosts {
		if h = normalizeHost(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	if cfg.ShuffleHosts && len(hosts) > 1 {
		rnd := cfg.Rand
		if rnd == nil {
			rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		rnd.Shuffle(len(hosts), func(i, j int) { hosts[i], hosts[j] = hosts[j], hosts[i] })
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	c := &Client{
		http: resty.New().
			SetHeader("User-Agent", cfg.UserAgent).
			SetHeader("Accept", "application/json"),
		hosts:    hosts,
		fallback: normalizeHost(cfg.FallbackURL),
		timeout:  cfg.Timeout,
		limiter:  rate.NewLimiter(limit, cfg.Burst),
		observer: cfg.Observer,
		logger:   logging.Component("radiobrowser"),
	}
	if len(hosts) > 0 {
		c.preferred = hosts[0]
	}
	return c
}

// PreferredHost returns the host that will be tried first
func (c *Client) PreferredHost() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.preferred
}

func (c *Client) setPreferred(host string) {
	c.mu.Lock()
	c.preferred = host
	c.mu.Unlock()
}

// TrialOrder returns the hosts in the order the next fetch will try them:
// preferred host, remaining configured hosts, then the fallback. No host appears twice.
func (c *Client) TrialOrder() []string {
	preferred := c.PreferredHost()

	order := make([]string, 0, len(c.hosts)+2)
	seen := make(map[string]struct{}, len(c.hosts)+2)
	add := func(h string) {
		if h == "" {
			return
		}
		if _, ok := seen[h]; ok {
			return
		}
		seen[h] = struct{}{}
		order = append(order, h)
	}

	add(preferred)
	for _, h := range c.hosts {
		add(h)
	}
	add(c.fallback)
	return order
}

// Fetch runs the query against each host in trial order until one succeeds
func (c *Client) Fetch(ctx context.Context, f Filter) ([]RawStation, error) {
	order := c.TrialOrder()

	var last error
	tried := 0
	for _, host := range order {
		tried++
		stations, err := c.fetchFrom(ctx, host, f)
		if err == nil {
			c.setPreferred(host)
			return stations, nil
		}

		last = err
		c.logger.Warn().Err(err).Str("host", host).Str("query", f.String()).Msg("Host failed")

		if ctx.Err() != nil {
			break
		}
	}

	return nil, &UnavailableError{Hosts: tried, Last: last}
}

func (c *Client) fetchFrom(ctx context.Context, host string, f Filter) (stations []RawStation, err error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.HostAttempt(host, err == nil, time.Since(start))
		}
	}()

	resp, err := c.http.R().
		SetContext(attemptCtx).
		SetQueryParamsFromValues(f.Query()).
		Get(host + f.Path())
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", host, err)
	}

	if !resp.IsSuccess() {
		return nil, &StatusError{Host: host, StatusCode: resp.StatusCode()}
	}

	if err := json.Unmarshal(resp.Body(), &stations); err != nil {
		return nil, fmt.Errorf("decoding response from %s: %w", host, err)
	}

	return stations, nil
}

func normalizeHost(h string) string {
	return strings.TrimRight(strings.TrimSpace(h), "/")
}
