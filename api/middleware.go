package api

import (
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/mauiplayer/radio-api/api/types"
	apperrors "github.com/mauiplayer/radio-api/pkg/errors"
)

const (
	// RequestIDHeader carries the request id in and out
	RequestIDHeader = "X-Request-ID"

	limiterIdleTimeout = 10 * time.Minute
	limiterSweepPeriod = 5 * time.Minute
)

// azureOrigin matches app service hosts, with an optional port
var azureOrigin = regexp.MustCompile(`(?i)^https?://[a-z0-9.-]+\.azurewebsites\.net(:\d+)?$`)

// clientLimiter holds a rate limiter and its last accessed time
type clientLimiter struct {
	limiter *rate.Limiter

	mu       sync.Mutex
	lastSeen time.Time
}

func (cl *clientLimiter) touch(now time.Time) {
	cl.mu.Lock()
	cl.lastSeen = now
	cl.mu.Unlock()
}

func (cl *clientLimiter) idleSince(now time.Time) time.Duration {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return now.Sub(cl.lastSeen)
}

// CORSPolicy decides which browser origins may call the API
type CORSPolicy struct {
	Origins            []string
	AllowAzureWildcard bool
}

// Allows reports whether a request from origin is accepted. Requests
// without an Origin header (native apps, curl) always are.
func (p CORSPolicy) Allows(origin string) bool {
	if origin == "" {
		return true
	}
	for _, o := range p.Origins {
		if o == origin {
			return true
		}
	}
	return p.AllowAzureWildcard && azureOrigin.MatchString(origin)
}

// CORS enforces the origin policy. Accepted origins are echoed back with
// credentials allowed; anything else is rejected with 403.
func CORS(policy CORSPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if !policy.Allows(origin) {
			types.AbortWithError(c, apperrors.New(apperrors.ErrCodeForbidden, "Not allowed by CORS").
				WithDetail("origin", origin))
			return
		}

		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			c.Header("Access-Control-Max-Age", "86400")
			c.Writer.Header().Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// RequestID tags every request with an id, reusing a well formed incoming one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(types.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger writes one structured line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Int("bytes", c.Writer.Size()).
			Str(types.RequestIDKey, c.GetString(types.RequestIDKey)).
			Msg("request")
	}
}

func RequestSizeLimit() gin.HandlerFunc {
	return RequestSizeLimitWithSize(64 * 1024)
}

func RequestSizeLimitWithSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost ||
			c.Request.Method == http.MethodPut ||
			c.Request.Method == http.MethodPatch {
			if c.Request.ContentLength > maxBytes {
				types.AbortWithError(c, apperrors.New(apperrors.ErrCodeRequestTooLarge, "Request body too large"))
				return
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

func PerClientRateLimit(rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once, rps int, burst int) gin.HandlerFunc {
	cleanupInitialized.Do(func() {
		go cleanupOldRateLimiters(rateLimiters, cleanupStop)
	})

	limit := rate.Inf
	if rps > 0 {
		limit = rate.Every(time.Second / time.Duration(rps))
	}

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		now := time.Now()

		limiterInterface, _ := rateLimiters.LoadOrStore(clientIP, &clientLimiter{
			limiter:  rate.NewLimiter(limit, burst),
			lastSeen: now,
		})

		cl := limiterInterface.(*clientLimiter)
		cl.touch(now)

		if !cl.limiter.Allow() {
			types.AbortWithError(c, apperrors.New(apperrors.ErrCodeAPIRateLimit, "Rate limit exceeded. Please slow down your requests.").
				WithDetail("client_ip", clientIP))
			return
		}
		c.Next()
	}
}

func cleanupOldRateLimiters(rateLimiters *sync.Map, cleanupStop chan struct{}) {
	ticker := time.NewTicker(limiterSweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			sweepRateLimiters(rateLimiters, now, limiterIdleTimeout)
		case <-cleanupStop:
			return
		}
	}
}

// sweepRateLimiters drops limiters idle for longer than maxIdle
func sweepRateLimiters(rateLimiters *sync.Map, now time.Time, maxIdle time.Duration) {
	rateLimiters.Range(func(key, value interface{}) bool {
		cl, ok := value.(*clientLimiter)
		if !ok || cl.idleSince(now) > maxIdle {
			rateLimiters.Delete(key)
		}
		return true
	})
}
