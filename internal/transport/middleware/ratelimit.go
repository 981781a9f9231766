package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/actas-backend/pkg/ctxutil"
)

// idleEvict is how long a caller may stay silent before its limiter is
// dropped. A fresh limiter starts full, so eviction only ever forgives.
const idleEvict = 10 * time.Minute

// RateLimiter keeps one token bucket per caller: the contributor when
// authenticated, the client address otherwise.
type RateLimiter struct {
	mu      sync.Mutex
	callers map[string]*caller
	now     func() time.Time
	stop    chan struct{}
	done    chan struct{}
}

type caller struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts a limiter whose idle entries are swept every
// cleanupInterval. Stop must be called on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		callers: make(map[string]*caller),
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go rl.sweepLoop(cleanupInterval)
	return rl
}

// Stop ends the sweeper and waits for it to exit.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
	<-rl.done
}

// Limit allows maxPerMinute requests per caller with a burst of the same
// size. It must run after Auth so a contributor has one budget across
// addresses. Rejections carry Retry-After in whole seconds.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	every := rate.Limit(float64(maxPerMinute) / 60)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := rl.now()
			lim := rl.limiter(limitKey(r), every, maxPerMinute, now)

			res := lim.ReserveN(now, 1)
			if delay := res.DelayFrom(now); !res.OK() || delay > 0 {
				res.CancelAt(now)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(delay)))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func retryAfterSeconds(d time.Duration) int {
	if d <= 0 || d == rate.InfDuration {
		return 60
	}
	return int(math.Ceil(d.Seconds()))
}

func limitKey(r *http.Request) string {
	if id, ok := ctxutil.ContributorIDFromCtx(r.Context()); ok {
		return "c:" + id.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func (rl *RateLimiter) limiter(key string, every rate.Limit, burst int, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.callers[key]
	if !ok {
		c = &caller{lim: rate.NewLimiter(every, burst)}
		rl.callers[key] = c
	}
	c.lastSeen = now
	return c.lim
}

func (rl *RateLimiter) sweep(now time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	n := 0
	for key, c := range rl.callers {
		if now.Sub(c.lastSeen) > idleEvict {
			delete(rl.callers, key)
			n++
		}
	}
	return n
}

func (rl *RateLimiter) sweepLoop(interval time.Duration) {
	defer close(rl.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(rl.now())
		}
	}
}
