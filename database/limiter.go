package database

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles intents per kind. Kinds without their own limit share one bucket, so
// arbitrary kinds sent by a client cannot grow it.
type Limiter struct {
	sync.Mutex
	limits   map[string]int
	fallback int
	buckets  map[string]*rate.Limiter
}

// NewLimiter allows limits[kind] intents per minute, or fallback for any other kind.
func NewLimiter(limits map[string]int, fallback int) *Limiter {
	return &Limiter{
		limits:   limits,
		fallback: fallback,
		buckets:  map[string]*rate.Limiter{},
	}
}

func (l *Limiter) Allow(kind string, now time.Time) bool {
	l.Lock()
	defer l.Unlock()
	perMinute, ok := l.limits[kind]
	if !ok {
		kind, perMinute = "", l.fallback
	}
	if perMinute <= 0 {
		return true
	}
	bucket, ok := l.buckets[kind]
	if !ok {
		bucket = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
		l.buckets[kind] = bucket
	}
	return bucket.AllowN(now, 1)
}
