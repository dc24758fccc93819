package service

import (
	"fmt"
	"io"

	"products-backend/store"
)

// CacheStatsLogger prints the persistence layer's cumulative second-level
// cache counters after instrumented reads. It never touches the wrapped
// call's result; the counters are shared process-wide state owned by the
// store layer.
type CacheStatsLogger struct {
	stats   func() store.CacheStats
	enabled bool
	out     io.Writer
}

func NewCacheStatsLogger(stats func() store.CacheStats, enabled bool, out io.Writer) *CacheStatsLogger {
	return &CacheStatsLogger{stats: stats, enabled: enabled, out: out}
}

// Log writes the current hit and miss counts, one line each.
func (l *CacheStatsLogger) Log() {
	if l == nil || !l.enabled {
		return
	}
	s := l.stats()
	fmt.Fprintf(l.out, "l2 cache hits: %d\n", s.Hits)
	fmt.Fprintf(l.out, "l2 cache misses: %d\n", s.Misses)
}
