package dashboard

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	domain "github.com/BruksfildServices01/essentia-tours/internal/domain/dashboard"
	"github.com/BruksfildServices01/essentia-tours/internal/metrics"
	"github.com/BruksfildServices01/essentia-tours/internal/timezone"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// Cache stores serialized stats. Implementations must be safe to use when
// the backing store is unavailable.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

type GetStats struct {
	reader   domain.Reader
	cache    Cache
	timezone string
	now      func() time.Time
}

func NewGetStats(
	reader domain.Reader,
	cache Cache,
	tz string,
) *GetStats {
	return &GetStats{
		reader:   reader,
		cache:    cache,
		timezone: tz,
		now:      time.Now,
	}
}

func (uc *GetStats) Execute(ctx context.Context) (domain.Stats, error) {
	if data, ok := uc.cache.Get(ctx, uc.key()); ok {
		var st domain.Stats
		if err := json.Unmarshal(data, &st); err == nil {
			metrics.DashboardCache.WithLabelValues("hit").Inc()
			return st, nil
		}
	}
	metrics.DashboardCache.WithLabelValues("miss").Inc()

	snap, err := uc.reader.Snapshot(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	now := uc.now().In(timezone.Location(uc.timezone))
	st := domain.ComputeStats(snap, now)

	if data, err := json.Marshal(st); err == nil {
		uc.cache.Set(ctx, uc.key(), data, statsCacheTTL)
	}
	return st, nil
}

// key is per calendar day so cached "today" counts never cross midnight.
func (uc *GetStats) key() string {
	return statsCacheKey + ":" + timezone.Today(uc.timezone)
}

// Invalidator drops cached stats whenever an event may have changed them.
func (uc *GetStats) Invalidator() audit.Sink {
	return audit.SinkFunc(func(ctx context.Context, ev audit.Event) error {
		switch {
		case ev.Entity == "agendamento",
			ev.Entity == "lead",
			ev.Entity == "passeio",
			ev.Entity == "user",
			strings.HasPrefix(ev.Action, "cliente_"):
			uc.cache.Delete(ctx, uc.key())
		}
		return nil
	})
}
