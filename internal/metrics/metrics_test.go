package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/DevGleb/RealWorldApp/internal/metrics"
)

// fakePoolStats implements metrics.PoolStats for testing.
type fakePoolStats struct {
	total    int32
	idle     int32
	acquired int32
}

func (s *fakePoolStats) TotalConns() int32    { return s.total }
func (s *fakePoolStats) IdleConns() int32     { return s.idle }
func (s *fakePoolStats) AcquiredConns() int32 { return s.acquired }

// fakePoolStatsProvider implements metrics.PoolStatsProvider for testing.
type fakePoolStatsProvider struct {
	stats *fakePoolStats
}

func (p *fakePoolStatsProvider) Stat() metrics.PoolStats { return p.stats }

func TestPoolStatsCollector(t *testing.T) {
	t.Run("collects stats on start", func(t *testing.T) {
		provider := &fakePoolStatsProvider{
			stats: &fakePoolStats{total: 10, idle: 7, acquired: 3},
		}

		collector := metrics.NewPoolStatsCollectorWithProvider(provider)
		collector.Start(time.Hour) // long interval; only the initial collect matters
		defer collector.Stop()

		// Initial collection happens synchronously inside the goroutine;
		// give it a moment.
		time.Sleep(50 * time.Millisecond)

		assert.Equal(t, 10.0, testutil.ToFloat64(metrics.DBConnectionPoolSize.WithLabelValues("total")))
		assert.Equal(t, 7.0, testutil.ToFloat64(metrics.DBConnectionPoolSize.WithLabelValues("idle")))
		assert.Equal(t, 3.0, testutil.ToFloat64(metrics.DBConnectionPoolSize.WithLabelValues("in_use")))
	})

	t.Run("stop terminates the collector", func(t *testing.T) {
		provider := &fakePoolStatsProvider{stats: &fakePoolStats{}}

		collector := metrics.NewPoolStatsCollectorWithProvider(provider)
		collector.Start(10 * time.Millisecond)

		done := make(chan struct{})
		go func() {
			collector.Stop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("collector did not stop in time")
		}
	})
}

func TestDomainCounters(t *testing.T) {
	t.Run("favorites counter tracks actions separately", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.Favorites.WithLabelValues("add"))

		metrics.Favorites.WithLabelValues("add").Inc()

		assert.Equal(t, before+1, testutil.ToFloat64(metrics.Favorites.WithLabelValues("add")))
	})

	t.Run("logins counter tracks results separately", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.Logins.WithLabelValues("failure"))

		metrics.Logins.WithLabelValues("failure").Inc()

		assert.Equal(t, before+1, testutil.ToFloat64(metrics.Logins.WithLabelValues("failure")))
	})
}
