package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	t.Run("nil receiver não entra em pânico", func(t *testing.T) {
		var m *Metrics
		assert.NotPanics(t, func() {
			m.ObserveRequest("success", time.Second)
			m.IncRetry()
			m.SetQueueDepth(3)
			m.IncError("api")
			m.CacheLookup("hit")
			m.CacheEviction("ttl")
			m.CommentIngested("neutral")
		})
	})

	t.Run("contadores registrados no registry informado", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := New(reg)

		m.ObserveRequest("success", 10*time.Millisecond)
		m.ObserveRequest("success", 10*time.Millisecond)
		m.IncRetry()
		m.IncError("rate_limit")
		m.IncError("")
		m.SetQueueDepth(2)

		assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("success")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.RetriesTotal))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("rate_limit")))
		assert.Equal(t, 2.0, testutil.ToFloat64(m.QueueDepth))
	})
}
