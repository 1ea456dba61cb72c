// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"github.com/ik5/audcap/processor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "audcap"

// Metrics holds the sink's Prometheus collectors.
type Metrics struct {
	FramesWritten prometheus.Counter
	BytesWritten  prometheus.Counter
	WriteErrors   prometheus.Counter
}

// NewMetrics registers the sink collectors with reg. When out is non-nil the
// queue's emitted and dropped frame counts and its depth are exported as
// well; they are read at scrape time so the producer never touches
// Prometheus. A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer, out *processor.ChanOutput) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		FramesWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_written_total",
			Help:      "Total PCM16 frames written by the sink",
		}),
		BytesWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_written_total",
			Help:      "Total PCM16 bytes written by the sink",
		}),
		WriteErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "write_errors_total",
			Help:      "Total frame write failures",
		}),
	}

	if out == nil {
		return m
	}

	factory.NewCounterFunc(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "frames_emitted_total",
		Help:      "Total frames queued by the capture stage",
	}, func() float64 { return float64(out.Sent()) })

	factory.NewCounterFunc(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "frames_dropped_total",
		Help:      "Total frames dropped because the queue was full",
	}, func() float64 { return float64(out.Dropped()) })

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_depth",
		Help:      "Frames waiting in the output queue",
	}, func() float64 { return float64(out.Len()) })

	return m
}
