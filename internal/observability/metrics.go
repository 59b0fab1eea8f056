package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wirecodec",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wirecodec",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	decodeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wirecodec",
			Subsystem: "codec",
			Name:      "decode_failures_total",
			Help:      "Soft decode failures by operation.",
		},
		[]string{"node", "op"},
	)
	encodeDrops = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wirecodec",
			Subsystem: "codec",
			Name:      "encode_dropped_total",
			Help:      "Oversized writes dropped by operation.",
		},
		[]string{"node", "op"},
	)
	frames = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wirecodec",
			Subsystem: "codec",
			Name:      "frames_total",
			Help:      "Frames processed by message id and outcome.",
		},
		[]string{"node", "message_id", "outcome"},
	)
	frameBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wirecodec",
			Subsystem: "codec",
			Name:      "frame_bytes",
			Help:      "Frame payload sizes in bytes.",
			Buckets:   prometheus.ExponentialBuckets(8, 4, 10),
		},
		[]string{"node"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, decodeFailures, encodeDrops, frames, frameBytes)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordFrame counts one inspected frame under the catalog outcome label.
func RecordFrame(node string, messageID uint16, outcome string, payloadBytes int) {
	RegisterMetrics()
	frames.WithLabelValues(node, strconv.Itoa(int(messageID)), outcome).Inc()
	frameBytes.WithLabelValues(node).Observe(float64(payloadBytes))
}

// CodecMetrics implements codec.Observer on the process registry.
type CodecMetrics struct {
	node string
}

func NewCodecMetrics(node string) *CodecMetrics {
	RegisterMetrics()
	return &CodecMetrics{node: node}
}

func (m *CodecMetrics) DecodeFailed(op string) {
	decodeFailures.WithLabelValues(m.node, op).Inc()
}

func (m *CodecMetrics) EncodeDropped(op string) {
	encodeDrops.WithLabelValues(m.node, op).Inc()
}
