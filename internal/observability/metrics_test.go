package observability

import (
	"testing"
	"time"

	"github.com/danmuck/wirecodec/internal/codec"
	"github.com/danmuck/wirecodec/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ codec.Observer = (*CodecMetrics)(nil)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("wirectl", "GET", "/health", 200, 12*time.Millisecond)
	RecordFrame("wirectl", 7, "ok", 12)
}

func TestCodecMetricsCountsDecoderFailures(t *testing.T) {
	testlog.Start(t)
	m := NewCodecMetrics("metrics-test-decode")
	before := testutil.ToFloat64(decodeFailures.WithLabelValues("metrics-test-decode", "uint32"))

	d := codec.NewDecoder(codec.WithObserver(m))
	d.Load([]byte{0x01})
	d.ReadUint32()

	after := testutil.ToFloat64(decodeFailures.WithLabelValues("metrics-test-decode", "uint32"))
	if after-before != 1 {
		t.Fatalf("decode failure count delta: got=%v want=1", after-before)
	}
}

func TestCodecMetricsCountsEncoderDrops(t *testing.T) {
	testlog.Start(t)
	m := NewCodecMetrics("metrics-test-encode")
	e := codec.NewEncoder(1, false, 8, codec.WithObserver(m))
	e.WriteShortString(codec.ShortString(make([]byte, 256)))

	got := testutil.ToFloat64(encodeDrops.WithLabelValues("metrics-test-encode", "short_string"))
	if got != 1 {
		t.Fatalf("encode drop count: got=%v want=1", got)
	}
	if e.Len() != 0 {
		t.Fatalf("dropped write changed buffer: len=%d", e.Len())
	}
}
