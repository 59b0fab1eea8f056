package codec

import (
	"math"
	"time"
)

// Ticks are 100 ns units. Timestamps count ticks since 0001-01-01T00:00:00Z.
const (
	tickDuration   = 100 * time.Nanosecond
	ticksPerSecond = int64(time.Second / tickDuration)
	// seconds from 0001-01-01 to the Unix epoch
	epochOffsetSeconds = 62135596800

	maxTickSeconds   = math.MaxInt64/ticksPerSecond - 1
	minTickSeconds   = math.MinInt64/ticksPerSecond + 1
	maxDurationTicks = int64(math.MaxInt64 / tickDuration)
	minDurationTicks = int64(math.MinInt64 / tickDuration)
)

// TimeToTicks converts t to its wire tick count. Times beyond the int64 tick
// range, roughly years -27200 to 29200, saturate.
func TimeToTicks(t time.Time) int64 {
	ticks, _ := timeTicks(t)
	return ticks
}

func timeTicks(t time.Time) (int64, bool) {
	sec := t.Unix() + epochOffsetSeconds
	switch {
	case sec > maxTickSeconds:
		return math.MaxInt64, false
	case sec < minTickSeconds:
		return math.MinInt64, false
	}
	return sec*ticksPerSecond + int64(t.Nanosecond())/int64(tickDuration), true
}

// TicksToTime converts a wire tick count to a UTC time.
func TicksToTime(ticks int64) time.Time {
	sec := ticks/ticksPerSecond - epochOffsetSeconds
	rem := ticks % ticksPerSecond
	return time.Unix(sec, rem*int64(tickDuration)).UTC()
}

// ReadTime decodes a timestamp.
func (d *Decoder) ReadTime() time.Time {
	b := d.take("time", SizeTicks)
	if b == nil {
		return time.Time{}
	}
	return TicksToTime(int64(le.Uint64(b)))
}

// ReadDuration decodes a duration tick count. Counts that overflow
// time.Duration are malformed; the bytes are consumed and the failure flag
// is set.
func (d *Decoder) ReadDuration() time.Duration {
	b := d.take("duration", SizeTicks)
	if b == nil {
		return 0
	}
	ticks := int64(le.Uint64(b))
	if ticks > maxDurationTicks || ticks < minDurationTicks {
		d.fail("duration.range", SizeTicks)
		return 0
	}
	return time.Duration(ticks) * tickDuration
}

// WriteTime encodes t as ticks. Sub-tick precision is truncated.
func (e *Encoder) WriteTime(t time.Time) {
	ticks, ok := timeTicks(t)
	if !ok {
		e.saturated("time", t.String())
	}
	e.WriteInt64(ticks)
}

// WriteDuration encodes v as ticks. Sub-tick precision is truncated.
func (e *Encoder) WriteDuration(v time.Duration) {
	e.WriteInt64(int64(v / tickDuration))
}
