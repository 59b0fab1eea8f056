package codec

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/danmuck/wirecodec/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type roundTripCase struct {
	name  string
	write func(e *Encoder)
	read  func(d *Decoder) any
	want  any
}

func roundTripCases() []roundTripCase {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	stamp := time.Date(2024, time.March, 9, 17, 4, 5, 123456700, time.UTC)
	long := strings.Repeat("x", MaxCount)
	short := strings.Repeat("y", MaxShortCount)
	return []roundTripCase{
		{"uint8 max", func(e *Encoder) { e.WriteUint8(math.MaxUint8) }, func(d *Decoder) any { return d.ReadUint8() }, uint8(math.MaxUint8)},
		{"int8 min", func(e *Encoder) { e.WriteInt8(math.MinInt8) }, func(d *Decoder) any { return d.ReadInt8() }, int8(math.MinInt8)},
		{"uint16 max", func(e *Encoder) { e.WriteUint16(math.MaxUint16) }, func(d *Decoder) any { return d.ReadUint16() }, uint16(math.MaxUint16)},
		{"int16 min", func(e *Encoder) { e.WriteInt16(math.MinInt16) }, func(d *Decoder) any { return d.ReadInt16() }, int16(math.MinInt16)},
		{"uint32 max", func(e *Encoder) { e.WriteUint32(math.MaxUint32) }, func(d *Decoder) any { return d.ReadUint32() }, uint32(math.MaxUint32)},
		{"int32 min", func(e *Encoder) { e.WriteInt32(math.MinInt32) }, func(d *Decoder) any { return d.ReadInt32() }, int32(math.MinInt32)},
		{"uint64 max", func(e *Encoder) { e.WriteUint64(math.MaxUint64) }, func(d *Decoder) any { return d.ReadUint64() }, uint64(math.MaxUint64)},
		{"int64 min", func(e *Encoder) { e.WriteInt64(math.MinInt64) }, func(d *Decoder) any { return d.ReadInt64() }, int64(math.MinInt64)},
		{"int64 zero", func(e *Encoder) { e.WriteInt64(0) }, func(d *Decoder) any { return d.ReadInt64() }, int64(0)},
		{"bool true", func(e *Encoder) { e.WriteBool(true) }, func(d *Decoder) any { return d.ReadBool() }, true},
		{"float32 max", func(e *Encoder) { e.WriteFloat32(math.MaxFloat32) }, func(d *Decoder) any { return d.ReadFloat32() }, float32(math.MaxFloat32)},
		{"float64 smallest", func(e *Encoder) { e.WriteFloat64(-math.SmallestNonzeroFloat64) }, func(d *Decoder) any { return d.ReadFloat64() }, -math.SmallestNonzeroFloat64},
		{"string empty", func(e *Encoder) { e.WriteString("") }, func(d *Decoder) any { return d.ReadString() }, ""},
		{"string utf8", func(e *Encoder) { e.WriteString("héllo, 世界") }, func(d *Decoder) any { return d.ReadString() }, "héllo, 世界"},
		{"string max", func(e *Encoder) { e.WriteString(long) }, func(d *Decoder) any { return d.ReadString() }, long},
		{"short string max", func(e *Encoder) { e.WriteShortString(ShortString(short)) }, func(d *Decoder) any { return d.ReadShortString() }, ShortString(short)},
		{"long string", func(e *Encoder) { e.WriteLongString(long + "z") }, func(d *Decoder) any { return d.ReadLongString() }, long + "z"},
		{"char ascii", func(e *Encoder) { e.WriteChar('A') }, func(d *Decoder) any { return d.ReadChar() }, Char('A')},
		{"char wide", func(e *Encoder) { e.WriteChar('世') }, func(d *Decoder) any { return d.ReadChar() }, Char('世')},
		{"char null", func(e *Encoder) { e.WriteChar(0) }, func(d *Decoder) any { return d.ReadChar() }, Char(0)},
		{"bytes empty", func(e *Encoder) { e.WriteBytes([]byte{}) }, func(d *Decoder) any { return d.ReadBytes() }, []byte{}},
		{"bytes", func(e *Encoder) { e.WriteBytes([]byte{0, 1, 0xFF}) }, func(d *Decoder) any { return d.ReadBytes() }, []byte{0, 1, 0xFF}},
		{"short bytes", func(e *Encoder) { e.WriteShortBytes([]byte{9}) }, func(d *Decoder) any { return d.ReadShortBytes() }, []byte{9}},
		{"long bytes", func(e *Encoder) { e.WriteLongBytes([]byte{1, 2}) }, func(d *Decoder) any { return d.ReadLongBytes() }, []byte{1, 2}},
		{"uuid", func(e *Encoder) { e.WriteUUID(id) }, func(d *Decoder) any { return d.ReadUUID() }, id},
		{"uuid nil", func(e *Encoder) { e.WriteUUID(uuid.Nil) }, func(d *Decoder) any { return d.ReadUUID() }, uuid.Nil},
		{"time", func(e *Encoder) { e.WriteTime(stamp) }, func(d *Decoder) any { return d.ReadTime() }, stamp},
		{"time zero", func(e *Encoder) { e.WriteTime(time.Time{}) }, func(d *Decoder) any { return d.ReadTime() }, time.Time{}},
		{"duration negative", func(e *Encoder) { e.WriteDuration(-90 * time.Minute) }, func(d *Decoder) any { return d.ReadDuration() }, -90 * time.Minute},
		{"strings", func(e *Encoder) { e.WriteStrings([]string{"a", "", "ccc"}) }, func(d *Decoder) any { return d.ReadStrings() }, []string{"a", "", "ccc"}},
		{"strings empty", func(e *Encoder) { e.WriteStrings(nil) }, func(d *Decoder) any { return d.ReadStrings() }, []string{}},
		{"int32 slice", func(e *Encoder) { WriteSlice(e, []int32{math.MinInt32, 0, math.MaxInt32}, (*Encoder).WriteInt32) }, func(d *Decoder) any { return ReadSlice(d, SizeInt32, (*Decoder).ReadInt32) }, []int32{math.MinInt32, 0, math.MaxInt32}},
	}
}

func TestRoundTripBoundaryValues(t *testing.T) {
	testlog.Start(t)
	for _, tc := range roundTripCases() {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEncoder(1, false, 4)
			tc.write(e)
			buf := e.Finish()

			d := NewDecoder()
			d.Load(buf)
			got := tc.read(d)
			if d.Failed() {
				t.Fatalf("decode failed")
			}
			if d.Remaining() != 0 {
				t.Fatalf("unread bytes: %d", d.Remaining())
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	testlog.Start(t)
	values := []string{
		"0",
		"1",
		"-1",
		"79228162514264337593543950335",
		"-79228162514264337593543950335",
		"0.0000000000000000000000000001",
		"-12345.6789",
		"1000000",
	}
	for _, raw := range values {
		want := decimal.RequireFromString(raw)
		e := NewEncoder(1, false, 0)
		e.WriteDecimal(want)
		buf := e.Finish()
		if len(buf) != SizeDecimal {
			t.Fatalf("%s: encoded size=%d want=%d", raw, len(buf), SizeDecimal)
		}
		d := NewDecoder()
		d.Load(buf)
		got := d.ReadDecimal()
		if d.Failed() || !got.Equal(want) {
			t.Fatalf("%s: round-trip got=%s failed=%v", raw, got, d.Failed())
		}
	}
}

func TestDecimalWireLayout(t *testing.T) {
	e := NewEncoder(1, false, 0)
	e.WriteDecimal(decimal.RequireFromString("-1.5"))
	want := []byte{
		15, 0, 0, 0, // lo
		0, 0, 0, 0, // mid
		0, 0, 0, 0, // hi
		0, 0, 1, 0x80, // scale 1, negative
	}
	if got := e.Finish(); !bytes.Equal(got, want) {
		t.Fatalf("decimal layout: got=%x want=%x", got, want)
	}
}

func TestDecimalRoundsExcessDigits(t *testing.T) {
	testlog.Start(t)
	cases := map[string]string{
		"12345678901234567890.12345678901234567890": "12345678901234567890.123456789",
		"0.00000000000000000000000000005":           "0.0000000000000000000000000001",
		"1.99999999999999999999999999999":           "2",
	}
	for raw, want := range cases {
		e := NewEncoder(1, false, 0)
		e.WriteDecimal(decimal.RequireFromString(raw))
		e.WriteUint32(0xCAFEBABE)
		buf := e.Finish()
		if len(buf) != SizeDecimal+SizeInt32 {
			t.Fatalf("%s: encoded size=%d want=%d", raw, len(buf), SizeDecimal+SizeInt32)
		}
		d := NewDecoder()
		d.Load(buf)
		got := d.ReadDecimal()
		tail := d.ReadUint32()
		if d.Failed() || !got.Equal(decimal.RequireFromString(want)) || tail != 0xCAFEBABE {
			t.Fatalf("%s: got=%s tail=%x failed=%v want=%s", raw, got, tail, d.Failed(), want)
		}
	}
}

func TestDecimalOutOfRangeSaturates(t *testing.T) {
	testlog.Start(t)
	for _, raw := range []string{"79228162514264337593543950336", "-1e40"} {
		v := decimal.RequireFromString(raw)
		e := NewEncoder(1, false, 0)
		e.WriteDecimal(v)
		e.WriteUint8(0xAB)
		buf := e.Finish()
		if len(buf) != SizeDecimal+1 || buf[SizeDecimal] != 0xAB {
			t.Fatalf("%s: field not kept at fixed width: %x", raw, buf)
		}
		d := NewDecoder()
		d.Load(buf)
		got := d.ReadDecimal()
		want := MaxDecimal
		if v.IsNegative() {
			want = want.Neg()
		}
		if d.Failed() || !got.Equal(want) {
			t.Fatalf("%s: got=%s want=%s failed=%v", raw, got, want, d.Failed())
		}
	}
}

func TestDecimalMalformedScaleFails(t *testing.T) {
	testlog.Start(t)
	buf := make([]byte, SizeDecimal)
	buf[14] = 29
	d := NewDecoder()
	d.Load(buf)
	if got := d.ReadDecimal(); !got.IsZero() || !d.Failed() {
		t.Fatalf("expected zero and failure, got=%s failed=%v", got, d.Failed())
	}
}

func TestTimeTicksEpoch(t *testing.T) {
	if got := TimeToTicks(time.Time{}); got != 0 {
		t.Fatalf("zero time ticks: got=%d want=0", got)
	}
	unix := time.Unix(0, 0).UTC()
	if got := TimeToTicks(unix); got != 621355968000000000 {
		t.Fatalf("unix epoch ticks: got=%d", got)
	}
	if got := TicksToTime(621355968000000000); !got.Equal(unix) {
		t.Fatalf("ticks to unix epoch: got=%s", got)
	}
}

func TestTimeTicksSaturate(t *testing.T) {
	far := time.Date(40000, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := TimeToTicks(far); got != math.MaxInt64 {
		t.Fatalf("far future ticks: got=%d want=%d", got, int64(math.MaxInt64))
	}
	past := time.Date(-40000, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := TimeToTicks(past); got != math.MinInt64 {
		t.Fatalf("far past ticks: got=%d want=%d", got, int64(math.MinInt64))
	}
	edge := time.Date(29000, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := TicksToTime(TimeToTicks(edge)); !got.Equal(edge) {
		t.Fatalf("year 29000 round-trip: got=%s", got)
	}
}

func TestDurationTicksOutOfRangeFails(t *testing.T) {
	testlog.Start(t)
	for _, ticks := range []int64{1 << 62, -(1 << 62), math.MaxInt64, math.MinInt64} {
		e := NewEncoder(1, false, 0)
		e.WriteInt64(ticks)
		d := NewDecoder()
		d.Load(e.Finish())
		if got := d.ReadDuration(); got != 0 || !d.Failed() {
			t.Fatalf("ticks=%d: got=%s failed=%v", ticks, got, d.Failed())
		}
	}

	e := NewEncoder(1, false, 0)
	e.WriteInt64(int64(math.MaxInt64 / tickDuration))
	d := NewDecoder()
	d.Load(e.Finish())
	if got := d.ReadDuration(); d.Failed() || got != time.Duration(math.MaxInt64/tickDuration)*tickDuration {
		t.Fatalf("largest duration: got=%s failed=%v", got, d.Failed())
	}
}

func TestCharRejectsInvalidUTF8(t *testing.T) {
	testlog.Start(t)
	cases := map[string][]byte{
		"surrogate":    {3, 0xED, 0xA0, 0x80},
		"lone byte":    {1, 0xFF},
		"two runes":    {2, 'a', 'b'},
		"overlong len": {5, 0xF0, 0x9F, 0x98, 0x80, 'x'},
	}
	for name, buf := range cases {
		d := NewDecoder()
		d.Load(buf)
		if got := d.ReadChar(); got != 0 || !d.Failed() {
			t.Fatalf("%s: got=%q failed=%v", name, rune(got), d.Failed())
		}
	}

	d := NewDecoder()
	d.Load([]byte{3, 0xEF, 0xBF, 0xBD})
	if got := d.ReadChar(); got != utf8.RuneError || d.Failed() {
		t.Fatalf("encoded replacement char: got=%q failed=%v", rune(got), d.Failed())
	}
}

func TestInvalidCharIsDropped(t *testing.T) {
	testlog.Start(t)
	for _, c := range []Char{0xD800, 0xDFFF, utf8.MaxRune + 1, -1} {
		e := NewEncoder(1, false, 0)
		e.WriteUint8(0xAB)
		e.WriteChar(c)
		if e.Dropped() != 1 {
			t.Fatalf("char %#x: dropped=%d want=1", int32(c), e.Dropped())
		}
		if got := e.Finish(); !bytes.Equal(got, []byte{0xAB}) {
			t.Fatalf("char %#x: buffer=%x", int32(c), got)
		}
	}
}

func TestScenarioFramedUint16(t *testing.T) {
	e := NewEncoder(7, true, 16)
	e.WriteUint16(300)
	got := e.Finish()
	want := []byte{0x07, 0x00, 0x02, 0x00, 0x00, 0x00, 0x2C, 0x01}
	if !bytes.Equal(got, want) {
		t.Fatalf("framed uint16: got=%x want=%x", got, want)
	}
}

func TestScenarioByteArray(t *testing.T) {
	e := NewEncoder(0, false, 16)
	e.WriteBytes([]byte{1, 2, 3})
	got := e.Finish()
	want := []byte{0x03, 0x00, 0x01, 0x02, 0x03}
	if !bytes.Equal(got, want) {
		t.Fatalf("byte array: got=%x want=%x", got, want)
	}
}

func TestPrependFrameHasNoExtraBytes(t *testing.T) {
	e := NewEncoder(0x0102, false, 4)
	e.WriteString("abc")
	e.PrependFrame(0x0102)
	got := e.Bytes()
	want := []byte{0x02, 0x01, 0x05, 0x00, 0x00, 0x00, 0x03, 0x00, 'a', 'b', 'c'}
	if !bytes.Equal(got, want) {
		t.Fatalf("frame: got=%x want=%x", got, want)
	}
}

func TestBoolBitPacking(t *testing.T) {
	testlog.Start(t)
	for _, n := range []int{0, 1, 7, 8, 9, MaxCount} {
		in := make([]bool, n)
		for i := range in {
			in[i] = i%3 == 0 || i == n-1
		}
		e := NewEncoder(1, false, 0)
		e.WriteBools(in)
		buf := e.Finish()
		if len(buf) != Prefix+(n+7)/8 {
			t.Fatalf("n=%d encoded size=%d want=%d", n, len(buf), Prefix+(n+7)/8)
		}
		d := NewDecoder()
		d.Load(buf)
		out := d.ReadBools()
		if d.Failed() {
			t.Fatalf("n=%d decode failed", n)
		}
		if diff := cmp.Diff(in, out); diff != "" {
			t.Fatalf("n=%d mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestBoolBitOrderIsMSBFirst(t *testing.T) {
	e := NewEncoder(1, false, 0)
	e.WriteBools([]bool{true, false, false, false, false, false, false, true, true})
	want := []byte{0x09, 0x00, 0x81, 0x80}
	if got := e.Finish(); !bytes.Equal(got, want) {
		t.Fatalf("bit order: got=%x want=%x", got, want)
	}
}

func TestTruncationSafety(t *testing.T) {
	testlog.Start(t)
	for _, tc := range roundTripCases() {
		e := NewEncoder(1, false, 0)
		tc.write(e)
		full := e.Finish()
		for cut := 0; cut < len(full); cut++ {
			if cut > 64 && cut < len(full)-8 {
				continue
			}
			d := NewDecoder()
			d.Load(full[:cut])
			got := tc.read(d)
			if !d.Failed() {
				t.Fatalf("%s cut=%d: expected failure", tc.name, cut)
			}
			if d.Position() != 0 {
				t.Fatalf("%s cut=%d: cursor moved to %d", tc.name, cut, d.Position())
			}
			if !isZero(got) {
				t.Fatalf("%s cut=%d: expected zero value, got %v", tc.name, cut, got)
			}
		}
	}
}

func isZero(v any) bool {
	switch x := v.(type) {
	case []byte:
		return len(x) == 0
	case []string:
		return len(x) == 0
	case []int32:
		return len(x) == 0
	case time.Time:
		return x.IsZero()
	default:
		return cmp.Equal(v, zeroOf(v))
	}
}

func zeroOf(v any) any {
	switch v.(type) {
	case uint8:
		return uint8(0)
	case int8:
		return int8(0)
	case uint16:
		return uint16(0)
	case int16:
		return int16(0)
	case uint32:
		return uint32(0)
	case int32:
		return int32(0)
	case uint64:
		return uint64(0)
	case int64:
		return int64(0)
	case bool:
		return false
	case float32:
		return float32(0)
	case float64:
		return float64(0)
	case string:
		return ""
	case ShortString:
		return ShortString("")
	case Char:
		return Char(0)
	case uuid.UUID:
		return uuid.Nil
	case time.Duration:
		return time.Duration(0)
	}
	return nil
}

func TestFailureIsStickyWithoutShortCircuit(t *testing.T) {
	testlog.Start(t)
	e := NewEncoder(1, false, 0)
	e.WriteUint8(5)
	buf := e.Finish()

	d := NewDecoder()
	d.Load(buf)
	if d.ReadUint32() != 0 || !d.Failed() {
		t.Fatalf("expected uint32 failure on 1-byte buffer")
	}
	// the cursor did not move, so a narrower read still succeeds
	if got := d.ReadUint8(); got != 5 {
		t.Fatalf("uint8 after failure: got=%d want=5", got)
	}
	if !d.Failed() {
		t.Fatalf("failure flag must stay set until Load/Reset")
	}
	if !d.ClearFailure() || d.Failed() {
		t.Fatalf("ClearFailure must report and clear the flag")
	}
}

func TestLengthPrefixNotConsumedWhenBodyShort(t *testing.T) {
	testlog.Start(t)
	d := NewDecoder()
	d.Load([]byte{0x05, 0x00, 'a', 'b'})
	if got := d.ReadString(); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if !d.Failed() || d.Position() != 0 {
		t.Fatalf("expected failure at pos 0, failed=%v pos=%d", d.Failed(), d.Position())
	}
}

func TestHugeCountRejectedBeforeAllocation(t *testing.T) {
	testlog.Start(t)
	d := NewDecoder()
	d.Load([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00})
	if got := d.ReadLongBytes(); got != nil || !d.Failed() {
		t.Fatalf("expected nil and failure, got len=%d", len(got))
	}
}

func TestDecoderLoadResetsState(t *testing.T) {
	testlog.Start(t)
	d := NewDecoder()
	d.Load([]byte{0x01})
	d.ReadUint64()
	if !d.Failed() {
		t.Fatalf("expected failure")
	}
	d.Load([]byte{0x2C, 0x01})
	if d.Failed() || d.Position() != 0 || d.Len() != 2 {
		t.Fatalf("load did not reset: failed=%v pos=%d len=%d", d.Failed(), d.Position(), d.Len())
	}
	if got := d.ReadUint16(); got != 300 {
		t.Fatalf("read after reload: got=%d", got)
	}
	d.Reset()
	if d.Position() != 0 || d.ReadUint16() != 300 {
		t.Fatalf("reset did not rewind")
	}
}

func TestSkip(t *testing.T) {
	d := NewDecoder()
	d.Load([]byte{1, 2, 3})
	d.Skip(2)
	if got := d.ReadUint8(); got != 3 {
		t.Fatalf("after skip: got=%d want=3", got)
	}
	d.Skip(1)
	if !d.Failed() || d.Position() != 3 {
		t.Fatalf("skip past end: failed=%v pos=%d", d.Failed(), d.Position())
	}
}

func TestEncoderFinishIsTakeAndReset(t *testing.T) {
	e := NewEncoder(9, true, 8)
	e.WriteUint32(0xDEADBEEF)
	first := e.Finish()
	if e.Len() != 0 || e.Cap() != 8 {
		t.Fatalf("finish did not reset: len=%d cap=%d", e.Len(), e.Cap())
	}
	e.WriteUint32(0xDEADBEEF)
	second := e.Finish()
	if !bytes.Equal(first, second) {
		t.Fatalf("reused encoder differs: %x vs %x", first, second)
	}

	fresh := NewEncoder(9, true, 8)
	fresh.WriteUint32(0xDEADBEEF)
	if got := fresh.Finish(); !bytes.Equal(got, first) {
		t.Fatalf("fresh encoder differs: %x vs %x", got, first)
	}
}

func TestEncoderGrowsToExactSize(t *testing.T) {
	e := NewEncoder(1, false, 2)
	e.WriteUint16(1)
	e.WriteUint32(2)
	if e.Cap() != 6 {
		t.Fatalf("expected exact growth to 6, got cap=%d", e.Cap())
	}
}

func TestOversizedWritesLeaveBufferUnchanged(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name  string
		write func(e *Encoder)
	}{
		{"string", func(e *Encoder) { e.WriteString(strings.Repeat("a", MaxCount+1)) }},
		{"string multibyte", func(e *Encoder) { e.WriteString(strings.Repeat("é", MaxCount/2+1)) }},
		{"short string", func(e *Encoder) { e.WriteShortString(ShortString(strings.Repeat("a", MaxShortCount+1))) }},
		{"bytes", func(e *Encoder) { e.WriteBytes(make([]byte, MaxCount+1)) }},
		{"short bytes", func(e *Encoder) { e.WriteShortBytes(make([]byte, MaxShortCount+1)) }},
		{"bools", func(e *Encoder) { e.WriteBools(make([]bool, MaxCount+1)) }},
		{"strings", func(e *Encoder) { e.WriteStrings(make([]string, MaxCount+1)) }},
		{"slice", func(e *Encoder) { WriteSlice(e, make([]uint8, MaxCount+1), (*Encoder).WriteUint8) }},
		{"strings element", func(e *Encoder) { e.WriteStrings([]string{"ok", strings.Repeat("a", MaxCount+1)}) }},
		{"slice element", func(e *Encoder) {
			WriteSlice(e, [][]byte{{1}, make([]byte, MaxShortCount+1)}, (*Encoder).WriteShortBytes)
		}},
		{"char", func(e *Encoder) { e.WriteChar(0xD800) }},
	}
	for _, tc := range cases {
		e := NewEncoder(1, false, 0)
		e.WriteUint16(0xBEEF)
		before := bytes.Clone(e.Bytes())
		tc.write(e)
		if !bytes.Equal(before, e.Bytes()) {
			t.Fatalf("%s: buffer changed from %x to %d bytes", tc.name, before, e.Len())
		}
		if e.Dropped() == 0 {
			t.Fatalf("%s: drop not counted", tc.name)
		}
	}
}

func TestDroppedElementKeepsFollowingFieldsAligned(t *testing.T) {
	testlog.Start(t)
	e := NewEncoder(1, false, 0)
	e.WriteStrings([]string{"ok", strings.Repeat("a", MaxCount+1)})
	e.WriteUint8(7)
	buf := e.Finish()
	if !bytes.Equal(buf, []byte{7}) {
		t.Fatalf("encoded %x, want 07", buf)
	}
	if e.Dropped() != 0 {
		t.Fatalf("finish must reset the drop count, got %d", e.Dropped())
	}
	d := NewDecoder()
	d.Load(buf)
	if got := d.ReadUint8(); got != 7 || d.Failed() {
		t.Fatalf("following field: got=%d failed=%v", got, d.Failed())
	}
}

type observerSpy struct {
	failed  []string
	dropped []string
}

func (s *observerSpy) DecodeFailed(op string)  { s.failed = append(s.failed, op) }
func (s *observerSpy) EncodeDropped(op string) { s.dropped = append(s.dropped, op) }

func TestObserverReceivesEvents(t *testing.T) {
	testlog.Start(t)
	spy := &observerSpy{}
	d := NewDecoder(WithObserver(spy))
	d.Load(nil)
	d.ReadBool()
	d.ReadString()

	e := NewEncoder(1, false, 0, WithObserver(spy))
	e.WriteShortBytes(make([]byte, 300))

	if diff := cmp.Diff([]string{"bool", "string"}, spy.failed); diff != "" {
		t.Fatalf("failed ops (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"short_bytes"}, spy.dropped); diff != "" {
		t.Fatalf("dropped ops (-want +got):\n%s", diff)
	}
}
