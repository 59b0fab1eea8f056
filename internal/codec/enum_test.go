package codec

import (
	"bytes"
	"math"
	"reflect"
	"testing"

	"github.com/danmuck/wirecodec/internal/testutil/testlog"
)

type signedTiny int8
type wideFlags uint64

func TestEnumWireWidth(t *testing.T) {
	e := NewEncoder(1, false, 0)
	WriteEnum(e, colorRed)
	WriteEnum(e, status(-2))
	WriteEnum(e, signedTiny(-1))
	WriteEnum(e, wideFlags(math.MaxUint64))
	want := []byte{
		0x01,
		0xFE, 0xFF, 0xFF, 0xFF,
		0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
	if got := e.Finish(); !bytes.Equal(got, want) {
		t.Fatalf("enum encoding: got=%x want=%x", got, want)
	}
}

func TestEnumRoundTrip(t *testing.T) {
	e := NewEncoder(1, false, 0)
	WriteEnum(e, colorBlue)
	WriteEnum(e, status(math.MinInt32))
	WriteEnum(e, signedTiny(math.MinInt8))
	WriteEnum(e, wideFlags(1<<63))

	d := NewDecoder()
	d.Load(e.Finish())
	if got := ReadEnum[color](d); got != colorBlue {
		t.Fatalf("color: got=%d", got)
	}
	if got := ReadEnum[status](d); got != math.MinInt32 {
		t.Fatalf("status: got=%d", got)
	}
	if got := ReadEnum[signedTiny](d); got != math.MinInt8 {
		t.Fatalf("signedTiny: got=%d", got)
	}
	if got := ReadEnum[wideFlags](d); got != 1<<63 {
		t.Fatalf("wideFlags: got=%d", got)
	}
	if d.Failed() {
		t.Fatalf("unexpected failure")
	}
}

func TestEnumTruncatedYieldsDefault(t *testing.T) {
	testlog.Start(t)
	d := NewDecoder()
	d.Load([]byte{0x01, 0x02})
	if got := ReadEnum[status](d); got != 0 || !d.Failed() || d.Position() != 0 {
		t.Fatalf("got=%d failed=%v pos=%d", got, d.Failed(), d.Position())
	}
}

func TestEnumValueUnsupportedKind(t *testing.T) {
	testlog.Start(t)
	spy := &observerSpy{}

	v := reflect.New(reflect.TypeFor[wideKind]()).Elem()
	v.SetInt(9)
	d := NewDecoder(WithObserver(spy))
	d.Load([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	ReadEnumValue(d, v)
	if !d.Failed() || v.Int() != 0 || d.Position() != 0 {
		t.Fatalf("read: failed=%v value=%d pos=%d", d.Failed(), v.Int(), d.Position())
	}

	e := NewEncoder(1, false, 0, WithObserver(spy))
	WriteEnumValue(e, reflect.ValueOf(wideKind(3)))
	if e.Len() != 0 {
		t.Fatalf("write: expected no bytes, got %d", e.Len())
	}
	if len(spy.failed) != 1 || len(spy.dropped) != 1 {
		t.Fatalf("observer: failed=%v dropped=%v", spy.failed, spy.dropped)
	}
}
