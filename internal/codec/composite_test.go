package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/wirecodec/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
)

type point struct {
	X int16
	Y int16
}

func (p *point) Encode(e *Encoder) {
	e.WriteInt16(p.X)
	e.WriteInt16(p.Y)
}

func (p *point) Decode(d *Decoder) {
	p.X = d.ReadInt16()
	p.Y = d.ReadInt16()
}

type route struct {
	Name   string
	Stops  []point
	Origin *point
	Kind   color
}

func (r *route) Encode(e *Encoder) {
	e.WriteString(r.Name)
	WriteComposites(e, r.Stops)
	WriteOptional(e, r.Origin)
	WriteEnum(e, r.Kind)
}

func (r *route) Decode(d *Decoder) {
	r.Name = d.ReadString()
	r.Stops = ReadComposites[point](d)
	r.Origin = ReadOptional[point](d)
	r.Kind = ReadEnum[color](d)
}

func TestCompositeMarshalRoundTrip(t *testing.T) {
	testlog.Start(t)
	cases := []route{
		{Name: "loop", Stops: []point{{1, 2}, {-3, 4}}, Origin: &point{9, 9}, Kind: colorRed},
		{Name: "", Stops: []point{}, Origin: nil, Kind: colorBlue},
	}
	for _, want := range cases {
		buf := Marshal(&want)
		var got route
		if err := Unmarshal(buf, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("route mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestCompositeOptionalLayout(t *testing.T) {
	e := NewEncoder(1, false, 0)
	WriteOptional[point](e, nil)
	WriteOptional(e, &point{X: 1, Y: 2})
	want := []byte{0x00, 0x01, 0x01, 0x00, 0x02, 0x00}
	if got := e.Finish(); !bytes.Equal(got, want) {
		t.Fatalf("optional layout: got=%x want=%x", got, want)
	}
}

func TestCompositeArrayPrefixes(t *testing.T) {
	pts := []point{{1, 1}}
	e := NewEncoder(1, false, 0)
	WriteShortComposites(e, pts)
	WriteComposites(e, pts)
	WriteLongComposites(e, pts)
	buf := e.Finish()
	if len(buf) != 1+4+2+4+4+4 {
		t.Fatalf("encoded size=%d", len(buf))
	}

	d := NewDecoder()
	d.Load(buf)
	for i, got := range [][]point{
		ReadShortComposites[point](d),
		ReadComposites[point](d),
		ReadLongComposites[point](d),
	} {
		if diff := cmp.Diff(pts, got); diff != "" {
			t.Fatalf("array %d (-want +got):\n%s", i, diff)
		}
	}
}

func TestCompositeArrayOverflowPanics(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrCountOverflow) {
			t.Fatalf("expected ErrCountOverflow panic, got %v", err)
		}
	}()
	WriteShortComposites(NewEncoder(1, false, 0), make([]point, MaxShortCount+1))
}

func TestCompositeArrayTruncationRewinds(t *testing.T) {
	testlog.Start(t)
	e := NewEncoder(1, false, 0)
	WriteComposites(e, []point{{1, 2}, {3, 4}})
	full := e.Finish()
	for cut := 0; cut < len(full); cut++ {
		d := NewDecoder()
		d.Load(full[:cut])
		if got := ReadComposites[point](d); got != nil || !d.Failed() || d.Position() != 0 {
			t.Fatalf("cut=%d: got=%v failed=%v pos=%d", cut, got, d.Failed(), d.Position())
		}
	}
}

func TestCompositeHostileCountDoesNotAllocate(t *testing.T) {
	testlog.Start(t)
	d := NewDecoder()
	d.Load([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x01, 0x00})
	if got := ReadLongComposites[point](d); got != nil || !d.Failed() {
		t.Fatalf("expected nil and failure, got len=%d", len(got))
	}
}

func TestOptionalTruncationRewinds(t *testing.T) {
	testlog.Start(t)
	d := NewDecoder()
	d.Load([]byte{0x01, 0x05})
	if got := ReadOptional[point](d); got != nil || !d.Failed() || d.Position() != 0 {
		t.Fatalf("got=%v failed=%v pos=%d", got, d.Failed(), d.Position())
	}
}

func TestUnmarshalReportsFailure(t *testing.T) {
	testlog.Start(t)
	var p point
	if err := Unmarshal([]byte{0x01}, &p); !errors.Is(err, ErrDecodeFailed) {
		t.Fatalf("expected ErrDecodeFailed, got %v", err)
	}
}

func TestCompositeWithDroppedFieldIsOmitted(t *testing.T) {
	testlog.Start(t)
	long := strings.Repeat("n", MaxCount+1)
	writes := map[string]func(e *Encoder){
		"single":   func(e *Encoder) { WriteComposite(e, route{Name: long}) },
		"array":    func(e *Encoder) { WriteComposites(e, []route{{Name: "a"}, {Name: long}}) },
		"optional": func(e *Encoder) { WriteOptional(e, &route{Name: long}) },
	}
	for name, write := range writes {
		e := NewEncoder(1, false, 0)
		e.WriteUint8(0xAB)
		write(e)
		e.WriteUint8(0xCD)
		if got := e.Finish(); !bytes.Equal(got, []byte{0xAB, 0xCD}) {
			t.Fatalf("%s: encoded %x", name, got)
		}
	}
}
