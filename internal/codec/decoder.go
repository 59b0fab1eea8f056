package codec

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var le = binary.LittleEndian

// Decoder reads typed values from an assigned buffer. Every read is bounds
// checked; a short buffer sets the sticky failure flag, returns the zero
// value and leaves the cursor where it was.
type Decoder struct {
	buf    []byte
	pos    int
	failed bool
	opts   options
}

// NewDecoder returns a Decoder with an empty buffer.
func NewDecoder(opts ...Option) *Decoder {
	return &Decoder{opts: buildOptions(opts)}
}

// Load adopts buf without copying, rewinds the cursor and clears the failure
// flag.
func (d *Decoder) Load(buf []byte) {
	d.buf = buf
	d.pos = 0
	d.failed = false
}

// Reset rewinds the cursor over the current buffer and clears the failure
// flag.
func (d *Decoder) Reset() {
	d.pos = 0
	d.failed = false
}

// Failed reports whether any read since the last Load or Reset ran out of
// bounds or met malformed data.
func (d *Decoder) Failed() bool { return d.failed }

// ClearFailure clears the sticky flag and returns its previous value.
func (d *Decoder) ClearFailure() bool {
	failed := d.failed
	d.failed = false
	return failed
}

func (d *Decoder) Position() int  { return d.pos }
func (d *Decoder) Len() int       { return len(d.buf) }
func (d *Decoder) Remaining() int { return len(d.buf) - d.pos }

func (d *Decoder) fail(op string, need int64) {
	d.failed = true
	d.opts.logger().Debug().
		Str("component", "codec.decoder").
		Str("op", op).
		Int("pos", d.pos).
		Int64("need", need).
		Int("len", len(d.buf)).
		Msg("decode failed")
	if d.opts.observer != nil {
		d.opts.observer.DecodeFailed(op)
	}
}

// take returns the next n bytes and advances, or fails without advancing.
func (d *Decoder) take(op string, n int) []byte {
	if n < 0 || len(d.buf)-d.pos < n {
		d.fail(op, int64(n))
		return nil
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b
}

// prefixed decodes a width-byte count and checks that count*elemSize body
// bytes follow. The cursor moves past the prefix only when the body fits.
func (d *Decoder) prefixed(op string, width, elemSize int) (int, bool) {
	remaining := len(d.buf) - d.pos
	if remaining < width {
		d.fail(op, int64(width))
		return 0, false
	}
	var count uint64
	switch width {
	case ShortPrefix:
		count = uint64(d.buf[d.pos])
	case Prefix:
		count = uint64(le.Uint16(d.buf[d.pos:]))
	default:
		count = uint64(le.Uint32(d.buf[d.pos:]))
	}
	need := int64(width) + int64(count)*int64(elemSize)
	if int64(remaining) < need {
		d.fail(op, need)
		return 0, false
	}
	d.pos += width
	return int(count), true
}

// Skip advances the cursor by n bytes.
func (d *Decoder) Skip(n int) {
	d.take("skip", n)
}

func (d *Decoder) ReadUint8() uint8 {
	b := d.take("uint8", SizeInt8)
	if b == nil {
		return 0
	}
	return b[0]
}

func (d *Decoder) ReadInt8() int8 {
	return int8(d.ReadUint8())
}

func (d *Decoder) ReadBool() bool {
	b := d.take("bool", SizeBool)
	if b == nil {
		return false
	}
	return b[0] != 0
}

func (d *Decoder) ReadUint16() uint16 {
	b := d.take("uint16", SizeInt16)
	if b == nil {
		return 0
	}
	return le.Uint16(b)
}

func (d *Decoder) ReadInt16() int16 {
	b := d.take("int16", SizeInt16)
	if b == nil {
		return 0
	}
	return int16(le.Uint16(b))
}

func (d *Decoder) ReadUint32() uint32 {
	b := d.take("uint32", SizeInt32)
	if b == nil {
		return 0
	}
	return le.Uint32(b)
}

func (d *Decoder) ReadInt32() int32 {
	b := d.take("int32", SizeInt32)
	if b == nil {
		return 0
	}
	return int32(le.Uint32(b))
}

func (d *Decoder) ReadUint64() uint64 {
	b := d.take("uint64", SizeInt64)
	if b == nil {
		return 0
	}
	return le.Uint64(b)
}

func (d *Decoder) ReadInt64() int64 {
	b := d.take("int64", SizeInt64)
	if b == nil {
		return 0
	}
	return int64(le.Uint64(b))
}

func (d *Decoder) ReadFloat32() float32 {
	b := d.take("float32", SizeFloat32)
	if b == nil {
		return 0
	}
	return math.Float32frombits(le.Uint32(b))
}

func (d *Decoder) ReadFloat64() float64 {
	b := d.take("float64", SizeFloat64)
	if b == nil {
		return 0
	}
	return math.Float64frombits(le.Uint64(b))
}

// ReadDecimal decodes a 128-bit decimal. A scale above 28 is malformed; the
// bytes are consumed and the failure flag is set.
func (d *Decoder) ReadDecimal() decimal.Decimal {
	b := d.take("decimal", SizeDecimal)
	if b == nil {
		return decimal.Zero
	}
	v, ok := decimalFromWire(b)
	if !ok {
		d.fail("decimal.scale", SizeDecimal)
		return decimal.Zero
	}
	return v
}

// ReadUUID decodes 16 raw identifier bytes.
func (d *Decoder) ReadUUID() uuid.UUID {
	var id uuid.UUID
	b := d.take("uuid", SizeUUID)
	if b == nil {
		return id
	}
	copy(id[:], b)
	return id
}

// ReadString decodes text with a 16-bit byte-length prefix.
func (d *Decoder) ReadString() string {
	return d.readString("string", Prefix)
}

// ReadShortString decodes text with an 8-bit byte-length prefix.
func (d *Decoder) ReadShortString() ShortString {
	return ShortString(d.readString("short_string", ShortPrefix))
}

// ReadLongString decodes text with a 32-bit byte-length prefix.
func (d *Decoder) ReadLongString() string {
	return d.readString("long_string", LongPrefix)
}

func (d *Decoder) readString(op string, width int) string {
	n, ok := d.prefixed(op, width, 1)
	if !ok || n == 0 {
		return ""
	}
	s := string(d.buf[d.pos : d.pos+n])
	d.pos += n
	return s
}

// ReadChar decodes one character. A zero length yields the null character.
// A body that is not exactly one valid UTF-8 encoded rune is malformed; the
// bytes are consumed and the failure flag is set.
func (d *Decoder) ReadChar() Char {
	n, ok := d.prefixed("char", ShortPrefix, 1)
	if !ok || n == 0 {
		return 0
	}
	body := d.buf[d.pos : d.pos+n]
	d.pos += n
	r, size := utf8.DecodeRune(body)
	if size != n || (r == utf8.RuneError && size == 1) {
		d.fail("char.utf8", int64(n))
		return 0
	}
	return Char(r)
}

// ReadBytes decodes a byte block with a 16-bit length prefix. The result is
// a copy; the loaded buffer may be reused by the caller.
func (d *Decoder) ReadBytes() []byte {
	return d.readBytes("bytes", Prefix)
}

// ReadShortBytes decodes a byte block with an 8-bit length prefix.
func (d *Decoder) ReadShortBytes() []byte {
	return d.readBytes("short_bytes", ShortPrefix)
}

// ReadLongBytes decodes a byte block with a 32-bit length prefix.
func (d *Decoder) ReadLongBytes() []byte {
	return d.readBytes("long_bytes", LongPrefix)
}

func (d *Decoder) readBytes(op string, width int) []byte {
	n, ok := d.prefixed(op, width, 1)
	if !ok {
		return nil
	}
	out := make([]byte, n)
	copy(out, d.buf[d.pos:d.pos+n])
	d.pos += n
	return out
}

// ReadBools decodes a 16-bit count followed by ceil(count/8) bytes of
// MSB-first packed bits.
func (d *Decoder) ReadBools() []bool {
	remaining := len(d.buf) - d.pos
	if remaining < Prefix {
		d.fail("bools", Prefix)
		return nil
	}
	count := int(le.Uint16(d.buf[d.pos:]))
	packed := (count + 7) / 8
	if remaining < Prefix+packed {
		d.fail("bools", int64(Prefix+packed))
		return nil
	}
	d.pos += Prefix
	out := make([]bool, count)
	for i := range out {
		out[i] = d.buf[d.pos+i/8]&(0x80>>(i%8)) != 0
	}
	d.pos += packed
	return out
}

// ReadStrings decodes a 16-bit count followed by that many standard texts.
func (d *Decoder) ReadStrings() []string {
	return ReadSlice(d, Prefix, (*Decoder).ReadString)
}
