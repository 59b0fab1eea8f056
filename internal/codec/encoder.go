package codec

import (
	"math"
	"unicode/utf8"

	"github.com/danmuck/wirecodec/internal/codec/frame"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCapacity is the initial buffer capacity used when none is given.
const DefaultCapacity = 64

// Encoder appends typed values to a growable buffer. When capacity runs out
// the buffer is reallocated to exactly the required size and copied.
type Encoder struct {
	buf       []byte
	initial   int
	messageID uint16
	framed    bool
	dropped   int
	opts      options
}

// NewEncoder returns an Encoder for messageID. When framed is set, Finish
// prepends the [id:2][len:4] frame header.
func NewEncoder(messageID uint16, framed bool, initialCapacity int, opts ...Option) *Encoder {
	if initialCapacity <= 0 {
		initialCapacity = DefaultCapacity
	}
	return &Encoder{
		buf:       make([]byte, 0, initialCapacity),
		initial:   initialCapacity,
		messageID: messageID,
		framed:    framed,
		opts:      buildOptions(opts),
	}
}

func (e *Encoder) MessageID() uint16      { return e.messageID }
func (e *Encoder) SetMessageID(id uint16) { e.messageID = id }
func (e *Encoder) Framed() bool           { return e.framed }
func (e *Encoder) Len() int               { return len(e.buf) }
func (e *Encoder) Cap() int               { return cap(e.buf) }
func (e *Encoder) InitialCapacity() int   { return e.initial }

// Dropped counts writes rejected since the last Reset or Finish.
func (e *Encoder) Dropped() int { return e.dropped }

// Bytes returns the encoded bytes without resetting. The slice aliases the
// internal buffer until the next write.
func (e *Encoder) Bytes() []byte { return e.buf }

// Reset discards the encoded bytes and keeps the current allocation.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.dropped = 0
}

// Finish returns the encoded message and replaces the buffer with a fresh
// one at the initial capacity. Framed encoders prepend the header first.
func (e *Encoder) Finish() []byte {
	if e.framed {
		e.PrependFrame(e.messageID)
	}
	out := e.buf
	e.buf = make([]byte, 0, e.initial)
	e.dropped = 0
	return out
}

// PrependFrame reallocates the buffer with the 6-byte frame header for
// messageID in front of the current payload.
func (e *Encoder) PrependFrame(messageID uint16) {
	e.buf = frame.Prepend(messageID, e.buf)
}

// grow extends the buffer by n bytes and returns the new tail.
func (e *Encoder) grow(n int) []byte {
	need := len(e.buf) + n
	if need > cap(e.buf) {
		next := make([]byte, len(e.buf), need)
		copy(next, e.buf)
		e.buf = next
	}
	e.buf = e.buf[:need]
	return e.buf[need-n:]
}

func (e *Encoder) drop(op string, count, limit int) {
	e.dropped++
	e.opts.logger().Warn().
		Str("component", "codec.encoder").
		Str("op", op).
		Int("count", count).
		Int("limit", limit).
		Uint16("message_id", e.messageID).
		Msg("oversized write dropped")
	if e.opts.observer != nil {
		e.opts.observer.EncodeDropped(op)
	}
}

// saturated reports a fixed-width value that was clamped to its wire range.
// The field is still written so later offsets hold.
func (e *Encoder) saturated(op, value string) {
	e.opts.logger().Warn().
		Str("component", "codec.encoder").
		Str("op", op).
		Str("value", value).
		Uint16("message_id", e.messageID).
		Msg("value saturated")
}

// atomically runs write and truncates back to the starting length when any
// write inside it was dropped, so a compound value is written whole or not
// at all.
func (e *Encoder) atomically(write func()) {
	start, before := len(e.buf), e.dropped
	write()
	if e.dropped != before {
		e.buf = e.buf[:start]
	}
}

// WriteRaw appends b without a prefix.
func (e *Encoder) WriteRaw(b []byte) {
	copy(e.grow(len(b)), b)
}

func (e *Encoder) WriteUint8(v uint8) {
	e.grow(SizeInt8)[0] = v
}

func (e *Encoder) WriteInt8(v int8) {
	e.WriteUint8(uint8(v))
}

func (e *Encoder) WriteBool(v bool) {
	var b uint8
	if v {
		b = 1
	}
	e.WriteUint8(b)
}

func (e *Encoder) WriteUint16(v uint16) {
	le.PutUint16(e.grow(SizeInt16), v)
}

func (e *Encoder) WriteInt16(v int16) {
	le.PutUint16(e.grow(SizeInt16), uint16(v))
}

func (e *Encoder) WriteUint32(v uint32) {
	le.PutUint32(e.grow(SizeInt32), v)
}

func (e *Encoder) WriteInt32(v int32) {
	le.PutUint32(e.grow(SizeInt32), uint32(v))
}

func (e *Encoder) WriteUint64(v uint64) {
	le.PutUint64(e.grow(SizeInt64), v)
}

func (e *Encoder) WriteInt64(v int64) {
	le.PutUint64(e.grow(SizeInt64), uint64(v))
}

func (e *Encoder) WriteFloat32(v float32) {
	le.PutUint32(e.grow(SizeFloat32), math.Float32bits(v))
}

func (e *Encoder) WriteFloat64(v float64) {
	le.PutUint64(e.grow(SizeFloat64), math.Float64bits(v))
}

// WriteDecimal encodes v as a 128-bit decimal, rounding to the 28-29
// significant digits the coefficient holds. Magnitudes beyond MaxDecimal
// saturate at MaxDecimal with the sign kept.
func (e *Encoder) WriteDecimal(v decimal.Decimal) {
	var wire [SizeDecimal]byte
	if !decimalToWire(v, wire[:]) {
		e.saturated("decimal", v.String())
	}
	e.WriteRaw(wire[:])
}

func (e *Encoder) WriteUUID(v uuid.UUID) {
	e.WriteRaw(v[:])
}

// WriteString encodes text with a 16-bit byte-length prefix. Text longer
// than 65535 bytes is dropped.
func (e *Encoder) WriteString(s string) {
	e.writeString("string", Prefix, MaxCount, s)
}

// WriteShortString encodes text with an 8-bit byte-length prefix. Text
// longer than 255 bytes is dropped.
func (e *Encoder) WriteShortString(s ShortString) {
	e.writeString("short_string", ShortPrefix, MaxShortCount, string(s))
}

// WriteLongString encodes text with a 32-bit byte-length prefix.
func (e *Encoder) WriteLongString(s string) {
	e.writeString("long_string", LongPrefix, MaxLongCount, s)
}

func (e *Encoder) writeString(op string, width int, limit uint64, s string) {
	if uint64(len(s)) > limit {
		e.drop(op, len(s), int(limit))
		return
	}
	dst := e.grow(width + len(s))
	putPrefix(dst, width, len(s))
	copy(dst[width:], s)
}

// WriteChar encodes one character as an 8-bit length plus UTF-8 bytes. The
// null character is written with length zero. Surrogates and values past
// U+10FFFF have no UTF-8 form and are dropped.
func (e *Encoder) WriteChar(c Char) {
	if c == 0 {
		e.WriteUint8(0)
		return
	}
	if !utf8.ValidRune(rune(c)) {
		e.drop("char", int(c), utf8.MaxRune)
		return
	}
	var body [utf8.UTFMax]byte
	n := utf8.EncodeRune(body[:], rune(c))
	dst := e.grow(ShortPrefix + n)
	dst[0] = uint8(n)
	copy(dst[ShortPrefix:], body[:n])
}

// WriteBytes encodes a byte block with a 16-bit length prefix. Blocks longer
// than 65535 bytes are dropped.
func (e *Encoder) WriteBytes(b []byte) {
	e.writeBytes("bytes", Prefix, MaxCount, b)
}

// WriteShortBytes encodes a byte block with an 8-bit length prefix.
func (e *Encoder) WriteShortBytes(b []byte) {
	e.writeBytes("short_bytes", ShortPrefix, MaxShortCount, b)
}

// WriteLongBytes encodes a byte block with a 32-bit length prefix.
func (e *Encoder) WriteLongBytes(b []byte) {
	e.writeBytes("long_bytes", LongPrefix, MaxLongCount, b)
}

func (e *Encoder) writeBytes(op string, width int, limit uint64, b []byte) {
	if uint64(len(b)) > limit {
		e.drop(op, len(b), int(limit))
		return
	}
	dst := e.grow(width + len(b))
	putPrefix(dst, width, len(b))
	copy(dst[width:], b)
}

// WriteBools encodes a 16-bit count and MSB-first packed bits. More than
// 65535 values are dropped.
func (e *Encoder) WriteBools(v []bool) {
	if len(v) > MaxCount {
		e.drop("bools", len(v), MaxCount)
		return
	}
	dst := e.grow(Prefix + (len(v)+7)/8)
	le.PutUint16(dst, uint16(len(v)))
	packed := dst[Prefix:]
	clear(packed)
	for i, set := range v {
		if set {
			packed[i/8] |= 0x80 >> (i % 8)
		}
	}
}

// WriteStrings encodes a 16-bit count followed by each standard text.
func (e *Encoder) WriteStrings(v []string) {
	WriteSlice(e, v, (*Encoder).WriteString)
}

func putPrefix(dst []byte, width, n int) {
	switch width {
	case ShortPrefix:
		dst[0] = uint8(n)
	case Prefix:
		le.PutUint16(dst, uint16(n))
	default:
		le.PutUint32(dst, uint32(n))
	}
}
