package codec

import "math"

// ShortString is text encoded with an 8-bit length prefix.
type ShortString string

// Char is a single character encoded as an 8-bit length prefix followed by
// its UTF-8 bytes. A zero length decodes to the null character.
type Char rune

// DecodeFunc decodes one value of T from d.
type DecodeFunc[T any] func(d *Decoder) T

// EncodeFunc encodes one value of T into e.
type EncodeFunc[T any] func(e *Encoder, v T)

// Prefix widths and the largest count each can carry.
const (
	ShortPrefix = 1
	Prefix      = 2
	LongPrefix  = 4

	MaxShortCount = math.MaxUint8
	MaxCount      = math.MaxUint16
	MaxLongCount  = math.MaxUint32
)

// Fixed wire sizes.
const (
	SizeBool    = 1
	SizeInt8    = 1
	SizeInt16   = 2
	SizeInt32   = 4
	SizeInt64   = 8
	SizeFloat32 = 4
	SizeFloat64 = 8
	SizeDecimal = 16
	SizeUUID    = 16
	SizeTicks   = 8
)
