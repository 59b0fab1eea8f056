package codec

import "fmt"

// Composite is a user type that encodes and decodes its own fields with the
// codec primitives. Decode is called on a zero value.
type Composite interface {
	Encode(e *Encoder)
	Decode(d *Decoder)
}

// CompositePtr constrains P to *T implementing Composite so helpers can
// construct fresh elements.
type CompositePtr[T any] interface {
	*T
	Composite
}

// ReadComposite decodes one fresh T.
func ReadComposite[T any, P CompositePtr[T]](d *Decoder) T {
	var v T
	P(&v).Decode(d)
	return v
}

// WriteComposite encodes v. When any field write is dropped nothing of v is
// kept.
func WriteComposite[T any, P CompositePtr[T]](e *Encoder, v T) {
	e.atomically(func() { P(&v).Encode(e) })
}

// ReadShortComposites decodes an 8-bit count followed by that many T.
func ReadShortComposites[T any, P CompositePtr[T]](d *Decoder) []T {
	return readComposites[T, P](d, "short_composites", ShortPrefix)
}

// ReadComposites decodes a 16-bit count followed by that many T.
func ReadComposites[T any, P CompositePtr[T]](d *Decoder) []T {
	return readComposites[T, P](d, "composites", Prefix)
}

// ReadLongComposites decodes a 32-bit count followed by that many T.
func ReadLongComposites[T any, P CompositePtr[T]](d *Decoder) []T {
	return readComposites[T, P](d, "long_composites", LongPrefix)
}

func readComposites[T any, P CompositePtr[T]](d *Decoder, op string, width int) []T {
	start, prior := d.pos, d.failed
	n, ok := d.prefixed(op, width, 0)
	if !ok {
		return nil
	}
	d.failed = false
	// a hostile count must not drive the allocation
	out := make([]T, 0, min(n, d.Remaining()))
	for range n {
		var v T
		P(&v).Decode(d)
		if d.failed {
			d.pos = start
			return nil
		}
		out = append(out, v)
	}
	d.failed = prior
	return out
}

// WriteShortComposites encodes an 8-bit count followed by each element. It
// panics with ErrCountOverflow for more than 255 elements.
func WriteShortComposites[T any, P CompositePtr[T]](e *Encoder, vals []T) {
	writeComposites[T, P](e, ShortPrefix, MaxShortCount, vals)
}

// WriteComposites encodes a 16-bit count followed by each element. It panics
// with ErrCountOverflow for more than 65535 elements.
func WriteComposites[T any, P CompositePtr[T]](e *Encoder, vals []T) {
	writeComposites[T, P](e, Prefix, MaxCount, vals)
}

// WriteLongComposites encodes a 32-bit count followed by each element.
func WriteLongComposites[T any, P CompositePtr[T]](e *Encoder, vals []T) {
	writeComposites[T, P](e, LongPrefix, MaxLongCount, vals)
}

func writeComposites[T any, P CompositePtr[T]](e *Encoder, width int, limit uint64, vals []T) {
	if uint64(len(vals)) > limit {
		panic(fmt.Errorf("%w: %d elements, limit %d", ErrCountOverflow, len(vals), limit))
	}
	e.atomically(func() {
		putPrefix(e.grow(width), width, len(vals))
		for i := range vals {
			P(&vals[i]).Encode(e)
		}
	})
}

// ReadOptional decodes a presence byte and, when set, one fresh T. A value
// that runs short rewinds the cursor to the presence byte and yields nil.
func ReadOptional[T any, P CompositePtr[T]](d *Decoder) *T {
	start, prior := d.pos, d.failed
	d.failed = false
	if !d.ReadBool() {
		d.failed = d.failed || prior
		return nil
	}
	v := new(T)
	P(v).Decode(d)
	if d.failed {
		d.pos = start
		return nil
	}
	d.failed = prior
	return v
}

// WriteOptional encodes a presence byte and v when it is non-nil. A value
// with a dropped field leaves no presence byte behind.
func WriteOptional[T any, P CompositePtr[T]](e *Encoder, v *T) {
	if v == nil {
		e.WriteBool(false)
		return
	}
	e.atomically(func() {
		e.WriteBool(true)
		P(v).Encode(e)
	})
}

// Marshal encodes v into a fresh unframed buffer.
func Marshal(v Composite) []byte {
	e := NewEncoder(0, false, DefaultCapacity)
	v.Encode(e)
	return e.Finish()
}

// Unmarshal decodes buf into v and returns ErrDecodeFailed when any read ran
// short.
func Unmarshal(buf []byte, v Composite) error {
	d := NewDecoder()
	d.Load(buf)
	v.Decode(d)
	if d.Failed() {
		return ErrDecodeFailed
	}
	return nil
}
