package codec

// ReadSlice decodes a 16-bit element count followed by that many elements.
// minSize is the smallest wire size of one element; the count is rejected up
// front when the remaining buffer cannot hold count*minSize bytes. When an
// element runs short the cursor returns to the prefix and nil is returned.
func ReadSlice[T any](d *Decoder, minSize int, read DecodeFunc[T]) []T {
	start, prior := d.pos, d.failed
	n, ok := d.prefixed("slice", Prefix, minSize)
	if !ok {
		return nil
	}
	d.failed = false
	out := make([]T, n)
	for i := range out {
		out[i] = read(d)
		if d.failed {
			d.pos = start
			return nil
		}
	}
	d.failed = prior
	return out
}

// WriteSlice encodes a 16-bit element count followed by each element.
// Slices longer than 65535 elements are dropped, as is the whole slice when
// any element is dropped.
func WriteSlice[T any](e *Encoder, vals []T, write EncodeFunc[T]) {
	if len(vals) > MaxCount {
		e.drop("slice", len(vals), MaxCount)
		return
	}
	e.atomically(func() {
		e.WriteUint16(uint16(len(vals)))
		for _, v := range vals {
			write(e, v)
		}
	})
}
