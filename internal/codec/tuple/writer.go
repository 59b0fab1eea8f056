package tuple

import (
	"fmt"

	"github.com/danmuck/wirecodec/internal/codec"
	"github.com/danmuck/wirecodec/internal/codec/frame"
)

type writer struct {
	enc *codec.Encoder
}

// newWriter sizes the initial buffer to the smallest possible message so
// fixed-width shapes never regrow.
func newWriter(id uint16, framed bool, sizes []int, opts []codec.Option) writer {
	capacity := 0
	for _, n := range sizes {
		capacity += n
	}
	if framed {
		capacity += frame.HeaderLen
	}
	return writer{enc: codec.NewEncoder(id, framed, capacity, opts...)}
}

// MessageID returns the id written into frame headers.
func (w *writer) MessageID() uint16 { return w.enc.MessageID() }

// Framed reports whether Encode prepends a frame header.
func (w *writer) Framed() bool { return w.enc.Framed() }

func minSize[T any]() int {
	n, err := codec.MinimumSizeOf[T]()
	if err != nil {
		return 0
	}
	return n
}

// Writer1 encodes messages of one field. All Writer types share the same
// contract: Encode resets the buffer, runs every field encode in declared
// order, frames the payload when configured and returns it. Oversized
// variable-length fields are dropped by the encoder with a warning. A Writer
// is not safe for concurrent use.
type Writer1[T1 any] struct {
	writer
	w1 codec.EncodeFunc[T1]
}

func NewWriter1[T1 any](id uint16, framed bool, w1 codec.EncodeFunc[T1], opts ...codec.Option) *Writer1[T1] {
	return &Writer1[T1]{
		writer: newWriter(id, framed, []int{minSize[T1]()}, opts),
		w1:     w1,
	}
}

// ResolveWriter1 builds a Writer1 from the registry encoders for each field type.
func ResolveWriter1[T1 any](id uint16, framed bool, opts ...codec.Option) (*Writer1[T1], error) {
	w1, err := codec.ResolveEncoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	return NewWriter1(id, framed, w1, opts...), nil
}

func (w *Writer1[T1]) Encode(v1 T1) []byte {
	w.enc.Reset()
	w.w1(w.enc, v1)
	return w.enc.Finish()
}

// Writer2 encodes messages of 2 fields.
type Writer2[T1, T2 any] struct {
	writer
	w1 codec.EncodeFunc[T1]
	w2 codec.EncodeFunc[T2]
}

func NewWriter2[T1, T2 any](id uint16, framed bool, w1 codec.EncodeFunc[T1], w2 codec.EncodeFunc[T2], opts ...codec.Option) *Writer2[T1, T2] {
	return &Writer2[T1, T2]{
		writer: newWriter(id, framed, []int{minSize[T1](), minSize[T2]()}, opts),
		w1:     w1,
		w2:     w2,
	}
}

// ResolveWriter2 builds a Writer2 from the registry encoders for each field type.
func ResolveWriter2[T1, T2 any](id uint16, framed bool, opts ...codec.Option) (*Writer2[T1, T2], error) {
	w1, err := codec.ResolveEncoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	w2, err := codec.ResolveEncoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	return NewWriter2(id, framed, w1, w2, opts...), nil
}

func (w *Writer2[T1, T2]) Encode(v1 T1, v2 T2) []byte {
	w.enc.Reset()
	w.w1(w.enc, v1)
	w.w2(w.enc, v2)
	return w.enc.Finish()
}

// Writer3 encodes messages of 3 fields.
type Writer3[T1, T2, T3 any] struct {
	writer
	w1 codec.EncodeFunc[T1]
	w2 codec.EncodeFunc[T2]
	w3 codec.EncodeFunc[T3]
}

func NewWriter3[T1, T2, T3 any](id uint16, framed bool, w1 codec.EncodeFunc[T1], w2 codec.EncodeFunc[T2], w3 codec.EncodeFunc[T3], opts ...codec.Option) *Writer3[T1, T2, T3] {
	return &Writer3[T1, T2, T3]{
		writer: newWriter(id, framed, []int{minSize[T1](), minSize[T2](), minSize[T3]()}, opts),
		w1:     w1,
		w2:     w2,
		w3:     w3,
	}
}

// ResolveWriter3 builds a Writer3 from the registry encoders for each field type.
func ResolveWriter3[T1, T2, T3 any](id uint16, framed bool, opts ...codec.Option) (*Writer3[T1, T2, T3], error) {
	w1, err := codec.ResolveEncoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	w2, err := codec.ResolveEncoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	w3, err := codec.ResolveEncoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	return NewWriter3(id, framed, w1, w2, w3, opts...), nil
}

func (w *Writer3[T1, T2, T3]) Encode(v1 T1, v2 T2, v3 T3) []byte {
	w.enc.Reset()
	w.w1(w.enc, v1)
	w.w2(w.enc, v2)
	w.w3(w.enc, v3)
	return w.enc.Finish()
}

// Writer4 encodes messages of 4 fields.
type Writer4[T1, T2, T3, T4 any] struct {
	writer
	w1 codec.EncodeFunc[T1]
	w2 codec.EncodeFunc[T2]
	w3 codec.EncodeFunc[T3]
	w4 codec.EncodeFunc[T4]
}

func NewWriter4[T1, T2, T3, T4 any](id uint16, framed bool, w1 codec.EncodeFunc[T1], w2 codec.EncodeFunc[T2], w3 codec.EncodeFunc[T3], w4 codec.EncodeFunc[T4], opts ...codec.Option) *Writer4[T1, T2, T3, T4] {
	return &Writer4[T1, T2, T3, T4]{
		writer: newWriter(id, framed, []int{minSize[T1](), minSize[T2](), minSize[T3](), minSize[T4]()}, opts),
		w1:     w1,
		w2:     w2,
		w3:     w3,
		w4:     w4,
	}
}

// ResolveWriter4 builds a Writer4 from the registry encoders for each field type.
func ResolveWriter4[T1, T2, T3, T4 any](id uint16, framed bool, opts ...codec.Option) (*Writer4[T1, T2, T3, T4], error) {
	w1, err := codec.ResolveEncoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	w2, err := codec.ResolveEncoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	w3, err := codec.ResolveEncoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	w4, err := codec.ResolveEncoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	return NewWriter4(id, framed, w1, w2, w3, w4, opts...), nil
}

func (w *Writer4[T1, T2, T3, T4]) Encode(v1 T1, v2 T2, v3 T3, v4 T4) []byte {
	w.enc.Reset()
	w.w1(w.enc, v1)
	w.w2(w.enc, v2)
	w.w3(w.enc, v3)
	w.w4(w.enc, v4)
	return w.enc.Finish()
}

// Writer5 encodes messages of 5 fields.
type Writer5[T1, T2, T3, T4, T5 any] struct {
	writer
	w1 codec.EncodeFunc[T1]
	w2 codec.EncodeFunc[T2]
	w3 codec.EncodeFunc[T3]
	w4 codec.EncodeFunc[T4]
	w5 codec.EncodeFunc[T5]
}

func NewWriter5[T1, T2, T3, T4, T5 any](id uint16, framed bool, w1 codec.EncodeFunc[T1], w2 codec.EncodeFunc[T2], w3 codec.EncodeFunc[T3], w4 codec.EncodeFunc[T4], w5 codec.EncodeFunc[T5], opts ...codec.Option) *Writer5[T1, T2, T3, T4, T5] {
	return &Writer5[T1, T2, T3, T4, T5]{
		writer: newWriter(id, framed, []int{minSize[T1](), minSize[T2](), minSize[T3](), minSize[T4](), minSize[T5]()}, opts),
		w1:     w1,
		w2:     w2,
		w3:     w3,
		w4:     w4,
		w5:     w5,
	}
}

// ResolveWriter5 builds a Writer5 from the registry encoders for each field type.
func ResolveWriter5[T1, T2, T3, T4, T5 any](id uint16, framed bool, opts ...codec.Option) (*Writer5[T1, T2, T3, T4, T5], error) {
	w1, err := codec.ResolveEncoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	w2, err := codec.ResolveEncoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	w3, err := codec.ResolveEncoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	w4, err := codec.ResolveEncoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	w5, err := codec.ResolveEncoder[T5]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 5: %w", id, err)
	}
	return NewWriter5(id, framed, w1, w2, w3, w4, w5, opts...), nil
}

func (w *Writer5[T1, T2, T3, T4, T5]) Encode(v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) []byte {
	w.enc.Reset()
	w.w1(w.enc, v1)
	w.w2(w.enc, v2)
	w.w3(w.enc, v3)
	w.w4(w.enc, v4)
	w.w5(w.enc, v5)
	return w.enc.Finish()
}

// Writer6 encodes messages of 6 fields.
type Writer6[T1, T2, T3, T4, T5, T6 any] struct {
	writer
	w1 codec.EncodeFunc[T1]
	w2 codec.EncodeFunc[T2]
	w3 codec.EncodeFunc[T3]
	w4 codec.EncodeFunc[T4]
	w5 codec.EncodeFunc[T5]
	w6 codec.EncodeFunc[T6]
}

func NewWriter6[T1, T2, T3, T4, T5, T6 any](id uint16, framed bool, w1 codec.EncodeFunc[T1], w2 codec.EncodeFunc[T2], w3 codec.EncodeFunc[T3], w4 codec.EncodeFunc[T4], w5 codec.EncodeFunc[T5], w6 codec.EncodeFunc[T6], opts ...codec.Option) *Writer6[T1, T2, T3, T4, T5, T6] {
	return &Writer6[T1, T2, T3, T4, T5, T6]{
		writer: newWriter(id, framed, []int{minSize[T1](), minSize[T2](), minSize[T3](), minSize[T4](), minSize[T5](), minSize[T6]()}, opts),
		w1:     w1,
		w2:     w2,
		w3:     w3,
		w4:     w4,
		w5:     w5,
		w6:     w6,
	}
}

// ResolveWriter6 builds a Writer6 from the registry encoders for each field type.
func ResolveWriter6[T1, T2, T3, T4, T5, T6 any](id uint16, framed bool, opts ...codec.Option) (*Writer6[T1, T2, T3, T4, T5, T6], error) {
	w1, err := codec.ResolveEncoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	w2, err := codec.ResolveEncoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	w3, err := codec.ResolveEncoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	w4, err := codec.ResolveEncoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	w5, err := codec.ResolveEncoder[T5]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 5: %w", id, err)
	}
	w6, err := codec.ResolveEncoder[T6]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 6: %w", id, err)
	}
	return NewWriter6(id, framed, w1, w2, w3, w4, w5, w6, opts...), nil
}

func (w *Writer6[T1, T2, T3, T4, T5, T6]) Encode(v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) []byte {
	w.enc.Reset()
	w.w1(w.enc, v1)
	w.w2(w.enc, v2)
	w.w3(w.enc, v3)
	w.w4(w.enc, v4)
	w.w5(w.enc, v5)
	w.w6(w.enc, v6)
	return w.enc.Finish()
}

// Writer7 encodes messages of 7 fields.
type Writer7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	writer
	w1 codec.EncodeFunc[T1]
	w2 codec.EncodeFunc[T2]
	w3 codec.EncodeFunc[T3]
	w4 codec.EncodeFunc[T4]
	w5 codec.EncodeFunc[T5]
	w6 codec.EncodeFunc[T6]
	w7 codec.EncodeFunc[T7]
}

func NewWriter7[T1, T2, T3, T4, T5, T6, T7 any](id uint16, framed bool, w1 codec.EncodeFunc[T1], w2 codec.EncodeFunc[T2], w3 codec.EncodeFunc[T3], w4 codec.EncodeFunc[T4], w5 codec.EncodeFunc[T5], w6 codec.EncodeFunc[T6], w7 codec.EncodeFunc[T7], opts ...codec.Option) *Writer7[T1, T2, T3, T4, T5, T6, T7] {
	return &Writer7[T1, T2, T3, T4, T5, T6, T7]{
		writer: newWriter(id, framed, []int{minSize[T1](), minSize[T2](), minSize[T3](), minSize[T4](), minSize[T5](), minSize[T6](), minSize[T7]()}, opts),
		w1:     w1,
		w2:     w2,
		w3:     w3,
		w4:     w4,
		w5:     w5,
		w6:     w6,
		w7:     w7,
	}
}

// ResolveWriter7 builds a Writer7 from the registry encoders for each field type.
func ResolveWriter7[T1, T2, T3, T4, T5, T6, T7 any](id uint16, framed bool, opts ...codec.Option) (*Writer7[T1, T2, T3, T4, T5, T6, T7], error) {
	w1, err := codec.ResolveEncoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	w2, err := codec.ResolveEncoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	w3, err := codec.ResolveEncoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	w4, err := codec.ResolveEncoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	w5, err := codec.ResolveEncoder[T5]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 5: %w", id, err)
	}
	w6, err := codec.ResolveEncoder[T6]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 6: %w", id, err)
	}
	w7, err := codec.ResolveEncoder[T7]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 7: %w", id, err)
	}
	return NewWriter7(id, framed, w1, w2, w3, w4, w5, w6, w7, opts...), nil
}

func (w *Writer7[T1, T2, T3, T4, T5, T6, T7]) Encode(v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7) []byte {
	w.enc.Reset()
	w.w1(w.enc, v1)
	w.w2(w.enc, v2)
	w.w3(w.enc, v3)
	w.w4(w.enc, v4)
	w.w5(w.enc, v5)
	w.w6(w.enc, v6)
	w.w7(w.enc, v7)
	return w.enc.Finish()
}

// Writer8 encodes messages of 8 fields.
type Writer8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	writer
	w1 codec.EncodeFunc[T1]
	w2 codec.EncodeFunc[T2]
	w3 codec.EncodeFunc[T3]
	w4 codec.EncodeFunc[T4]
	w5 codec.EncodeFunc[T5]
	w6 codec.EncodeFunc[T6]
	w7 codec.EncodeFunc[T7]
	w8 codec.EncodeFunc[T8]
}

func NewWriter8[T1, T2, T3, T4, T5, T6, T7, T8 any](id uint16, framed bool, w1 codec.EncodeFunc[T1], w2 codec.EncodeFunc[T2], w3 codec.EncodeFunc[T3], w4 codec.EncodeFunc[T4], w5 codec.EncodeFunc[T5], w6 codec.EncodeFunc[T6], w7 codec.EncodeFunc[T7], w8 codec.EncodeFunc[T8], opts ...codec.Option) *Writer8[T1, T2, T3, T4, T5, T6, T7, T8] {
	return &Writer8[T1, T2, T3, T4, T5, T6, T7, T8]{
		writer: newWriter(id, framed, []int{minSize[T1](), minSize[T2](), minSize[T3](), minSize[T4](), minSize[T5](), minSize[T6](), minSize[T7](), minSize[T8]()}, opts),
		w1:     w1,
		w2:     w2,
		w3:     w3,
		w4:     w4,
		w5:     w5,
		w6:     w6,
		w7:     w7,
		w8:     w8,
	}
}

// ResolveWriter8 builds a Writer8 from the registry encoders for each field type.
func ResolveWriter8[T1, T2, T3, T4, T5, T6, T7, T8 any](id uint16, framed bool, opts ...codec.Option) (*Writer8[T1, T2, T3, T4, T5, T6, T7, T8], error) {
	w1, err := codec.ResolveEncoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	w2, err := codec.ResolveEncoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	w3, err := codec.ResolveEncoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	w4, err := codec.ResolveEncoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	w5, err := codec.ResolveEncoder[T5]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 5: %w", id, err)
	}
	w6, err := codec.ResolveEncoder[T6]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 6: %w", id, err)
	}
	w7, err := codec.ResolveEncoder[T7]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 7: %w", id, err)
	}
	w8, err := codec.ResolveEncoder[T8]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 8: %w", id, err)
	}
	return NewWriter8(id, framed, w1, w2, w3, w4, w5, w6, w7, w8, opts...), nil
}

func (w *Writer8[T1, T2, T3, T4, T5, T6, T7, T8]) Encode(v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8) []byte {
	w.enc.Reset()
	w.w1(w.enc, v1)
	w.w2(w.enc, v2)
	w.w3(w.enc, v3)
	w.w4(w.enc, v4)
	w.w5(w.enc, v5)
	w.w6(w.enc, v6)
	w.w7(w.enc, v7)
	w.w8(w.enc, v8)
	return w.enc.Finish()
}

// Writer9 encodes messages of 9 fields.
type Writer9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	writer
	w1 codec.EncodeFunc[T1]
	w2 codec.EncodeFunc[T2]
	w3 codec.EncodeFunc[T3]
	w4 codec.EncodeFunc[T4]
	w5 codec.EncodeFunc[T5]
	w6 codec.EncodeFunc[T6]
	w7 codec.EncodeFunc[T7]
	w8 codec.EncodeFunc[T8]
	w9 codec.EncodeFunc[T9]
}

func NewWriter9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](id uint16, framed bool, w1 codec.EncodeFunc[T1], w2 codec.EncodeFunc[T2], w3 codec.EncodeFunc[T3], w4 codec.EncodeFunc[T4], w5 codec.EncodeFunc[T5], w6 codec.EncodeFunc[T6], w7 codec.EncodeFunc[T7], w8 codec.EncodeFunc[T8], w9 codec.EncodeFunc[T9], opts ...codec.Option) *Writer9[T1, T2, T3, T4, T5, T6, T7, T8, T9] {
	return &Writer9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{
		writer: newWriter(id, framed, []int{minSize[T1](), minSize[T2](), minSize[T3](), minSize[T4](), minSize[T5](), minSize[T6](), minSize[T7](), minSize[T8](), minSize[T9]()}, opts),
		w1:     w1,
		w2:     w2,
		w3:     w3,
		w4:     w4,
		w5:     w5,
		w6:     w6,
		w7:     w7,
		w8:     w8,
		w9:     w9,
	}
}

// ResolveWriter9 builds a Writer9 from the registry encoders for each field type.
func ResolveWriter9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](id uint16, framed bool, opts ...codec.Option) (*Writer9[T1, T2, T3, T4, T5, T6, T7, T8, T9], error) {
	w1, err := codec.ResolveEncoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	w2, err := codec.ResolveEncoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	w3, err := codec.ResolveEncoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	w4, err := codec.ResolveEncoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	w5, err := codec.ResolveEncoder[T5]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 5: %w", id, err)
	}
	w6, err := codec.ResolveEncoder[T6]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 6: %w", id, err)
	}
	w7, err := codec.ResolveEncoder[T7]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 7: %w", id, err)
	}
	w8, err := codec.ResolveEncoder[T8]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 8: %w", id, err)
	}
	w9, err := codec.ResolveEncoder[T9]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 9: %w", id, err)
	}
	return NewWriter9(id, framed, w1, w2, w3, w4, w5, w6, w7, w8, w9, opts...), nil
}

func (w *Writer9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Encode(v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8, v9 T9) []byte {
	w.enc.Reset()
	w.w1(w.enc, v1)
	w.w2(w.enc, v2)
	w.w3(w.enc, v3)
	w.w4(w.enc, v4)
	w.w5(w.enc, v5)
	w.w6(w.enc, v6)
	w.w7(w.enc, v7)
	w.w8(w.enc, v8)
	w.w9(w.enc, v9)
	return w.enc.Finish()
}

// Writer10 encodes messages of 10 fields.
type Writer10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	writer
	w1  codec.EncodeFunc[T1]
	w2  codec.EncodeFunc[T2]
	w3  codec.EncodeFunc[T3]
	w4  codec.EncodeFunc[T4]
	w5  codec.EncodeFunc[T5]
	w6  codec.EncodeFunc[T6]
	w7  codec.EncodeFunc[T7]
	w8  codec.EncodeFunc[T8]
	w9  codec.EncodeFunc[T9]
	w10 codec.EncodeFunc[T10]
}

func NewWriter10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](id uint16, framed bool, w1 codec.EncodeFunc[T1], w2 codec.EncodeFunc[T2], w3 codec.EncodeFunc[T3], w4 codec.EncodeFunc[T4], w5 codec.EncodeFunc[T5], w6 codec.EncodeFunc[T6], w7 codec.EncodeFunc[T7], w8 codec.EncodeFunc[T8], w9 codec.EncodeFunc[T9], w10 codec.EncodeFunc[T10], opts ...codec.Option) *Writer10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10] {
	return &Writer10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{
		writer: newWriter(id, framed, []int{minSize[T1](), minSize[T2](), minSize[T3](), minSize[T4](), minSize[T5](), minSize[T6](), minSize[T7](), minSize[T8](), minSize[T9](), minSize[T10]()}, opts),
		w1:     w1,
		w2:     w2,
		w3:     w3,
		w4:     w4,
		w5:     w5,
		w6:     w6,
		w7:     w7,
		w8:     w8,
		w9:     w9,
		w10:    w10,
	}
}

// ResolveWriter10 builds a Writer10 from the registry encoders for each field type.
func ResolveWriter10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](id uint16, framed bool, opts ...codec.Option) (*Writer10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10], error) {
	w1, err := codec.ResolveEncoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	w2, err := codec.ResolveEncoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	w3, err := codec.ResolveEncoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	w4, err := codec.ResolveEncoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	w5, err := codec.ResolveEncoder[T5]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 5: %w", id, err)
	}
	w6, err := codec.ResolveEncoder[T6]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 6: %w", id, err)
	}
	w7, err := codec.ResolveEncoder[T7]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 7: %w", id, err)
	}
	w8, err := codec.ResolveEncoder[T8]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 8: %w", id, err)
	}
	w9, err := codec.ResolveEncoder[T9]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 9: %w", id, err)
	}
	w10, err := codec.ResolveEncoder[T10]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 10: %w", id, err)
	}
	return NewWriter10(id, framed, w1, w2, w3, w4, w5, w6, w7, w8, w9, w10, opts...), nil
}

func (w *Writer10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Encode(v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8, v9 T9, v10 T10) []byte {
	w.enc.Reset()
	w.w1(w.enc, v1)
	w.w2(w.enc, v2)
	w.w3(w.enc, v3)
	w.w4(w.enc, v4)
	w.w5(w.enc, v5)
	w.w6(w.enc, v6)
	w.w7(w.enc, v7)
	w.w8(w.enc, v8)
	w.w9(w.enc, v9)
	w.w10(w.enc, v10)
	return w.enc.Finish()
}
