package tuple

import (
	"fmt"

	"github.com/danmuck/wirecodec/internal/codec"
)

type reader struct {
	id  uint16
	dec *codec.Decoder
}

func newReader(id uint16, opts []codec.Option) reader {
	return reader{id: id, dec: codec.NewDecoder(opts...)}
}

// MessageID returns the id reported in decode errors.
func (r *reader) MessageID() uint16 { return r.id }

// finish clears the sticky flag and reports a failure once per message.
func (r *reader) finish() error {
	if r.dec.ClearFailure() {
		return fmt.Errorf("%w: message %d", codec.ErrDecodeFailed, r.id)
	}
	return nil
}

// Reader1 decodes messages of one field. All Reader types share the same
// contract: Read loads buf, runs every field decode in declared order even
// after an earlier field failed, then clears the failure flag and returns
// codec.ErrDecodeFailed once if any field ran short. A Reader is not safe
// for concurrent use.
type Reader1[T1 any] struct {
	reader
	r1 codec.DecodeFunc[T1]
}

func NewReader1[T1 any](id uint16, r1 codec.DecodeFunc[T1], opts ...codec.Option) *Reader1[T1] {
	return &Reader1[T1]{
		reader: newReader(id, opts),
		r1:     r1,
	}
}

// ResolveReader1 builds a Reader1 from the registry decoders for each field type.
func ResolveReader1[T1 any](id uint16, opts ...codec.Option) (*Reader1[T1], error) {
	r1, err := codec.ResolveDecoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	return NewReader1(id, r1, opts...), nil
}

func (r *Reader1[T1]) Read(buf []byte, o1 *T1) error {
	r.dec.Load(buf)
	*o1 = r.r1(r.dec)
	return r.finish()
}

// Reader2 decodes messages of 2 fields.
type Reader2[T1, T2 any] struct {
	reader
	r1 codec.DecodeFunc[T1]
	r2 codec.DecodeFunc[T2]
}

func NewReader2[T1, T2 any](id uint16, r1 codec.DecodeFunc[T1], r2 codec.DecodeFunc[T2], opts ...codec.Option) *Reader2[T1, T2] {
	return &Reader2[T1, T2]{
		reader: newReader(id, opts),
		r1:     r1,
		r2:     r2,
	}
}

// ResolveReader2 builds a Reader2 from the registry decoders for each field type.
func ResolveReader2[T1, T2 any](id uint16, opts ...codec.Option) (*Reader2[T1, T2], error) {
	r1, err := codec.ResolveDecoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	r2, err := codec.ResolveDecoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	return NewReader2(id, r1, r2, opts...), nil
}

func (r *Reader2[T1, T2]) Read(buf []byte, o1 *T1, o2 *T2) error {
	r.dec.Load(buf)
	*o1 = r.r1(r.dec)
	*o2 = r.r2(r.dec)
	return r.finish()
}

// Reader3 decodes messages of 3 fields.
type Reader3[T1, T2, T3 any] struct {
	reader
	r1 codec.DecodeFunc[T1]
	r2 codec.DecodeFunc[T2]
	r3 codec.DecodeFunc[T3]
}

func NewReader3[T1, T2, T3 any](id uint16, r1 codec.DecodeFunc[T1], r2 codec.DecodeFunc[T2], r3 codec.DecodeFunc[T3], opts ...codec.Option) *Reader3[T1, T2, T3] {
	return &Reader3[T1, T2, T3]{
		reader: newReader(id, opts),
		r1:     r1,
		r2:     r2,
		r3:     r3,
	}
}

// ResolveReader3 builds a Reader3 from the registry decoders for each field type.
func ResolveReader3[T1, T2, T3 any](id uint16, opts ...codec.Option) (*Reader3[T1, T2, T3], error) {
	r1, err := codec.ResolveDecoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	r2, err := codec.ResolveDecoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	r3, err := codec.ResolveDecoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	return NewReader3(id, r1, r2, r3, opts...), nil
}

func (r *Reader3[T1, T2, T3]) Read(buf []byte, o1 *T1, o2 *T2, o3 *T3) error {
	r.dec.Load(buf)
	*o1 = r.r1(r.dec)
	*o2 = r.r2(r.dec)
	*o3 = r.r3(r.dec)
	return r.finish()
}

// Reader4 decodes messages of 4 fields.
type Reader4[T1, T2, T3, T4 any] struct {
	reader
	r1 codec.DecodeFunc[T1]
	r2 codec.DecodeFunc[T2]
	r3 codec.DecodeFunc[T3]
	r4 codec.DecodeFunc[T4]
}

func NewReader4[T1, T2, T3, T4 any](id uint16, r1 codec.DecodeFunc[T1], r2 codec.DecodeFunc[T2], r3 codec.DecodeFunc[T3], r4 codec.DecodeFunc[T4], opts ...codec.Option) *Reader4[T1, T2, T3, T4] {
	return &Reader4[T1, T2, T3, T4]{
		reader: newReader(id, opts),
		r1:     r1,
		r2:     r2,
		r3:     r3,
		r4:     r4,
	}
}

// ResolveReader4 builds a Reader4 from the registry decoders for each field type.
func ResolveReader4[T1, T2, T3, T4 any](id uint16, opts ...codec.Option) (*Reader4[T1, T2, T3, T4], error) {
	r1, err := codec.ResolveDecoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	r2, err := codec.ResolveDecoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	r3, err := codec.ResolveDecoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	r4, err := codec.ResolveDecoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	return NewReader4(id, r1, r2, r3, r4, opts...), nil
}

func (r *Reader4[T1, T2, T3, T4]) Read(buf []byte, o1 *T1, o2 *T2, o3 *T3, o4 *T4) error {
	r.dec.Load(buf)
	*o1 = r.r1(r.dec)
	*o2 = r.r2(r.dec)
	*o3 = r.r3(r.dec)
	*o4 = r.r4(r.dec)
	return r.finish()
}

// Reader5 decodes messages of 5 fields.
type Reader5[T1, T2, T3, T4, T5 any] struct {
	reader
	r1 codec.DecodeFunc[T1]
	r2 codec.DecodeFunc[T2]
	r3 codec.DecodeFunc[T3]
	r4 codec.DecodeFunc[T4]
	r5 codec.DecodeFunc[T5]
}

func NewReader5[T1, T2, T3, T4, T5 any](id uint16, r1 codec.DecodeFunc[T1], r2 codec.DecodeFunc[T2], r3 codec.DecodeFunc[T3], r4 codec.DecodeFunc[T4], r5 codec.DecodeFunc[T5], opts ...codec.Option) *Reader5[T1, T2, T3, T4, T5] {
	return &Reader5[T1, T2, T3, T4, T5]{
		reader: newReader(id, opts),
		r1:     r1,
		r2:     r2,
		r3:     r3,
		r4:     r4,
		r5:     r5,
	}
}

// ResolveReader5 builds a Reader5 from the registry decoders for each field type.
func ResolveReader5[T1, T2, T3, T4, T5 any](id uint16, opts ...codec.Option) (*Reader5[T1, T2, T3, T4, T5], error) {
	r1, err := codec.ResolveDecoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	r2, err := codec.ResolveDecoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	r3, err := codec.ResolveDecoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	r4, err := codec.ResolveDecoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	r5, err := codec.ResolveDecoder[T5]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 5: %w", id, err)
	}
	return NewReader5(id, r1, r2, r3, r4, r5, opts...), nil
}

func (r *Reader5[T1, T2, T3, T4, T5]) Read(buf []byte, o1 *T1, o2 *T2, o3 *T3, o4 *T4, o5 *T5) error {
	r.dec.Load(buf)
	*o1 = r.r1(r.dec)
	*o2 = r.r2(r.dec)
	*o3 = r.r3(r.dec)
	*o4 = r.r4(r.dec)
	*o5 = r.r5(r.dec)
	return r.finish()
}

// Reader6 decodes messages of 6 fields.
type Reader6[T1, T2, T3, T4, T5, T6 any] struct {
	reader
	r1 codec.DecodeFunc[T1]
	r2 codec.DecodeFunc[T2]
	r3 codec.DecodeFunc[T3]
	r4 codec.DecodeFunc[T4]
	r5 codec.DecodeFunc[T5]
	r6 codec.DecodeFunc[T6]
}

func NewReader6[T1, T2, T3, T4, T5, T6 any](id uint16, r1 codec.DecodeFunc[T1], r2 codec.DecodeFunc[T2], r3 codec.DecodeFunc[T3], r4 codec.DecodeFunc[T4], r5 codec.DecodeFunc[T5], r6 codec.DecodeFunc[T6], opts ...codec.Option) *Reader6[T1, T2, T3, T4, T5, T6] {
	return &Reader6[T1, T2, T3, T4, T5, T6]{
		reader: newReader(id, opts),
		r1:     r1,
		r2:     r2,
		r3:     r3,
		r4:     r4,
		r5:     r5,
		r6:     r6,
	}
}

// ResolveReader6 builds a Reader6 from the registry decoders for each field type.
func ResolveReader6[T1, T2, T3, T4, T5, T6 any](id uint16, opts ...codec.Option) (*Reader6[T1, T2, T3, T4, T5, T6], error) {
	r1, err := codec.ResolveDecoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	r2, err := codec.ResolveDecoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	r3, err := codec.ResolveDecoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	r4, err := codec.ResolveDecoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	r5, err := codec.ResolveDecoder[T5]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 5: %w", id, err)
	}
	r6, err := codec.ResolveDecoder[T6]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 6: %w", id, err)
	}
	return NewReader6(id, r1, r2, r3, r4, r5, r6, opts...), nil
}

func (r *Reader6[T1, T2, T3, T4, T5, T6]) Read(buf []byte, o1 *T1, o2 *T2, o3 *T3, o4 *T4, o5 *T5, o6 *T6) error {
	r.dec.Load(buf)
	*o1 = r.r1(r.dec)
	*o2 = r.r2(r.dec)
	*o3 = r.r3(r.dec)
	*o4 = r.r4(r.dec)
	*o5 = r.r5(r.dec)
	*o6 = r.r6(r.dec)
	return r.finish()
}

// Reader7 decodes messages of 7 fields.
type Reader7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	reader
	r1 codec.DecodeFunc[T1]
	r2 codec.DecodeFunc[T2]
	r3 codec.DecodeFunc[T3]
	r4 codec.DecodeFunc[T4]
	r5 codec.DecodeFunc[T5]
	r6 codec.DecodeFunc[T6]
	r7 codec.DecodeFunc[T7]
}

func NewReader7[T1, T2, T3, T4, T5, T6, T7 any](id uint16, r1 codec.DecodeFunc[T1], r2 codec.DecodeFunc[T2], r3 codec.DecodeFunc[T3], r4 codec.DecodeFunc[T4], r5 codec.DecodeFunc[T5], r6 codec.DecodeFunc[T6], r7 codec.DecodeFunc[T7], opts ...codec.Option) *Reader7[T1, T2, T3, T4, T5, T6, T7] {
	return &Reader7[T1, T2, T3, T4, T5, T6, T7]{
		reader: newReader(id, opts),
		r1:     r1,
		r2:     r2,
		r3:     r3,
		r4:     r4,
		r5:     r5,
		r6:     r6,
		r7:     r7,
	}
}

// ResolveReader7 builds a Reader7 from the registry decoders for each field type.
func ResolveReader7[T1, T2, T3, T4, T5, T6, T7 any](id uint16, opts ...codec.Option) (*Reader7[T1, T2, T3, T4, T5, T6, T7], error) {
	r1, err := codec.ResolveDecoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	r2, err := codec.ResolveDecoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	r3, err := codec.ResolveDecoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	r4, err := codec.ResolveDecoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	r5, err := codec.ResolveDecoder[T5]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 5: %w", id, err)
	}
	r6, err := codec.ResolveDecoder[T6]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 6: %w", id, err)
	}
	r7, err := codec.ResolveDecoder[T7]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 7: %w", id, err)
	}
	return NewReader7(id, r1, r2, r3, r4, r5, r6, r7, opts...), nil
}

func (r *Reader7[T1, T2, T3, T4, T5, T6, T7]) Read(buf []byte, o1 *T1, o2 *T2, o3 *T3, o4 *T4, o5 *T5, o6 *T6, o7 *T7) error {
	r.dec.Load(buf)
	*o1 = r.r1(r.dec)
	*o2 = r.r2(r.dec)
	*o3 = r.r3(r.dec)
	*o4 = r.r4(r.dec)
	*o5 = r.r5(r.dec)
	*o6 = r.r6(r.dec)
	*o7 = r.r7(r.dec)
	return r.finish()
}

// Reader8 decodes messages of 8 fields.
type Reader8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	reader
	r1 codec.DecodeFunc[T1]
	r2 codec.DecodeFunc[T2]
	r3 codec.DecodeFunc[T3]
	r4 codec.DecodeFunc[T4]
	r5 codec.DecodeFunc[T5]
	r6 codec.DecodeFunc[T6]
	r7 codec.DecodeFunc[T7]
	r8 codec.DecodeFunc[T8]
}

func NewReader8[T1, T2, T3, T4, T5, T6, T7, T8 any](id uint16, r1 codec.DecodeFunc[T1], r2 codec.DecodeFunc[T2], r3 codec.DecodeFunc[T3], r4 codec.DecodeFunc[T4], r5 codec.DecodeFunc[T5], r6 codec.DecodeFunc[T6], r7 codec.DecodeFunc[T7], r8 codec.DecodeFunc[T8], opts ...codec.Option) *Reader8[T1, T2, T3, T4, T5, T6, T7, T8] {
	return &Reader8[T1, T2, T3, T4, T5, T6, T7, T8]{
		reader: newReader(id, opts),
		r1:     r1,
		r2:     r2,
		r3:     r3,
		r4:     r4,
		r5:     r5,
		r6:     r6,
		r7:     r7,
		r8:     r8,
	}
}

// ResolveReader8 builds a Reader8 from the registry decoders for each field type.
func ResolveReader8[T1, T2, T3, T4, T5, T6, T7, T8 any](id uint16, opts ...codec.Option) (*Reader8[T1, T2, T3, T4, T5, T6, T7, T8], error) {
	r1, err := codec.ResolveDecoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	r2, err := codec.ResolveDecoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	r3, err := codec.ResolveDecoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	r4, err := codec.ResolveDecoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	r5, err := codec.ResolveDecoder[T5]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 5: %w", id, err)
	}
	r6, err := codec.ResolveDecoder[T6]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 6: %w", id, err)
	}
	r7, err := codec.ResolveDecoder[T7]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 7: %w", id, err)
	}
	r8, err := codec.ResolveDecoder[T8]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 8: %w", id, err)
	}
	return NewReader8(id, r1, r2, r3, r4, r5, r6, r7, r8, opts...), nil
}

func (r *Reader8[T1, T2, T3, T4, T5, T6, T7, T8]) Read(buf []byte, o1 *T1, o2 *T2, o3 *T3, o4 *T4, o5 *T5, o6 *T6, o7 *T7, o8 *T8) error {
	r.dec.Load(buf)
	*o1 = r.r1(r.dec)
	*o2 = r.r2(r.dec)
	*o3 = r.r3(r.dec)
	*o4 = r.r4(r.dec)
	*o5 = r.r5(r.dec)
	*o6 = r.r6(r.dec)
	*o7 = r.r7(r.dec)
	*o8 = r.r8(r.dec)
	return r.finish()
}

// Reader9 decodes messages of 9 fields.
type Reader9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	reader
	r1 codec.DecodeFunc[T1]
	r2 codec.DecodeFunc[T2]
	r3 codec.DecodeFunc[T3]
	r4 codec.DecodeFunc[T4]
	r5 codec.DecodeFunc[T5]
	r6 codec.DecodeFunc[T6]
	r7 codec.DecodeFunc[T7]
	r8 codec.DecodeFunc[T8]
	r9 codec.DecodeFunc[T9]
}

func NewReader9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](id uint16, r1 codec.DecodeFunc[T1], r2 codec.DecodeFunc[T2], r3 codec.DecodeFunc[T3], r4 codec.DecodeFunc[T4], r5 codec.DecodeFunc[T5], r6 codec.DecodeFunc[T6], r7 codec.DecodeFunc[T7], r8 codec.DecodeFunc[T8], r9 codec.DecodeFunc[T9], opts ...codec.Option) *Reader9[T1, T2, T3, T4, T5, T6, T7, T8, T9] {
	return &Reader9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{
		reader: newReader(id, opts),
		r1:     r1,
		r2:     r2,
		r3:     r3,
		r4:     r4,
		r5:     r5,
		r6:     r6,
		r7:     r7,
		r8:     r8,
		r9:     r9,
	}
}

// ResolveReader9 builds a Reader9 from the registry decoders for each field type.
func ResolveReader9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](id uint16, opts ...codec.Option) (*Reader9[T1, T2, T3, T4, T5, T6, T7, T8, T9], error) {
	r1, err := codec.ResolveDecoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	r2, err := codec.ResolveDecoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	r3, err := codec.ResolveDecoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	r4, err := codec.ResolveDecoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	r5, err := codec.ResolveDecoder[T5]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 5: %w", id, err)
	}
	r6, err := codec.ResolveDecoder[T6]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 6: %w", id, err)
	}
	r7, err := codec.ResolveDecoder[T7]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 7: %w", id, err)
	}
	r8, err := codec.ResolveDecoder[T8]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 8: %w", id, err)
	}
	r9, err := codec.ResolveDecoder[T9]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 9: %w", id, err)
	}
	return NewReader9(id, r1, r2, r3, r4, r5, r6, r7, r8, r9, opts...), nil
}

func (r *Reader9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Read(buf []byte, o1 *T1, o2 *T2, o3 *T3, o4 *T4, o5 *T5, o6 *T6, o7 *T7, o8 *T8, o9 *T9) error {
	r.dec.Load(buf)
	*o1 = r.r1(r.dec)
	*o2 = r.r2(r.dec)
	*o3 = r.r3(r.dec)
	*o4 = r.r4(r.dec)
	*o5 = r.r5(r.dec)
	*o6 = r.r6(r.dec)
	*o7 = r.r7(r.dec)
	*o8 = r.r8(r.dec)
	*o9 = r.r9(r.dec)
	return r.finish()
}

// Reader10 decodes messages of 10 fields.
type Reader10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	reader
	r1  codec.DecodeFunc[T1]
	r2  codec.DecodeFunc[T2]
	r3  codec.DecodeFunc[T3]
	r4  codec.DecodeFunc[T4]
	r5  codec.DecodeFunc[T5]
	r6  codec.DecodeFunc[T6]
	r7  codec.DecodeFunc[T7]
	r8  codec.DecodeFunc[T8]
	r9  codec.DecodeFunc[T9]
	r10 codec.DecodeFunc[T10]
}

func NewReader10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](id uint16, r1 codec.DecodeFunc[T1], r2 codec.DecodeFunc[T2], r3 codec.DecodeFunc[T3], r4 codec.DecodeFunc[T4], r5 codec.DecodeFunc[T5], r6 codec.DecodeFunc[T6], r7 codec.DecodeFunc[T7], r8 codec.DecodeFunc[T8], r9 codec.DecodeFunc[T9], r10 codec.DecodeFunc[T10], opts ...codec.Option) *Reader10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10] {
	return &Reader10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{
		reader: newReader(id, opts),
		r1:     r1,
		r2:     r2,
		r3:     r3,
		r4:     r4,
		r5:     r5,
		r6:     r6,
		r7:     r7,
		r8:     r8,
		r9:     r9,
		r10:    r10,
	}
}

// ResolveReader10 builds a Reader10 from the registry decoders for each field type.
func ResolveReader10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](id uint16, opts ...codec.Option) (*Reader10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10], error) {
	r1, err := codec.ResolveDecoder[T1]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 1: %w", id, err)
	}
	r2, err := codec.ResolveDecoder[T2]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 2: %w", id, err)
	}
	r3, err := codec.ResolveDecoder[T3]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 3: %w", id, err)
	}
	r4, err := codec.ResolveDecoder[T4]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 4: %w", id, err)
	}
	r5, err := codec.ResolveDecoder[T5]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 5: %w", id, err)
	}
	r6, err := codec.ResolveDecoder[T6]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 6: %w", id, err)
	}
	r7, err := codec.ResolveDecoder[T7]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 7: %w", id, err)
	}
	r8, err := codec.ResolveDecoder[T8]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 8: %w", id, err)
	}
	r9, err := codec.ResolveDecoder[T9]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 9: %w", id, err)
	}
	r10, err := codec.ResolveDecoder[T10]()
	if err != nil {
		return nil, fmt.Errorf("message %d field 10: %w", id, err)
	}
	return NewReader10(id, r1, r2, r3, r4, r5, r6, r7, r8, r9, r10, opts...), nil
}

func (r *Reader10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Read(buf []byte, o1 *T1, o2 *T2, o3 *T3, o4 *T4, o5 *T5, o6 *T6, o7 *T7, o8 *T8, o9 *T9, o10 *T10) error {
	r.dec.Load(buf)
	*o1 = r.r1(r.dec)
	*o2 = r.r2(r.dec)
	*o3 = r.r3(r.dec)
	*o4 = r.r4(r.dec)
	*o5 = r.r5(r.dec)
	*o6 = r.r6(r.dec)
	*o7 = r.r7(r.dec)
	*o8 = r.r8(r.dec)
	*o9 = r.r9(r.dec)
	*o10 = r.r10(r.dec)
	return r.finish()
}
