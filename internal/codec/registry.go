package codec

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rs/zerolog/log"
)

// Entry is the resolved codec for one Go type.
type Entry struct {
	Type reflect.Type
	// MinSize is the smallest encoded size: the fixed width for scalars,
	// the prefix width alone for variable-length types.
	MinSize int

	decode func(d *Decoder) reflect.Value
	encode func(e *Encoder, v reflect.Value)

	// DecodeFunc[T]/EncodeFunc[T] for entries known statically
	typedDecode any
	typedEncode any
}

// Decode reads one value. On failure the result is the zero value of Type.
func (en *Entry) Decode(d *Decoder) reflect.Value {
	return en.decode(d)
}

// Encode writes v, which must have type Type.
func (en *Entry) Encode(e *Encoder, v reflect.Value) {
	en.encode(e, v)
}

// DecodeAny reads one value boxed as any.
func (en *Entry) DecodeAny(d *Decoder) any {
	return en.decode(d).Interface()
}

// EncodeAny writes v after checking its dynamic type.
func (en *Entry) EncodeAny(e *Encoder, v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Type() != en.Type {
		return fmt.Errorf("codec: value of type %T does not match %s", v, en.Type)
	}
	en.encode(e, rv)
	return nil
}

func typed[T any](size int, read DecodeFunc[T], write EncodeFunc[T]) *Entry {
	return &Entry{
		Type:    reflect.TypeFor[T](),
		MinSize: size,
		decode: func(d *Decoder) reflect.Value {
			return reflect.ValueOf(read(d))
		},
		encode: func(e *Encoder, v reflect.Value) {
			write(e, v.Interface().(T))
		},
		typedDecode: read,
		typedEncode: write,
	}
}

func index(entries ...*Entry) map[reflect.Type]*Entry {
	m := make(map[reflect.Type]*Entry, len(entries))
	for _, en := range entries {
		m[en.Type] = en
	}
	return m
}

var (
	scalarEntries = index(
		typed(SizeInt8, (*Decoder).ReadInt8, (*Encoder).WriteInt8),
		typed(SizeInt8, (*Decoder).ReadUint8, (*Encoder).WriteUint8),
		typed(SizeInt16, (*Decoder).ReadInt16, (*Encoder).WriteInt16),
		typed(SizeInt16, (*Decoder).ReadUint16, (*Encoder).WriteUint16),
		typed(SizeInt32, (*Decoder).ReadInt32, (*Encoder).WriteInt32),
		typed(SizeInt32, (*Decoder).ReadUint32, (*Encoder).WriteUint32),
		typed(SizeInt64, (*Decoder).ReadInt64, (*Encoder).WriteInt64),
		typed(SizeInt64, (*Decoder).ReadUint64, (*Encoder).WriteUint64),
		typed(SizeBool, (*Decoder).ReadBool, (*Encoder).WriteBool),
		typed(SizeFloat32, (*Decoder).ReadFloat32, (*Encoder).WriteFloat32),
		typed(SizeFloat64, (*Decoder).ReadFloat64, (*Encoder).WriteFloat64),
		typed(SizeDecimal, (*Decoder).ReadDecimal, (*Encoder).WriteDecimal),
	)
	textEntries = index(
		typed(Prefix, (*Decoder).ReadString, (*Encoder).WriteString),
		typed(ShortPrefix, (*Decoder).ReadShortString, (*Encoder).WriteShortString),
		typed(ShortPrefix, (*Decoder).ReadChar, (*Encoder).WriteChar),
	)
	temporalEntries = index(
		typed(SizeTicks, (*Decoder).ReadTime, (*Encoder).WriteTime),
		typed(SizeTicks, (*Decoder).ReadDuration, (*Encoder).WriteDuration),
	)
	identifierEntries = index(
		typed(SizeUUID, (*Decoder).ReadUUID, (*Encoder).WriteUUID),
	)
	// slices with a dedicated wire form or a direct primitive
	sliceEntries = index(
		typed(Prefix, (*Decoder).ReadBytes, (*Encoder).WriteBytes),
		typed(Prefix, (*Decoder).ReadBools, (*Encoder).WriteBools),
		typed(Prefix, (*Decoder).ReadStrings, (*Encoder).WriteStrings),
	)

	compositeType = reflect.TypeFor[Composite]()
)

type registry struct {
	cache sync.Map // reflect.Type -> *Entry
}

var std registry

// Resolve returns the codec entry for t, building and caching it on first
// use. Dispatch priority: scalar, text, temporal, identifier, enum, slice,
// composite. Unsupported types return an *UnsupportedTypeError.
func Resolve(t reflect.Type) (*Entry, error) {
	return std.resolve(t)
}

// MustResolve is Resolve for setup code; it panics on unsupported types.
func MustResolve(t reflect.Type) *Entry {
	en, err := Resolve(t)
	if err != nil {
		panic(err)
	}
	return en
}

func (r *registry) resolve(t reflect.Type) (*Entry, error) {
	if t == nil {
		return nil, unsupported(nil, "nil type")
	}
	if cached, ok := r.cache.Load(t); ok {
		return cached.(*Entry), nil
	}
	en, err := r.build(t)
	if err != nil {
		log.Debug().
			Str("component", "codec.registry").
			Str("type", t.String()).
			Err(err).
			Msg("resolve failed")
		return nil, err
	}
	actual, _ := r.cache.LoadOrStore(t, en)
	return actual.(*Entry), nil
}

func (r *registry) build(t reflect.Type) (*Entry, error) {
	for _, table := range []map[reflect.Type]*Entry{scalarEntries, textEntries, temporalEntries, identifierEntries} {
		if en, ok := table[t]; ok {
			return en, nil
		}
	}
	if isInteger(t.Kind()) {
		return enumEntry(t)
	}
	if t.Kind() == reflect.Slice {
		return r.sliceEntry(t)
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(compositeType) {
		return compositeEntry(t), nil
	}
	return nil, unsupported(t, "no codec for kind %s", t.Kind())
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func enumEntry(t reflect.Type) (*Entry, error) {
	if t.PkgPath() == "" {
		return nil, unsupported(t, "%s has no fixed wire width", t.Kind())
	}
	width := enumWidth(t.Kind())
	if width == 0 {
		return nil, unsupported(t, "enum underlying type %s has no fixed wire width", t.Kind())
	}
	return &Entry{
		Type:    t,
		MinSize: width,
		decode: func(d *Decoder) reflect.Value {
			v := reflect.New(t).Elem()
			ReadEnumValue(d, v)
			return v
		},
		encode: WriteEnumValue,
	}, nil
}

func (r *registry) sliceEntry(t reflect.Type) (*Entry, error) {
	if en, ok := sliceEntries[t]; ok {
		return en, nil
	}
	elemType := t.Elem()
	if elemType.Kind() == reflect.Slice {
		return nil, unsupported(t, "only one-dimensional slices are supported")
	}
	elem, err := r.resolve(elemType)
	if err != nil {
		return nil, &UnsupportedTypeError{Type: t, Reason: "element: " + err.Error()}
	}
	// named slices of the dedicated forms keep their wire layout
	if base, ok := sliceEntries[reflect.SliceOf(elemType)]; ok {
		return &Entry{
			Type:    t,
			MinSize: base.MinSize,
			decode: func(d *Decoder) reflect.Value {
				return base.decode(d).Convert(t)
			},
			encode: func(e *Encoder, v reflect.Value) {
				base.encode(e, v.Convert(base.Type))
			},
		}, nil
	}
	return &Entry{
		Type:    t,
		MinSize: Prefix,
		decode: func(d *Decoder) reflect.Value {
			start, prior := d.pos, d.failed
			n, ok := d.prefixed("slice", Prefix, elem.MinSize)
			if !ok {
				return reflect.Zero(t)
			}
			d.failed = false
			out := reflect.MakeSlice(t, n, n)
			for i := 0; i < n; i++ {
				out.Index(i).Set(elem.decode(d))
				if d.failed {
					d.pos = start
					return reflect.Zero(t)
				}
			}
			d.failed = prior
			return out
		},
		encode: func(e *Encoder, v reflect.Value) {
			n := v.Len()
			if n > MaxCount {
				e.drop("slice", n, MaxCount)
				return
			}
			e.atomically(func() {
				e.WriteUint16(uint16(n))
				for i := 0; i < n; i++ {
					elem.encode(e, v.Index(i))
				}
			})
		},
	}, nil
}

func compositeEntry(t reflect.Type) *Entry {
	return &Entry{
		Type: t,
		decode: func(d *Decoder) reflect.Value {
			p := reflect.New(t)
			p.Interface().(Composite).Decode(d)
			return p.Elem()
		},
		encode: func(e *Encoder, v reflect.Value) {
			p := reflect.New(t)
			p.Elem().Set(v)
			e.atomically(func() { p.Interface().(Composite).Encode(e) })
		},
	}
}

// ResolveDecoder returns the decode function for T.
func ResolveDecoder[T any]() (DecodeFunc[T], error) {
	en, err := Resolve(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	if fn, ok := en.typedDecode.(DecodeFunc[T]); ok {
		return fn, nil
	}
	return func(d *Decoder) T {
		return en.decode(d).Interface().(T)
	}, nil
}

// ResolveEncoder returns the encode function for T.
func ResolveEncoder[T any]() (EncodeFunc[T], error) {
	en, err := Resolve(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	if fn, ok := en.typedEncode.(EncodeFunc[T]); ok {
		return fn, nil
	}
	return func(e *Encoder, v T) {
		en.encode(e, reflect.ValueOf(&v).Elem())
	}, nil
}

func MustResolveDecoder[T any]() DecodeFunc[T] {
	fn, err := ResolveDecoder[T]()
	if err != nil {
		panic(err)
	}
	return fn
}

func MustResolveEncoder[T any]() EncodeFunc[T] {
	fn, err := ResolveEncoder[T]()
	if err != nil {
		panic(err)
	}
	return fn
}

// MinimumSize returns the smallest encoded size of t.
func MinimumSize(t reflect.Type) (int, error) {
	en, err := Resolve(t)
	if err != nil {
		return 0, err
	}
	return en.MinSize, nil
}

// MinimumSizeOf returns the smallest encoded size of T.
func MinimumSizeOf[T any]() (int, error) {
	return MinimumSize(reflect.TypeFor[T]())
}
