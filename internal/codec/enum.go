package codec

import (
	"reflect"
	"unsafe"
)

// Enum is satisfied by named types whose underlying type is one of the eight
// fixed-width integers. The wire width is the underlying width.
type Enum interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

func enumShape[E Enum]() (size uintptr, signed bool) {
	var zero E
	return unsafe.Sizeof(zero), ^zero < 0
}

// ReadEnum decodes E at its underlying integer width.
func ReadEnum[E Enum](d *Decoder) E {
	switch size, signed := enumShape[E](); size {
	case 1:
		if signed {
			return E(d.ReadInt8())
		}
		return E(d.ReadUint8())
	case 2:
		if signed {
			return E(d.ReadInt16())
		}
		return E(d.ReadUint16())
	case 4:
		if signed {
			return E(d.ReadInt32())
		}
		return E(d.ReadUint32())
	default:
		if signed {
			return E(d.ReadInt64())
		}
		return E(d.ReadUint64())
	}
}

// WriteEnum encodes v at its underlying integer width.
func WriteEnum[E Enum](e *Encoder, v E) {
	switch size, signed := enumShape[E](); size {
	case 1:
		if signed {
			e.WriteInt8(int8(v))
			return
		}
		e.WriteUint8(uint8(v))
	case 2:
		if signed {
			e.WriteInt16(int16(v))
			return
		}
		e.WriteUint16(uint16(v))
	case 4:
		if signed {
			e.WriteInt32(int32(v))
			return
		}
		e.WriteUint32(uint32(v))
	default:
		if signed {
			e.WriteInt64(int64(v))
			return
		}
		e.WriteUint64(uint64(v))
	}
}

// enumWidth returns the wire width for an integer kind, or 0 when the kind
// has no fixed width.
func enumWidth(kind reflect.Kind) int {
	switch kind {
	case reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32:
		return 4
	case reflect.Int64, reflect.Uint64:
		return 8
	default:
		return 0
	}
}

// ReadEnumValue decodes into v, a settable integer value, at its kind's
// width. Kinds without a fixed width set the failure flag and leave v zero.
func ReadEnumValue(d *Decoder, v reflect.Value) {
	switch v.Kind() {
	case reflect.Int8:
		v.SetInt(int64(d.ReadInt8()))
	case reflect.Int16:
		v.SetInt(int64(d.ReadInt16()))
	case reflect.Int32:
		v.SetInt(int64(d.ReadInt32()))
	case reflect.Int64:
		v.SetInt(d.ReadInt64())
	case reflect.Uint8:
		v.SetUint(uint64(d.ReadUint8()))
	case reflect.Uint16:
		v.SetUint(uint64(d.ReadUint16()))
	case reflect.Uint32:
		v.SetUint(uint64(d.ReadUint32()))
	case reflect.Uint64:
		v.SetUint(d.ReadUint64())
	default:
		d.fail("enum."+v.Kind().String(), 0)
		if v.CanSet() {
			v.SetZero()
		}
	}
}

// WriteEnumValue encodes v at its kind's width. Kinds without a fixed width
// are skipped with a warning.
func WriteEnumValue(e *Encoder, v reflect.Value) {
	switch v.Kind() {
	case reflect.Int8:
		e.WriteInt8(int8(v.Int()))
	case reflect.Int16:
		e.WriteInt16(int16(v.Int()))
	case reflect.Int32:
		e.WriteInt32(int32(v.Int()))
	case reflect.Int64:
		e.WriteInt64(v.Int())
	case reflect.Uint8:
		e.WriteUint8(uint8(v.Uint()))
	case reflect.Uint16:
		e.WriteUint16(uint16(v.Uint()))
	case reflect.Uint32:
		e.WriteUint32(uint32(v.Uint()))
	case reflect.Uint64:
		e.WriteUint64(v.Uint())
	default:
		e.opts.logger().Warn().
			Str("component", "codec.encoder").
			Str("kind", v.Kind().String()).
			Msg("enum write skipped: unsupported underlying type")
		if e.opts.observer != nil {
			e.opts.observer.EncodeDropped("enum")
		}
	}
}
