package codec

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrDecodeFailed    = errors.New("codec: decode failed")
	ErrUnsupportedType = errors.New("codec: unsupported type")
	ErrCountOverflow   = errors.New("codec: element count exceeds prefix width")
)

// UnsupportedTypeError is returned when the registry cannot resolve a type.
type UnsupportedTypeError struct {
	Type   reflect.Type
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	name := "<nil>"
	if e.Type != nil {
		name = e.Type.String()
	}
	if e.Reason == "" {
		return fmt.Sprintf("codec: unsupported type %s", name)
	}
	return fmt.Sprintf("codec: unsupported type %s: %s", name, e.Reason)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

func unsupported(t reflect.Type, format string, args ...any) error {
	return &UnsupportedTypeError{Type: t, Reason: fmt.Sprintf(format, args...)}
}
