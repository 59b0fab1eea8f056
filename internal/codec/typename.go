package codec

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type names used by configuration and tooling. A "[]" prefix denotes a
// one-dimensional slice of the named element.
var typeNames = map[string]reflect.Type{
	"int8":         reflect.TypeFor[int8](),
	"uint8":        reflect.TypeFor[uint8](),
	"int16":        reflect.TypeFor[int16](),
	"uint16":       reflect.TypeFor[uint16](),
	"int32":        reflect.TypeFor[int32](),
	"uint32":       reflect.TypeFor[uint32](),
	"int64":        reflect.TypeFor[int64](),
	"uint64":       reflect.TypeFor[uint64](),
	"bool":         reflect.TypeFor[bool](),
	"float32":      reflect.TypeFor[float32](),
	"float64":      reflect.TypeFor[float64](),
	"decimal":      reflect.TypeFor[decimal.Decimal](),
	"string":       reflect.TypeFor[string](),
	"short_string": reflect.TypeFor[ShortString](),
	"char":         reflect.TypeFor[Char](),
	"time":         reflect.TypeFor[time.Time](),
	"duration":     reflect.TypeFor[time.Duration](),
	"uuid":         reflect.TypeFor[uuid.UUID](),
}

var typeAliases = map[string]string{
	"byte":    "uint8",
	"bytes":   "[]uint8",
	"float":   "float32",
	"double":  "float64",
	"guid":    "uuid",
	"text":    "string",
	"rune":    "char",
	"instant": "time",
}

// ParseTypeName maps a configuration type name to its Go type and checks
// that the registry supports it.
func ParseTypeName(name string) (reflect.Type, error) {
	raw := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := typeAliases[raw]; ok {
		raw = alias
	}
	var t reflect.Type
	if elem, ok := strings.CutPrefix(raw, "[]"); ok {
		et, err := ParseTypeName(elem)
		if err != nil {
			return nil, err
		}
		t = reflect.SliceOf(et)
	} else if base, ok := typeNames[raw]; ok {
		t = base
	} else {
		return nil, fmt.Errorf("%w: unknown type name %q", ErrUnsupportedType, name)
	}
	if _, err := Resolve(t); err != nil {
		return nil, err
	}
	return t, nil
}

// TypeName returns the configuration name for t, or t.String() when t has
// none.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Slice {
		if t.Elem() == reflect.TypeFor[uint8]() {
			return "bytes"
		}
		return "[]" + TypeName(t.Elem())
	}
	for name, candidate := range typeNames {
		if candidate == t {
			return name
		}
	}
	return t.String()
}
