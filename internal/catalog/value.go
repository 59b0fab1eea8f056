package catalog

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/danmuck/wirecodec/internal/codec"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
	decimalType  = reflect.TypeFor[decimal.Decimal]()
	uuidType     = reflect.TypeFor[uuid.UUID]()
	charType     = reflect.TypeFor[codec.Char]()
	bytesType    = reflect.TypeFor[[]byte]()
)

// ParseValue converts a text literal into a value of type t.
//
// Integers, floats and bools use strconv syntax; decimals use decimal
// notation; times are RFC 3339; durations use time.ParseDuration syntax;
// byte blocks are hex; chars are a single character or empty for null.
// Slices other than bytes are comma separated, and an empty literal is an
// empty slice.
func ParseValue(t reflect.Type, s string) (any, error) {
	switch t {
	case timeType:
		v, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, fmt.Errorf("parse time %q: %w", s, err)
		}
		return v.UTC(), nil
	case durationType:
		v, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("parse duration %q: %w", s, err)
		}
		return v, nil
	case decimalType:
		v, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("parse decimal %q: %w", s, err)
		}
		if v.Abs().GreaterThan(codec.MaxDecimal) {
			return nil, fmt.Errorf("parse decimal %q: magnitude exceeds %s", s, codec.MaxDecimal)
		}
		return v, nil
	case uuidType:
		v, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parse uuid %q: %w", s, err)
		}
		return v, nil
	case charType:
		if s == "" {
			return codec.Char(0), nil
		}
		if utf8.RuneCountInString(s) != 1 {
			return nil, fmt.Errorf("parse char %q: want exactly one character", s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		return codec.Char(r), nil
	case bytesType:
		v, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return nil, fmt.Errorf("parse bytes %q: %w", s, err)
		}
		return v, nil
	}

	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, t.Bits())
		if err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", t, s, err)
		}
		v.SetInt(n)
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, t.Bits())
		if err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", t, s, err)
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", t, s, err)
		}
		v.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("parse bool %q: %w", s, err)
		}
		v.SetBool(b)
	case reflect.String:
		v.SetString(s)
	case reflect.Slice:
		out := reflect.MakeSlice(t, 0, 0)
		if s != "" {
			for _, part := range strings.Split(s, ",") {
				elem, err := ParseValue(t.Elem(), strings.TrimSpace(part))
				if err != nil {
					return nil, err
				}
				out = reflect.Append(out, reflect.ValueOf(elem))
			}
		}
		return out.Interface(), nil
	default:
		return nil, fmt.Errorf("%w: no literal syntax for %s", codec.ErrUnsupportedType, t)
	}
	return v.Interface(), nil
}

// FormatValue renders a decoded value in the syntax ParseValue accepts.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return hex.EncodeToString(x)
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano)
	case codec.Char:
		if x == 0 {
			return ""
		}
		return string(rune(x))
	case fmt.Stringer:
		return x.String()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FormatValue(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}
