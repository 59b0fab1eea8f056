package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/danmuck/wirecodec/internal/codec"
	"github.com/danmuck/wirecodec/internal/codec/frame"
	"github.com/rs/zerolog/log"
)

var ErrUnknownMessage = errors.New("catalog: unknown message id")

// Definition declares one message shape by type name, as loaded from
// configuration.
type Definition struct {
	ID     uint16
	Name   string
	Fields []FieldDefinition
}

type FieldDefinition struct {
	Name string
	Type string
}

// Field is a resolved message field.
type Field struct {
	Name  string
	Type  reflect.Type
	entry *codec.Entry
}

// Message is a resolved message shape. Fields are encoded in order with no
// tags or separators.
type Message struct {
	ID      uint16
	Name    string
	Fields  []Field
	minSize int
}

// MinimumSize returns the smallest payload size of m.
func (m *Message) MinimumSize() int { return m.minSize }

// ValidationError reports a definition or value that does not fit the
// catalog.
type ValidationError struct {
	MessageID uint16
	Field     string
	Reason    string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("catalog: message=%d: %s", e.MessageID, e.Reason)
	}
	return fmt.Sprintf("catalog: message=%d field=%s: %s", e.MessageID, e.Field, e.Reason)
}

// Catalog maps message ids to resolved shapes and runs type-erased decode
// and encode through the codec registry. A Catalog is immutable after New
// and safe for concurrent use; every call uses its own Decoder or Encoder.
type Catalog struct {
	messages map[uint16]*Message
	framed   bool
	capacity int
	codec    []codec.Option
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithFraming controls whether Encode prepends a frame header. Default true.
func WithFraming(framed bool) Option {
	return func(c *Catalog) {
		c.framed = framed
	}
}

// WithCapacity sets the smallest initial buffer for Encode. Messages whose
// minimum size is larger start at their minimum size.
func WithCapacity(n int) Option {
	return func(c *Catalog) {
		c.capacity = n
	}
}

// WithCodecOptions passes opts to every Decoder and Encoder the catalog
// creates.
func WithCodecOptions(opts ...codec.Option) Option {
	return func(c *Catalog) {
		c.codec = append(c.codec, opts...)
	}
}

// New resolves defs. Names, ids and field names must be unique and every
// type name must resolve in the codec registry.
func New(defs []Definition, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		messages: make(map[uint16]*Message, len(defs)),
		framed:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	names := make(map[string]uint16, len(defs))
	for _, def := range defs {
		msg, err := resolve(def)
		if err != nil {
			return nil, err
		}
		if _, dup := c.messages[def.ID]; dup {
			return nil, ValidationError{MessageID: def.ID, Reason: "duplicate message id"}
		}
		if other, dup := names[def.Name]; dup {
			return nil, ValidationError{MessageID: def.ID, Reason: fmt.Sprintf("name %q already used by message %d", def.Name, other)}
		}
		names[def.Name] = def.ID
		c.messages[def.ID] = msg
	}
	log.Debug().
		Str("component", "catalog").
		Int("messages", len(c.messages)).
		Bool("framed", c.framed).
		Msg("catalog ready")
	return c, nil
}

func resolve(def Definition) (*Message, error) {
	if strings.TrimSpace(def.Name) == "" {
		return nil, ValidationError{MessageID: def.ID, Reason: "name is required"}
	}
	msg := &Message{ID: def.ID, Name: def.Name, Fields: make([]Field, 0, len(def.Fields))}
	seen := make(map[string]struct{}, len(def.Fields))
	for i, fd := range def.Fields {
		if strings.TrimSpace(fd.Name) == "" {
			return nil, ValidationError{MessageID: def.ID, Field: fmt.Sprintf("#%d", i+1), Reason: "field name is required"}
		}
		if _, dup := seen[fd.Name]; dup {
			return nil, ValidationError{MessageID: def.ID, Field: fd.Name, Reason: "duplicate field name"}
		}
		seen[fd.Name] = struct{}{}
		typ, err := codec.ParseTypeName(fd.Type)
		if err != nil {
			return nil, ValidationError{MessageID: def.ID, Field: fd.Name, Reason: err.Error()}
		}
		entry, err := codec.Resolve(typ)
		if err != nil {
			return nil, ValidationError{MessageID: def.ID, Field: fd.Name, Reason: err.Error()}
		}
		msg.Fields = append(msg.Fields, Field{Name: fd.Name, Type: typ, entry: entry})
		msg.minSize += entry.MinSize
	}
	return msg, nil
}

// Lookup returns the message registered under id.
func (c *Catalog) Lookup(id uint16) (*Message, bool) {
	msg, ok := c.messages[id]
	return msg, ok
}

// Messages returns all messages ordered by id.
func (c *Catalog) Messages() []*Message {
	out := make([]*Message, 0, len(c.messages))
	for _, msg := range c.messages {
		out = append(out, msg)
	}
	slices.SortFunc(out, func(a, b *Message) int { return int(a.ID) - int(b.ID) })
	return out
}

func (c *Catalog) Len() int { return len(c.messages) }

// Framed reports whether Encode produces framed messages.
func (c *Catalog) Framed() bool { return c.framed }

// Decode reads every field of message id from payload. All fields are
// attempted even after a short read; the returned Record holds defaults for
// the fields that failed and the error wraps codec.ErrDecodeFailed.
func (c *Catalog) Decode(id uint16, payload []byte) (Record, error) {
	msg, ok := c.messages[id]
	if !ok {
		return Record{MessageID: id}, fmt.Errorf("%w: %d", ErrUnknownMessage, id)
	}
	dec := codec.NewDecoder(c.codec...)
	dec.Load(payload)

	rec := Record{
		MessageID: id,
		Name:      msg.Name,
		Fields:    make([]Value, len(msg.Fields)),
	}
	for i, f := range msg.Fields {
		v := f.entry.DecodeAny(dec)
		rec.Fields[i] = Value{Name: f.Name, Type: codec.TypeName(f.Type), Value: v, Text: FormatValue(v)}
	}
	rec.Trailing = dec.Remaining()
	rec.Failed = dec.ClearFailure()
	if rec.Failed {
		return rec, fmt.Errorf("%w: message %d (%s)", codec.ErrDecodeFailed, id, msg.Name)
	}
	return rec, nil
}

// DecodeFrame decodes f against the message named by its header.
func (c *Catalog) DecodeFrame(f frame.Frame) (Record, error) {
	return c.Decode(f.Header.MessageID, f.Payload)
}

// Encode writes values as message id. Values must match the field types
// exactly and appear in field order.
func (c *Catalog) Encode(id uint16, values []any) ([]byte, error) {
	msg, ok := c.messages[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMessage, id)
	}
	if len(values) != len(msg.Fields) {
		return nil, ValidationError{MessageID: id, Reason: fmt.Sprintf("expected %d values, got %d", len(msg.Fields), len(values))}
	}
	capacity := msg.minSize
	if c.framed {
		capacity += frame.HeaderLen
	}
	capacity = max(capacity, c.capacity)
	enc := codec.NewEncoder(id, c.framed, capacity, c.codec...)
	for i, f := range msg.Fields {
		if err := f.entry.EncodeAny(enc, values[i]); err != nil {
			return nil, ValidationError{MessageID: id, Field: f.Name, Reason: err.Error()}
		}
		if enc.Dropped() > 0 {
			return nil, ValidationError{MessageID: id, Field: f.Name, Reason: "value exceeds the wire size limit"}
		}
	}
	return enc.Finish(), nil
}

// EncodeText parses one literal per field with ParseValue and encodes the
// result.
func (c *Catalog) EncodeText(id uint16, literals []string) ([]byte, error) {
	msg, ok := c.messages[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMessage, id)
	}
	if len(literals) != len(msg.Fields) {
		return nil, ValidationError{MessageID: id, Reason: fmt.Sprintf("expected %d values, got %d", len(msg.Fields), len(literals))}
	}
	values := make([]any, len(literals))
	for i, f := range msg.Fields {
		v, err := ParseValue(f.Type, literals[i])
		if err != nil {
			return nil, ValidationError{MessageID: id, Field: f.Name, Reason: err.Error()}
		}
		values[i] = v
	}
	return c.Encode(id, values)
}
