package config

import (
	"github.com/danmuck/wirecodec/internal/catalog"
	"github.com/danmuck/wirecodec/internal/codec"
	"github.com/danmuck/wirecodec/internal/codec/frame"
)

// Definitions maps the [[messages]] entries to catalog definitions.
func (c Config) Definitions() []catalog.Definition {
	defs := make([]catalog.Definition, 0, len(c.Messages))
	for _, msg := range c.Messages {
		fields := make([]catalog.FieldDefinition, 0, len(msg.Fields))
		for _, f := range msg.Fields {
			fields = append(fields, catalog.FieldDefinition{Name: f.Name, Type: f.Type})
		}
		defs = append(defs, catalog.Definition{ID: msg.ID, Name: msg.Name, Fields: fields})
	}
	return defs
}

// Catalog builds the message catalog with the configured framing.
func (c Config) Catalog(opts ...codec.Option) (*catalog.Catalog, error) {
	return catalog.New(
		c.Definitions(),
		catalog.WithFraming(c.Codec.Framed),
		catalog.WithCapacity(c.Codec.InitialCapacity),
		catalog.WithCodecOptions(opts...),
	)
}

func (c Config) FrameLimits() frame.Limits {
	return frame.Limits{MaxPayloadBytes: c.Limits.MaxPayloadBytes}
}
