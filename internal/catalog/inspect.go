package catalog

import (
	"fmt"

	"github.com/danmuck/wirecodec/internal/codec/frame"
	"github.com/rs/zerolog/log"
)

// Frame outcomes reported by Inspect.
const (
	OutcomeOK      = "ok"
	OutcomeFailed  = "decode_failed"
	OutcomeUnknown = "unknown_message"
)

// Inspection is the decode result for one frame of a stream.
type Inspection struct {
	Record
	Outcome      string `json:"outcome"`
	PayloadBytes int    `json:"payload_bytes"`
	Error        string `json:"error,omitempty"`
}

// Inspect splits data into frames and decodes each against the catalog.
// Per-frame decode problems are reported in the Inspection; the returned
// error covers framing only, and the frames before it are still returned.
func (c *Catalog) Inspect(data []byte, limits frame.Limits) ([]Inspection, error) {
	frames, splitErr := frame.Split(data, limits)
	out := make([]Inspection, 0, len(frames))
	for _, f := range frames {
		rec, err := c.DecodeFrame(f)
		in := Inspection{Record: rec, Outcome: OutcomeOK, PayloadBytes: len(f.Payload)}
		switch {
		case err == nil:
		case rec.Name == "":
			in.Outcome = OutcomeUnknown
			in.Error = err.Error()
		default:
			in.Outcome = OutcomeFailed
			in.Error = err.Error()
		}
		out = append(out, in)
	}
	if splitErr != nil {
		log.Warn().
			Str("component", "catalog").
			Int("frames", len(frames)).
			Err(splitErr).
			Msg("frame stream ended early")
		return out, fmt.Errorf("inspect: %w", splitErr)
	}
	return out, nil
}
