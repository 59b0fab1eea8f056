// Package frame owns the message frame: a 16-bit message id and a 32-bit
// payload length, little-endian, in front of the payload.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const HeaderLen = 6

var (
	ErrShortHeader       = errors.New("frame: short header")
	ErrTruncatedPayload  = errors.New("frame: truncated payload")
	ErrPayloadTooLarge   = errors.New("frame: payload too large")
	ErrInvalidHeaderSize = errors.New("frame: invalid header size")
)

// Header is the fixed wire header.
type Header struct {
	MessageID  uint16
	PayloadLen uint32
}

// Frame is one complete wire message.
type Frame struct {
	Header  Header
	Payload []byte
}

// Limits constrains frame decode/encode memory use.
type Limits struct {
	MaxPayloadBytes uint32
}

func DefaultLimits() Limits {
	return Limits{
		MaxPayloadBytes: 8 * 1024 * 1024,
	}
}

// PutHeader writes h into dst[:HeaderLen].
func PutHeader(dst []byte, h Header) {
	binary.LittleEndian.PutUint16(dst[0:2], h.MessageID)
	binary.LittleEndian.PutUint32(dst[2:6], h.PayloadLen)
}

func EncodeHeader(h Header) []byte {
	buf := make([]byte, HeaderLen)
	PutHeader(buf, h)
	return buf
}

func DecodeHeader(b []byte) (Header, error) {
	if len(b) != HeaderLen {
		return Header{}, fmt.Errorf("%w: %d", ErrInvalidHeaderSize, len(b))
	}
	return Header{
		MessageID:  binary.LittleEndian.Uint16(b[0:2]),
		PayloadLen: binary.LittleEndian.Uint32(b[2:6]),
	}, nil
}

// Prepend returns a new buffer holding the header for messageID followed by
// payload. The payload length is taken after the payload is complete.
func Prepend(messageID uint16, payload []byte) []byte {
	out := make([]byte, HeaderLen+len(payload))
	PutHeader(out, Header{MessageID: messageID, PayloadLen: uint32(len(payload))})
	copy(out[HeaderLen:], payload)
	return out
}

// ReadFrame reads one frame from r. A clean end of stream before any header
// byte returns io.EOF.
func ReadFrame(r io.Reader, limits Limits) (Frame, error) {
	var fixed [HeaderLen]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Frame{}, ErrShortHeader
		}
		return Frame{}, err
	}

	h, err := DecodeHeader(fixed[:])
	if err != nil {
		return Frame{}, err
	}
	if h.PayloadLen > limits.MaxPayloadBytes {
		return Frame{}, ErrPayloadTooLarge
	}

	payload := make([]byte, h.PayloadLen)
	if h.PayloadLen > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return Frame{}, ErrTruncatedPayload
			}
			return Frame{}, err
		}
	}

	return Frame{Header: h, Payload: payload}, nil
}

// WriteFrame writes f to w, filling PayloadLen from the payload.
func WriteFrame(w io.Writer, f Frame, limits Limits) error {
	if uint64(len(f.Payload)) > uint64(limits.MaxPayloadBytes) {
		return ErrPayloadTooLarge
	}
	h := f.Header
	h.PayloadLen = uint32(len(f.Payload))

	if _, err := w.Write(EncodeHeader(h)); err != nil {
		return err
	}
	if len(f.Payload) > 0 {
		if _, err := w.Write(f.Payload); err != nil {
			return err
		}
	}
	return nil
}

// Split parses data as a sequence of whole frames.
func Split(data []byte, limits Limits) ([]Frame, error) {
	frames := make([]Frame, 0)
	for offset := 0; offset < len(data); {
		if len(data)-offset < HeaderLen {
			return frames, ErrShortHeader
		}
		h, err := DecodeHeader(data[offset : offset+HeaderLen])
		if err != nil {
			return frames, err
		}
		if h.PayloadLen > limits.MaxPayloadBytes {
			return frames, ErrPayloadTooLarge
		}
		offset += HeaderLen
		if uint64(len(data)-offset) < uint64(h.PayloadLen) {
			return frames, ErrTruncatedPayload
		}
		end := offset + int(h.PayloadLen)
		payload := make([]byte, h.PayloadLen)
		copy(payload, data[offset:end])
		frames = append(frames, Frame{Header: h, Payload: payload})
		offset = end
	}
	return frames, nil
}
