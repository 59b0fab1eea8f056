// Package codec owns the binary message codec: a cursor-based Decoder and a
// growable Encoder that translate typed values to and from a fixed
// little-endian wire layout.
//
// Ownership boundary:
// - scalar, text, temporal, identifier, decimal and enum primitives
// - length-prefixed byte blocks, arrays and bit-packed boolean arrays
// - type dispatch registry (reflect.Type -> decode/encode entry)
// - composite object protocol and optional composites
//
// Failure classes:
//   - Short or malformed input sets a sticky soft-failure flag on the
//     Decoder. The read returns the zero value and the cursor does not move.
//     Later reads still run; callers check Failed once per message.
//   - Unsupported types at resolution time and composite count overflow on
//     encode are programming errors and fail hard.
//   - Oversized variable-length writes are dropped with a warning and leave
//     the buffer unchanged.
//
// Decoder and Encoder own one mutable buffer each and are not safe for
// concurrent use. Keep one instance per connection or guard it externally.
package codec
