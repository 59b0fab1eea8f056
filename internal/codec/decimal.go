package codec

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimal wire layout: three little-endian uint32 words holding the 96-bit
// coefficient (lo, mid, hi) followed by a flags word with the scale in bits
// 16..23 and the sign in bit 31.
const (
	maxDecimalScale  = 28
	decimalScaleMask = 0x00FF0000
	decimalSignBit   = 0x80000000
)

var max96Bit = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1))

// MaxDecimal is the largest magnitude the 128-bit decimal holds.
var MaxDecimal = decimal.NewFromBigInt(max96Bit, 0)

func decimalFromWire(b []byte) (decimal.Decimal, bool) {
	lo := le.Uint32(b[0:4])
	mid := le.Uint32(b[4:8])
	hi := le.Uint32(b[8:12])
	flags := le.Uint32(b[12:16])

	scale := (flags & decimalScaleMask) >> 16
	if scale > maxDecimalScale {
		return decimal.Zero, false
	}

	coef := new(big.Int).SetUint64(uint64(hi))
	coef.Lsh(coef, 64)
	coef.Or(coef, new(big.Int).SetUint64(uint64(mid)<<32|uint64(lo)))
	if flags&decimalSignBit != 0 {
		coef.Neg(coef)
	}
	return decimal.NewFromBigInt(coef, -int32(scale)), true
}

// decimalToWire fills dst (16 bytes). Digits that do not fit in 96 bits are
// rounded away by lowering the scale. A magnitude of 2^96 or more cannot be
// rounded into range; it is written as the largest coefficient with its sign
// and reported as false.
func decimalToWire(v decimal.Decimal, dst []byte) bool {
	var scale int32
	if exp := v.Exponent(); exp < 0 {
		scale = min(-exp, maxDecimalScale)
	}
	v = v.Round(scale)
	coef := v.Coefficient()
	for coef.CmpAbs(max96Bit) > 0 && scale > 0 {
		scale--
		v = v.Round(scale)
		coef = v.Coefficient()
	}

	var flags uint32
	if coef.Sign() < 0 {
		flags |= decimalSignBit
		coef.Neg(coef)
	}
	fits := coef.Cmp(max96Bit) <= 0
	if !fits {
		coef.Set(max96Bit)
	}
	flags |= uint32(scale) << 16

	var words [12]byte
	coef.FillBytes(words[:])
	// FillBytes is big-endian; hi word is words[0:4], lo is words[8:12].
	le.PutUint32(dst[0:4], beUint32(words[8:12]))
	le.PutUint32(dst[4:8], beUint32(words[4:8]))
	le.PutUint32(dst[8:12], beUint32(words[0:4]))
	le.PutUint32(dst[12:16], flags)
	return fits
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
