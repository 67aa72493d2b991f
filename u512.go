package num

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// U512 is an unsigned 512-bit integer stored as 16 32-bit digits, least
// significant first. Arithmetic wraps modulo 1<<512.
type U512 struct {
	d digits
}

func U512From64(v uint64) U512 { return U512{d: digits{uint32(v), uint32(v >> 32)}} }
func U512From32(v uint32) U512 { return U512{d: digits{v}} }

// U512FromDigits creates a U512 from its raw digits, d[0] least significant.
// See Digits() for the counterpart.
func U512FromDigits(d [digitCount]uint32) U512 { return U512{d: d} }

// U512FromString creates a U512 from a string. The base is inferred from the
// prefix as it is for big.Int.SetString with base 0, so "0x" hex strings are
// accepted. Overflow truncates to MaxU512 and sets accurate to 'false'.
func U512FromString(s string) (out U512, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return out, false, errors.Errorf("num: u512 string %q invalid", s)
	}
	out, accurate = U512FromBigInt(b)
	return out, accurate, nil
}

// U512FromBigInt creates a U512 from a big.Int. Overflow truncates to MaxU512
// and sets accurate to 'false'. Negative numbers produce zero.
func U512FromBigInt(v *big.Int) (out U512, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > u512Bits {
		return MaxU512, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		for i, w := range words {
			out.d[i*2] = uint32(w)
			out.d[i*2+1] = uint32(uint64(w) >> 32)
		}
	case 32:
		for i, w := range words {
			out.d[i] = uint32(w)
		}
	default:
		panic("num: unsupported bit size")
	}
	return out, true
}

// RandU512 generates an unsigned 512-bit random integer from an external source.
func RandU512(source RandSource) (out U512) {
	for i := 0; i < digitCount; i += 2 {
		v := source.Uint64()
		out.d[i], out.d[i+1] = uint32(v), uint32(v>>32)
	}
	return out
}

func (u U512) IsZero() bool { return u.d.isZero() }

// Digits returns a copy of the raw digits, least significant first.
func (u U512) Digits() [digitCount]uint32 { return u.d }

// Digit returns digit i, where digit 0 is the least significant. It panics if
// i is outside [0, 16).
func (u U512) Digit(i int) uint32 { return u.d[i] }

// SetDigit returns a copy of u with digit i replaced by v.
func (u U512) SetDigit(i int, v uint32) U512 {
	u.d[i] = v
	return u
}

// Bit returns the value of the i'th bit of u. Bits at or beyond 512 are 0.
func (u U512) Bit(i uint) uint {
	if i >= u512Bits {
		return 0
	}
	return u.d.bit(i)
}

// SetBit returns a copy of u with the i'th bit set to b (0 or 1). Indexes at
// or beyond 512 leave u unchanged.
func (u U512) SetBit(i uint, b uint) U512 {
	if i < u512Bits {
		u.d.setBit(i, b)
	}
	return u
}

func (u U512) AsUint64() uint64 { return uint64(u.d[1])<<32 | uint64(u.d[0]) }

// IsUint64 reports whether u can be represented as a uint64.
func (u U512) IsUint64() bool { return u.LeadingZeros() >= u512Bits-64 }

func (u U512) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		words := b.Bits()
		if cap(words) < digitCount/2 {
			words = make([]big.Word, digitCount/2)
		}
		words = words[:digitCount/2]
		for i := range words {
			words[i] = big.Word(uint64(u.d[i*2+1])<<32 | uint64(u.d[i*2]))
		}
		b.SetBits(words)

	case 32:
		words := b.Bits()
		if cap(words) < digitCount {
			words = make([]big.Word, digitCount)
		}
		words = words[:digitCount]
		for i := range words {
			words[i] = big.Word(u.d[i])
		}
		b.SetBits(words)

	default:
		panic("num: unsupported bit size")
	}
}

func (u U512) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U512) String() string {
	if u.IsUint64() {
		return strconv.FormatUint(u.AsUint64(), 10)
	}
	return u.AsBigInt().String()
}

// Hex renders u as 128 lowercase hex characters, most significant digit
// first, each digit zero-padded to 8 characters.
func (u U512) Hex() string {
	var sb strings.Builder
	sb.Grow(digitCount * 8)
	for i := digitCount - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%08x", u.d[i])
	}
	return sb.String()
}

func (u U512) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U512) Cmp(n U512) int { return u.d.cmp(&n.d) }

func (u U512) Equal(n U512) bool            { return u.d == n.d }
func (u U512) GreaterThan(n U512) bool      { return u.Cmp(n) > 0 }
func (u U512) GreaterOrEqualTo(n U512) bool { return u.Cmp(n) >= 0 }
func (u U512) LessThan(n U512) bool         { return u.Cmp(n) < 0 }
func (u U512) LessOrEqualTo(n U512) bool    { return u.Cmp(n) <= 0 }

func (u U512) Lsh(n uint) U512 {
	u.d.shl(n)
	return u
}

func (u U512) Rsh(n uint) U512 {
	u.d.shr(n)
	return u
}

func (u U512) Not() U512 {
	u.d.not()
	return u
}

func (u U512) And(n U512) U512 {
	for i := range u.d {
		u.d[i] &= n.d[i]
	}
	return u
}

func (u U512) AndNot(n U512) U512 {
	for i := range u.d {
		u.d[i] &^= n.d[i]
	}
	return u
}

func (u U512) Or(n U512) U512 {
	for i := range u.d {
		u.d[i] |= n.d[i]
	}
	return u
}

func (u U512) Xor(n U512) U512 {
	for i := range u.d {
		u.d[i] ^= n.d[i]
	}
	return u
}

// LeadingZeros returns the number of leading zero bits in u; 512 for zero.
func (u U512) LeadingZeros() uint { return u.d.leadingZeros() }

// TrailingZeros returns the number of trailing zero bits in u; 512 for zero.
func (u U512) TrailingZeros() uint { return u.d.trailingZeros() }

// BitLen returns the number of bits required to represent u.
func (u U512) BitLen() uint { return u512Bits - u.d.leadingZeros() }

func (u U512) Add(n U512) U512 {
	u.d.add(&n.d)
	return u
}

// Sub subtracts by adding the two's complement of n, so u < n wraps around
// to u - n + (1<<512).
func (u U512) Sub(n U512) U512 {
	return u.Add(n.Not().Inc())
}

func (u U512) Inc() U512 { return u.Add(One512) }
func (u U512) Dec() U512 { return u.Add(MaxU512) }
