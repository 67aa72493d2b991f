package num

import "math/bits"

const (
	digitBits  = 32
	digitCount = 16
	u512Bits   = digitBits * digitCount
)

// digits holds a 512-bit magnitude as 16 little-endian 32-bit words. All
// methods work in place; U512 copies the array before calling them so
// callers never observe the mutation.
type digits [digitCount]uint32

func (d *digits) isZero() bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}

func (d *digits) cmp(n *digits) int {
	for i := digitCount - 1; i >= 0; i-- {
		if d[i] > n[i] {
			return 1
		} else if d[i] < n[i] {
			return -1
		}
	}
	return 0
}

func (d *digits) shl(n uint) {
	if n >= u512Bits {
		*d = digits{}
		return
	}

	if w := n / digitBits; w > 0 {
		copy(d[w:], d[:digitCount-w])
		for i := uint(0); i < w; i++ {
			d[i] = 0
		}
		n %= digitBits
	}
	if n == 0 {
		return
	}

	var carry uint32
	for i := 0; i < digitCount; i++ {
		v := d[i]
		d[i] = (v << n) | carry
		carry = v >> (digitBits - n)
	}
}

// shl1 shifts d left by a single bit and returns the bit that fell off the
// top digit.
func (d *digits) shl1() (out uint32) {
	for i := 0; i < digitCount; i++ {
		v := d[i]
		d[i] = (v << 1) | out
		out = v >> (digitBits - 1)
	}
	return out
}

func (d *digits) shr(n uint) {
	if n >= u512Bits {
		*d = digits{}
		return
	}

	if w := n / digitBits; w > 0 {
		copy(d[:digitCount-w], d[w:])
		for i := digitCount - w; i < digitCount; i++ {
			d[i] = 0
		}
		n %= digitBits
	}
	if n == 0 {
		return
	}

	var carry uint32
	for i := digitCount - 1; i >= 0; i-- {
		v := d[i]
		d[i] = (v >> n) | carry
		carry = v << (digitBits - n)
	}
}

func (d *digits) not() {
	for i := range d {
		d[i] = ^d[i]
	}
}

// add adds n into d and returns the carry out of the top digit.
func (d *digits) add(n *digits) (carry uint32) {
	for i := 0; i < digitCount; i++ {
		d[i], carry = bits.Add32(d[i], n[i], carry)
	}
	return carry
}

func (d *digits) leadingZeros() uint {
	for i := digitCount - 1; i >= 0; i-- {
		if d[i] != 0 {
			return uint(digitCount-1-i)*digitBits + uint(bits.LeadingZeros32(d[i]))
		}
	}
	return u512Bits
}

func (d *digits) trailingZeros() uint {
	for i := 0; i < digitCount; i++ {
		if d[i] != 0 {
			return uint(i)*digitBits + uint(bits.TrailingZeros32(d[i]))
		}
	}
	return u512Bits
}

// bit and setBit are the only places that turn a bit index into a digit
// index and an intra-digit offset. i must be < u512Bits.
func (d *digits) bit(i uint) uint {
	return uint(d[i/digitBits]>>(i%digitBits)) & 1
}

func (d *digits) setBit(i uint, v uint) {
	mask := uint32(1) << (i % digitBits)
	if v&1 == 1 {
		d[i/digitBits] |= mask
	} else {
		d[i/digitBits] &^= mask
	}
}
